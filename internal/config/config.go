package config

import (
	"encoding/json"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strings"

	"github.com/vango-dev/teamfight/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "teamfight.json"

	// DefaultAddr is the default listen address of the live server.
	DefaultAddr = "localhost:3000"

	// DefaultDataFile is the default path of the match store.
	DefaultDataFile = "teamfight-data.json"

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the default log format.
	DefaultLogFormat = "text"
)

// Environment variables read by ApplyEnv.
const (
	EnvAddr     = "TEAMFIGHT_ADDR"
	EnvData     = "TEAMFIGHT_DATA"
	EnvLogLevel = "TEAMFIGHT_LOG_LEVEL"
)

// Config is the complete teamfight.json configuration.
type Config struct {
	// Server configures the live server.
	Server ServerConfig `json:"server"`

	// Data configures the match store.
	Data DataConfig `json:"data"`

	// Log configures logging.
	Log LogConfig `json:"log"`

	// configPath stores the path the config was loaded from.
	configPath string
}

// ServerConfig configures the live server.
type ServerConfig struct {
	// Addr is the host:port to listen on.
	Addr string `json:"addr,omitempty"`

	// Metrics exposes Prometheus metrics at /metrics.
	Metrics *bool `json:"metrics,omitempty"`
}

// DataConfig configures the match store.
type DataConfig struct {
	// File is the JSON file holding stored items.
	File string `json:"file,omitempty"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is debug, info, warn or error.
	Level string `json:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty"`
}

// New creates a Config with default values.
func New() *Config {
	metrics := true
	return &Config{
		Server: ServerConfig{Addr: DefaultAddr, Metrics: &metrics},
		Data:   DataConfig{File: DefaultDataFile},
		Log:    LogConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
	}
}

// Load reads teamfight.json from dir. A missing file yields the defaults.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := New()
		cfg.configPath = path
		return cfg, nil
	}
	return LoadFile(path)
}

// LoadFile reads configuration from the given file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("T001").
			WithDetailf("Cannot read %s.", path).
			Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("T001").
			WithDetailf("Failed to parse %s: %v", path, err).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()
	return cfg, nil
}

// SaveTo writes the configuration to path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("T001").Wrap(err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.New("T001").Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the path the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills empty fields, e.g. after a partial file.
func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.Metrics == nil {
		metrics := true
		c.Server.Metrics = &metrics
	}
	if c.Data.File == "" {
		c.Data.File = DefaultDataFile
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
}

// ApplyEnv overrides fields from environment variables read with getenv.
// Empty values are ignored.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvAddr); v != "" {
		c.Server.Addr = v
	}
	if v := getenv(EnvData); v != "" {
		c.Data.File = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if _, port, err := net.SplitHostPort(c.Server.Addr); err != nil || port == "" {
		return errors.New("T002").
			WithDetailf("%q is not a host:port address.", c.Server.Addr).
			WithSuggestion(`Use host:port, for example "` + DefaultAddr + `".`)
	}
	if c.Data.File == "" {
		return errors.New("T005").
			WithSuggestion("Set data.file in " + ConfigFileName + " or " + EnvData + ".")
	}
	if _, ok := parseLevel(c.Log.Level); !ok {
		return errors.New("T003").WithDetailf("Got %q.", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return errors.New("T004").WithDetailf("Got %q.", c.Log.Format)
	}
	return nil
}

// MetricsEnabled reports whether /metrics is served.
func (c *Config) MetricsEnabled() bool {
	return c.Server.Metrics == nil || *c.Server.Metrics
}

// URL returns the URL of the live server.
func (c *Config) URL() string {
	host, port, err := net.SplitHostPort(c.Server.Addr)
	if err != nil {
		return "http://" + c.Server.Addr
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port)
}

// SlogLevel returns the configured log level, or info when invalid.
func (c *Config) SlogLevel() slog.Level {
	level, _ := parseLevel(c.Log.Level)
	return level
}

func parseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}
