package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vango-dev/teamfight/internal/config"
	"github.com/vango-dev/teamfight/internal/errors"
	"github.com/vango-dev/teamfight/internal/storage"
	"github.com/vango-dev/teamfight/internal/tracker"
)

// loadConfig reads teamfight.json from dir and applies the environment.
// Flag overrides are applied by the caller before Validate.
func loadConfig(dir string) (*config.Config, error) {
	cfg, err := config.Load(dir)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.Getenv)
	return cfg, nil
}

// newLogger builds the slog handler selected by the config.
func newLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if strings.EqualFold(cfg.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// openStorage opens the data file named by the config.
func openStorage(cfg *config.Config) (*storage.FileStorage, error) {
	s, err := storage.OpenFile(cfg.Data.File)
	if err != nil {
		return nil, errors.New("T010").
			WithDetailf("Cannot open %s.", cfg.Data.File).
			Wrap(err)
	}
	return s, nil
}

// loadMatches reads and decodes every stored match.
func loadMatches(cfg *config.Config, logger *slog.Logger) ([]tracker.Match, error) {
	s, err := openStorage(cfg)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return tracker.DecodeMatches(tracker.NewArchive(s, logger, nil).Load()), nil
}
