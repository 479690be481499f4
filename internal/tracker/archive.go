package tracker

import (
	"encoding/json"
	"log/slog"

	"github.com/vango-dev/teamfight/internal/metrics"
	"github.com/vango-dev/teamfight/internal/storage"
)

// StorageKey is where matches are stored.
const StorageKey = "lol-teamfight-matches-v2"

// LegacyKeys are read, in order, when StorageKey holds nothing usable.
var LegacyKeys = []string{"lol-teamfight-matches-v1"}

// Archive reads and writes the match list in a storage.
type Archive struct {
	storage storage.Storage
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewArchive returns an archive over s. logger and m may be nil.
func NewArchive(s storage.Storage, logger *slog.Logger, m *metrics.Metrics) *Archive {
	if logger == nil {
		logger = slog.Default().With("component", "archive")
	}
	return &Archive{storage: s, logger: logger, metrics: m}
}

// Load returns the stored matches, normalized. It falls back to the legacy
// keys and finally to an empty list; unreadable content is logged and
// skipped, never returned as an error.
func (a *Archive) Load() []any {
	for _, key := range append([]string{StorageKey}, LegacyKeys...) {
		records, ok := a.read(key)
		if !ok {
			continue
		}
		out := make([]any, 0, len(records))
		for _, r := range records {
			if m, ok := r.(map[string]any); ok {
				out = append(out, NormalizeMatch(m))
			}
		}
		return out
	}
	return []any{}
}

// read returns the array stored under key. Missing, empty, unparsable and
// non-array values all report false.
func (a *Archive) read(key string) ([]any, bool) {
	raw, ok, err := a.storage.GetItem(key)
	if err != nil {
		a.logger.Warn("failed to read stored matches", "key", key, "error", err)
		return nil, false
	}
	if !ok || raw == "" {
		return nil, false
	}

	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		a.logger.Warn("failed to parse stored matches", "key", key, "error", err)
		return nil, false
	}
	records, ok := v.([]any)
	if !ok {
		a.logger.Warn("stored matches are not a list", "key", key)
		return nil, false
	}
	return records, true
}

// Save writes matches under StorageKey. Failures are logged and counted;
// the error is returned for callers that want it.
func (a *Archive) Save(matches []any) error {
	if matches == nil {
		matches = []any{}
	}
	data, err := json.Marshal(matches)
	if err == nil {
		err = a.storage.SetItem(StorageKey, string(data))
	}
	a.metrics.StorageWrite(err)
	if err != nil {
		a.logger.Warn("failed to save matches", "key", StorageKey, "error", err)
	}
	return err
}
