package tracker

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/teamfight/internal/metrics"
	"github.com/vango-dev/teamfight/internal/storage"
)

// failingStorage refuses every write.
type failingStorage struct {
	*storage.MemoryStorage
}

func (failingStorage) SetItem(string, string) error {
	return errors.New("quota exceeded")
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func TestArchiveLoad(t *testing.T) {
	current := `[{"id":"a","teamName":"T1","champions":{"blue":{"top":"garen"}}}]`
	legacy := `[{"id":1,"teamName":"Old","champions":["ahri"]}]`

	tests := []struct {
		name    string
		items   map[string]string
		wantIDs []any
		warns   bool
	}{
		{"nothing stored", nil, []any{}, false},
		{"current key", map[string]string{StorageKey: current, "lol-teamfight-matches-v1": legacy}, []any{"a"}, false},
		{"legacy fallback", map[string]string{"lol-teamfight-matches-v1": legacy}, []any{1.0}, false},
		{"empty current falls back", map[string]string{StorageKey: "", "lol-teamfight-matches-v1": legacy}, []any{1.0}, false},
		{"corrupt current falls back", map[string]string{StorageKey: "{oops", "lol-teamfight-matches-v1": legacy}, []any{1.0}, true},
		{"object is not a list", map[string]string{StorageKey: `{"id":"a"}`}, []any{}, true},
		{"non-object entries dropped", map[string]string{StorageKey: `[1,"x",null,{"id":"b"}]`}, []any{"b"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := bufferLogger()
			a := NewArchive(storage.NewMemoryStorage(tt.items), logger, nil)

			got := a.Load()
			ids := []any{}
			for _, m := range got {
				rec := m.(map[string]any)
				ids = append(ids, rec["id"])
				assert.Contains(t, rec, "champions")
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.Equal(t, tt.warns, strings.Contains(buf.String(), "level=WARN"), buf.String())
		})
	}
}

func TestArchiveLoadNormalizes(t *testing.T) {
	legacy := `[{"id":1,"selectedChampions":["ahri","garen"]}]`
	a := NewArchive(storage.NewMemoryStorage(map[string]string{"lol-teamfight-matches-v1": legacy}), nil, nil)

	got := a.Load()
	require.Len(t, got, 1)
	rec := got[0].(map[string]any)
	assert.NotContains(t, rec, "selectedChampions")
	assert.Equal(t, []string{"ahri", "garen"}, ChampionIDs(rec["champions"].(map[string]any)))
}

func TestArchiveSave(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(metrics.WithRegistry(reg))
	store := storage.NewMemoryStorage(nil)
	a := NewArchive(store, nil, m)

	require.NoError(t, a.Save([]any{map[string]any{"id": "x", "teamName": "T1"}}))
	raw, ok, err := store.GetItem(StorageKey)
	require.NoError(t, err)
	require.True(t, ok)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	assert.Equal(t, "T1", decoded[0]["teamName"])

	require.NoError(t, a.Save(nil))
	raw, _, _ = store.GetItem(StorageKey)
	assert.Equal(t, "[]", raw)

	expected := `
# HELP teamfight_storage_writes_total Match store writes, by result
# TYPE teamfight_storage_writes_total counter
teamfight_storage_writes_total{result="ok"} 2
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "teamfight_storage_writes_total"))
}

func TestArchiveSaveFailureIsLogged(t *testing.T) {
	logger, buf := bufferLogger()
	a := NewArchive(failingStorage{storage.NewMemoryStorage(nil)}, logger, nil)

	err := a.Save([]any{})
	assert.ErrorContains(t, err, "quota exceeded")
	assert.Contains(t, buf.String(), "failed to save matches")
}
