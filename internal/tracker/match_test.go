package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeMatch(t *testing.T) {
	rec := NormalizeMatch(map[string]any{
		"id":        1717000000000.0,
		"teamName":  "T1",
		"opponent":  "Gen.G",
		"side":      "red",
		"result":    "win",
		"champions": []any{"ahri", "garen"},
		"matchDate": "2024-05-01",
		"unknown":   true,
	})

	m, err := DecodeMatch(rec)
	require.NoError(t, err)
	assert.Equal(t, "1717000000000", m.ID)
	assert.Equal(t, "T1", m.TeamName)
	assert.Equal(t, "red", m.Side)
	assert.True(t, m.Won())
	assert.Equal(t, "ahri", m.Champions["blue"]["top"])
	assert.Equal(t, "", m.Champions["red"]["mid"])
	assert.Equal(t, []string{"ahri", "garen"}, m.Champions.ChampionIDs())
}

func TestDecodeMatchesSkipsJunk(t *testing.T) {
	got := DecodeMatches([]any{
		map[string]any{"id": "a", "teamName": "T1"},
		"not a match",
		nil,
		map[string]any{"id": "b", "teamName": []any{"bad"}},
		map[string]any{"id": "c", "teamName": "DRX"},
	})
	ids := []string{}
	for _, m := range got {
		ids = append(ids, m.ID)
	}
	assert.Equal(t, []string{"a", "c"}, ids)
}

func TestFilters(t *testing.T) {
	all := []Match{
		{ID: "1", TeamName: "T1", Opponent: "Gen.G", Side: "blue", Result: "win"},
		{ID: "2", TeamName: "t1 academy", Opponent: "DRX", Side: "red", Result: "loss"},
		{ID: "3", TeamName: "Gen.G", Opponent: "T1", Side: "red", Result: "win"},
	}

	tests := []struct {
		name string
		f    Filters
		want []string
	}{
		{"zero value keeps all", Filters{}, []string{"1", "2", "3"}},
		{"all keeps all", Filters{Side: "all", Result: "all"}, []string{"1", "2", "3"}},
		{"team substring case-insensitive", Filters{Team: "T1"}, []string{"1", "2"}},
		{"opponent", Filters{Opponent: "gen"}, []string{"1"}},
		{"side", Filters{Side: "red", Result: "all"}, []string{"2", "3"}},
		{"result", Filters{Side: "all", Result: "win"}, []string{"1", "3"}},
		{"combined", Filters{Team: "t1", Side: "red", Result: "loss"}, []string{"2"}},
		{"none", Filters{Team: "zzz"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids := []string{}
			for _, m := range FilterMatches(all, tt.f) {
				ids = append(ids, m.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestTeamOptions(t *testing.T) {
	got := TeamOptions([]Match{
		{TeamName: "T1", Opponent: "Gen.G"},
		{TeamName: "DRX", Opponent: "T1"},
		{TeamName: "Gen.G"},
	})
	assert.Equal(t, []string{"DRX", "Gen.G", "T1"}, got)
	assert.Empty(t, TeamOptions(nil))
}

func TestCountResults(t *testing.T) {
	wins, losses := CountResults([]Match{{Result: "win"}, {Result: "loss"}, {Result: "win"}, {Result: "draw"}})
	assert.Equal(t, 2, wins)
	assert.Equal(t, 1, losses)
}

func TestFormatDateLabel(t *testing.T) {
	tests := map[string]string{
		"":           "未設定",
		"2024-05-01": "2024-05-01",
		"someday":    "someday",
		"2024-13-01": "2024-13-01",
	}
	for in, want := range tests {
		assert.Equal(t, want, FormatDateLabel(in), in)
	}
}
