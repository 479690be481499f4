package tracker

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/vango-dev/teamfight/internal/tracker/roster"
)

// SortKey selects the usage column stats are ordered by.
type SortKey string

const (
	SortTotal  SortKey = "total"
	SortWins   SortKey = "wins"
	SortLosses SortKey = "losses"
)

// SortKeys lists the valid sort keys in display order.
var SortKeys = []SortKey{SortTotal, SortWins, SortLosses}

// ParseSortKey validates a sort key name.
func ParseSortKey(s string) (SortKey, error) {
	for _, k := range SortKeys {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("tracker: unknown sort key %q", s)
}

// Direction is a sort direction.
type Direction string

const (
	Desc Direction = "desc"
	Asc  Direction = "asc"
)

// StatsSort is the current ordering of the usage table.
type StatsSort struct {
	Key       SortKey
	Direction Direction
}

// DefaultStatsSort orders by total, most used first.
var DefaultStatsSort = StatsSort{Key: SortTotal, Direction: Desc}

// Toggle returns the ordering after the user picks key: the active key flips
// direction, another key becomes active descending.
func (s StatsSort) Toggle(key SortKey) StatsSort {
	if s.Key == key {
		if s.Direction == Desc {
			return StatsSort{Key: key, Direction: Asc}
		}
		return StatsSort{Key: key, Direction: Desc}
	}
	return StatsSort{Key: key, Direction: Desc}
}

// Usage is one champion's appearance count across matches.
type Usage struct {
	Champion roster.Champion
	Total    int
	Wins     int
	Losses   int
}

// WinRate returns wins over total as a percentage, or 0 for no games.
func (u Usage) WinRate() float64 {
	if u.Total == 0 {
		return 0
	}
	return float64(u.Wins) * 100 / float64(u.Total)
}

func (u Usage) value(key SortKey) int {
	switch key {
	case SortWins:
		return u.Wins
	case SortLosses:
		return u.Losses
	default:
		return u.Total
	}
}

// ChampionUsage counts every drafted champion across matches. Champions of
// the roster come first in roster order, then ids the roster does not know,
// in order of first appearance, with a placeholder named after the id.
// Champions never drafted are left out.
func ChampionUsage(r roster.Roster, matches []Match) []Usage {
	entries := make([]*Usage, 0, len(r))
	byID := make(map[string]*Usage, len(r))
	for _, c := range r {
		u := &Usage{Champion: c}
		entries = append(entries, u)
		byID[c.ID] = u
	}

	for _, m := range matches {
		for _, id := range m.Champions.ChampionIDs() {
			u, ok := byID[id]
			if !ok {
				u = &Usage{Champion: roster.Champion{ID: id, Name: id}}
				entries = append(entries, u)
				byID[id] = u
			}
			u.Total++
			if m.Won() {
				u.Wins++
			} else {
				u.Losses++
			}
		}
	}

	out := make([]Usage, 0, len(entries))
	for _, u := range entries {
		if u.Total > 0 {
			out = append(out, *u)
		}
	}
	return out
}

// SortUsage orders usage in place by s. Equal values are ordered by
// champion name in Japanese collation.
func SortUsage(usage []Usage, s StatsSort) {
	col := collate.New(language.Japanese)
	sort.SliceStable(usage, func(i, j int) bool {
		a, b := usage[i].value(s.Key), usage[j].value(s.Key)
		if a == b {
			return col.CompareString(usage[i].Champion.Name, usage[j].Champion.Name) < 0
		}
		if s.Direction == Asc {
			return a < b
		}
		return a > b
	})
}
