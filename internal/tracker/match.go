package tracker

import (
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Match is the typed form of a stored match record.
type Match struct {
	ID        string `mapstructure:"id" json:"id"`
	TeamName  string `mapstructure:"teamName" json:"teamName"`
	Opponent  string `mapstructure:"opponent" json:"opponent"`
	Side      string `mapstructure:"side" json:"side"`
	Result    string `mapstructure:"result" json:"result"`
	Champions Draft  `mapstructure:"champions" json:"champions"`
	Notes     string `mapstructure:"notes" json:"notes"`
	MatchDate string `mapstructure:"matchDate" json:"matchDate"`
	CreatedAt string `mapstructure:"createdAt" json:"createdAt"`
}

// Won reports whether the match was recorded as a win. Anything else counts
// as a loss.
func (m Match) Won() bool {
	return m.Result == "win"
}

// DecodeMatch converts a normalized record into a Match. Numeric ids from
// older records become their decimal string.
func DecodeMatch(record map[string]any) (Match, error) {
	var m Match
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &m,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Match{}, err
	}
	if err := dec.Decode(record); err != nil {
		return Match{}, fmt.Errorf("tracker: decode match: %w", err)
	}
	return m, nil
}

// DecodeMatches normalizes and decodes every mapping in records, skipping
// entries that are not mappings or do not decode.
func DecodeMatches(records []any) []Match {
	out := make([]Match, 0, len(records))
	for _, r := range records {
		rec, ok := r.(map[string]any)
		if !ok {
			continue
		}
		m, err := DecodeMatch(NormalizeMatch(rec))
		if err != nil {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Filters narrows the match list. Team and Opponent are case-insensitive
// substrings; Side and Result are exact values or "all".
type Filters struct {
	Team     string
	Opponent string
	Side     string
	Result   string
}

// Keep reports whether m passes f.
func (f Filters) Keep(m Match) bool {
	if f.Team != "" && !strings.Contains(strings.ToLower(m.TeamName), strings.ToLower(f.Team)) {
		return false
	}
	if f.Opponent != "" && !strings.Contains(strings.ToLower(m.Opponent), strings.ToLower(f.Opponent)) {
		return false
	}
	if f.Side != "" && f.Side != "all" && m.Side != f.Side {
		return false
	}
	if f.Result != "" && f.Result != "all" && m.Result != f.Result {
		return false
	}
	return true
}

// FilterMatches returns the matches that pass f, in order.
func FilterMatches(matches []Match, f Filters) []Match {
	out := make([]Match, 0, len(matches))
	for _, m := range matches {
		if f.Keep(m) {
			out = append(out, m)
		}
	}
	return out
}

// TeamOptions returns every team and opponent name used in matches, unique
// and in Japanese collation order.
func TeamOptions(matches []Match) []string {
	seen := make(map[string]bool)
	var names []string
	for _, m := range matches {
		for _, name := range []string{m.TeamName, m.Opponent} {
			if name != "" && !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	collate.New(language.Japanese).SortStrings(names)
	return names
}

// CountResults returns the number of wins and losses in matches.
func CountResults(matches []Match) (wins, losses int) {
	for _, m := range matches {
		switch m.Result {
		case "win":
			wins++
		case "loss":
			losses++
		}
	}
	return wins, losses
}

// FormatDateLabel renders a match date as YYYY-MM-DD. An empty value is
// "未設定"; a value that is not a date is returned as is.
func FormatDateLabel(value string) string {
	if value == "" {
		return "未設定"
	}
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t.Format(time.DateOnly)
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.Local().Format(time.DateOnly)
	}
	return value
}
