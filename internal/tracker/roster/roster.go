package roster

import (
	_ "embed"
	"fmt"
	"io"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed roster.yaml
var defaultYAML []byte

// Champion is one selectable champion.
type Champion struct {
	ID        string   `yaml:"id" json:"id"`
	Name      string   `yaml:"name" json:"name"`
	Role      string   `yaml:"role" json:"role"`
	Color     string   `yaml:"color" json:"color"`
	Positions []string `yaml:"positions" json:"positions"`
	Classes   []string `yaml:"classes" json:"classes"`

	// Image is the icon data URI, filled in by Parse.
	Image string `yaml:"-" json:"image"`
}

// Matches reports whether query, already lower-cased and trimmed, is a
// substring of the name, the role, a position or a class.
func (c Champion) Matches(query string) bool {
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(c.Name), query) ||
		strings.Contains(strings.ToLower(c.Role), query) {
		return true
	}
	for _, p := range c.Positions {
		if strings.Contains(strings.ToLower(p), query) {
			return true
		}
	}
	for _, cl := range c.Classes {
		if strings.Contains(strings.ToLower(cl), query) {
			return true
		}
	}
	return false
}

// Roster is an ordered list of champions.
type Roster []Champion

// Find returns the champion with the given id.
func (r Roster) Find(id string) (Champion, bool) {
	for _, c := range r {
		if c.ID == id {
			return c, true
		}
	}
	return Champion{}, false
}

// Search returns the champions matching query, in roster order. An empty
// query returns the whole roster.
func (r Roster) Search(query string) Roster {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return r
	}
	var out Roster
	for _, c := range r {
		if c.Matches(q) {
			out = append(out, c)
		}
	}
	return out
}

// Parse decodes a YAML roster and generates each champion's icon.
func Parse(r io.Reader) (Roster, error) {
	var list Roster
	if err := yaml.NewDecoder(r).Decode(&list); err != nil {
		return nil, fmt.Errorf("roster: decode: %w", err)
	}
	seen := make(map[string]bool, len(list))
	for i := range list {
		c := &list[i]
		if c.ID == "" || c.Name == "" {
			return nil, fmt.Errorf("roster: entry %d: id and name are required", i)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("roster: duplicate id %q", c.ID)
		}
		seen[c.ID] = true
		c.Image = Icon(c.Name, c.Color)
	}
	return list, nil
}

var loadDefault = sync.OnceValue(func() Roster {
	list, err := Parse(strings.NewReader(string(defaultYAML)))
	if err != nil {
		panic(err)
	}
	return list
})

// Default returns the embedded roster. Callers must not modify it.
func Default() Roster {
	return loadDefault()
}
