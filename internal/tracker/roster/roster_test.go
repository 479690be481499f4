package roster

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRoster(t *testing.T) {
	list := Default()
	require.Len(t, list, 12)

	ids := make([]string, 0, len(list))
	for _, c := range list {
		ids = append(ids, c.ID)
		assert.NotEmpty(t, c.Positions, c.ID)
		assert.NotEmpty(t, c.Classes, c.ID)
		assert.True(t, strings.HasPrefix(c.Image, iconPrefix), c.ID)
	}
	assert.Equal(t, []string{
		"ahri", "garen", "lee-sin", "jinx", "thresh", "riven",
		"yasuo", "leona", "vayne", "orianna", "shen", "sejuani",
	}, ids)

	lee, ok := list.Find("lee-sin")
	require.True(t, ok)
	assert.Equal(t, "Lee Sin", lee.Name)
	assert.Equal(t, "Jungle", lee.Role)
	assert.Equal(t, "#f97316", lee.Color)

	_, ok = list.Find("teemo")
	assert.False(t, ok)
}

func TestSearch(t *testing.T) {
	list := Default()

	tests := []struct {
		query string
		want  []string
	}{
		{"", nil},
		{"   ", nil},
		{"AHRI", []string{"ahri"}},
		{"jungle", []string{"lee-sin", "sejuani"}},
		{"marksman", []string{"jinx", "vayne"}},
		{" adc ", []string{"jinx", "vayne"}},
		{"zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := list.Search(tt.query)
			if tt.want == nil {
				assert.Len(t, got, len(list))
				return
			}
			ids := []string{}
			for _, c := range got {
				ids = append(ids, c.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse(strings.NewReader("- id: a\n  name: A\n- id: a\n  name: B\n"))
	assert.ErrorContains(t, err, "duplicate id")

	_, err = Parse(strings.NewReader("- name: A\n"))
	assert.ErrorContains(t, err, "required")

	_, err = Parse(strings.NewReader("id: [unterminated"))
	assert.Error(t, err)
}

func TestLighten(t *testing.T) {
	tests := []struct {
		in   string
		pct  float64
		want string
	}{
		{"#f472b6", 0.25, "#f795c8"},
		{"#60a5fa", 0.25, "#88bcfb"},
		{"#000000", 0.5, "#808080"},
		{"#ffffff", 0.25, "#ffffff"},
		{"#000", 1, "#ffffff"},
		{"#123456", 0, "#123456"},
		{"not-a-color", 0.25, "not-a-color"},
	}
	for _, tt := range tests {
		if got := Lighten(tt.in, tt.pct); got != tt.want {
			t.Errorf("Lighten(%q, %v) = %q, want %q", tt.in, tt.pct, got, tt.want)
		}
	}
}

func TestInitials(t *testing.T) {
	tests := map[string]string{
		"Ahri":               "A",
		"Lee Sin":            "LS",
		"  lee   sin  ":      "LS",
		"one two three four": "OTT",
		"":                   "",
	}
	for in, want := range tests {
		if got := Initials(in); got != want {
			t.Errorf("Initials(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIcon(t *testing.T) {
	uri := Icon("Lee Sin", "#f97316")
	require.True(t, strings.HasPrefix(uri, iconPrefix))

	encoded := strings.TrimPrefix(uri, iconPrefix)
	assert.NotContains(t, encoded, " ")
	assert.NotContains(t, encoded, "#")
	assert.NotContains(t, encoded, "<")

	svg, err := url.PathUnescape(encoded)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(svg, "<svg xmlns='http://www.w3.org/2000/svg'"))
	assert.Contains(t, svg, "stop-color='"+Lighten("#f97316", 0.25)+"'")
	assert.Contains(t, svg, "stop-color='#f97316'")
	assert.Contains(t, svg, "filter='url(#shadow)'>LS</text>")
}

func TestEscapeComponent(t *testing.T) {
	assert.Equal(t, "a-b_c.d!e~f*g'h(i)", escapeComponent("a-b_c.d!e~f*g'h(i)"))
	assert.Equal(t, "%3Ca%20b%3D'%23'%2F%3E", escapeComponent("<a b='#'/>"))
	assert.Equal(t, "%E3%83%88", escapeComponent("ト"))
}
