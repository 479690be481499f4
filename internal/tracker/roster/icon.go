package roster

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const iconPrefix = "data:image/svg+xml;charset=UTF-8,"

// Icon returns a data URI for a square badge: a gradient from a lighter
// shade of color to color, with up to three initials taken from name.
func Icon(name, color string) string {
	light := Lighten(color, 0.25)

	var b strings.Builder
	b.WriteString("<svg xmlns='http://www.w3.org/2000/svg' viewBox='0 0 120 120'>")
	b.WriteString("<defs><linearGradient id='grad' x1='0%' y1='0%' x2='100%' y2='100%'>")
	fmt.Fprintf(&b, "<stop offset='0%%' stop-color='%s'/>", light)
	fmt.Fprintf(&b, "<stop offset='100%%' stop-color='%s'/>", color)
	b.WriteString("</linearGradient>")
	b.WriteString("<filter id='shadow' x='-50%' y='-50%' width='200%' height='200%'>")
	b.WriteString("<feDropShadow dx='0' dy='4' stdDeviation='6' flood-color='rgba(15,23,42,0.45)' />")
	b.WriteString("</filter></defs>")
	b.WriteString("<rect width='100%' height='100%' rx='24' fill='url(#grad)' />")
	b.WriteString("<circle cx='60' cy='40' r='18' fill='rgba(15,23,42,0.22)' />")
	b.WriteString("<circle cx='90' cy='80' r='12' fill='rgba(255,255,255,0.18)' />")
	b.WriteString("<text x='50%' y='66%' text-anchor='middle' fill='#f8fafc' font-size='44' ")
	b.WriteString("font-family='\"Noto Sans JP\", sans-serif' filter='url(#shadow)'>")
	b.WriteString(Initials(name))
	b.WriteString("</text></svg>")

	return iconPrefix + escapeComponent(b.String())
}

// Initials returns the upper-cased first letters of the first three
// whitespace-separated words of name.
func Initials(name string) string {
	var letters []rune
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			letters = append(letters, r)
			break
		}
		if len(letters) == 3 {
			break
		}
	}
	return strings.ToUpper(string(letters))
}

// Lighten moves each channel of a #rrggbb color toward 255 by pct and
// returns the result as #rrggbb. A color that does not parse is returned
// unchanged.
func Lighten(hex string, pct float64) string {
	s := strings.TrimPrefix(hex, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil || len(s) != 6 {
		return hex
	}
	adjust := func(ch uint64) uint64 {
		v := math.Floor(float64(ch) + (255-float64(ch))*pct + 0.5)
		return uint64(min(255, max(0, v)))
	}
	r := adjust(n >> 16 & 0xff)
	g := adjust(n >> 8 & 0xff)
	b := adjust(n & 0xff)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// escapeComponent percent-encodes every byte except ASCII letters, digits
// and -_.!~*'() so the result is safe inside a URI component.
func escapeComponent(s string) string {
	const hexDigits = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s) * 2)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hexDigits[c>>4])
		b.WriteByte(hexDigits[c&0x0f])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}
