package render

import (
	"fmt"
	"strconv"
	"strings"
)

type rgb struct{ r, g, b float64 }

// xcolor's predefined colors (dvipsnames excluded).
var baseColors = map[string]rgb{
	"black":     {0, 0, 0},
	"white":     {1, 1, 1},
	"red":       {1, 0, 0},
	"green":     {0, 1, 0},
	"blue":      {0, 0, 1},
	"cyan":      {0, 1, 1},
	"magenta":   {1, 0, 1},
	"yellow":    {1, 1, 0},
	"gray":      {0.5, 0.5, 0.5},
	"darkgray":  {0.25, 0.25, 0.25},
	"lightgray": {0.75, 0.75, 0.75},
	"brown":     {0.75, 0.5, 0.25},
	"lime":      {0.75, 1, 0},
	"olive":     {0.5, 0.5, 0},
	"orange":    {1, 0.5, 0},
	"pink":      {1, 0.75, 0.75},
	"purple":    {0.75, 0, 0.25},
	"teal":      {0, 0.5, 0.5},
	"violet":    {0.5, 0, 0.5},
}

// Color translates an xcolor expression into #rrggbb. It understands the
// predefined color names, hex colors, and mixes of the form
// "c1!p1!c2!p2..." where a trailing percentage mixes with white.
// ok is false for an empty style or anything it cannot parse.
func Color(style string) (hex string, ok bool) {
	style = strings.TrimSpace(style)
	if style == "" {
		return "", false
	}
	if c, ok := parseHex(style); ok {
		return c.hex(), true
	}

	parts := strings.Split(style, "!")
	cur, ok := baseColors[strings.ToLower(parts[0])]
	if !ok {
		return "", false
	}
	for i := 1; i < len(parts); i += 2 {
		pct, err := strconv.ParseFloat(parts[i], 64)
		if err != nil || pct < 0 || pct > 100 {
			return "", false
		}
		next := baseColors["white"]
		if i+1 < len(parts) {
			if next, ok = baseColors[strings.ToLower(parts[i+1])]; !ok {
				return "", false
			}
		}
		cur = mix(cur, next, pct/100)
	}
	return cur.hex(), true
}

func mix(a, b rgb, w float64) rgb {
	return rgb{
		r: w*a.r + (1-w)*b.r,
		g: w*a.g + (1-w)*b.g,
		b: w*a.b + (1-w)*b.b,
	}
}

func (c rgb) hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.r), channel(c.g), channel(c.b))
}

func channel(v float64) int {
	return int(v*255 + 0.5)
}

func parseHex(s string) (rgb, bool) {
	if len(s) != 7 || s[0] != '#' {
		return rgb{}, false
	}
	n, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return rgb{}, false
	}
	return rgb{
		r: float64(n>>16&0xff) / 255,
		g: float64(n>>8&0xff) / 255,
		b: float64(n&0xff) / 255,
	}, true
}
