package uicontrol

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// namedColors maps the CSS basic color keywords (plus a few common extended
// ones) to their hex value.
var namedColors = map[string]string{
	"black":   "#000000",
	"silver":  "#c0c0c0",
	"gray":    "#808080",
	"grey":    "#808080",
	"white":   "#ffffff",
	"maroon":  "#800000",
	"red":     "#ff0000",
	"purple":  "#800080",
	"fuchsia": "#ff00ff",
	"magenta": "#ff00ff",
	"green":   "#008000",
	"lime":    "#00ff00",
	"olive":   "#808000",
	"yellow":  "#ffff00",
	"navy":    "#000080",
	"blue":    "#0000ff",
	"teal":    "#008080",
	"aqua":    "#00ffff",
	"cyan":    "#00ffff",
	"orange":  "#ffa500",
	"pink":    "#ffc0cb",
	"brown":   "#a52a2a",
}

// ParseColor parses a CSS color name or a #rgb / #rrggbb hex string.
// Names are matched case-insensitively.
func ParseColor(s string) (colorful.Color, error) {
	if hex, ok := namedColors[strings.ToLower(s)]; ok {
		return colorful.Hex(hex)
	}
	if !strings.HasPrefix(s, "#") || (len(s) != 4 && len(s) != 7) {
		return colorful.Color{}, fmt.Errorf("invalid color %q: expected a color name or #rgb/#rrggbb", s)
	}
	for _, r := range s[1:] {
		if !isHexDigit(r) {
			return colorful.Color{}, fmt.Errorf("invalid color %q: bad hex digit %q", s, r)
		}
	}
	return colorful.Hex(strings.ToLower(s))
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
