package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"tabpager/internal/errors"
	"tabpager/internal/titlestrip"

	"github.com/agnivade/levenshtein"
	"github.com/lucasb-eyer/go-colorful"
)

var namedColors = map[string]string{
	"black":  "#000000",
	"white":  "#ffffff",
	"blue":   "#0000ff",
	"red":    "#ff0000",
	"green":  "#00ff00",
	"yellow": "#ffff00",
	"orange": "#ff8000",
	"purple": "#800080",
	"gray":   "#808080",
	"grey":   "#808080",
}

// ParseColor accepts #rrggbb, #rrggbbaa, "clear" or a color name.
func ParseColor(s string) (titlestrip.Color, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch v {
	case "":
		return titlestrip.Color{}, errors.New("empty color")
	case "clear", "transparent":
		return titlestrip.Clear, nil
	}
	if hex, ok := namedColors[v]; ok {
		v = hex
	}

	alpha := 1.0
	if len(v) == 9 && v[0] == '#' {
		a, err := strconv.ParseUint(v[7:], 16, 8)
		if err != nil {
			return titlestrip.Color{}, errors.Wrapf(err, "color %q", s)
		}
		alpha = float64(a) / 255
		v = v[:7]
	}
	c, err := colorful.Hex(v)
	if err != nil {
		return titlestrip.Color{}, errors.Wrapf(err, "color %q", s)
	}
	return titlestrip.Color{Color: c, A: alpha}, nil
}

// FormatColor is the inverse of ParseColor for hex forms.
func FormatColor(c titlestrip.Color) string {
	if c.A >= 1 {
		return c.Hex()
	}
	return fmt.Sprintf("%s%02x", c.Hex(), uint8(math.Round(c.A*255)))
}

// ParseStyle maps a style name to titlestrip.Style.
func ParseStyle(s string) (titlestrip.Style, error) {
	for _, st := range []titlestrip.Style{titlestrip.StyleDefault, titlestrip.StyleScale, titlestrip.StyleCover, titlestrip.StyleUnderline} {
		if strings.EqualFold(s, st.String()) {
			return st, nil
		}
	}
	return 0, unknownName("style", s, []string{"default", "scale", "cover", "underline"})
}

// ParseLayout maps a layout name to titlestrip.Layout.
func ParseLayout(s string) (titlestrip.Layout, error) {
	for _, l := range []titlestrip.Layout{titlestrip.LayoutAutomatic, titlestrip.LayoutFixed} {
		if strings.EqualFold(s, l.String()) {
			return l, nil
		}
	}
	return 0, unknownName("layout", s, []string{"automatic", "fixed"})
}

// unknownName reports an unrecognized name, suggesting the closest known one
// when it is at most two edits away.
func unknownName(kind, s string, names []string) error {
	best, dist := "", 3
	for _, n := range names {
		if d := levenshtein.ComputeDistance(strings.ToLower(s), n); d < dist {
			best, dist = n, d
		}
	}
	if best != "" && s != "" {
		return errors.Newf("unknown %s %q, did you mean %q?", kind, s, best)
	}
	return errors.Newf("unknown %s %q", kind, s)
}
