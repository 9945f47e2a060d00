package titlestrip

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Style selects one of the mutually exclusive visual treatments.
type Style int

const (
	StyleDefault Style = iota
	StyleScale
	StyleCover
	StyleUnderline
)

func (s Style) String() string {
	switch s {
	case StyleDefault:
		return "default"
	case StyleScale:
		return "scale"
	case StyleCover:
		return "cover"
	case StyleUnderline:
		return "underline"
	}
	return "unknown"
}

// Layout selects how item widths are computed.
type Layout int

const (
	// LayoutAutomatic flows items left to right at their measured widths.
	LayoutAutomatic Layout = iota
	// LayoutFixed divides the strip width equally.
	LayoutFixed
)

func (l Layout) String() string {
	switch l {
	case LayoutAutomatic:
		return "automatic"
	case LayoutFixed:
		return "fixed"
	}
	return "unknown"
}

// Font is what the host needs to measure and draw a title.
type Font struct {
	Family string
	Size   float64
	Bold   bool
}

// Color is an RGB color with straight alpha. It satisfies image/color.Color.
type Color struct {
	colorful.Color
	A float64
}

// Opaque wraps an RGB color with full alpha.
func Opaque(c colorful.Color) Color {
	return Color{Color: c, A: 1}
}

// RGBA builds a color from [0,1] components.
func RGBA(r, g, b, a float64) Color {
	return Color{Color: colorful.Color{R: r, G: g, B: b}, A: a}
}

// WithAlpha returns c with alpha a.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// RGBA implements image/color.Color with premultiplied components.
func (c Color) RGBA() (r, g, b, a uint32) {
	cl := c.Clamped()
	alpha := c.A
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	r = uint32(cl.R*alpha*65535.0 + 0.5)
	g = uint32(cl.G*alpha*65535.0 + 0.5)
	b = uint32(cl.B*alpha*65535.0 + 0.5)
	a = uint32(alpha*65535.0 + 0.5)
	return
}

// Over composites c onto an opaque background and returns the visible color.
func (c Color) Over(background colorful.Color) colorful.Color {
	return background.BlendRgb(c.Color, c.A)
}

var (
	Clear = RGBA(0, 0, 0, 0)
	Black = RGBA(0, 0, 0, 1)
	White = RGBA(1, 1, 1, 1)
	Blue  = RGBA(0, 0, 1, 1)
)

// Attributes is the strip's style configuration. The strip copies it once at
// construction.
type Attributes struct {
	ViewBackColor Color

	Style  Style
	Layout Layout

	TitleSpacing           float64
	TitleFont              Font
	TitleSelectedFont      Font
	TitleColor             Color
	TitleSelectedColor     Color
	TitleBackColor         Color
	TitleSelectedBackColor Color

	// Scale is the zoom factor of the selected item in StyleScale.
	Scale float64

	UnderlineRadius  bool
	UnderlineHeight  float64
	UnderlinePadding float64
	UnderlineColor   Color

	CoverRadius bool
	CoverHeight float64
	CoverMargin float64
	CoverColor  Color
}

// DefaultAttributes returns the stock configuration: underline style,
// automatic layout, black titles turning blue when selected.
func DefaultAttributes() Attributes {
	return Attributes{
		ViewBackColor: Clear,

		Style:  StyleUnderline,
		Layout: LayoutAutomatic,

		TitleSpacing:           5,
		TitleFont:              Font{Size: 15},
		TitleSelectedFont:      Font{Size: 15},
		TitleColor:             Black,
		TitleSelectedColor:     Blue,
		TitleBackColor:         White,
		TitleSelectedBackColor: White,

		Scale: 1.25,

		UnderlineRadius:  true,
		UnderlineHeight:  2,
		UnderlinePadding: 0,
		UnderlineColor:   Blue,

		CoverRadius: true,
		CoverHeight: 25,
		CoverMargin: 5,
		CoverColor:  Black.WithAlpha(0.4),
	}
}
