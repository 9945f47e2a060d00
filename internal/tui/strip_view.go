package tui

import (
	"math"
	"strings"

	"tabpager/internal/titlestrip"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// stripRows is the strip height in cells: titles, then the underline.
const stripRows = 2

const underlineRune = "━"

// terminalBack is assumed behind anything translucent.
var terminalBack = colorful.Color{}

type cell struct {
	text  string // "" continues the wide rune to the left
	fg    colorful.Color
	hasFg bool
	bg    colorful.Color
	hasBg bool
	bold  bool
}

func (c cell) style() lipgloss.Style {
	st := lipgloss.NewStyle()
	if c.hasFg {
		st = st.Foreground(lipgloss.Color(c.fg.Hex()))
	}
	if c.hasBg {
		st = st.Background(lipgloss.Color(c.bg.Hex()))
	}
	return st.Bold(c.bold)
}

func (c cell) sameStyle(o cell) bool {
	return c.hasFg == o.hasFg && c.hasBg == o.hasBg && c.bold == o.bold &&
		(!c.hasFg || c.fg == o.fg) && (!c.hasBg || c.bg == o.bg)
}

// paint fills the background of a cell, compositing translucent colors over
// what is already there.
func (c *cell) paint(col titlestrip.Color) {
	if col.A <= 0 {
		return
	}
	base := terminalBack
	if c.hasBg {
		base = c.bg
	}
	c.bg, c.hasBg = col.Over(base), true
}

func renderRow(cells []cell) string {
	var b strings.Builder
	for i := 0; i < len(cells); {
		j := i
		var run strings.Builder
		for j < len(cells) && cells[j].sameStyle(cells[i]) {
			run.WriteString(cells[j].text)
			j++
		}
		b.WriteString(cells[i].style().Render(run.String()))
		i = j
	}
	return b.String()
}

// StripView renders a title strip in terminal cells.
type StripView struct {
	CellWidth float64
}

func (v StripView) cw() float64 {
	return CellMeasurer{CellWidth: v.CellWidth}.cellWidth()
}

func (v StripView) toCell(x, offset float64) int {
	return int(math.Round((x - offset) / v.cw()))
}

// covers reports whether the cell centered at column col lies in [x0, x1).
func (v StripView) covers(col int, offset, x0, x1 float64) bool {
	x := (float64(col)+0.5)*v.cw() + offset
	return x >= x0 && x < x1
}

func (v StripView) Render(s *titlestrip.Strip) string {
	a := s.Attributes()
	cols := int(math.Round(s.Size().Width / v.cw()))
	if cols <= 0 {
		return ""
	}
	offset := s.Offset()

	titles := make([]cell, cols)
	under := make([]cell, cols)
	for i := range titles {
		titles[i] = cell{text: " "}
		titles[i].paint(a.ViewBackColor)
		under[i] = titles[i]
	}

	for _, it := range s.Items() {
		start, end := v.toCell(it.Frame.X(), offset), v.toCell(it.Frame.MaxX(), offset)
		for c := max(start, 0); c < min(end, cols); c++ {
			titles[c].paint(it.Back)
		}
		bold := it.Font.Bold || scaled(it, a)
		col := start + (end-start-runewidth.StringWidth(it.Title))/2
		for _, r := range it.Title {
			w := runewidth.RuneWidth(r)
			if col >= 0 && col+w <= cols {
				titles[col].text = string(r)
				titles[col].fg, titles[col].hasFg = it.Color, true
				titles[col].bold = bold
				for k := 1; k < w; k++ {
					titles[col+k].text = ""
					titles[col+k].fg, titles[col+k].hasFg = it.Color, true
					titles[col+k].bold = bold
				}
			}
			col += w
		}
	}

	ind := s.Indicator()
	switch ind.Kind {
	case titlestrip.IndicatorCover:
		for c := range titles {
			if v.covers(c, offset, ind.Frame.X(), ind.Frame.MaxX()) {
				titles[c].paint(ind.Fill)
			}
		}
	case titlestrip.IndicatorUnderline:
		for c := range under {
			if v.covers(c, offset, ind.Frame.X(), ind.Frame.MaxX()) {
				under[c].text = underlineRune
				under[c].fg, under[c].hasFg = ind.Fill.Over(terminalBack), true
			}
		}
	}

	return renderRow(titles) + "\n" + renderRow(under)
}

// scaled tells whether an item is past the midpoint of its zoom, which the
// terminal shows as bold text.
func scaled(it titlestrip.Item, a titlestrip.Attributes) bool {
	if a.Style != titlestrip.StyleScale || a.Scale <= 1 {
		return false
	}
	return it.Scale > 1+(a.Scale-1)/2
}
