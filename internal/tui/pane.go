package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
)

// TextPane is a page of plain text with its own vertical scroll.
type TextPane struct {
	Title string
	vp    viewport.Model
}

func NewTextPane(title, body string) *TextPane {
	vp := viewport.New(80, 20)
	vp.SetContent(body)
	return &TextPane{Title: title, vp: vp}
}

// DefaultPanes builds one descriptive pane per title.
func DefaultPanes(titles []string) []*TextPane {
	panes := make([]*TextPane, len(titles))
	for i, title := range titles {
		var b strings.Builder
		fmt.Fprintf(&b, "%s\n\n", title)
		fmt.Fprintf(&b, "Page %d of %d.\n\n", i+1, len(titles))
		b.WriteString("Drag this pane sideways with the mouse, press ←/→ to swipe,\n")
		b.WriteString("click a title or press tab to tap one, 1-9 to jump.\n")
		for line := 1; line <= 40; line++ {
			fmt.Fprintf(&b, "\n%s line %d", title, line)
		}
		panes[i] = NewTextPane(title, b.String())
	}
	return panes
}

func (p *TextPane) SetSize(width, height int) {
	p.vp.Width = width
	p.vp.Height = height
}

func (p *TextPane) ScrollDown() { p.vp.LineDown(1) }
func (p *TextPane) ScrollUp()   { p.vp.LineUp(1) }

// YOffset is the first visible line.
func (p *TextPane) YOffset() int { return p.vp.YOffset }

// lines returns exactly height rows of exactly width cells.
func (p *TextPane) lines(width, height int) []string {
	rows := strings.Split(p.vp.View(), "\n")
	out := make([]string, height)
	for i := range out {
		var row string
		if i < len(rows) {
			row = rows[i]
		}
		out[i] = fitCells(row, width)
	}
	return out
}

// renderPanes draws the slice of the pane row visible at offset.
func renderPanes(panes []*TextPane, offset float64, width, height int) string {
	if width <= 0 || height <= 0 || len(panes) == 0 {
		return ""
	}
	left := int(math.Floor(offset / float64(width)))
	shift := int(math.Round(offset - float64(left*width)))
	if shift >= width {
		left++
		shift -= width
	}
	blank := fitCells("", width)
	rowsOf := func(i int) []string {
		if i < 0 || i >= len(panes) {
			rows := make([]string, height)
			for r := range rows {
				rows[r] = blank
			}
			return rows
		}
		return panes[i].lines(width, height)
	}

	l, r := rowsOf(left), rowsOf(left+1)
	out := make([]string, height)
	for row := range out {
		out[row] = sliceCells(l[row]+r[row], shift, width)
	}
	return strings.Join(out, "\n")
}
