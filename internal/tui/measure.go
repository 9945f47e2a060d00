package tui

import (
	"tabpager/internal/titlestrip"

	"github.com/mattn/go-runewidth"
)

// CellMeasurer measures titles in terminal cells. Font size and weight do not
// change a cell's width.
type CellMeasurer struct {
	// CellWidth is the number of strip units per cell.
	CellWidth float64
}

func (c CellMeasurer) Measure(text string, _ titlestrip.Font) float64 {
	return float64(runewidth.StringWidth(text)) * c.cellWidth()
}

func (c CellMeasurer) cellWidth() float64 {
	if c.CellWidth <= 0 {
		return 1
	}
	return c.CellWidth
}

// sliceCells returns n cells of s starting at cell from. A wide rune cut by
// either edge becomes a space.
func sliceCells(s string, from, n int) string {
	if n <= 0 {
		return ""
	}
	out := make([]rune, 0, n)
	pos, width := 0, 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		switch {
		case pos+rw <= from:
		case pos < from:
			out = append(out, ' ')
			width++
		case width+rw <= n:
			out = append(out, r)
			width += rw
		case width < n:
			out = append(out, ' ')
			width++
		}
		pos += rw
		if width >= n {
			break
		}
	}
	return runewidth.FillRight(string(out), n)
}

// fitCells truncates or pads s to exactly n cells.
func fitCells(s string, n int) string {
	return runewidth.FillRight(runewidth.Truncate(s, n, ""), n)
}
