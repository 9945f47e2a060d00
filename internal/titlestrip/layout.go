package titlestrip

import (
	"math"

	"tabpager/internal/geom"
)

// layout computes item frames once and applies the initial selection.
func (s *Strip) layout() {
	a := s.attrs
	n := len(s.titles)
	s.items = make([]Item, n)

	for i, title := range s.titles {
		it := Item{Index: i, Title: title, Scale: 1}
		s.style(&it, i == s.selected)

		var x, w float64
		if a.Layout == LayoutAutomatic {
			if i == 0 {
				x = a.TitleSpacing
			} else {
				x = s.items[i-1].Frame.MaxX() + a.TitleSpacing*2
			}
			w = s.measurer.Measure(title, it.Font)
		} else {
			w = s.size.Width / float64(n)
			x = float64(i) * w
		}
		it.Frame = geom.XYWH(x, 0, w, s.size.Height)
		s.items[i] = it
	}

	if a.Layout == LayoutAutomatic {
		s.contentWidth = s.items[n-1].Frame.MaxX() + a.TitleSpacing
	} else {
		s.contentWidth = s.size.Width
	}

	switch a.Style {
	case StyleUnderline:
		s.indicator = Indicator{Kind: IndicatorUnderline, Fill: a.UnderlineColor}
		if a.UnderlineRadius {
			s.indicator.CornerRadius = a.UnderlineHeight / 2
		}
	case StyleCover:
		s.indicator = Indicator{Kind: IndicatorCover, Fill: a.CoverColor}
		if a.CoverRadius {
			s.indicator.CornerRadius = a.CoverHeight / 2
		}
	default:
		s.indicator = Indicator{Kind: IndicatorNone}
	}

	sel := &s.items[s.selected]
	if a.Style == StyleScale {
		sel.Scale = a.Scale
	}
	s.indicator.Frame = s.indicatorFrame(sel.Frame)
}

// style applies the selected or unselected font, color and background.
func (s *Strip) style(it *Item, selected bool) {
	if selected {
		it.Font = s.attrs.TitleSelectedFont
		it.Color = s.selectedRGB
		it.Back = s.attrs.TitleSelectedBackColor
		return
	}
	it.Font = s.attrs.TitleFont
	it.Color = s.normalRGB
	it.Back = s.attrs.TitleBackColor
}

// remeasure re-fits an item's width to its current font. Only the default
// style changes widths on selection, and only in automatic layout: fixed
// layout keeps its equal division of the strip even when the selected font
// is wider.
func (s *Strip) remeasure(it *Item) {
	if s.attrs.Style != StyleDefault || s.attrs.Layout != LayoutAutomatic {
		return
	}
	it.Frame = it.Frame.WithWidth(s.measurer.Measure(it.Title, it.Font))
}

// indicatorFrame is the settled indicator geometry for an item frame.
func (s *Strip) indicatorFrame(item geom.Rect) geom.Rect {
	a := s.attrs
	switch a.Style {
	case StyleUnderline:
		w := item.W() - s.underlinePadding()
		return geom.FromCenter(item.CenterX(), s.size.Height-a.UnderlineHeight/2, w, a.UnderlineHeight)
	case StyleCover:
		w := item.W()
		if a.Layout == LayoutAutomatic {
			w += a.CoverMargin * 2
		}
		w = math.Min(w, item.W()+a.TitleSpacing*2)
		return geom.FromCenter(item.CenterX(), item.CenterY(), w, a.CoverHeight)
	}
	return geom.Rect{}
}

func (s *Strip) underlinePadding() float64 {
	if s.attrs.Layout == LayoutAutomatic {
		return s.attrs.UnderlinePadding
	}
	return 0
}

// centerOffset is the strip scroll offset that centers item i, and whether
// the strip scrolls at all.
func (s *Strip) centerOffset(i int) (float64, bool) {
	if s.attrs.Layout != LayoutAutomatic || s.contentWidth <= s.size.Width {
		return 0, false
	}
	target := s.items[i].Frame.CenterX() - s.size.Width/2
	return geom.Clamp(target, 0, s.contentWidth-s.size.Width), true
}

// autoCenter scrolls the strip so item i sits in the middle when the content
// overflows.
func (s *Strip) autoCenter(i int, animated bool) {
	target, ok := s.centerOffset(i)
	if !ok {
		return
	}
	if animated {
		s.anim.Set(chanOffset, s.Offset(), target)
	} else {
		s.anim.Remove(chanOffset)
	}
	s.offset = target
}
