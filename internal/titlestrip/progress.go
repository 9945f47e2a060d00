package titlestrip

import (
	"tabpager/internal/geom"
	"tabpager/internal/log"

	"github.com/lucasb-eyer/go-colorful"
)

// ApplyScrollProgress interpolates the visuals of a transition from item
// previous toward item current. It touches two items and the indicator only,
// so it is safe to call once per frame. Indices outside the strip are ignored.
func (s *Strip) ApplyScrollProgress(previous, current int, progress float64) {
	if !s.valid(previous) || !s.valid(current) {
		log.Debugf("titlestrip: progress %d->%d ignored, %d items", previous, current, len(s.items))
		return
	}
	progress = geom.Clamp(progress, 0, 1)
	s.stopGeometry()

	a := s.attrs
	prev, cur := &s.items[previous], &s.items[current]

	switch a.Style {
	case StyleScale:
		d := a.Scale - 1
		prev.Scale = a.Scale - progress*d
		cur.Scale = 1 + progress*d
	case StyleCover:
		diff := cur.Frame.W() - prev.Frame.W()
		cdiff := cur.Frame.CenterX() - prev.Frame.CenterX()
		w := prev.Frame.W() + diff*progress
		if a.Layout == LayoutAutomatic {
			w = prev.Frame.W() + a.CoverMargin*2 + diff*progress
		}
		s.indicator.Frame = s.indicator.Frame.WithWidth(w).WithCenterX(prev.Frame.CenterX() + progress*cdiff)
	case StyleUnderline:
		diff := cur.Frame.W() - prev.Frame.W()
		cdiff := cur.Frame.CenterX() - prev.Frame.CenterX()
		w := prev.Frame.W() - s.underlinePadding() + progress*diff
		s.indicator.Frame = s.indicator.Frame.WithWidth(w).WithCenterX(prev.Frame.CenterX() + progress*cdiff)
	}

	prev.Color, cur.Color = s.crossFade(progress)
	s.touched[previous] = struct{}{}
	s.touched[current] = struct{}{}
}

// crossFade returns the colors of the item being left and the item being
// approached. The endpoints are exact at progress 0 and 1.
func (s *Strip) crossFade(progress float64) (leaving, approaching colorful.Color) {
	switch progress {
	case 0:
		return s.selectedRGB, s.normalRGB
	case 1:
		return s.normalRGB, s.selectedRGB
	}
	sel, norm, d := s.selectedRGB, s.normalRGB, s.deltaRGB
	leaving = colorful.Color{
		R: sel.R - progress*d.R,
		G: sel.G - progress*d.G,
		B: sel.B - progress*d.B,
	}
	approaching = colorful.Color{
		R: norm.R + progress*d.R,
		G: norm.G + progress*d.G,
		B: norm.B + progress*d.B,
	}
	return leaving, approaching
}
