package titlestrip

import (
	"strconv"

	"tabpager/internal/log"
)

// ApplySettle finalizes the strip on index: the previous selection and every
// item tinted since the last settle return to the unselected look, index gets
// the selected look, the indicator snaps to it and the strip scrolls to keep
// it centered. Settling twice on the same index changes nothing.
func (s *Strip) ApplySettle(index int) {
	if !s.valid(index) {
		log.Debugf("titlestrip: settle on %d ignored, %d items", index, len(s.items))
		return
	}
	s.stopGeometry()
	s.finalize(index, false)
	s.autoCenter(index, true)
}

// Tap selects index as if the user touched its title. Tapping the current
// selection does nothing. The end state matches ApplySettle; scale and
// indicator geometry get there through a short spring transition. The tap is
// reported to Events after the strip has been updated.
func (s *Strip) Tap(index int) {
	if !s.valid(index) || index == s.selected {
		return
	}
	s.finalize(index, true)
	s.autoCenter(index, true)
	s.events.OnTitleTapped(index)
}

// finalize moves the selection to index. With animated set, the style
// geometry change is handed to the transition instead of applied instantly.
func (s *Strip) finalize(index int, animated bool) {
	a := s.attrs
	previous := s.selected

	// Capture what is on screen before anything moves.
	fromIndicator := s.Indicator().Frame
	fromScale := make(map[int]float64, len(s.touched)+2)
	if animated && a.Style == StyleScale {
		for _, i := range s.dirty(previous, index) {
			it, _ := s.Item(i)
			fromScale[i] = it.Scale
		}
	}

	for _, i := range s.dirty(previous, index) {
		if i == index {
			continue
		}
		it := &s.items[i]
		s.style(it, false)
		it.Scale = 1
		if i == previous {
			s.remeasure(it)
		}
	}

	target := &s.items[index]
	s.style(target, true)
	s.remeasure(target)
	target.Scale = 1
	if a.Style == StyleScale {
		target.Scale = a.Scale
	}
	s.indicator.Frame = s.indicatorFrame(target.Frame)

	s.selected = index
	s.touched = make(map[int]struct{})

	if !animated {
		return
	}
	switch a.Style {
	case StyleScale:
		for i, from := range fromScale {
			s.anim.Set(chanScale+strconv.Itoa(i), from, s.items[i].Scale)
		}
	case StyleCover, StyleUnderline:
		to := s.indicator.Frame
		s.anim.Set(chanIndicatorW, fromIndicator.W(), to.W())
		s.anim.Set(chanIndicatorX, fromIndicator.CenterX(), to.CenterX())
	}
}

// dirty lists the items whose look may differ from the settled state.
func (s *Strip) dirty(previous, index int) []int {
	out := make([]int, 0, len(s.touched)+2)
	out = append(out, previous)
	if index != previous {
		out = append(out, index)
	}
	for i := range s.touched {
		if i != previous && i != index {
			out = append(out, i)
		}
	}
	return out
}
