package pager

import (
	"math"
	"time"

	"tabpager/internal/geom"
	"tabpager/internal/motion"
)

const chanScroll = "scroll"

// Scroller is a host-side Surface that behaves like a touch paging scroll
// view: it follows drags, glides to a page on release and reports when the
// glide stops. Hosts without a native paging surface embed one and forward
// its results to a Pager.
type Scroller struct {
	width  float64
	pages  int
	offset float64
	anim   *motion.Transition
	// a glide started by a release or a swipe, which ends in a deceleration
	decelerating bool
}

func NewScroller(width float64, pages, fps int) *Scroller {
	return &Scroller{
		width: width,
		pages: pages,
		anim:  motion.New(fps, motion.DefaultFrequency, motion.DefaultDamping),
	}
}

func (s *Scroller) Width() float64 { return s.width }

func (s *Scroller) Offset() float64 {
	if v, ok := s.anim.Value(chanScroll); ok {
		return v
	}
	return s.offset
}

// ScrollTo implements Surface. Programmatic scrolls never report a
// deceleration.
func (s *Scroller) ScrollTo(offset float64, animated bool) {
	offset = s.clamp(offset)
	s.decelerating = false
	if animated && offset != s.Offset() {
		s.anim.Set(chanScroll, s.Offset(), offset)
	} else {
		s.anim.Clear()
	}
	s.offset = offset
}

// DragTo moves the content under the pointer, stopping any glide.
func (s *Scroller) DragTo(offset float64) float64 {
	s.anim.Clear()
	s.decelerating = false
	s.offset = s.clamp(offset)
	return s.offset
}

// Glide animates toward offset and reports whether there is anywhere to go.
func (s *Scroller) Glide(offset float64) bool {
	offset = s.clamp(offset)
	from := s.Offset()
	if offset == from {
		return false
	}
	s.anim.Set(chanScroll, from, offset)
	s.offset = offset
	s.decelerating = true
	return true
}

// NearestPage returns the page boundary closest to the current offset.
func (s *Scroller) NearestPage() float64 {
	if s.width <= 0 {
		return 0
	}
	return s.clamp(math.Round(s.Offset()/s.width) * s.width)
}

// Target is where the scroller comes to rest.
func (s *Scroller) Target() float64 {
	return s.offset
}

// Moving reports whether an animation is running.
func (s *Scroller) Moving() bool {
	return !s.anim.Done()
}

// Advance steps the running animation. moved reports that Offset changed;
// decelerated reports that a glide has just stopped.
func (s *Scroller) Advance(dt time.Duration) (moved, decelerated bool) {
	if s.anim.Done() {
		return false, false
	}
	if s.anim.Advance(dt) {
		return true, false
	}
	s.anim.Clear()
	decelerated = s.decelerating
	s.decelerating = false
	return true, decelerated
}

func (s *Scroller) clamp(offset float64) float64 {
	return geom.Clamp(offset, 0, float64(s.pages-1)*s.width)
}

// Step advances s by dt and forwards the result to p: the new offset, then
// the deceleration end if a glide just stopped.
func (p *Pager) Step(s *Scroller, dt time.Duration) {
	moved, decelerated := s.Advance(dt)
	if !moved {
		return
	}
	p.OnScroll(s.Offset())
	if decelerated {
		p.OnDecelerationEnd()
	}
}

// Swipe glides s one page in direction delta the way a flick would, so
// listeners see progress all the way. It reports whether there was a page to
// go to.
func (p *Pager) Swipe(s *Scroller, delta int) bool {
	w := s.Width()
	if w <= 0 {
		return false
	}
	target := int(math.Round(s.Target()/w)) + delta
	if target < 0 || target >= len(p.panes) {
		return false
	}
	p.OnDragBegin(s.Offset())
	p.OnDragEnd(s.Glide(float64(target) * w))
	return true
}

// Release ends a pointer drag on s: the scroller glides to the nearest page
// and the pager settles when it arrives.
func (p *Pager) Release(s *Scroller) {
	p.OnDragEnd(s.Glide(s.NearestPage()))
}
