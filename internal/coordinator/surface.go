package coordinator

import (
	"math"

	"tabpager/internal/errors"
	"tabpager/internal/geom"
)

// MemorySurface is a pager.Surface without rendering. Scrolls land
// immediately.
type MemorySurface struct {
	width  float64
	offset float64
}

func NewMemorySurface(width float64) *MemorySurface {
	return &MemorySurface{width: width}
}

func (s *MemorySurface) Width() float64  { return s.width }
func (s *MemorySurface) Offset() float64 { return s.offset }

func (s *MemorySurface) ScrollTo(offset float64, animated bool) {
	s.offset = offset
}

// SetWidth resizes the surface. The caller relayouts the pager.
func (s *MemorySurface) SetWidth(width float64) {
	s.width = width
}

// Drag simulates a finger moving the surface from its current offset to
// offset in steps equal moves. On release the surface glides to the nearest
// page, as a paging scroll view does, and the pager settles there.
func Drag(c *Coordinator, s *MemorySurface, offset float64, steps int) error {
	if !geom.Finite(offset) {
		return errors.Newf("coordinator: drag to non-finite offset %v", offset)
	}
	if steps < 1 {
		steps = 1
	}
	p := c.Pager()
	start := s.offset
	p.OnDragBegin(start)
	for k := 1; k <= steps; k++ {
		s.offset = geom.Lerp(start, offset, float64(k)/float64(steps))
		p.OnScroll(s.offset)
	}

	p.OnDragEnd(true)
	if s.width > 0 {
		page := geom.Clamp(math.Round(s.offset/s.width), 0, float64(p.PageCount()-1))
		s.offset = page * s.width
		p.OnScroll(s.offset)
	}
	p.OnDecelerationEnd()
	return nil
}

// Swipe drags from the current page to page to.
func Swipe(c *Coordinator, s *MemorySurface, to, steps int) error {
	if err := errors.CheckIndex("coordinator.Swipe", to, c.Pager().PageCount()); err != nil {
		return err
	}
	return Drag(c, s, float64(to)*s.width, steps)
}
