// Package pager implements the horizontally paged content container.
//
// A Pager does not scroll anything itself. The host owns a paging scroll
// surface, reports its callbacks (OnScroll, OnDragBegin, OnDragEnd,
// OnDecelerationEnd) and the Pager turns them into two kinds of events:
// continuous (previous, current, progress) transitions while a drag is in
// flight, and discrete settles once a single page is fully in view.
package pager

import (
	"tabpager/internal/errors"
	"tabpager/internal/log"
)

// Pane is one page of content. The pager only counts panes and hands them
// back to the host; how a pane renders is up to the host.
type Pane any

// PaneProvider supplies the ordered panes once, at construction.
type PaneProvider interface {
	Panes() []Pane
}

// Panes is a PaneProvider over a fixed slice.
type Panes []Pane

func (p Panes) Panes() []Pane { return p }

// Surface is the host's horizontally paged scroll region. Every pane is as
// wide as the surface.
type Surface interface {
	Width() float64
	Offset() float64
	ScrollTo(offset float64, animated bool)
}

// Origin records what caused a settle.
type Origin int

const (
	OriginDrag Origin = iota
	OriginProgrammatic
	OriginTap
)

func (o Origin) String() string {
	switch o {
	case OriginDrag:
		return "drag"
	case OriginProgrammatic:
		return "programmatic"
	case OriginTap:
		return "tap"
	}
	return "unknown"
}

// Events receives the pager's output.
type Events interface {
	// OnProgress reports an in-flight transition from previous toward current.
	OnProgress(previous, current int, progress float64)
	// OnSettle reports that index is now fully in view.
	OnSettle(index int, origin Origin)
}

type nopEvents struct{}

func (nopEvents) OnProgress(int, int, float64) {}
func (nopEvents) OnSettle(int, Origin)         {}

// Pager tracks which page is selected and derives transition events from the
// surface's scroll position.
type Pager struct {
	panes   []Pane
	surface Surface
	events  Events

	current   int
	dragging  bool
	dragStart float64
}

// New builds a pager over the provider's panes and positions the surface on
// initialIndex without animation. An empty pane set or an out-of-range index
// is rejected before anything is built.
func New(provider PaneProvider, surface Surface, events Events, initialIndex int) (*Pager, error) {
	if provider == nil {
		return nil, errors.ErrNoPages
	}
	panes := provider.Panes()
	if len(panes) == 0 {
		return nil, errors.ErrNoPages
	}
	if err := errors.CheckIndex("pager.New", initialIndex, len(panes)); err != nil {
		return nil, err
	}
	if surface == nil {
		return nil, errors.New("pager: nil surface")
	}
	if events == nil {
		events = nopEvents{}
	}

	p := &Pager{
		panes:   append([]Pane(nil), panes...),
		surface: surface,
		events:  events,
		current: initialIndex,
	}
	surface.ScrollTo(float64(initialIndex)*surface.Width(), false)
	return p, nil
}

// SetEvents replaces the event sink. Passing nil discards events.
func (p *Pager) SetEvents(events Events) {
	if events == nil {
		events = nopEvents{}
	}
	p.events = events
}

// PageCount returns the number of panes.
func (p *Pager) PageCount() int {
	return len(p.panes)
}

// CurrentIndex returns the logically selected page.
func (p *Pager) CurrentIndex() int {
	return p.current
}

// Pane returns the pane at index, or nil when index is out of range.
func (p *Pager) Pane(index int) Pane {
	if index < 0 || index >= len(p.panes) {
		return nil
	}
	return p.panes[index]
}

// Dragging reports whether a drag gesture is being tracked.
func (p *Pager) Dragging() bool {
	return p.dragging
}

// JumpToPage selects index programmatically.
func (p *Pager) JumpToPage(index int, animated bool) error {
	return p.JumpToPageFrom(index, animated, OriginProgrammatic)
}

// JumpToPageFrom selects index, clears any drag state, scrolls the surface and
// emits a single settle tagged with origin. No progress event is emitted.
func (p *Pager) JumpToPageFrom(index int, animated bool, origin Origin) error {
	if err := errors.CheckIndex("pager.JumpToPage", index, len(p.panes)); err != nil {
		return err
	}
	p.current = index
	p.dragging = false
	p.dragStart = 0
	p.surface.ScrollTo(float64(index)*p.surface.Width(), animated)
	log.Debugf("pager: jump to %d (%s, animated=%t)", index, origin, animated)
	p.events.OnSettle(index, origin)
	return nil
}

// Relayout re-aligns the surface on the current page, e.g. after the host
// resized it.
func (p *Pager) Relayout() {
	p.surface.ScrollTo(float64(p.current)*p.surface.Width(), false)
}
