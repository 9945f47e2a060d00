// Package titlestrip implements the segmented title bar that tracks a pager.
//
// The strip lays its items out once, then follows two kinds of input: the
// pager's continuous progress (ApplyScrollProgress) and discrete settles
// (ApplySettle). Taps on an item are finalized the same way a settle is, run
// their geometry through a short spring transition and are reported through
// Events so the pager can jump.
package titlestrip

import (
	"strconv"
	"time"

	"tabpager/internal/errors"
	"tabpager/internal/geom"
	"tabpager/internal/motion"

	"github.com/lucasb-eyer/go-colorful"
)

// Measurer returns the rendered width of text in font.
type Measurer interface {
	Measure(text string, font Font) float64
}

// MeasureFunc adapts a function to Measurer.
type MeasureFunc func(text string, font Font) float64

func (f MeasureFunc) Measure(text string, font Font) float64 { return f(text, font) }

// TitleProvider supplies the ordered titles once, at construction.
type TitleProvider interface {
	Titles() []string
}

// AttributesProvider is optionally implemented by a TitleProvider that wants
// something other than DefaultAttributes.
type AttributesProvider interface {
	Attributes() Attributes
}

// Titles is a TitleProvider over a fixed slice.
type Titles []string

func (t Titles) Titles() []string { return t }

type styledTitles struct {
	titles []string
	attrs  Attributes
}

func (s styledTitles) Titles() []string       { return s.titles }
func (s styledTitles) Attributes() Attributes { return s.attrs }

// WithAttributes returns a provider supplying both titles and attributes.
func WithAttributes(titles []string, attrs Attributes) TitleProvider {
	return styledTitles{titles: titles, attrs: attrs}
}

// Events receives the strip's output.
type Events interface {
	OnTitleTapped(index int)
}

type nopEvents struct{}

func (nopEvents) OnTitleTapped(int) {}

// Item is the visual state of one title.
type Item struct {
	Index int
	Title string
	Frame geom.Rect
	Font  Font
	Color colorful.Color
	Back  Color
	// Scale is the item's transform; 1 is identity.
	Scale float64
}

// IndicatorKind tells which decoration, if any, tracks the selection.
type IndicatorKind int

const (
	IndicatorNone IndicatorKind = iota
	IndicatorUnderline
	IndicatorCover
)

// Indicator is the underline bar or cover rectangle.
type Indicator struct {
	Kind         IndicatorKind
	Frame        geom.Rect
	Fill         Color
	CornerRadius float64
}

// Visible reports whether the strip draws an indicator at all.
func (i Indicator) Visible() bool {
	return i.Kind != IndicatorNone
}

// Strip is the title bar state machine.
type Strip struct {
	titles   []string
	attrs    Attributes
	measurer Measurer
	size     geom.Size
	events   Events

	items        []Item
	indicator    Indicator
	selected     int
	contentWidth float64
	offset       float64

	normalRGB   colorful.Color
	selectedRGB colorful.Color
	deltaRGB    colorful.Color

	// items tinted or scaled by progress since the last settle
	touched map[int]struct{}
	anim    *motion.Transition
}

const (
	chanOffset     = "offset"
	chanIndicatorX = "indicator.x"
	chanIndicatorW = "indicator.w"
	chanScale      = "scale."
)

// New lays out the provider's titles inside a strip of the given size and
// selects initialIndex. An empty title set or an out-of-range index is
// rejected before anything is built.
func New(provider TitleProvider, measurer Measurer, size geom.Size, events Events, initialIndex int) (*Strip, error) {
	if provider == nil {
		return nil, errors.ErrNoTitles
	}
	titles := provider.Titles()
	if len(titles) == 0 {
		return nil, errors.ErrNoTitles
	}
	if err := errors.CheckIndex("titlestrip.New", initialIndex, len(titles)); err != nil {
		return nil, err
	}
	if measurer == nil {
		return nil, errors.New("titlestrip: nil measurer")
	}
	attrs := DefaultAttributes()
	if ap, ok := provider.(AttributesProvider); ok {
		attrs = ap.Attributes()
	}
	if events == nil {
		events = nopEvents{}
	}

	s := &Strip{
		titles:      append([]string(nil), titles...),
		attrs:       attrs,
		measurer:    measurer,
		size:        size,
		events:      events,
		selected:    initialIndex,
		normalRGB:   attrs.TitleColor.Color,
		selectedRGB: attrs.TitleSelectedColor.Color,
		touched:     make(map[int]struct{}),
		anim:        motion.Default(),
	}
	s.deltaRGB = colorful.Color{
		R: s.selectedRGB.R - s.normalRGB.R,
		G: s.selectedRGB.G - s.normalRGB.G,
		B: s.selectedRGB.B - s.normalRGB.B,
	}
	s.layout()
	s.autoCenter(initialIndex, false)
	return s, nil
}

// SetEvents replaces the event sink. Passing nil discards events.
func (s *Strip) SetEvents(events Events) {
	if events == nil {
		events = nopEvents{}
	}
	s.events = events
}

// Attributes returns the configuration snapshot.
func (s *Strip) Attributes() Attributes { return s.attrs }

// Size returns the strip's visible size.
func (s *Strip) Size() geom.Size { return s.size }

// Count returns the number of titles.
func (s *Strip) Count() int { return len(s.items) }

// SelectedIndex returns the strip's current selection.
func (s *Strip) SelectedIndex() int { return s.selected }

// ContentWidth returns the width of the scrollable content.
func (s *Strip) ContentWidth() float64 { return s.contentWidth }

// Offset returns the strip's own horizontal scroll offset, including any
// running transition.
func (s *Strip) Offset() float64 {
	if v, ok := s.anim.Value(chanOffset); ok {
		return v
	}
	return s.offset
}

// Item returns the visible state of item i.
func (s *Strip) Item(i int) (Item, bool) {
	if i < 0 || i >= len(s.items) {
		return Item{}, false
	}
	it := s.items[i]
	if v, ok := s.anim.Value(chanScale + strconv.Itoa(i)); ok {
		it.Scale = v
	}
	return it, true
}

// Items returns the visible state of every item.
func (s *Strip) Items() []Item {
	out := make([]Item, len(s.items))
	for i := range s.items {
		out[i], _ = s.Item(i)
	}
	return out
}

// Indicator returns the visible indicator.
func (s *Strip) Indicator() Indicator {
	ind := s.indicator
	if w, ok := s.anim.Value(chanIndicatorW); ok {
		ind.Frame = ind.Frame.WithWidth(w)
	}
	if cx, ok := s.anim.Value(chanIndicatorX); ok {
		ind.Frame = ind.Frame.WithCenterX(cx)
	}
	return ind
}

// HitTest maps a point in strip coordinates to the item under it.
func (s *Strip) HitTest(x float64) (int, bool) {
	cx := x + s.Offset()
	for i := range s.items {
		if s.items[i].Frame.ContainsX(cx) {
			return i, true
		}
	}
	return 0, false
}

// Animating reports whether a transition is running.
func (s *Strip) Animating() bool {
	return !s.anim.Done()
}

// Advance steps the running transition and reports whether it continues.
func (s *Strip) Advance(dt time.Duration) bool {
	if s.anim.Advance(dt) {
		return true
	}
	s.anim.Clear()
	return false
}

// FinishTransition jumps the running transition to its end state.
func (s *Strip) FinishTransition() {
	s.anim.Finish()
	s.anim.Clear()
}

func (s *Strip) valid(i int) bool {
	return i >= 0 && i < len(s.items)
}

// stopGeometry cancels animated item and indicator geometry. A running strip
// scroll keeps going.
func (s *Strip) stopGeometry() {
	for _, name := range s.anim.Names() {
		if name != chanOffset {
			s.anim.Remove(name)
		}
	}
}
