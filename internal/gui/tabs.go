//go:build !nogui

package gui

import (
	"image/color"
	"sync"
	"time"

	"tabpager/internal/coordinator"
	"tabpager/internal/geom"
	"tabpager/internal/motion"
	"tabpager/internal/pager"
	"tabpager/internal/titlestrip"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// StripHeight is the height of the title strip above the pages.
const StripHeight float32 = 44

// Measurer measures titles with the current fyne theme.
var Measurer = titlestrip.MeasureFunc(func(text string, font titlestrip.Font) float64 {
	style := fyne.TextStyle{Bold: font.Bold}
	return float64(fyne.MeasureText(text, float32(font.Size), style).Width)
})

// TabOptions configures a TabPager.
type TabOptions struct {
	InitialIndex int
	FPS          int
	Observer     coordinator.Observer
}

// TabPager shows a title strip above horizontally paged content. Pages
// follow drags and glide to the nearest page on release; titles can be
// tapped.
type TabPager struct {
	widget.BaseWidget

	// fyne delivers input on its event goroutine and animation ticks on
	// another, so all component state is touched under mu.
	mu       sync.Mutex
	titles   []string
	attrs    titlestrip.Attributes
	panes    []fyne.CanvasObject
	fps      int
	observer coordinator.Observer

	size     fyne.Size
	coord    *coordinator.Coordinator
	scroller *pager.Scroller
	dragging bool
	dragBase float64
	dragDX   float64
	anim     *fyne.Animation
}

var (
	_ fyne.Tappable  = (*TabPager)(nil)
	_ fyne.Draggable = (*TabPager)(nil)
)

// NewTabPager builds the widget with one pane per title.
func NewTabPager(titles []string, panes []fyne.CanvasObject, attrs titlestrip.Attributes, opts TabOptions) (*TabPager, error) {
	if opts.FPS <= 0 {
		opts.FPS = motion.DefaultFPS
	}
	t := &TabPager{
		titles:   append([]string(nil), titles...),
		attrs:    attrs,
		panes:    panes,
		fps:      opts.FPS,
		observer: opts.Observer,
	}
	if err := t.rebuild(fyne.NewSize(360, 640), opts.InitialIndex); err != nil {
		return nil, err
	}
	t.ExtendBaseWidget(t)
	return t, nil
}

// rebuild recreates the scroller and the coordinator for size.
func (t *TabPager) rebuild(size fyne.Size, index int) error {
	panes := make(pager.Panes, len(t.panes))
	for i, p := range t.panes {
		panes[i] = p
	}
	scroller := pager.NewScroller(float64(size.Width), len(t.panes), t.fps)
	c, err := coordinator.New(panes, titlestrip.WithAttributes(t.titles, t.attrs), coordinator.Options{
		Surface:      scroller,
		Measurer:     Measurer,
		StripSize:    geom.Sz(float64(size.Width), float64(StripHeight)),
		InitialIndex: index,
		Observer:     t.observer,
	})
	if err != nil {
		return err
	}
	t.coord, t.scroller, t.size = c, scroller, size
	t.dragging = false
	return nil
}

// Coordinator returns the coordinator for the current size.
func (t *TabPager) Coordinator() *coordinator.Coordinator {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.coord
}

// Offset returns the horizontal scroll offset of the pages.
func (t *TabPager) Offset() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.scroller.Offset()
}

// Resize lays the strip out again when the width changes, keeping the
// selected page.
func (t *TabPager) Resize(size fyne.Size) {
	t.mu.Lock()
	if size.Width > 0 && size.Width != t.size.Width {
		if err := t.rebuild(size, t.coord.Selected()); err != nil {
			logError(err, "gui: resize")
		}
	}
	t.size = size
	t.mu.Unlock()
	t.BaseWidget.Resize(size)
}

// Select jumps to index the way a keyboard shortcut would.
func (t *TabPager) Select(index int) error {
	t.mu.Lock()
	err := t.coord.Select(index)
	t.mu.Unlock()
	t.Refresh()
	return err
}

// Swipe glides one page in direction delta.
func (t *TabPager) Swipe(delta int) bool {
	t.mu.Lock()
	ok := t.coord.Pager().Swipe(t.scroller, delta)
	t.mu.Unlock()
	return ok
}

// Tapped selects the title under the pointer.
func (t *TabPager) Tapped(ev *fyne.PointEvent) {
	if ev.Position.Y >= StripHeight {
		return
	}
	t.mu.Lock()
	if i, ok := t.coord.Strip().HitTest(float64(ev.Position.X)); ok {
		t.coord.Tap(i)
	}
	t.mu.Unlock()
	t.Refresh()
}

// Dragged moves the pages under the pointer.
func (t *TabPager) Dragged(ev *fyne.DragEvent) {
	t.mu.Lock()
	p := t.coord.Pager()
	if !t.dragging {
		t.dragging = true
		t.dragDX = 0
		t.dragBase = t.scroller.DragTo(t.scroller.Offset())
		p.OnDragBegin(t.dragBase)
	}
	t.dragDX += float64(ev.Dragged.DX)
	p.OnScroll(t.scroller.DragTo(t.dragBase - t.dragDX))
	t.mu.Unlock()
	t.Refresh()
}

// DragEnd releases the pages, which glide to the nearest page.
func (t *TabPager) DragEnd() {
	t.mu.Lock()
	if t.dragging {
		t.dragging = false
		t.coord.Pager().Release(t.scroller)
	}
	t.mu.Unlock()
	t.Refresh()
}

// Step advances the scroller and the strip by dt and reports whether
// anything is still moving.
func (t *TabPager) Step(dt time.Duration) bool {
	t.mu.Lock()
	moving := t.scroller.Moving() || t.coord.Strip().Animating()
	if moving {
		t.coord.Pager().Step(t.scroller, dt)
		t.coord.Strip().Advance(dt)
	}
	still := t.scroller.Moving() || t.coord.Strip().Animating()
	t.mu.Unlock()
	if moving {
		t.Refresh()
	}
	return still
}

// Start runs the frame clock until Stop.
func (t *TabPager) Start() {
	t.mu.Lock()
	if t.anim != nil {
		t.mu.Unlock()
		return
	}
	frame := time.Second / time.Duration(t.fps)
	a := fyne.NewAnimation(time.Second, func(float32) { t.Step(frame) })
	a.RepeatCount = fyne.AnimationRepeatForever
	a.Curve = fyne.AnimationLinear
	t.anim = a
	t.mu.Unlock()
	a.Start()
}

func (t *TabPager) Stop() {
	t.mu.Lock()
	a := t.anim
	t.anim = nil
	t.mu.Unlock()
	if a != nil {
		a.Stop()
	}
}

func (t *TabPager) MinSize() fyne.Size {
	t.ExtendBaseWidget(t)
	return fyne.NewSize(120, StripHeight*2)
}

func (t *TabPager) CreateRenderer() fyne.WidgetRenderer {
	t.ExtendBaseWidget(t)
	r := &tabsRenderer{
		t:          t,
		background: canvas.NewRectangle(color.Transparent),
		indicator:  canvas.NewRectangle(color.Transparent),
	}
	r.objects = append(r.objects, t.panes...)
	r.objects = append(r.objects, r.background)
	for range t.titles {
		back := canvas.NewRectangle(color.Transparent)
		r.backs = append(r.backs, back)
		r.objects = append(r.objects, back)
	}
	// The cover sits behind the titles, the underline in front of them.
	if t.attrs.Style == titlestrip.StyleCover {
		r.objects = append(r.objects, r.indicator)
	}
	for _, title := range t.titles {
		text := canvas.NewText(title, color.Black)
		r.texts = append(r.texts, text)
		r.objects = append(r.objects, text)
	}
	if t.attrs.Style != titlestrip.StyleCover {
		r.objects = append(r.objects, r.indicator)
	}
	return r
}

type tabsRenderer struct {
	t          *TabPager
	background *canvas.Rectangle
	indicator  *canvas.Rectangle
	backs      []*canvas.Rectangle
	texts      []*canvas.Text
	objects    []fyne.CanvasObject
}

func (r *tabsRenderer) Layout(size fyne.Size) {
	r.place(size)
}

func (r *tabsRenderer) MinSize() fyne.Size {
	return r.t.MinSize()
}

func (r *tabsRenderer) Refresh() {
	r.place(r.t.Size())
	for _, o := range r.objects {
		o.Refresh()
	}
}

func (r *tabsRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *tabsRenderer) Destroy() {}

func (r *tabsRenderer) place(size fyne.Size) {
	t := r.t
	t.mu.Lock()
	defer t.mu.Unlock()

	strip := t.coord.Strip()
	shift := float32(strip.Offset())

	r.background.FillColor = t.attrs.ViewBackColor
	r.background.Move(fyne.NewPos(0, 0))
	r.background.Resize(fyne.NewSize(size.Width, StripHeight))

	for i, it := range strip.Items() {
		if i >= len(r.texts) {
			break
		}
		back := r.backs[i]
		back.FillColor = it.Back
		back.Move(fyne.NewPos(float32(it.Frame.X())-shift, float32(it.Frame.Y())))
		back.Resize(fyne.NewSize(float32(it.Frame.W()), float32(it.Frame.H())))

		scale := it.Scale
		if scale <= 0 {
			scale = 1
		}
		text := r.texts[i]
		text.Text = it.Title
		text.Color = it.Color
		text.TextSize = float32(it.Font.Size * scale)
		text.TextStyle = fyne.TextStyle{Bold: it.Font.Bold}
		ts := text.MinSize()
		text.Resize(ts)
		text.Move(fyne.NewPos(
			float32(it.Frame.CenterX())-shift-ts.Width/2,
			float32(it.Frame.CenterY())-ts.Height/2,
		))
	}

	ind := strip.Indicator()
	r.indicator.Hidden = !ind.Visible()
	r.indicator.FillColor = ind.Fill
	r.indicator.CornerRadius = float32(ind.CornerRadius)
	r.indicator.Move(fyne.NewPos(float32(ind.Frame.X())-shift, float32(ind.Frame.Y())))
	r.indicator.Resize(fyne.NewSize(float32(ind.Frame.W()), float32(ind.Frame.H())))

	height := size.Height - StripHeight
	if height < 0 {
		height = 0
	}
	offset := float32(t.scroller.Offset())
	for i, p := range t.panes {
		p.Move(fyne.NewPos(float32(i)*size.Width-offset, StripHeight))
		p.Resize(fyne.NewSize(size.Width, height))
	}
}
