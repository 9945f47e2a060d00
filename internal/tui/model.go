// Package tui is the terminal host: a bubbletea program that puts a title
// strip over a row of text panes and drives both through a coordinator.
//
// Geometry on the pager side is in cells. The strip works in strip units,
// CellWidth units to a cell.
package tui

import (
	"fmt"
	"time"

	"tabpager/internal/config"
	"tabpager/internal/coordinator"
	"tabpager/internal/errors"
	"tabpager/internal/geom"
	"tabpager/internal/log"
	"tabpager/internal/pager"
	"tabpager/internal/titlestrip"
	"tabpager/internal/tui/components"
	"tabpager/internal/tui/messages"
	"tabpager/pkg/types"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Option configures a Model.
type Option func(*Model)

// WithObserver passes every coordinator event to o as well.
func WithObserver(o coordinator.Observer) Option {
	return func(m *Model) { m.observer = o }
}

// WithPanes replaces the generated panes. There must be one per title.
func WithPanes(panes []*TextPane) Option {
	return func(m *Model) {
		m.panes = panes
		m.customPanes = true
	}
}

// WithSize sets the terminal size used until the first WindowSizeMsg.
func WithSize(width, height int) Option {
	return func(m *Model) { m.width, m.height = width, height }
}

type Model struct {
	cfg         *config.Config
	attrs       titlestrip.Attributes
	titles      []string
	panes       []*TextPane
	customPanes bool

	keys    types.KeyMap
	help    help.Model
	status  *components.StatusBar
	message string

	coord    *coordinator.Coordinator
	surface  *pager.Scroller
	view     StripView
	observer coordinator.Observer

	width, height int
	fps           int
	ticking       bool

	// Mouse drag in the pane area
	dragging bool
	dragX    int
	dragBase float64
}

// New builds the model from cfg, or from defaults when cfg is nil.
func New(cfg *config.Config, opts ...Option) (*Model, error) {
	if cfg == nil {
		cfg = config.New()
	}
	m := &Model{
		keys:   types.DefaultKeyMap(),
		help:   help.New(),
		status: components.NewStatusBar(StatusStyle, CounterStyle),
		width:  80,
		height: 24,
	}
	for _, opt := range opts {
		opt(m)
	}
	if err := m.apply(cfg, cfg.Pages.InitialIndex); err != nil {
		return nil, err
	}
	return m, nil
}

// apply installs cfg and rebuilds the components on index.
func (m *Model) apply(cfg *config.Config, index int) error {
	attrs, err := cfg.Attributes()
	if err != nil {
		return err
	}
	if len(cfg.Pages.Titles) == 0 {
		return errors.ErrNoTitles
	}
	titles := append([]string(nil), cfg.Pages.Titles...)
	if index >= len(titles) {
		index = len(titles) - 1
	}

	panes := m.panes
	if !m.customPanes {
		panes = DefaultPanes(titles)
	}
	if len(panes) != len(titles) {
		return errors.Wrapf(errors.ErrCountMismatch, "%d panes, %d titles", len(panes), len(titles))
	}

	prev := *m
	m.cfg, m.attrs, m.titles, m.panes = cfg, attrs, titles, panes
	m.fps = cfg.Terminal.FPS
	m.view = StripView{CellWidth: cfg.Terminal.CellWidth}
	if err := m.rebuild(index); err != nil {
		*m = prev
		return err
	}
	return nil
}

// rebuild recreates the surface and the coordinator for the current size.
// The strip lays itself out once, so a resize means a new strip.
func (m *Model) rebuild(index int) error {
	m.resizePanes()
	surface := pager.NewScroller(float64(m.width), len(m.panes), m.fps)
	panes := make(pager.Panes, len(m.panes))
	for i, p := range m.panes {
		panes[i] = p
	}
	c, err := coordinator.New(panes, titlestrip.WithAttributes(m.titles, m.attrs), coordinator.Options{
		Surface:      surface,
		Measurer:     CellMeasurer{CellWidth: m.view.CellWidth},
		StripSize:    geom.Sz(float64(m.width)*m.view.cw(), stripRows),
		InitialIndex: index,
		Observer:     m.observer,
	})
	if err != nil {
		return err
	}
	m.coord, m.surface = c, surface
	m.dragging = false
	m.updateStatus()
	log.Debugf("tui: layout %dx%d, page %d", m.width, m.height, index)
	return nil
}

func (m *Model) paneHeight() int {
	h := m.height - stripRows - 1 - lipgloss.Height(m.help.View(m.keys))
	if h < 1 {
		return 1
	}
	return h
}

func (m *Model) resizePanes() {
	m.help.Width = m.width
	for _, p := range m.panes {
		p.SetSize(m.width, m.paneHeight())
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle("tabpager")
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width <= 0 || msg.Height <= 0 {
			return m, nil
		}
		m.width, m.height = msg.Width, msg.Height
		if err := m.rebuild(m.coord.Selected()); err != nil {
			m.fail(err)
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.MouseMsg:
		return m, m.handleMouseMsg(msg)
	case messages.FrameMsg:
		m.ticking = false
		m.frame(time.Time(msg))
		return m, m.tick()
	case messages.ConfigReloadMsg:
		if msg.Err != nil {
			m.fail(msg.Err)
			return m, nil
		}
		if err := m.apply(msg.Config, m.coord.Selected()); err != nil {
			m.fail(err)
			return m, nil
		}
		m.message = "config reloaded"
		m.updateStatus()
		return m, nil
	case messages.ErrorMsg:
		m.fail(msg.Err)
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := m.coord.Pager().PageCount()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizePanes()
	case key.Matches(msg, m.keys.Prev):
		m.swipe(-1)
	case key.Matches(msg, m.keys.Next):
		m.swipe(1)
	case key.Matches(msg, m.keys.First):
		m.selectPage(0)
	case key.Matches(msg, m.keys.Last):
		m.selectPage(n - 1)
	case key.Matches(msg, m.keys.Jump):
		m.selectPage(int(msg.String()[0] - '1'))
	case key.Matches(msg, m.keys.TapNext):
		m.coord.Tap((m.coord.Strip().SelectedIndex() + 1) % n)
	case key.Matches(msg, m.keys.Up):
		m.currentPane().ScrollUp()
	case key.Matches(msg, m.keys.Down):
		m.currentPane().ScrollDown()
	}
	m.updateStatus()
	return m, m.tick()
}

func (m *Model) handleMouseMsg(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		if msg.Y < stripRows {
			m.tapAt(msg.X)
		} else if msg.Y < stripRows+m.paneHeight() {
			m.beginDrag(msg.X)
		}
	case tea.MouseActionMotion:
		if m.dragging {
			m.dragTo(msg.X)
		}
	case tea.MouseActionRelease:
		if m.dragging {
			m.endDrag()
		}
	}
	m.updateStatus()
	return m.tick()
}

func (m *Model) selectPage(index int) {
	if err := m.coord.Select(index); err != nil {
		log.LogWithError(err).Debug("tui: select ignored")
	}
}

// swipe glides to the neighbouring page the way a flick would, so the strip
// sees progress all the way.
func (m *Model) swipe(delta int) {
	m.coord.Pager().Swipe(m.surface, delta)
}

func (m *Model) tapAt(x int) {
	sx := (float64(x) + 0.5) * m.view.cw()
	if i, ok := m.coord.Strip().HitTest(sx); ok {
		m.coord.Tap(i)
	}
}

func (m *Model) beginDrag(x int) {
	m.dragging = true
	m.dragX = x
	m.dragBase = m.surface.DragTo(m.surface.Offset())
	m.coord.Pager().OnDragBegin(m.dragBase)
}

func (m *Model) dragTo(x int) {
	offset := m.surface.DragTo(m.dragBase + float64(m.dragX-x))
	m.coord.Pager().OnScroll(offset)
}

func (m *Model) endDrag() {
	m.dragging = false
	m.coord.Pager().Release(m.surface)
}

// frame advances every running animation by one frame.
func (m *Model) frame(now time.Time) {
	dt := time.Second / time.Duration(m.fps)
	m.coord.Pager().Step(m.surface, dt)
	m.coord.Strip().Advance(dt)
	m.status.Step(now)
	m.updateStatus()
}

func (m *Model) tick() tea.Cmd {
	if m.ticking || !m.Animating() {
		return nil
	}
	m.ticking = true
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return messages.FrameMsg(t)
	})
}

func (m *Model) fail(err error) {
	log.LogWithError(err).Warn("tui")
	m.message = ErrorStyle.Render(err.Error())
	m.updateStatus()
}

func (m *Model) updateStatus() {
	if m.coord == nil {
		return
	}
	i := m.coord.Selected()
	m.status.SetCounter(fmt.Sprintf("%d/%d", i+1, len(m.titles)))
	text := fmt.Sprintf("%s  %s/%s", m.titles[i], m.attrs.Style, m.attrs.Layout)
	if m.message != "" {
		text += "  " + m.message
	}
	m.status.SetText(text)
	m.status.SetMoving(m.Animating())
}

func (m *Model) currentPane() *TextPane {
	return m.panes[m.coord.Selected()]
}

// View implements tea.Model
func (m *Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.view.Render(m.coord.Strip()),
		renderPanes(m.panes, m.surface.Offset(), m.width, m.paneHeight()),
		m.status.View(),
		m.help.View(m.keys),
	)
}

// Coordinator returns the coordinator currently in use. A resize or a config
// reload replaces it.
func (m *Model) Coordinator() *coordinator.Coordinator { return m.coord }

func (m *Model) Surface() *pager.Scroller { return m.surface }

// Animating reports whether a frame clock is needed.
func (m *Model) Animating() bool {
	return m.surface.Moving() || m.coord.Strip().Animating()
}

func (m *Model) Config() *config.Config { return m.cfg }

func (m *Model) Message() string { return m.message }
