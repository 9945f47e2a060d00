//go:build !nogui

package gui

import (
	"testing"
	"time"

	"tabpager/internal/config"
	"tabpager/internal/errors"
	"tabpager/internal/pager"
	"tabpager/internal/titlestrip"
	"tabpager/pkg/testutils"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTabs(t *testing.T, rec *testutils.Recorder) (*TabPager, []fyne.CanvasObject) {
	t.Helper()
	test.NewApp()

	titles := []string{"One", "Two", "Three"}
	panes := []fyne.CanvasObject{
		widget.NewLabel("first"),
		widget.NewLabel("second"),
		widget.NewLabel("third"),
	}
	attrs := titlestrip.DefaultAttributes()
	attrs.Layout = titlestrip.LayoutFixed
	opts := TabOptions{FPS: 60}
	if rec != nil {
		opts.Observer = rec
	}
	tabs, err := NewTabPager(titles, panes, attrs, opts)
	require.NoError(t, err)

	w := test.NewTempWindow(t, tabs)
	w.SetPadded(false)
	tabs.Resize(fyne.NewSize(300, 400))
	return tabs, panes
}

func settle(t *testing.T, tabs *TabPager) {
	t.Helper()
	for i := 0; tabs.Step(time.Second / 60); i++ {
		require.Less(t, i, 600, "animation never finished")
	}
}

func TestNewTabPagerRejectsBadInput(t *testing.T) {
	test.NewApp()
	attrs := titlestrip.DefaultAttributes()

	_, err := NewTabPager([]string{"a", "b"}, []fyne.CanvasObject{widget.NewLabel("a")}, attrs, TabOptions{})
	assert.True(t, errors.Is(err, errors.ErrCountMismatch))

	_, err = NewTabPager(nil, nil, attrs, TabOptions{})
	assert.True(t, errors.IsEmptyData(err))

	_, err = NewTabPager([]string{"a"}, []fyne.CanvasObject{widget.NewLabel("a")}, attrs, TabOptions{InitialIndex: 3})
	assert.True(t, errors.IsIndexOutOfRange(err))
}

func TestTapSelectsTitle(t *testing.T) {
	rec := &testutils.Recorder{}
	tabs, _ := newTestTabs(t, rec)

	tabs.Tapped(&fyne.PointEvent{Position: fyne.NewPos(150, 10)})

	c := tabs.Coordinator()
	assert.Equal(t, 1, c.Selected())
	assert.True(t, c.InSync())
	assert.Equal(t, 300.0, tabs.Offset())
	assert.Equal(t, 1, rec.Count("tap"))
	require.Len(t, rec.Settles(), 1)
	assert.Equal(t, pager.OriginTap, rec.Settles()[0].Origin)
}

func TestTapBelowStripIgnored(t *testing.T) {
	rec := &testutils.Recorder{}
	tabs, _ := newTestTabs(t, rec)

	tabs.Tapped(&fyne.PointEvent{Position: fyne.NewPos(150, 200)})
	assert.Equal(t, 0, tabs.Coordinator().Selected())
	assert.Empty(t, rec.Events)
}

func TestDragChangesPage(t *testing.T) {
	rec := &testutils.Recorder{}
	tabs, _ := newTestTabs(t, rec)

	tabs.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(-120, 0)})
	tabs.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(-80, 0)})
	assert.Equal(t, 200.0, tabs.Offset())
	tabs.DragEnd()
	settle(t, tabs)

	c := tabs.Coordinator()
	assert.Equal(t, 1, c.Selected())
	assert.True(t, c.InSync())
	assert.Equal(t, 300.0, tabs.Offset())
	assert.Positive(t, rec.Count("progress"))
	require.Len(t, rec.Settles(), 1)
	assert.Equal(t, pager.OriginDrag, rec.Settles()[0].Origin)
}

func TestShortDragReturns(t *testing.T) {
	tabs, _ := newTestTabs(t, nil)

	tabs.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(-60, 0)})
	tabs.DragEnd()
	settle(t, tabs)
	assert.Equal(t, 0, tabs.Coordinator().Selected())
	assert.Equal(t, 0.0, tabs.Offset())
}

func TestSwipe(t *testing.T) {
	tabs, _ := newTestTabs(t, nil)

	assert.False(t, tabs.Swipe(-1))
	require.True(t, tabs.Swipe(1))
	settle(t, tabs)
	assert.Equal(t, 1, tabs.Coordinator().Selected())
	assert.True(t, tabs.Coordinator().InSync())
}

func TestResizeKeepsSelection(t *testing.T) {
	tabs, _ := newTestTabs(t, nil)

	require.NoError(t, tabs.Select(2))
	settle(t, tabs)
	tabs.Resize(fyne.NewSize(200, 400))

	assert.Equal(t, 2, tabs.Coordinator().Selected())
	assert.Equal(t, 400.0, tabs.Offset())
	assert.Equal(t, 200.0, tabs.Coordinator().Strip().Size().Width)
}

func TestRendererPlacesPanes(t *testing.T) {
	tabs, panes := newTestTabs(t, nil)
	require.NoError(t, tabs.Select(1))
	settle(t, tabs)

	r := test.WidgetRenderer(tabs)
	r.Layout(tabs.Size())

	assert.Equal(t, fyne.NewPos(-300, StripHeight), panes[0].Position())
	assert.Equal(t, fyne.NewPos(0, StripHeight), panes[1].Position())
	assert.Equal(t, fyne.NewPos(300, StripHeight), panes[2].Position())
	assert.Equal(t, fyne.NewSize(300, 400-StripHeight), panes[1].Size())
}

func TestMeasurer(t *testing.T) {
	test.NewApp()
	font := titlestrip.Font{Size: 15}
	short := Measurer.Measure("ab", font)
	long := Measurer.Measure("abcdef", font)
	assert.Positive(t, short)
	assert.Greater(t, long, short)
}

func TestNewApp(t *testing.T) {
	cfg := config.New()
	a, err := newApp(test.NewApp(), cfg)
	require.NoError(t, err)

	assert.Equal(t, a.tabs, a.window.Content())
	assert.Equal(t, "tabpager - Home", a.window.Title())

	cfg = config.New()
	cfg.Style = "sparkle"
	_, err = newApp(test.NewApp(), cfg)
	assert.True(t, errors.IsInvalidConfig(err))
}
