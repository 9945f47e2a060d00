// Package coordinator wires a pager to a title strip.
//
// The coordinator is the only thing that knows about both components. It
// implements pager.Events and titlestrip.Events and passes nothing but
// indices, progress values and settle origins between them.
package coordinator

import (
	"tabpager/internal/errors"
	"tabpager/internal/geom"
	"tabpager/internal/log"
	"tabpager/internal/pager"
	"tabpager/internal/titlestrip"
)

// Observer sees every event after the coordinator has handled it.
type Observer interface {
	pager.Events
	titlestrip.Events
}

// Options holds what the components need from the host.
type Options struct {
	Surface      pager.Surface
	Measurer     titlestrip.Measurer
	StripSize    geom.Size
	InitialIndex int
	Observer     Observer
}

// Coordinator keeps a pager and a title strip on the same page.
type Coordinator struct {
	pager    *pager.Pager
	strip    *titlestrip.Strip
	observer Observer
}

// New builds the pager and the strip with the coordinator as their event
// sink. Pane and title counts must match.
func New(panes pager.PaneProvider, titles titlestrip.TitleProvider, opts Options) (*Coordinator, error) {
	if panes == nil || len(panes.Panes()) == 0 {
		return nil, errors.ErrNoPages
	}
	if titles == nil || len(titles.Titles()) == 0 {
		return nil, errors.ErrNoTitles
	}
	if n, m := len(panes.Panes()), len(titles.Titles()); n != m {
		return nil, errors.Wrapf(errors.ErrCountMismatch, "%d panes, %d titles", n, m)
	}

	c := &Coordinator{observer: opts.Observer}
	p, err := pager.New(panes, opts.Surface, c, opts.InitialIndex)
	if err != nil {
		return nil, err
	}
	s, err := titlestrip.New(titles, opts.Measurer, opts.StripSize, c, opts.InitialIndex)
	if err != nil {
		return nil, err
	}
	c.pager, c.strip = p, s
	log.Debugf("coordinator: %d pages, style %s, initial %d", p.PageCount(), s.Attributes().Style, opts.InitialIndex)
	return c, nil
}

func (c *Coordinator) Pager() *pager.Pager { return c.pager }

func (c *Coordinator) Strip() *titlestrip.Strip { return c.strip }

// SetObserver replaces the observer. nil disables observation.
func (c *Coordinator) SetObserver(o Observer) {
	c.observer = o
}

// Selected returns the pager's current page.
func (c *Coordinator) Selected() int {
	return c.pager.CurrentIndex()
}

// InSync reports whether the pager and the strip agree on the selection.
func (c *Coordinator) InSync() bool {
	return c.pager.CurrentIndex() == c.strip.SelectedIndex()
}

// Select jumps to index programmatically, the way a keyboard shortcut would.
// No tap event is produced.
func (c *Coordinator) Select(index int) error {
	return c.pager.JumpToPage(index, true)
}

// Tap selects index as if its title had been touched.
func (c *Coordinator) Tap(index int) {
	c.strip.Tap(index)
}

// OnProgress implements pager.Events.
func (c *Coordinator) OnProgress(previous, current int, progress float64) {
	c.strip.ApplyScrollProgress(previous, current, progress)
	if c.observer != nil {
		c.observer.OnProgress(previous, current, progress)
	}
}

// OnSettle implements pager.Events. A settle caused by a tap is not passed to
// the strip, which finalized itself before reporting the tap.
func (c *Coordinator) OnSettle(index int, origin pager.Origin) {
	if origin != pager.OriginTap {
		c.strip.ApplySettle(index)
	}
	if c.observer != nil {
		c.observer.OnSettle(index, origin)
	}
}

// OnTitleTapped implements titlestrip.Events.
func (c *Coordinator) OnTitleTapped(index int) {
	if c.observer != nil {
		c.observer.OnTitleTapped(index)
	}
	if err := c.pager.JumpToPageFrom(index, false, pager.OriginTap); err != nil {
		log.LogWithError(err).Warn("coordinator: tap could not move the pager")
	}
}
