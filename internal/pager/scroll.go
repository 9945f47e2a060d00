package pager

import (
	"math"

	"tabpager/internal/geom"
	"tabpager/internal/log"
)

// SnapThreshold is the progress above which a transition is reported as
// complete, so the title strip does not trail the end of a fast swipe.
const SnapThreshold = 0.9

// OnDragBegin anchors a new drag gesture at offset.
func (p *Pager) OnDragBegin(offset float64) {
	p.dragStart = offset
	p.dragging = true
}

// OnScroll handles every scroll position change. Progress is only derived
// while a drag is tracked, programmatic scrolling is silent.
func (p *Pager) OnScroll(offset float64) {
	if !p.dragging {
		return
	}
	previous, current, progress, ok := Progress(offset, p.dragStart, p.surface.Width(), len(p.panes))
	if !ok {
		return
	}
	p.events.OnProgress(previous, current, progress)
}

// OnDragEnd settles immediately unless the surface keeps gliding.
func (p *Pager) OnDragEnd(willDecelerate bool) {
	if !willDecelerate {
		p.settle()
	}
}

// OnDecelerationEnd settles after the surface stopped gliding.
func (p *Pager) OnDecelerationEnd() {
	p.settle()
}

func (p *Pager) settle() {
	index, ok := SettleIndex(p.surface.Offset(), p.surface.Width(), len(p.panes))
	if !ok {
		log.Debugf("pager: settle suppressed, pane width %v", p.surface.Width())
		return
	}
	p.current = index
	p.dragging = false
	p.events.OnSettle(index, OriginDrag)
}

// Progress derives the transition at offset for a drag that began at
// dragStart. ok is false when no event should be emitted: degenerate pane
// width, an offset exactly on a page boundary, or a neighbour outside
// [0, pageCount-1].
func Progress(offset, dragStart, paneWidth float64, pageCount int) (previous, current int, progress float64, ok bool) {
	if paneWidth <= 0 || !geom.Finite(paneWidth) || !geom.Finite(offset) {
		return 0, 0, 0, false
	}
	fraction := math.Mod(offset, paneWidth) / paneWidth
	if !geom.Finite(fraction) || fraction <= 0 {
		return 0, 0, 0, false
	}

	page := int(math.Floor(offset / paneWidth))
	if offset > dragStart {
		previous, current, progress = page, page+1, fraction
		if current > pageCount-1 {
			return 0, 0, 0, false
		}
	} else {
		previous, current, progress = page+1, page, 1-fraction
		if current < 0 || previous > pageCount-1 {
			return 0, 0, 0, false
		}
	}
	if previous < 0 {
		return 0, 0, 0, false
	}

	if progress > SnapThreshold {
		progress = 1
	}
	return previous, current, progress, true
}

// SettleIndex returns the page shown at offset. The offset is rounded to the
// nearest page so a surface that stops a fraction of a unit short of a
// boundary still settles on the page it snapped to.
func SettleIndex(offset, paneWidth float64, pageCount int) (int, bool) {
	if paneWidth <= 0 || !geom.Finite(paneWidth) || !geom.Finite(offset) || pageCount <= 0 {
		return 0, false
	}
	index := int(math.Round(offset / paneWidth))
	if index < 0 {
		index = 0
	}
	if index > pageCount-1 {
		index = pageCount - 1
	}
	return index, true
}
