package coordinator

import (
	"fmt"
	"io"

	"tabpager/internal/pager"
)

// Trace is an Observer that prints one line per event.
type Trace struct {
	w io.Writer
}

func NewTrace(w io.Writer) *Trace {
	return &Trace{w: w}
}

func (t *Trace) OnProgress(previous, current int, progress float64) {
	fmt.Fprintf(t.w, "progress %d -> %d %.3f\n", previous, current, progress)
}

func (t *Trace) OnSettle(index int, origin pager.Origin) {
	fmt.Fprintf(t.w, "settle %d (%s)\n", index, origin)
}

func (t *Trace) OnTitleTapped(index int) {
	fmt.Fprintf(t.w, "tap %d\n", index)
}
