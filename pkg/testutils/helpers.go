// Package testutils holds fixtures shared by the package tests.
package testutils

import (
	"fmt"
	"unicode/utf8"

	"tabpager/internal/pager"
	"tabpager/internal/titlestrip"
)

// StripANSI removes ANSI escape sequences from a string
func StripANSI(str string) string {
	var result []rune
	inEscape := false
	for _, r := range str {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
				inEscape = false
			}
			continue
		}
		result = append(result, r)
	}
	return string(result)
}

// Monospace measures every rune as advance units wide, scaled by the font
// size relative to 15. Bold adds one unit per title.
func Monospace(advance float64) titlestrip.Measurer {
	return titlestrip.MeasureFunc(func(text string, font titlestrip.Font) float64 {
		size := font.Size
		if size <= 0 {
			size = 15
		}
		w := float64(utf8.RuneCountInString(text)) * advance * size / 15
		if font.Bold {
			w += advance
		}
		return w
	})
}

// Event is one recorded callback.
type Event struct {
	Kind     string
	Previous int
	Current  int
	Progress float64
	Index    int
	Origin   pager.Origin
}

func (e Event) String() string {
	switch e.Kind {
	case "progress":
		return fmt.Sprintf("progress(%d,%d,%.2f)", e.Previous, e.Current, e.Progress)
	case "settle":
		return fmt.Sprintf("settle(%d,%s)", e.Index, e.Origin)
	}
	return fmt.Sprintf("%s(%d)", e.Kind, e.Index)
}

// Recorder implements pager.Events and titlestrip.Events and keeps every
// call in order.
type Recorder struct {
	Events []Event
}

func (r *Recorder) OnProgress(previous, current int, progress float64) {
	r.Events = append(r.Events, Event{Kind: "progress", Previous: previous, Current: current, Progress: progress})
}

func (r *Recorder) OnSettle(index int, origin pager.Origin) {
	r.Events = append(r.Events, Event{Kind: "settle", Index: index, Origin: origin})
}

func (r *Recorder) OnTitleTapped(index int) {
	r.Events = append(r.Events, Event{Kind: "tap", Index: index})
}

// Kinds returns the kind of every recorded event.
func (r *Recorder) Kinds() []string {
	out := make([]string, len(r.Events))
	for i, e := range r.Events {
		out[i] = e.Kind
	}
	return out
}

// Count returns how many events of kind were recorded.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Settles returns the recorded settle events.
func (r *Recorder) Settles() []Event {
	var out []Event
	for _, e := range r.Events {
		if e.Kind == "settle" {
			out = append(out, e)
		}
	}
	return out
}

func (r *Recorder) Reset() {
	r.Events = nil
}
