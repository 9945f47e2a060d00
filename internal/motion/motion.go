// Package motion drives short spring transitions between numeric values.
//
// A Transition owns a set of named channels that all move toward their
// targets with the same critically damped spring. Hosts call Advance from
// their frame clock; nothing here blocks or spawns goroutines.
package motion

import (
	"math"
	"sort"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	DefaultFPS       = 60
	DefaultFrequency = 24.0
	DefaultDamping   = 1.0

	// A transition never runs longer than this; the remaining distance is
	// snapped when it expires.
	maxDuration = 750 * time.Millisecond
	epsilon     = 1e-3
)

type channel struct {
	pos, vel, target float64
}

// Transition moves named values toward their targets.
type Transition struct {
	spring   harmonica.Spring
	step     time.Duration
	pending  time.Duration
	elapsed  time.Duration
	channels map[string]*channel
}

// New returns an empty transition stepping at fps with the given spring
// parameters.
func New(fps int, frequency, damping float64) *Transition {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Transition{
		spring:   harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
		step:     time.Second / time.Duration(fps),
		channels: make(map[string]*channel),
	}
}

// Default returns a transition tuned to settle in roughly a quarter second.
func Default() *Transition {
	return New(DefaultFPS, DefaultFrequency, DefaultDamping)
}

// Set starts (or retargets) a channel. Retargeting a running channel keeps its
// current position and velocity so motion stays continuous.
func (t *Transition) Set(name string, from, to float64) {
	if c, ok := t.channels[name]; ok && !c.settled() {
		c.target = to
		t.elapsed = 0
		return
	}
	t.channels[name] = &channel{pos: from, target: to}
	t.elapsed = 0
}

// Value returns the current position of a channel.
func (t *Transition) Value(name string) (float64, bool) {
	c, ok := t.channels[name]
	if !ok {
		return 0, false
	}
	return c.pos, true
}

// Target returns the value a channel is heading for.
func (t *Transition) Target(name string) (float64, bool) {
	c, ok := t.channels[name]
	if !ok {
		return 0, false
	}
	return c.target, true
}

// Names returns channel names in sorted order.
func (t *Transition) Names() []string {
	names := make([]string, 0, len(t.channels))
	for name := range t.channels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Advance steps the spring by dt and reports whether any channel is still
// moving afterwards.
func (t *Transition) Advance(dt time.Duration) bool {
	if t.Done() {
		return false
	}
	t.pending += dt
	t.elapsed += dt
	for t.pending >= t.step {
		t.pending -= t.step
		for _, c := range t.channels {
			if c.settled() {
				continue
			}
			c.pos, c.vel = t.spring.Update(c.pos, c.vel, c.target)
			if math.Abs(c.pos-c.target) < epsilon && math.Abs(c.vel) < epsilon {
				c.pos, c.vel = c.target, 0
			}
		}
	}
	if t.elapsed >= maxDuration {
		t.Finish()
	}
	return !t.Done()
}

// Done reports whether every channel has reached its target.
func (t *Transition) Done() bool {
	for _, c := range t.channels {
		if !c.settled() {
			return false
		}
	}
	return true
}

// Finish snaps every channel to its target.
func (t *Transition) Finish() {
	for _, c := range t.channels {
		c.pos, c.vel = c.target, 0
	}
	t.pending = 0
}

// Remove drops a single channel.
func (t *Transition) Remove(name string) {
	delete(t.channels, name)
}

// Clear drops all channels.
func (t *Transition) Clear() {
	t.channels = make(map[string]*channel)
	t.pending = 0
	t.elapsed = 0
}

func (c *channel) settled() bool {
	return c.pos == c.target && c.vel == 0
}
