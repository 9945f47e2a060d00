// Package components holds small widgets of the terminal host.
package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// StatusBar shows the page counter and a message. While something moves, a
// spinner runs in front of the text.
type StatusBar struct {
	text         string
	counter      string
	style        lipgloss.Style
	counterStyle lipgloss.Style
	spinner      spinner.Model
	moving       bool
}

func NewStatusBar(style, counterStyle lipgloss.Style) *StatusBar {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = style

	return &StatusBar{
		style:        style,
		counterStyle: counterStyle,
		spinner:      s,
	}
}

func (s *StatusBar) SetMoving(moving bool) {
	s.moving = moving
}

func (s *StatusBar) SetText(text string) {
	s.text = text
}

func (s *StatusBar) Text() string {
	return s.text
}

func (s *StatusBar) SetCounter(counter string) {
	s.counter = counter
}

// Step advances the spinner by one frame of the host's clock.
func (s *StatusBar) Step(now time.Time) {
	if !s.moving {
		return
	}
	s.spinner, _ = s.spinner.Update(spinner.TickMsg{ID: s.spinner.ID(), Time: now})
}

func (s *StatusBar) View() string {
	out := ""
	if s.counter != "" {
		out = s.counterStyle.Render(s.counter) + " "
	}
	if s.moving {
		return out + s.style.Render(s.spinner.View()+" "+s.text)
	}
	return out + s.style.Render(s.text)
}
