package tui

import (
	"tabpager/internal/config"
	"tabpager/internal/log"
	"tabpager/internal/tui/messages"

	tea "github.com/charmbracelet/bubbletea"
)

// RunOptions controls Run.
type RunOptions struct {
	// ConfigPath is re-read on change when Watch is set.
	ConfigPath string
	Watch      bool
}

// Run starts the terminal program and blocks until it exits.
func Run(cfg *config.Config, opts RunOptions) error {
	m, err := New(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if opts.Watch && opts.ConfigPath != "" {
		stop, err := config.Watch(opts.ConfigPath, func(cfg *config.Config, err error) {
			p.Send(messages.ConfigReloadMsg{Config: cfg, Err: err})
		})
		if err != nil {
			log.LogWithError(err).Warn("config watch disabled")
		} else {
			defer stop()
		}
	}

	_, err = p.Run()
	return err
}
