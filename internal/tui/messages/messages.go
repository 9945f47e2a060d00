// Package messages holds the tea.Msg types the terminal host exchanges with
// its commands and background goroutines.
package messages

import (
	"time"

	"tabpager/internal/config"
)

type ErrorMsg struct {
	Err error
}

// FrameMsg drives running animations one frame forward.
type FrameMsg time.Time

// ConfigReloadMsg carries a configuration re-read after the file changed.
type ConfigReloadMsg struct {
	Config *config.Config
	Err    error
}
