//go:build nogui

package gui

import (
	"tabpager/internal/config"
	"tabpager/internal/errors"
)

// StartGUI is a stub implementation for builds with GUI disabled
func StartGUI(*config.Config) error {
	return errors.New("GUI not available in this build")
}

// IsGUIAvailable returns whether the GUI is available in this build
func IsGUIAvailable() bool {
	return false
}
