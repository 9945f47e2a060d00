package cmd

import (
	"tabpager/internal/errors"
	"tabpager/internal/gui"

	"github.com/spf13/cobra"
)

func newGUICmd(s *state) *cobra.Command {
	var o overrides
	cmd := &cobra.Command{
		Use:   "gui",
		Short: "Launch the graphical user interface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !gui.IsGUIAvailable() {
				return errors.New("GUI is disabled in this build, use 'tabpager tui'")
			}
			cfg, err := o.apply(cmd, s.cfg)
			if err != nil {
				return err
			}
			return gui.StartGUI(cfg)
		},
	}
	o.register(cmd)
	return cmd
}
