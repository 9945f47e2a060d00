package cmd

import (
	"fmt"

	"tabpager/internal/coordinator"
	"tabpager/internal/geom"
	"tabpager/internal/pager"
	"tabpager/internal/titlestrip"
	"tabpager/internal/tui"

	"github.com/spf13/cobra"
)

// Simulated pages are this wide; the strip matches them.
const simulateWidth = 320

func newSimulateCmd(s *state) *cobra.Command {
	var (
		o     overrides
		from  int
		to    int
		steps int
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Drag between two pages headlessly and print every event",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.apply(cmd, s.cfg)
			if err != nil {
				return err
			}
			cfg.Pages.InitialIndex = from
			if err := cfg.Validate(); err != nil {
				return err
			}
			attrs, err := cfg.Attributes()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			titles := cfg.Pages.Titles
			panes := make(pager.Panes, len(titles))
			for i := range titles {
				panes[i] = i
			}
			surface := coordinator.NewMemorySurface(simulateWidth)
			c, err := coordinator.New(panes, titlestrip.WithAttributes(titles, attrs), coordinator.Options{
				Surface:      surface,
				Measurer:     tui.CellMeasurer{CellWidth: cfg.Terminal.CellWidth},
				StripSize:    geom.Sz(simulateWidth, 2),
				InitialIndex: from,
				Observer:     coordinator.NewTrace(out),
			})
			if err != nil {
				return err
			}

			if err := coordinator.Swipe(c, surface, to, steps); err != nil {
				return err
			}
			c.Strip().FinishTransition()
			ind := c.Strip().Indicator()
			fmt.Fprintf(out, "selected %d (%s), indicator x=%.1f w=%.1f\n",
				c.Selected(), titles[c.Selected()], ind.Frame.X(), ind.Frame.W())
			return nil
		},
	}
	o.registerStyle(cmd)
	cmd.Flags().IntVar(&from, "from", 0, "page the drag starts on")
	cmd.Flags().IntVar(&to, "to", 1, "page the drag ends on")
	cmd.Flags().IntVar(&steps, "steps", 8, "number of drag moves")
	return cmd
}
