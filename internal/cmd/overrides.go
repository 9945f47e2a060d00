package cmd

import (
	"tabpager/internal/config"

	"github.com/spf13/cobra"
)

// overrides are the per-run flags shared by the host commands.
type overrides struct {
	titles []string
	style  string
	layout string
	index  int
}

func (o *overrides) register(cmd *cobra.Command) {
	o.registerStyle(cmd)
	cmd.Flags().IntVar(&o.index, "index", 0, "initially selected page")
}

// registerStyle registers everything but --index.
func (o *overrides) registerStyle(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&o.titles, "titles", nil, "comma separated page titles")
	cmd.Flags().StringVar(&o.style, "style", "", "strip style: default, scale, cover or underline")
	cmd.Flags().StringVar(&o.layout, "layout", "", "strip layout: automatic or fixed")
}

// apply copies the flags that were set onto a copy of cfg and validates it.
func (o *overrides) apply(cmd *cobra.Command, cfg *config.Config) (*config.Config, error) {
	out := *cfg
	out.Pages.Titles = append([]string(nil), cfg.Pages.Titles...)
	if len(o.titles) > 0 {
		out.Pages.Titles = o.titles
	}
	if o.style != "" {
		out.Style = o.style
	}
	if o.layout != "" {
		out.Layout = o.layout
	}
	if cmd.Flags().Changed("index") {
		out.Pages.InitialIndex = o.index
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}
