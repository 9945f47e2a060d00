package cmd

import (
	"tabpager/internal/log"
	"tabpager/internal/tui"

	"github.com/spf13/cobra"
)

func newTUICmd(s *state) *cobra.Command {
	var (
		o       overrides
		watch   bool
		logFile string
	)
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal interface",
		Long: `Run the pager in the terminal. Drag the pages with the mouse, click a
title, or use h/l, 1-9, g/G and tab.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.apply(cmd, s.cfg)
			if err != nil {
				return err
			}
			// The terminal belongs to the program
			log.Configure(log.WithFile(logFile))
			log.SetDebug(s.debug)

			opts := tui.RunOptions{Watch: watch}
			if watch {
				if opts.ConfigPath, err = s.configPath(); err != nil {
					return err
				}
			}
			return tui.Run(cfg, opts)
		},
	}
	o.register(cmd)
	cmd.Flags().BoolVar(&watch, "watch", false, "reload the config file when it changes")
	cmd.Flags().StringVar(&logFile, "log", "tabpager.log", "log file")
	return cmd
}
