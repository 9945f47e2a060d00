// Package cmd holds the tabpager command line.
package cmd

import (
	"fmt"
	"os"

	"tabpager/internal/config"
	"tabpager/internal/log"

	"github.com/spf13/cobra"
)

var version = "dev"

// state is shared by every subcommand of one root.
type state struct {
	cfgFile string
	debug   bool
	cfg     *config.Config
}

// configPath returns --config, or the default location.
func (s *state) configPath() (string, error) {
	if s.cfgFile != "" {
		return s.cfgFile, nil
	}
	return config.DefaultPath()
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	s := &state{}
	rootCmd := &cobra.Command{
		Use:   "tabpager",
		Short: "A paged view with a title strip that follows it",
		Long: `tabpager shows horizontally paged content under a strip of titles.
The strip follows every drag of the pages, and tapping a title jumps to
its page. It runs in the terminal or in a fyne window.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetDebug(s.debug)

			// Load config
			var configErr error
			if s.cfgFile != "" {
				s.cfg, configErr = config.LoadConfigFile(s.cfgFile)
			} else {
				s.cfg, configErr = config.LoadConfig()
			}

			if configErr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", configErr)
				fmt.Fprintln(cmd.ErrOrStderr(), "Using default settings. Run 'tabpager config init' to write a config file.")
				s.cfg = config.New()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&s.cfgFile, "config", "", "config file (default is $HOME/.config/tabpager/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&s.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(newTUICmd(s))
	rootCmd.AddCommand(newGUICmd(s))
	rootCmd.AddCommand(newSimulateCmd(s))
	rootCmd.AddCommand(newConfigCmd(s))
	return rootCmd
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
