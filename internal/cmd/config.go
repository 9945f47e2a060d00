package cmd

import (
	"fmt"
	"os"

	"tabpager/internal/config"
	"tabpager/internal/errors"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(s *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.AddCommand(newConfigInitCmd(s))
	cmd.AddCommand(newConfigShowCmd(s))
	cmd.AddCommand(newConfigValidateCmd(s))
	return cmd
}

// pathArg returns the optional path argument, then --config, then the
// default location.
func (s *state) pathArg(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return s.configPath()
}

func newConfigInitCmd(s *state) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := s.pathArg(args)
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return errors.Newf("%s already exists, use --force to overwrite", path)
			}
			if err := config.SaveConfig(config.New(), path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func newConfigShowCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(s.cfg)
			if err != nil {
				return errors.Wrap(err, "failed to marshal config")
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newConfigValidateCmd(s *state) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [path]",
		Short: "Check a configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := s.pathArg(args)
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err != nil {
				return errors.NewConfigError("config file not found", path, errors.ConfigNotFound, err)
			}
			if _, err := config.LoadConfigFile(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", path)
			return nil
		},
	}
}
