package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gravitrone/osintui/internal/config"
)

// ConfigFlag is the persistent root flag naming the config file.
const ConfigFlag = "config"

// configPath returns the --config value, or "" when the flag is absent.
func configPath(cmd *cobra.Command) string {
	path, err := cmd.Flags().GetString(ConfigFlag)
	if err != nil {
		return ""
	}
	return path
}

func resolvedConfigPath(cmd *cobra.Command) string {
	if p := configPath(cmd); p != "" {
		return p
	}
	return config.Path()
}

// ConfigCmd returns the `osintui config` command group.
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the config file",
	}
	cmd.AddCommand(configPathCmd())
	cmd.AddCommand(configInitCmd())
	return cmd
}

func configPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), resolvedConfigPath(cmd))
			return err
		},
	}
}

func configInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := resolvedConfigPath(cmd)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("stat config: %w", err)
			}

			if err := config.Default().Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing config")
	return cmd
}
