// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"cmdsync/internal/config"
)

// newConfigCommand creates the `cmdsync config` command tree.
func newConfigCommand(app *App) *cobra.Command {
	cfgCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage cmdsync configuration",
		Long: `Manage cmdsync configuration.

Configuration is stored in:
  - Linux: ~/.config/cmdsync/config.cue
  - macOS: ~/Library/Application Support/cmdsync/config.cue
  - Windows: %APPDATA%\cmdsync\config.cue

The registry token lives in credentials.toml next to the config file, or
in the environment variable named by registry.token_env.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.loadConfig(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(app.stdout, config.GenerateCUE(cfg))
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := config.CreateDefaultConfig(); err != nil {
				return err
			}
			cfgDir, err := config.ConfigDir()
			if err != nil {
				return err
			}
			path := filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt)
			fmt.Fprintln(app.stdout, SuccessStyle.Render("created ")+path)
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration and credentials file paths",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfgDir, err := config.ConfigDir()
			if err != nil {
				return err
			}
			credsPath, err := config.CredentialsPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(app.stdout, "config:      "+filepath.Join(cfgDir, config.ConfigFileName+"."+config.ConfigFileExt))
			fmt.Fprintln(app.stdout, "credentials: "+credsPath)
			return nil
		},
	})

	return cfgCmd
}
