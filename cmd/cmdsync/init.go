// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cmdsync/pkg/cmdfile"
)

// newInitCommand creates the `cmdsync init` command.
func newInitCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init <path>",
		Short: "Create a starter command definition file",
		Long: `Create a starter command definition file.

The file's base name becomes the command name unless the definition sets
one explicitly; 'cmdsync init commands/ping.cue' creates a command named
"ping".`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runInit(app, args[0])
		},
	}
}

func runInit(app *App, path string) error {
	if filepath.Ext(path) != ".cue" {
		path += ".cue"
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("refusing to overwrite existing file: %s", path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	starter := &cmdfile.Command{
		Description: "Describe what this command does",
		Kind:        cmdfile.KindSlash,
		Options: []cmdfile.Option{
			{
				Name:        "example",
				Description: "An example option",
				Type:        cmdfile.OptionTypeString,
			},
		},
	}

	if err := os.WriteFile(path, []byte(cmdfile.GenerateCUE(starter)), 0o644); err != nil {
		return fmt.Errorf("failed to write definition file: %w", err)
	}

	fmt.Fprintln(app.stdout, SuccessStyle.Render("created ")+path)
	fmt.Fprintln(app.stdout, SubtitleStyle.Render("Edit the file, then run 'cmdsync check' to validate it."))
	return nil
}
