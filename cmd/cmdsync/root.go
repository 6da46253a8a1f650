// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"cmdsync/internal/issue"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables debug-level output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "cmdsync",
		Short: "Sync local command definitions to a remote command registry",
		Long: TitleStyle.Render("cmdsync") + SubtitleStyle.Render(" - Sync local command definitions to a remote command registry") + `

cmdsync discovers command definitions written as CUE files, decides which
of them belong in the remote registry, and brings the registry in line:
missing commands are created, existing ones are overwritten. Syncing
targets either the application's global registry or a configured list of
workspaces, each reconciled independently.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Run 'cmdsync config init' and fill in your registry settings
  2. Put one CUE definition per command under your commands directory
  3. Run 'cmdsync sync'

` + SubtitleStyle.Render("Examples:") + `
  cmdsync sync              Reconcile the registry with local definitions
  cmdsync check             Validate definitions without touching the registry
  cmdsync init ping.cue     Create a starter command definition
  cmdsync config show       Show current configuration`,
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/cmdsync/config.cue)")

	app := NewApp(Dependencies{})

	// Add subcommands
	rootCmd.AddCommand(newSyncCommand(app))
	rootCmd.AddCommand(newCheckCommand(app))
	rootCmd.AddCommand(newConfigCommand(app))
	rootCmd.AddCommand(newInitCommand(app))
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		// fang renders err.Error(); suggestions live outside that message,
		// so print the actionable form separately.
		var ae *issue.ActionableError
		if errors.As(err, &ae) && ae.HasSuggestions() {
			fmt.Fprintln(os.Stderr, formatErrorForDisplay(err, verbose))
		}

		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// GetVerbose returns the verbose flag value
func GetVerbose() bool {
	return verbose
}
