// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"cmdsync/internal/config"
	"cmdsync/internal/discovery"
	"cmdsync/internal/issue"
	"cmdsync/internal/sync"
	"cmdsync/pkg/cmdfile"
)

// newSyncCommand creates the `cmdsync sync` command.
func newSyncCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Reconcile the remote registry with local definitions",
		Long: `Reconcile the remote registry with local definitions.

Every publishable definition is either created in the registry or, when a
command with the same name already exists, overwritten in full. With
workspaces configured, each workspace's registry is reconciled
independently; a failure in one does not stop the others.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSync(cmd.Context(), app)
		},
	}
}

// preloaded adapts an already-loaded definition set to the sync engine's
// loader contract, so discovery runs once and its diagnostics can be
// rendered before any remote call.
type preloaded []*cmdfile.Command

func (p preloaded) Load(context.Context) ([]*cmdfile.Command, error) {
	return p, nil
}

func runSync(ctx context.Context, app *App) error {
	cfg, err := app.loadConfig(ctx)
	if err != nil {
		return err
	}

	if err := cfg.Registry.RequireRegistry(); err != nil {
		return issue.NewErrorContext().
			WithOperation("prepare sync").
			WithSuggestion("Set registry.url and registry.app_id in your config").
			WithSuggestion("Run 'cmdsync config init' to create a config file").
			Wrap(err).
			BuildError()
	}

	token, err := config.ResolveToken(cfg)
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("resolve registry token").
			WithSuggestion(fmt.Sprintf("Export the token: export %s=...", cfg.Registry.TokenEnv)).
			WithSuggestion("Or add it to the credentials file (see 'cmdsync config path')").
			Wrap(err).
			BuildError()
	}

	res, err := discovery.New(cfg.CommandDirs).LoadWithDiagnostics(ctx)
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("load command definitions").
			WithSuggestion("Fix the definition file named in the error").
			WithSuggestion("Run 'cmdsync check' to validate definitions without syncing").
			Wrap(err).
			BuildError()
	}
	app.renderDiagnostics(res.Diagnostics)

	syncer := sync.NewSyncer(
		preloaded(res.Commands),
		app.Registry(cfg, token),
		sync.NewScope(cfg.Workspaces),
		app.newLogger(),
	)

	report, err := syncer.Run(ctx)
	if err != nil {
		return err
	}

	renderReport(app.stdout, report)

	if report.HasFailures() {
		return &ExitError{Code: 1, Err: fmt.Errorf("sync finished with failures: %s", report.Summary())}
	}

	return nil
}
