// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"cmdsync/internal/discovery"
	"cmdsync/internal/issue"
	"cmdsync/internal/sync"
)

// newCheckCommand creates the `cmdsync check` command.
func newCheckCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate local definitions without touching the registry",
		Long: `Validate local definitions without touching the registry.

Loads every definition the same way 'sync' would and reports, per command,
whether it would be published. No network calls are made, so check works
without registry settings or a token.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd.Context(), app)
		},
	}
}

func runCheck(ctx context.Context, app *App) error {
	cfg, err := app.loadConfig(ctx)
	if err != nil {
		return err
	}

	res, err := discovery.New(cfg.CommandDirs).LoadWithDiagnostics(ctx)
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("load command definitions").
			WithSuggestion("Fix the definition file named in the error").
			Wrap(err).
			BuildError()
	}
	app.renderDiagnostics(res.Diagnostics)

	publishable := 0
	for _, def := range res.Commands {
		name := CmdStyle.Render(def.EffectiveName())
		if sync.Publishable(def) {
			publishable++
			fmt.Fprintf(app.stdout, "%s %s (%s)\n", SuccessStyle.Render("publish"), name, def.Kind)
			continue
		}
		fmt.Fprintf(app.stdout, "%s %s (%s)\n", SubtitleStyle.Render("local  "), name, def.Kind)
	}

	fmt.Fprintf(app.stdout, "%s%d definitions, %d publishable\n",
		TitleStyle.Render("check: "), len(res.Commands), publishable)

	return nil
}
