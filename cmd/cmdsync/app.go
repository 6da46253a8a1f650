// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"cmdsync/internal/config"
	"cmdsync/internal/discovery"
	"cmdsync/internal/registry"
)

type (
	// App wires CLI services and shared dependencies. It is the composition
	// root for the CLI layer - Cobra command handlers receive an App
	// reference and delegate through its service interfaces so tests can
	// substitute fakes.
	App struct {
		Config   ConfigProvider
		Registry RegistryFactory
		stdout   io.Writer
		stderr   io.Writer
	}

	// Dependencies defines the injection points for building an App. Nil
	// fields are replaced with production defaults by NewApp.
	Dependencies struct {
		Config   ConfigProvider
		Registry RegistryFactory
		Stdout   io.Writer
		Stderr   io.Writer
	}

	// ConfigProvider loads configuration using explicit options.
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, error)
	}

	// RegistryFactory builds a registry client from resolved configuration
	// and token. Tests inject a factory returning an in-memory client.
	RegistryFactory func(cfg *config.Config, token string) registry.Client
)

// NewApp builds the CLI composition root, filling nil dependencies with
// production defaults.
func NewApp(deps Dependencies) *App {
	app := &App{
		Config:   deps.Config,
		Registry: deps.Registry,
		stdout:   deps.Stdout,
		stderr:   deps.Stderr,
	}

	if app.Config == nil {
		app.Config = config.NewProvider()
	}
	if app.Registry == nil {
		app.Registry = func(cfg *config.Config, token string) registry.Client {
			return registry.NewHTTPClient(cfg.Registry.AppID,
				registry.WithBaseURL(cfg.Registry.URL),
				registry.WithToken(token),
				registry.WithUserAgent("cmdsync/"+Version),
			)
		}
	}
	if app.stdout == nil {
		app.stdout = os.Stdout
	}
	if app.stderr == nil {
		app.stderr = os.Stderr
	}

	return app
}

// loadConfig loads configuration honoring the --config flag.
func (a *App) loadConfig(ctx context.Context) (*config.Config, error) {
	return a.Config.Load(ctx, config.LoadOptions{ConfigFilePath: cfgFile})
}

// newLogger builds the pass logger. Verbose mode lowers the level to debug.
func (a *App) newLogger() *log.Logger {
	logger := log.NewWithOptions(a.stderr, log.Options{
		Prefix: "cmdsync",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// renderDiagnostics prints discovery diagnostics to stderr, warnings in
// amber and errors in red.
func (a *App) renderDiagnostics(diags []discovery.Diagnostic) {
	for _, d := range diags {
		style := WarningStyle
		if d.Severity == discovery.SeverityError {
			style = ErrorStyle
		}
		fmt.Fprintln(a.stderr, style.Render(string(d.Severity)+": ")+d.Message)
	}
}
