// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidRegistryConfig is the sentinel error wrapped by InvalidRegistryConfigError.
	ErrInvalidRegistryConfig = errors.New("invalid registry config")
	// ErrInvalidWorkspaceID is the sentinel error wrapped by InvalidWorkspaceIDError.
	ErrInvalidWorkspaceID = errors.New("invalid workspace id")
	// ErrInvalidCommandDir is returned when a command directory entry is whitespace-only.
	ErrInvalidCommandDir = errors.New("invalid command directory")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// RegistryConfig identifies the remote command registry and how to
	// authenticate against it. The token itself never lives here; TokenEnv
	// names the environment variable that carries it.
	RegistryConfig struct {
		// URL is the registry API base URL.
		URL string `mapstructure:"url"`
		// AppID is the application whose command registries are synced.
		AppID string `mapstructure:"app_id"`
		// TokenEnv names the environment variable holding the API token.
		TokenEnv string `mapstructure:"token_env"`
	}

	// InvalidRegistryConfigError is returned when the registry section is
	// incomplete or malformed. It wraps ErrInvalidRegistryConfig for errors.Is().
	InvalidRegistryConfigError struct {
		Field  string
		Reason string
	}

	// InvalidWorkspaceIDError is returned when a workspaces entry is empty
	// or whitespace-only. It wraps ErrInvalidWorkspaceID for errors.Is().
	InvalidWorkspaceIDError struct {
		Index int
	}

	// UIConfig holds terminal output preferences.
	UIConfig struct {
		// Verbose enables debug-level log output.
		Verbose bool `mapstructure:"verbose"`
	}

	// Config is the root cmdsync configuration.
	Config struct {
		// Registry is the remote registry connection settings.
		Registry RegistryConfig `mapstructure:"registry"`
		// Workspaces lists the workspace IDs to sync. Empty means the
		// application's global registry.
		Workspaces []string `mapstructure:"workspaces"`
		// CommandDirs lists the directories scanned for definition files.
		CommandDirs []string `mapstructure:"command_dirs"`
		// UI holds terminal output preferences.
		UI UIConfig `mapstructure:"ui"`
	}

	// InvalidConfigError aggregates the first validation failure with its
	// config path. It wraps ErrInvalidConfig for errors.Is().
	InvalidConfigError struct {
		Path  string
		Cause error
	}
)

// DefaultConfig returns the built-in defaults applied before any file or
// environment override.
func DefaultConfig() *Config {
	return &Config{
		Registry: RegistryConfig{
			TokenEnv: "CMDSYNC_TOKEN",
		},
		CommandDirs: []string{"commands"},
		UI: UIConfig{
			Verbose: false,
		},
	}
}

func (e *InvalidRegistryConfigError) Error() string {
	return fmt.Sprintf("invalid registry config: %s: %s", e.Field, e.Reason)
}

func (e *InvalidRegistryConfigError) Unwrap() error { return ErrInvalidRegistryConfig }

func (e *InvalidWorkspaceIDError) Error() string {
	return fmt.Sprintf("invalid workspace id at workspaces[%d]: must not be empty", e.Index)
}

func (e *InvalidWorkspaceIDError) Unwrap() error { return ErrInvalidWorkspaceID }

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config at %s: %v", e.Path, e.Cause)
}

// Unwrap exposes both the sentinel and the underlying cause so callers can
// match either with errors.Is.
func (e *InvalidConfigError) Unwrap() []error { return []error{ErrInvalidConfig, e.Cause} }

// Validate checks the registry section. The URL and AppID are only
// required when a sync actually runs, so emptiness is allowed here and
// enforced by RequireRegistry at the point of use.
func (r *RegistryConfig) Validate() error {
	if r.URL != "" && !strings.HasPrefix(r.URL, "http://") && !strings.HasPrefix(r.URL, "https://") {
		return &InvalidRegistryConfigError{Field: "url", Reason: "must be an http(s) URL"}
	}
	if strings.TrimSpace(r.TokenEnv) == "" {
		return &InvalidRegistryConfigError{Field: "token_env", Reason: "must not be empty"}
	}
	return nil
}

// RequireRegistry checks that the fields needed to reach the registry are
// present. Called by commands that issue remote calls.
func (r *RegistryConfig) RequireRegistry() error {
	if strings.TrimSpace(r.URL) == "" {
		return &InvalidRegistryConfigError{Field: "url", Reason: "must be set to sync"}
	}
	if strings.TrimSpace(r.AppID) == "" {
		return &InvalidRegistryConfigError{Field: "app_id", Reason: "must be set to sync"}
	}
	return nil
}

// Validate checks constraints that the CUE schema cannot express.
func (c *Config) Validate() error {
	if err := c.Registry.Validate(); err != nil {
		return &InvalidConfigError{Path: "registry", Cause: err}
	}
	for i, ws := range c.Workspaces {
		if strings.TrimSpace(ws) == "" {
			return &InvalidConfigError{Path: fmt.Sprintf("workspaces[%d]", i), Cause: &InvalidWorkspaceIDError{Index: i}}
		}
	}
	for i, dir := range c.CommandDirs {
		if strings.TrimSpace(dir) == "" {
			return &InvalidConfigError{Path: fmt.Sprintf("command_dirs[%d]", i), Cause: ErrInvalidCommandDir}
		}
	}
	return nil
}
