// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// CredentialsFileName is the TOML file holding the registry token,
// stored next to config.cue. Kept separate from the config so the config
// file can be committed to version control without leaking secrets.
const CredentialsFileName = "credentials.toml"

// ErrNoToken is returned when neither the token environment variable nor
// the credentials file yields a token.
var ErrNoToken = errors.New("no registry token found")

type (
	// Credentials is the on-disk shape of credentials.toml.
	Credentials struct {
		Registry RegistryCredentials `toml:"registry"`
	}

	// RegistryCredentials holds the registry API token.
	RegistryCredentials struct {
		Token string `toml:"token"`
	}
)

// CredentialsPath returns the credentials file location.
func CredentialsPath() (string, error) {
	cfgDir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfgDir, CredentialsFileName), nil
}

// LoadCredentials reads and parses the credentials file at path. A missing
// file is not an error; it returns empty credentials so the caller can
// fall through to other sources.
func LoadCredentials(path string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Credentials{}, nil
		}
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	var creds Credentials
	if err := toml.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("failed to parse credentials file %s: %w", path, err)
	}

	return &creds, nil
}

// SaveCredentials writes the credentials file with owner-only permissions.
func SaveCredentials(path string, creds *Credentials) error {
	data, err := toml.Marshal(creds)
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create credentials directory: %w", err)
	}

	// 0600: the token must not be readable by other users.
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}

	return nil
}

// ResolveToken returns the registry API token for the given configuration.
// The environment variable named by registry.token_env wins; the
// credentials file is the fallback. Returns ErrNoToken when both are empty.
func ResolveToken(cfg *Config) (string, error) {
	if cfg.Registry.TokenEnv != "" {
		if token := strings.TrimSpace(os.Getenv(cfg.Registry.TokenEnv)); token != "" {
			return token, nil
		}
	}

	path, err := CredentialsPath()
	if err != nil {
		return "", err
	}

	creds, err := LoadCredentials(path)
	if err != nil {
		return "", err
	}

	if token := strings.TrimSpace(creds.Registry.Token); token != "" {
		return token, nil
	}

	return "", fmt.Errorf("%w: set $%s or add a token to %s", ErrNoToken, cfg.Registry.TokenEnv, path)
}
