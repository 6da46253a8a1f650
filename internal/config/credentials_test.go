// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCredentials_MissingFileIsEmpty(t *testing.T) {
	t.Parallel()

	creds, err := LoadCredentials(filepath.Join(t.TempDir(), "credentials.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if creds.Registry.Token != "" {
		t.Errorf("token = %q, want empty", creds.Registry.Token)
	}
}

func TestSaveAndLoadCredentials(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "credentials.toml")
	if err := SaveCredentials(path, &Credentials{
		Registry: RegistryCredentials{Token: "sekrit"},
	}); err != nil {
		t.Fatalf("saving: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("credentials file mode = %o, want 600", perm)
	}

	creds, err := LoadCredentials(path)
	if err != nil {
		t.Fatalf("loading: %v", err)
	}
	if creds.Registry.Token != "sekrit" {
		t.Errorf("token = %q, want sekrit", creds.Registry.Token)
	}
}

func TestLoadCredentials_Malformed(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "credentials.toml")
	if err := os.WriteFile(path, []byte("registry = not-toml"), 0o600); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := LoadCredentials(path); err == nil {
		t.Fatal("expected parse error for malformed TOML")
	}
}

func TestResolveToken_EnvWins(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	if err := SaveCredentials(filepath.Join(dir, CredentialsFileName), &Credentials{
		Registry: RegistryCredentials{Token: "from-file"},
	}); err != nil {
		t.Fatalf("saving credentials: %v", err)
	}

	t.Setenv("CMDSYNC_TEST_TOKEN", "from-env")

	cfg := DefaultConfig()
	cfg.Registry.TokenEnv = "CMDSYNC_TEST_TOKEN"

	token, err := ResolveToken(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "from-env" {
		t.Errorf("token = %q, env var should win over the file", token)
	}
}

func TestResolveToken_FallsBackToFile(t *testing.T) {
	dir := t.TempDir()
	SetConfigDirOverride(dir)
	t.Cleanup(Reset)

	if err := SaveCredentials(filepath.Join(dir, CredentialsFileName), &Credentials{
		Registry: RegistryCredentials{Token: "from-file"},
	}); err != nil {
		t.Fatalf("saving credentials: %v", err)
	}

	t.Setenv("CMDSYNC_TEST_TOKEN", "")

	cfg := DefaultConfig()
	cfg.Registry.TokenEnv = "CMDSYNC_TEST_TOKEN"

	token, err := ResolveToken(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "from-file" {
		t.Errorf("token = %q, want the credentials file fallback", token)
	}
}

func TestResolveToken_NoneFound(t *testing.T) {
	SetConfigDirOverride(t.TempDir())
	t.Cleanup(Reset)

	t.Setenv("CMDSYNC_TEST_TOKEN", "")

	cfg := DefaultConfig()
	cfg.Registry.TokenEnv = "CMDSYNC_TEST_TOKEN"

	_, err := ResolveToken(cfg)
	if !errors.Is(err, ErrNoToken) {
		t.Errorf("error should wrap ErrNoToken, got %v", err)
	}
}
