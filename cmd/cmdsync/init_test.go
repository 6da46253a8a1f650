// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"cmdsync/pkg/cmdfile"
)

func TestRunInit_WritesParseableStarter(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	app := NewApp(Dependencies{Stdout: &out, Stderr: &bytes.Buffer{}})

	path := filepath.Join(t.TempDir(), "commands", "ping.cue")
	if err := runInit(app, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cmd, err := cmdfile.Parse(path)
	if err != nil {
		t.Fatalf("starter file should parse cleanly: %v", err)
	}
	if got := cmd.EffectiveName(); got != "ping" {
		t.Errorf("EffectiveName() = %q, want ping", got)
	}
	if cmd.Kind != cmdfile.KindSlash {
		t.Errorf("Kind = %q, want slash", cmd.Kind)
	}
}

func TestRunInit_AppendsExtension(t *testing.T) {
	t.Parallel()

	app := NewApp(Dependencies{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}})

	path := filepath.Join(t.TempDir(), "ban")
	if err := runInit(app, path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(path + ".cue"); err != nil {
		t.Errorf("expected %s.cue to exist: %v", path, err)
	}
}

func TestRunInit_RefusesOverwrite(t *testing.T) {
	t.Parallel()

	app := NewApp(Dependencies{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}})

	path := filepath.Join(t.TempDir(), "ping.cue")
	if err := os.WriteFile(path, []byte("kind: \"slash\"\n"), 0o644); err != nil {
		t.Fatalf("writing existing file: %v", err)
	}

	if err := runInit(app, path); err == nil {
		t.Fatal("expected refusal to overwrite an existing file")
	}
}
