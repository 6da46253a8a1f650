// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"cmdsync/pkg/cmdfile"
)

// definitionExt is the file extension of command definition files.
const definitionExt = ".cue"

type (
	// Discovery loads command definitions from a fixed set of directories.
	// Directories are walked in configuration order, each one depth-first,
	// so the resulting definition order is stable across runs.
	Discovery struct {
		dirs []string
	}

	// LoadResult bundles the loaded definitions with the diagnostics
	// produced while discovering them.
	LoadResult struct {
		Commands    []*cmdfile.Command
		Diagnostics []Diagnostic
	}
)

// New creates a Discovery over the given command directories.
func New(dirs []string) *Discovery {
	copied := make([]string, len(dirs))
	copy(copied, dirs)
	return &Discovery{dirs: copied}
}

// Load returns every command definition under the configured directories,
// in traversal order. It satisfies the loader contract of the sync engine;
// diagnostics are dropped here, callers that render them use
// LoadWithDiagnostics.
func (d *Discovery) Load(ctx context.Context) ([]*cmdfile.Command, error) {
	res, err := d.LoadWithDiagnostics(ctx)
	if err != nil {
		return nil, err
	}
	return res.Commands, nil
}

// LoadWithDiagnostics walks the configured directories and parses every
// definition file found.
//
// A file that fails to read or parse aborts the whole load: skipping past
// a broken definition would hand the sync engine an incomplete set and
// silently drop commands from the registry. A directory that does not
// exist, and a definition whose resolved name collides with an earlier
// one, are recoverable and reported as diagnostics; on a name collision
// the earlier definition wins.
func (d *Discovery) LoadWithDiagnostics(ctx context.Context) (*LoadResult, error) {
	res := &LoadResult{}
	seen := make(map[string]string) // effective name -> defining file

	for _, dir := range d.dirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			res.Diagnostics = append(res.Diagnostics, Diagnostic{
				Severity: SeverityWarning,
				Code:     "command_dir_missing",
				Message:  fmt.Sprintf("command directory does not exist, skipping: %s", dir),
				Path:     dir,
			})
			continue
		}

		paths, err := collectDefinitionPaths(dir)
		if err != nil {
			return nil, fmt.Errorf("scanning command directory %s: %w", dir, err)
		}

		for _, path := range paths {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			cmd, err := cmdfile.Parse(path)
			if err != nil {
				return nil, fmt.Errorf("loading command definition %s: %w", path, err)
			}

			name := cmd.EffectiveName()
			if prev, dup := seen[name]; dup {
				res.Diagnostics = append(res.Diagnostics, Diagnostic{
					Severity: SeverityWarning,
					Code:     "duplicate_command_name",
					Message:  fmt.Sprintf("command %q already defined by %s, skipping: %s", name, prev, path),
					Path:     path,
				})
				continue
			}
			seen[name] = path

			res.Commands = append(res.Commands, cmd)
		}
	}

	return res, nil
}

// collectDefinitionPaths walks one directory depth-first and returns every
// definition file path in traversal order. Directories are traversed but
// never yielded.
func collectDefinitionPaths(dir string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		if filepath.Ext(path) == definitionExt {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return paths, nil
}
