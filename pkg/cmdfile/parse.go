// SPDX-License-Identifier: MPL-2.0

package cmdfile

import (
	_ "embed"
	"fmt"
	"os"

	"cmdsync/pkg/cueutil"
)

//go:embed cmdfile_schema.cue
var cmdfileSchema string

// Parse reads and parses a command definition from the given path.
func Parse(path string) (*Command, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read command file at %s: %w", path, err)
	}

	return ParseBytes(data, path)
}

// ParseBytes parses command definition content from bytes.
// Uses cueutil.ParseAndDecodeString for the 3-step CUE parsing flow:
// compile schema → compile user data → validate and decode.
func ParseBytes(data []byte, path string) (*Command, error) {
	result, err := cueutil.ParseAndDecodeString[Command](
		cmdfileSchema,
		data,
		"#Command",
		cueutil.WithFilename(path),
	)
	if err != nil {
		return nil, err
	}

	cmd := result.Value
	cmd.FilePath = path

	if err := cmd.validate(); err != nil {
		return nil, err
	}

	return cmd, nil
}
