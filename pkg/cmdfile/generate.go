// SPDX-License-Identifier: MPL-2.0

package cmdfile

import (
	"fmt"
	"strings"
)

// GenerateCUE generates CUE text from a Command struct.
// This is useful for creating command definition files programmatically,
// e.g. the starter file written by `cmdsync init`.
func GenerateCUE(cmd *Command) string {
	var sb strings.Builder

	sb.WriteString("// Command definition for cmdsync\n")
	sb.WriteString("// One command per file; the file name supplies the command name when omitted.\n\n")

	if cmd.Name != "" {
		fmt.Fprintf(&sb, "name: %q\n", cmd.Name)
	}
	if cmd.Description != "" {
		fmt.Fprintf(&sb, "description: %q\n", cmd.Description)
	}
	fmt.Fprintf(&sb, "kind: %q\n", cmd.Kind)

	if len(cmd.Options) > 0 {
		sb.WriteString("\noptions: [\n")
		for i := range cmd.Options {
			generateOption(&sb, &cmd.Options[i])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// generateOption generates CUE for a single option entry.
func generateOption(sb *strings.Builder, opt *Option) {
	sb.WriteString("\t{\n")
	fmt.Fprintf(sb, "\t\tname: %q\n", opt.Name)
	if opt.Description != "" {
		fmt.Fprintf(sb, "\t\tdescription: %q\n", opt.Description)
	}
	if opt.Type != "" {
		fmt.Fprintf(sb, "\t\ttype: %q\n", opt.Type)
	}
	if opt.Required {
		sb.WriteString("\t\trequired: true\n")
	}
	if opt.Autocomplete != "" {
		fmt.Fprintf(sb, "\t\tautocomplete: %q\n", opt.Autocomplete)
	}
	sb.WriteString("\t}\n")
}
