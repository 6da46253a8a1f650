// SPDX-License-Identifier: MPL-2.0

package cmdfile

import (
	"path/filepath"
	"strings"
)

const (
	// KindText is a prefix-triggered text command. Text commands are handled
	// entirely in-process and never appear in the remote registry.
	KindText Kind = "text"
	// KindSlash is a slash command, invoked through the platform's command UI.
	KindSlash Kind = "slash"
	// KindHybrid is both a text command and a slash command.
	KindHybrid Kind = "hybrid"
	// KindUserMenu is a context-menu command attached to user profiles.
	KindUserMenu Kind = "user-menu"
	// KindMessageMenu is a context-menu command attached to messages.
	KindMessageMenu Kind = "message-menu"
)

type (
	// Kind classifies how a command is invoked.
	Kind string

	// Command represents a single command definition loaded from a CUE file.
	Command struct {
		// Name is the command identifier (optional in the file; see EffectiveName)
		Name string `json:"name,omitempty"`
		// Description provides help text shown in the platform's command UI
		Description string `json:"description,omitempty"`
		// Kind classifies how the command is invoked
		Kind Kind `json:"kind"`
		// Options are the command's parameters, in declaration order.
		// Only meaningful for slash and hybrid commands.
		Options []Option `json:"options,omitempty"`

		// FilePath stores the path this command was loaded from (not in CUE)
		FilePath string `json:"-"`
	}
)

// IsValid reports whether k is a recognized command kind.
func (k Kind) IsValid() bool {
	switch k {
	case KindText, KindSlash, KindHybrid, KindUserMenu, KindMessageMenu:
		return true
	default:
		return false
	}
}

// String returns the kind identifier.
func (k Kind) String() string {
	return string(k)
}

// EffectiveName returns the command's resolved name: the explicit name when
// set, otherwise the source file's base name with the extension stripped.
func (c *Command) EffectiveName() string {
	if c.Name != "" {
		return c.Name
	}
	return NameFromPath(c.FilePath)
}

// TakesOptions reports whether the command's kind carries an options list.
// Context-menu commands have no parameters; text commands parse their own.
func (c *Command) TakesOptions() bool {
	return c.Kind == KindSlash || c.Kind == KindHybrid
}

// NameFromPath derives a command name from a definition file path by taking
// the base name and stripping the extension.
func NameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
