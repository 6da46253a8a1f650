// SPDX-License-Identifier: MPL-2.0

package sync

import (
	"cmdsync/internal/registry"
	"cmdsync/pkg/cmdfile"
)

// Publishable reports whether a definition belongs in the remote registry.
// Text commands are local-only; every other known kind is publishable.
// Unknown kinds are rejected rather than passed through, so a future kind
// cannot be published by accident before this mapping learns about it.
func Publishable(cmd *cmdfile.Command) bool {
	_, ok := remoteType(cmd.Kind)
	return ok
}

// remoteType maps a local definition kind to the registry's command type.
// The second return is false for text commands and unrecognized kinds.
func remoteType(kind cmdfile.Kind) (registry.CommandType, bool) {
	switch kind {
	case cmdfile.KindSlash, cmdfile.KindHybrid:
		return registry.TypeChatInput, true
	case cmdfile.KindUserMenu:
		return registry.TypeUser, true
	case cmdfile.KindMessageMenu:
		return registry.TypeMessage, true
	default:
		return "", false
	}
}
