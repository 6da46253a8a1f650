// SPDX-License-Identifier: MPL-2.0

package sync

import (
	"cmdsync/internal/registry"
	"cmdsync/pkg/cmdfile"
)

// TransformOptions converts a definition's parameter list into the
// registry's wire shape. Only chat-input kinds carry options; context-menu
// commands return nil. Order is preserved exactly as authored since the
// registry renders options in submission order.
//
// The local autocomplete handler name is an in-process reference with no
// remote meaning; the wire format carries only the boolean fact that
// autocomplete exists.
func TransformOptions(cmd *cmdfile.Command) []registry.Option {
	if !cmd.TakesOptions() || len(cmd.Options) == 0 {
		return nil
	}

	wire := make([]registry.Option, 0, len(cmd.Options))
	for _, opt := range cmd.Options {
		wire = append(wire, registry.Option{
			Name:         opt.Name,
			Description:  opt.Description,
			Type:         string(opt.GetType()),
			Required:     opt.Required,
			Autocomplete: opt.HasAutocomplete(),
		})
	}

	return wire
}
