// SPDX-License-Identifier: MPL-2.0

package cmdfile

const (
	// OptionTypeString is the default option type for free-form text values.
	OptionTypeString OptionType = "string"
	// OptionTypeInteger is for whole-number values.
	OptionTypeInteger OptionType = "integer"
	// OptionTypeNumber is for floating-point values.
	OptionTypeNumber OptionType = "number"
	// OptionTypeBoolean is for true/false values.
	OptionTypeBoolean OptionType = "boolean"
	// OptionTypeUser is for values that reference a user.
	OptionTypeUser OptionType = "user"
	// OptionTypeChannel is for values that reference a channel.
	OptionTypeChannel OptionType = "channel"
	// OptionTypeRole is for values that reference a role.
	OptionTypeRole OptionType = "role"
)

type (
	// OptionType represents the data type of a command option.
	OptionType string

	// Option represents one command parameter.
	Option struct {
		// Name is the option name (lowercase alphanumeric with hyphens)
		Name string `json:"name"`
		// Description provides help text for the option
		Description string `json:"description,omitempty"`
		// Type specifies the data type (optional, defaults to "string")
		Type OptionType `json:"type,omitempty"`
		// Required indicates whether the option must be provided
		Required bool `json:"required,omitempty"`
		// Autocomplete names the in-process handler that serves completion
		// suggestions for this option. It is a local callback reference and
		// is never forwarded to the remote registry; the wire format only
		// carries whether autocomplete is available.
		Autocomplete string `json:"autocomplete,omitempty"`
	}
)

// GetType returns the effective type of the option (defaults to "string").
func (o *Option) GetType() OptionType {
	if o.Type == "" {
		return OptionTypeString
	}
	return o.Type
}

// HasAutocomplete reports whether an autocomplete handler is attached.
func (o *Option) HasAutocomplete() bool {
	return o.Autocomplete != ""
}
