// SPDX-License-Identifier: MPL-2.0

package registry

const (
	// TypeChatInput is a slash command entered through the chat input.
	TypeChatInput CommandType = "chat_input"
	// TypeUser is a context-menu command attached to user profiles.
	TypeUser CommandType = "user"
	// TypeMessage is a context-menu command attached to messages.
	TypeMessage CommandType = "message"
)

type (
	// CommandType is the registry's classification of a published command.
	CommandType string

	// Option is the wire shape of one command parameter. Unlike the local
	// definition format it carries no handler references, only a flag that
	// autocomplete is available.
	Option struct {
		Name         string `json:"name"`
		Description  string `json:"description,omitempty"`
		Type         string `json:"type"`
		Required     bool   `json:"required,omitempty"`
		Autocomplete bool   `json:"autocomplete,omitempty"`
	}

	// Entry is the registry's view of a published command. The ID is an
	// opaque identifier owned by the remote system.
	Entry struct {
		ID          string      `json:"id"`
		Name        string      `json:"name"`
		Description string      `json:"description,omitempty"`
		Type        CommandType `json:"type"`
		Options     []Option    `json:"options,omitempty"`
	}

	// NewEntry is the payload for create and edit calls.
	NewEntry struct {
		Name        string      `json:"name"`
		Description string      `json:"description"`
		Type        CommandType `json:"type"`
		Options     []Option    `json:"options,omitempty"`
	}

	// Workspace is a resolved workspace handle. A workspace owns a command
	// registry independent from the application's global one.
	Workspace struct {
		ID   string `json:"id"`
		Name string `json:"name,omitempty"`
	}
)
