// SPDX-License-Identifier: MPL-2.0

package registry

import (
	"context"
	"errors"
	"fmt"
)

// ErrWorkspaceNotFound is returned when a workspace ID cannot be resolved,
// either because it does not exist or because the application has no access
// to it.
var ErrWorkspaceNotFound = errors.New("workspace not found")

type (
	// Client is the remote command registry surface consumed by the
	// reconciliation engine. A workspaceID of "" addresses the
	// application's global registry; any other value addresses that
	// workspace's own registry.
	Client interface {
		// FetchAll returns the full published entry set for one registry.
		FetchAll(ctx context.Context, workspaceID string) ([]Entry, error)
		// Create publishes a new command and returns the created entry.
		Create(ctx context.Context, workspaceID string, entry NewEntry) (Entry, error)
		// Edit overwrites an existing command identified by its remote ID.
		Edit(ctx context.Context, workspaceID, commandID string, entry NewEntry) (Entry, error)
		// ResolveWorkspace resolves a workspace ID to a live handle.
		// Returns an error wrapping ErrWorkspaceNotFound when the
		// workspace does not exist or is inaccessible.
		ResolveWorkspace(ctx context.Context, id string) (Workspace, error)
	}

	// APIError is a non-2xx response from the registry API.
	APIError struct {
		// Status is the HTTP status code.
		Status int
		// Message is the error message from the response body, if any.
		Message string
	}
)

// Error formats the API failure as a human-readable message.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("registry API error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("registry API error (status %d)", e.Status)
}
