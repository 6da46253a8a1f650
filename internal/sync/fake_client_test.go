// SPDX-License-Identifier: MPL-2.0

package sync

import (
	"context"
	"fmt"
	"strconv"

	"cmdsync/internal/registry"
)

// fakeClient is an in-memory registry.Client. Entries are keyed by
// workspace ID ("" for the global registry). Calls are recorded so tests
// can assert on call volume and ordering.
type fakeClient struct {
	entries    map[string][]registry.Entry
	workspaces map[string]registry.Workspace

	fetchCalls  []string // workspace IDs, in call order
	createCalls []string // "<workspaceID>/<name>"
	editCalls   []string // "<workspaceID>/<commandID>"

	failCreate map[string]error // keyed by command name
	failEdit   map[string]error // keyed by command name

	nextID int
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		entries:    make(map[string][]registry.Entry),
		workspaces: make(map[string]registry.Workspace),
		failCreate: make(map[string]error),
		failEdit:   make(map[string]error),
	}
}

func (f *fakeClient) addWorkspace(id, name string) {
	f.workspaces[id] = registry.Workspace{ID: id, Name: name}
}

func (f *fakeClient) seed(workspaceID string, entry registry.Entry) {
	f.entries[workspaceID] = append(f.entries[workspaceID], entry)
}

func (f *fakeClient) FetchAll(_ context.Context, workspaceID string) ([]registry.Entry, error) {
	f.fetchCalls = append(f.fetchCalls, workspaceID)

	snapshot := make([]registry.Entry, len(f.entries[workspaceID]))
	copy(snapshot, f.entries[workspaceID])
	return snapshot, nil
}

func (f *fakeClient) Create(_ context.Context, workspaceID string, entry registry.NewEntry) (registry.Entry, error) {
	f.createCalls = append(f.createCalls, workspaceID+"/"+entry.Name)

	if err := f.failCreate[entry.Name]; err != nil {
		return registry.Entry{}, err
	}

	f.nextID++
	created := registry.Entry{
		ID:          strconv.Itoa(f.nextID),
		Name:        entry.Name,
		Description: entry.Description,
		Type:        entry.Type,
		Options:     entry.Options,
	}
	f.entries[workspaceID] = append(f.entries[workspaceID], created)
	return created, nil
}

func (f *fakeClient) Edit(_ context.Context, workspaceID, commandID string, entry registry.NewEntry) (registry.Entry, error) {
	f.editCalls = append(f.editCalls, workspaceID+"/"+commandID)

	if err := f.failEdit[entry.Name]; err != nil {
		return registry.Entry{}, err
	}

	for i, existing := range f.entries[workspaceID] {
		if existing.ID == commandID {
			updated := registry.Entry{
				ID:          commandID,
				Name:        entry.Name,
				Description: entry.Description,
				Type:        entry.Type,
				Options:     entry.Options,
			}
			f.entries[workspaceID][i] = updated
			return updated, nil
		}
	}
	return registry.Entry{}, fmt.Errorf("no entry with id %q", commandID)
}

func (f *fakeClient) ResolveWorkspace(_ context.Context, id string) (registry.Workspace, error) {
	ws, ok := f.workspaces[id]
	if !ok {
		return registry.Workspace{}, fmt.Errorf("resolving workspace %q: %w", id, registry.ErrWorkspaceNotFound)
	}
	return ws, nil
}
