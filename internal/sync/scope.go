// SPDX-License-Identifier: MPL-2.0

package sync

type (
	// Scope is the set of registries one sync pass targets: the
	// application's global registry, or one registry per configured
	// workspace. Immutable once constructed.
	Scope struct {
		workspaceIDs []string
	}

	// Target is a single registry to reconcile. The zero value is the
	// global registry.
	Target struct {
		// WorkspaceID identifies the workspace whose registry is
		// addressed; empty means the global registry.
		WorkspaceID string
	}
)

// GlobalScope targets the application's global registry.
func GlobalScope() Scope {
	return Scope{}
}

// NewScope builds a scope over the given workspace IDs, in order. An empty
// list normalizes to the global scope here, at construction, so the rest of
// the engine never has to special-case it.
func NewScope(workspaceIDs []string) Scope {
	if len(workspaceIDs) == 0 {
		return GlobalScope()
	}
	ids := make([]string, len(workspaceIDs))
	copy(ids, workspaceIDs)
	return Scope{workspaceIDs: ids}
}

// IsGlobal reports whether the scope targets the global registry.
func (s Scope) IsGlobal() bool {
	return len(s.workspaceIDs) == 0
}

// Targets resolves the scope into the ordered list of registries to
// reconcile. A global scope yields exactly one target.
func (s Scope) Targets() []Target {
	if s.IsGlobal() {
		return []Target{{}}
	}

	targets := make([]Target, 0, len(s.workspaceIDs))
	for _, id := range s.workspaceIDs {
		targets = append(targets, Target{WorkspaceID: id})
	}
	return targets
}

// IsGlobal reports whether the target is the global registry.
func (t Target) IsGlobal() bool {
	return t.WorkspaceID == ""
}

// String describes the target for logs and result reporting.
func (t Target) String() string {
	if t.IsGlobal() {
		return "global"
	}
	return "workspace " + t.WorkspaceID
}
