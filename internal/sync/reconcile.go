// SPDX-License-Identifier: MPL-2.0

package sync

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"cmdsync/internal/registry"
	"cmdsync/pkg/cmdfile"
)

// descriptionPlaceholder is sent when a definition has no description.
// The registry rejects empty descriptions, so an explicit filler stands in.
const descriptionPlaceholder = ".."

type (
	// Reconciler brings one target's registry in line with a set of local
	// definitions. Safe to reuse sequentially across targets; it holds no
	// per-target state between calls.
	Reconciler struct {
		client registry.Client
		logger *log.Logger
	}
)

// NewReconciler creates a Reconciler backed by the given registry client.
// A nil logger defaults to the package-level charm logger.
func NewReconciler(client registry.Client, logger *log.Logger) *Reconciler {
	if logger == nil {
		logger = log.Default()
	}
	return &Reconciler{client: client, logger: logger}
}

// Reconcile synchronizes the given publishable definitions against one
// target's registry and returns one Result per definition.
//
// The remote entry set is fetched exactly once, up front: it is the
// snapshot every definition in this pass is compared against. Entries
// created mid-pass are deliberately not visible to later lookups; local
// names are unique per pass, so the stale read cannot cause a duplicate
// create.
//
// A non-nil error means the target itself could not be reconciled (the
// workspace does not resolve, or the entry fetch failed) and no results
// were produced. Per-definition failures are reported in the results, not
// as an error.
func (r *Reconciler) Reconcile(ctx context.Context, target Target, defs []*cmdfile.Command) ([]Result, error) {
	if !target.IsGlobal() {
		ws, err := r.client.ResolveWorkspace(ctx, target.WorkspaceID)
		if err != nil {
			return nil, fmt.Errorf("resolving target: %w", err)
		}
		r.logger.Debug("resolved workspace", "id", ws.ID, "name", ws.Name)
	}

	r.logger.Info("fetching published commands", "target", target.String())

	remote, err := r.client.FetchAll(ctx, target.WorkspaceID)
	if err != nil {
		return nil, fmt.Errorf("fetching published commands: %w", err)
	}

	// Point-in-time snapshot, name-keyed. Exact, case-sensitive names:
	// the registry treats "Ban" and "ban" as distinct entries.
	byName := make(map[string]registry.Entry, len(remote))
	for _, entry := range remote {
		byName[entry.Name] = entry
	}

	results := make([]Result, 0, len(defs))
	for _, def := range defs {
		results = append(results, r.reconcileOne(ctx, target, byName, def))
	}

	return results, nil
}

// reconcileOne issues the create-or-edit call for a single definition.
// Remote failures are folded into the Result so one bad definition never
// aborts the rest of the target.
func (r *Reconciler) reconcileOne(ctx context.Context, target Target, byName map[string]registry.Entry, def *cmdfile.Command) Result {
	name := def.EffectiveName()
	payload := buildEntry(def)

	existing, found := byName[name]
	if !found {
		r.logger.Info("registering command", "name", name, "target", target.String())

		if _, err := r.client.Create(ctx, target.WorkspaceID, payload); err != nil {
			return Result{Name: name, Target: target, Outcome: OutcomeFailed, Err: err}
		}
		return Result{Name: name, Target: target, Outcome: OutcomeCreated}
	}

	// Matched entries are re-sent in full on every pass, no field diffing.
	// The overwrite also repairs drift introduced out-of-band.
	r.logger.Info("updating command", "name", name, "target", target.String())

	if _, err := r.client.Edit(ctx, target.WorkspaceID, existing.ID, payload); err != nil {
		return Result{Name: name, Target: target, Outcome: OutcomeFailed, Err: err}
	}
	return Result{Name: name, Target: target, Outcome: OutcomeUpdated}
}

// buildEntry assembles the wire payload for one publishable definition.
func buildEntry(def *cmdfile.Command) registry.NewEntry {
	remoteKind, _ := remoteType(def.Kind)

	description := def.Description
	if description == "" {
		description = descriptionPlaceholder
	}

	return registry.NewEntry{
		Name:        def.EffectiveName(),
		Description: description,
		Type:        remoteKind,
		Options:     TransformOptions(def),
	}
}
