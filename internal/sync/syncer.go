// SPDX-License-Identifier: MPL-2.0

package sync

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"cmdsync/internal/registry"
	"cmdsync/pkg/cmdfile"
)

type (
	// Loader supplies the command definitions for one sync pass. A load
	// failure is fatal for the whole pass: the definition set must be
	// complete before any remote call is made.
	Loader interface {
		Load(ctx context.Context) ([]*cmdfile.Command, error)
	}

	// Syncer drives a full sync pass: load, classify, then reconcile every
	// target in the configured scope, one at a time.
	Syncer struct {
		loader Loader
		client registry.Client
		scope  Scope
		logger *log.Logger
	}
)

// NewSyncer wires a Syncer. A nil logger defaults to the package-level
// charm logger.
func NewSyncer(loader Loader, client registry.Client, scope Scope, logger *log.Logger) *Syncer {
	if logger == nil {
		logger = log.Default()
	}
	return &Syncer{
		loader: loader,
		client: client,
		scope:  scope,
		logger: logger,
	}
}

// Run executes one sync pass and returns its report.
//
// Targets are processed sequentially in scope order; a failure that stops
// one target (an unresolvable workspace, a failed entry fetch) is recorded
// in the report and the remaining targets are still attempted. Changes
// already applied to the registry are never rolled back.
//
// A non-nil error means the pass could not run at all, which only happens
// when loading the local definitions fails.
func (s *Syncer) Run(ctx context.Context) (*Report, error) {
	s.logger.Info("checking command definitions")

	defs, err := s.loader.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading command definitions: %w", err)
	}

	report := &Report{}

	publishable := make([]*cmdfile.Command, 0, len(defs))
	for _, def := range defs {
		if Publishable(def) {
			publishable = append(publishable, def)
			continue
		}
		report.Add(Result{
			Name:    def.EffectiveName(),
			Outcome: OutcomeSkipped,
			Reason:  fmt.Sprintf("kind %q is not published", def.Kind),
		})
	}

	s.logger.Info("syncing commands",
		"publishable", len(publishable),
		"skipped", len(defs)-len(publishable),
		"targets", len(s.scope.Targets()))

	reconciler := NewReconciler(s.client, s.logger)
	for _, target := range s.scope.Targets() {
		results, err := reconciler.Reconcile(ctx, target, publishable)
		if err != nil {
			s.logger.Error("target failed", "target", target.String(), "error", err)
			report.AddTargetError(target, err)
			continue
		}
		for _, res := range results {
			report.Add(res)
		}
	}

	s.logger.Info("sync complete", "summary", report.Summary())

	return report, nil
}
