// SPDX-License-Identifier: MPL-2.0

package sync

import "fmt"

const (
	// OutcomeCreated means the command had no remote entry and one was created.
	OutcomeCreated Outcome = "created"
	// OutcomeUpdated means a remote entry matched by name and was overwritten.
	OutcomeUpdated Outcome = "updated"
	// OutcomeSkipped means the definition was not sent to the registry.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeFailed means a remote call for this definition failed.
	OutcomeFailed Outcome = "failed"
)

type (
	// Outcome is the per-definition result of one reconciliation step.
	Outcome string

	// Result records what happened to one definition against one target.
	Result struct {
		// Name is the definition's effective command name.
		Name string
		// Target is the registry the result applies to.
		Target Target
		// Outcome is what the reconciler did.
		Outcome Outcome
		// Reason explains a skip, empty otherwise.
		Reason string
		// Err is the failure for OutcomeFailed results, nil otherwise.
		Err error
	}

	// Report aggregates every result of one sync pass.
	Report struct {
		Results []Result

		// TargetErrors holds failures that stopped a whole target before
		// any definition was processed, keyed by nothing: each entry
		// carries its own target.
		TargetErrors []TargetError
	}

	// TargetError is a failure that aborted reconciliation of one target.
	TargetError struct {
		Target Target
		Err    error
	}
)

// Add appends one per-definition result.
func (r *Report) Add(res Result) {
	r.Results = append(r.Results, res)
}

// AddTargetError records a failure that aborted one target.
func (r *Report) AddTargetError(target Target, err error) {
	r.TargetErrors = append(r.TargetErrors, TargetError{Target: target, Err: err})
}

// Count returns how many results have the given outcome.
func (r *Report) Count(outcome Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == outcome {
			n++
		}
	}
	return n
}

// HasFailures reports whether any definition or target failed.
func (r *Report) HasFailures() bool {
	return r.Count(OutcomeFailed) > 0 || len(r.TargetErrors) > 0
}

// Summary renders the pass totals as a single line.
func (r *Report) Summary() string {
	return fmt.Sprintf("%d created, %d updated, %d skipped, %d failed",
		r.Count(OutcomeCreated), r.Count(OutcomeUpdated),
		r.Count(OutcomeSkipped), r.Count(OutcomeFailed))
}
