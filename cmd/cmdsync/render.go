// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"cmdsync/internal/sync"
)

// renderReport prints the per-definition outcomes and the pass summary.
func renderReport(w io.Writer, report *sync.Report) {
	for _, res := range report.Results {
		switch res.Outcome {
		case sync.OutcomeCreated:
			fmt.Fprintf(w, "%s %s (%s)\n", SuccessStyle.Render("created"), CmdStyle.Render(res.Name), res.Target)
		case sync.OutcomeUpdated:
			fmt.Fprintf(w, "%s %s (%s)\n", SuccessStyle.Render("updated"), CmdStyle.Render(res.Name), res.Target)
		case sync.OutcomeSkipped:
			fmt.Fprintf(w, "%s %s: %s\n", SubtitleStyle.Render("skipped"), CmdStyle.Render(res.Name), res.Reason)
		case sync.OutcomeFailed:
			fmt.Fprintf(w, "%s %s (%s): %v\n", ErrorStyle.Render("failed"), CmdStyle.Render(res.Name), res.Target, res.Err)
		}
	}

	for _, te := range report.TargetErrors {
		fmt.Fprintf(w, "%s %s: %v\n", ErrorStyle.Render("target failed"), te.Target, te.Err)
	}

	fmt.Fprintln(w, TitleStyle.Render("sync: ")+report.Summary())
}
