package runner

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"rtcheck/pkg/probe"
)

var (
	passMark = color.New(color.FgGreen).SprintFunc()
	failMark = color.New(color.FgRed).SprintFunc()
	headline = color.New(color.FgCyan).SprintFunc()
)

// printHeader announces the run and the target.
func (r *Runner) printHeader() {
	fmt.Fprintf(r.out, "Smoke-testing backend at %s\n", headline(r.baseURL))
	fmt.Fprintln(r.out, strings.Repeat("=", 60))
}

// printStatus writes the one-line status for a recorded outcome.
func (r *Runner) printStatus(o probe.Outcome) {
	if o.Success {
		fmt.Fprintf(r.out, "%s %s\n", passMark("PASSED"), o.Name)
		return
	}
	fmt.Fprintf(r.out, "%s %s: %s\n", failMark("FAILED"), o.Name, o.Details)
}

// printSummary writes the aggregate block: counts, percentage, and the
// failing probes with their details.
func (r *Runner) printSummary() {
	sum := r.Summary()

	fmt.Fprintln(r.out, strings.Repeat("=", 60))
	fmt.Fprintf(r.out, "Results: %d/%d passed (%.1f%%)\n",
		sum.Totals.PassedTests, sum.Totals.TotalTests, sum.Totals.SuccessRate)

	if sum.Totals.FailedTests == 0 {
		fmt.Fprintf(r.out, "%s\n", passMark("All checks passed"))
		return
	}

	fmt.Fprintf(r.out, "%s\n", failMark(fmt.Sprintf("%d checks failed:", sum.Totals.FailedTests)))
	for _, o := range sum.Results {
		if !o.Success {
			fmt.Fprintf(r.out, "  %s %s: %s\n", failMark("x"), o.Name, o.Details)
		}
	}
}
