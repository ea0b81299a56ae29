package cli

import "github.com/notelint/notelint/pkg/runner"

// Exit codes for notelint.
const (
	// ExitSuccess indicates a clean run with no findings.
	ExitSuccess = 0

	// ExitFindings indicates the run completed but reported findings.
	ExitFindings = 1

	// ExitError indicates a usage or configuration error.
	ExitError = 2
)

// ExitCodeFromResult determines the exit code from a run result.
func ExitCodeFromResult(result *runner.Result) int {
	if result == nil || !result.HasIssues() {
		return ExitSuccess
	}
	return ExitFindings
}
