package runner

import (
	"github.com/notelint/notelint/pkg/lint"
	"github.com/notelint/notelint/pkg/linter"
)

// FileOutcome is the result of processing one file.
type FileOutcome struct {
	// Path is the absolute path that was processed.
	Path string

	// Findings are the reported issues for this file. In fix mode
	// these are the findings that remained after fixing.
	Findings []lint.Finding

	// RuleErrors are contained per-rule failures for this file.
	RuleErrors map[string]error

	// Fix describes the fix run, nil in check mode.
	Fix *linter.FixResult

	// Written reports whether the file was rewritten on disk.
	Written bool

	// Skipped reports that the file was left alone because it changed
	// on disk between read and write.
	Skipped bool

	// Error is set when the file could not be processed at all.
	Error error
}

// Stats aggregates a run.
type Stats struct {
	FilesDiscovered    int
	FilesProcessed     int
	FilesSkipped       int
	FilesErrored       int
	FilesWithIssues    int
	FilesModified      int
	FindingsTotal      int
	FindingsFixable    int
	FindingsFixed      int
	FindingsBySeverity map[string]int
}

// Result is the overall runner result. Files are ordered by path.
type Result struct {
	Files []FileOutcome
	Stats Stats
}

// HasFailures reports whether any error-severity findings occurred.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FindingsBySeverity["error"] > 0
}

// HasIssues reports whether any findings were produced.
func (r *Result) HasIssues() bool {
	if r == nil {
		return false
	}
	return r.Stats.FindingsTotal > 0
}

func newStats() Stats {
	return Stats{FindingsBySeverity: make(map[string]int)}
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	r.Stats.FilesProcessed++
	if outcome.Skipped {
		r.Stats.FilesSkipped++
	}
	if outcome.Written {
		r.Stats.FilesModified++
	}
	if outcome.Fix != nil {
		r.Stats.FindingsFixed += outcome.Fix.Applied
	}

	if len(outcome.Findings) > 0 {
		r.Stats.FilesWithIssues++
	}
	r.Stats.FindingsTotal += len(outcome.Findings)
	for i := range outcome.Findings {
		f := &outcome.Findings[i]
		if f.HasFix() {
			r.Stats.FindingsFixable++
		}
		severity := string(f.Severity)
		if severity == "" {
			severity = "warning"
		}
		r.Stats.FindingsBySeverity[severity]++
	}
}
