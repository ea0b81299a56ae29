package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/notelint/notelint/pkg/runner"
)

const severityWarning = "warning"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path     string        `json:"path"`
	Findings []JSONFinding `json:"findings"`
	Modified bool          `json:"modified,omitempty"`
	Skipped  bool          `json:"skipped,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// JSONFinding represents a single finding.
type JSONFinding struct {
	Rule     string   `json:"rule"`
	Severity string   `json:"severity"`
	Message  string   `json:"message"`
	Line     int      `json:"line"`
	Column   int      `json:"column"`
	Fixable  bool     `json:"fixable"`
	Fix      *JSONFix `json:"fix,omitempty"`
}

// JSONFix represents a proposed edit.
type JSONFix struct {
	StartOffset int    `json:"startOffset"`
	EndOffset   int    `json:"endOffset"`
	NewText     string `json:"newText"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked    int            `json:"filesChecked"`
	FilesWithIssues int            `json:"filesWithIssues"`
	FilesModified   int            `json:"filesModified"`
	FilesErrored    int            `json:"filesErrored"`
	TotalIssues     int            `json:"totalIssues"`
	FixedIssues     int            `json:"fixedIssues,omitempty"`
	BySeverity      map[string]int `json:"bySeverity"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalIssues, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{
			BySeverity: make(map[string]int),
		},
	}
	if result == nil {
		return output
	}
	if len(result.Files) > 0 {
		output.Files = make([]JSONFileResult, 0, len(result.Files))
	}

	for i := range result.Files {
		file := &result.Files[i]
		fileResult := JSONFileResult{
			Path:     displayPath(r.opts.WorkingDir, file.Path),
			Findings: make([]JSONFinding, 0, len(file.Findings)),
			Modified: file.Written,
			Skipped:  file.Skipped,
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
			output.Summary.FilesErrored++
		}
		if file.Fix != nil {
			output.Summary.FixedIssues += file.Fix.Applied
		}

		for j := range file.Findings {
			finding := &file.Findings[j]
			jsonFinding := JSONFinding{
				Rule:     finding.Rule,
				Severity: string(finding.Severity),
				Message:  finding.Message,
				Line:     finding.Line,
				Column:   finding.Column,
				Fixable:  finding.HasFix(),
			}
			if finding.Fix != nil {
				jsonFinding.Fix = &JSONFix{
					StartOffset: finding.Fix.StartOffset,
					EndOffset:   finding.Fix.EndOffset,
					NewText:     finding.Fix.NewText,
				}
			}
			fileResult.Findings = append(fileResult.Findings, jsonFinding)
			output.Summary.TotalIssues++

			severity := string(finding.Severity)
			if severity == "" {
				severity = severityWarning
			}
			output.Summary.BySeverity[severity]++
		}

		if len(fileResult.Findings) > 0 {
			output.Summary.FilesWithIssues++
		}
		if fileResult.Modified {
			output.Summary.FilesModified++
		}

		output.Files = append(output.Files, fileResult)
		output.Summary.FilesChecked++
	}

	return output
}
