package pretty

import (
	"fmt"
	"strings"

	"github.com/notelint/notelint/pkg/config"
	"github.com/notelint/notelint/pkg/lint"
)

// FormatFinding formats a single finding for terminal output.
func (s *Styles) FormatFinding(path string, f *lint.Finding, showContext bool, sourceLine string) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(path),
		f.Line,
		f.Column,
	)

	ruleDisplay := s.RuleID.Render("(" + f.Rule + ")")

	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s",
		location,
		s.FormatSeverity(f.Severity),
		s.Message.Render(f.Message),
		ruleDisplay,
	))
	if f.HasFix() {
		builder.WriteString("  " + s.Fixable.Render("[fixable]"))
	}
	builder.WriteString("\n")

	if showContext && sourceLine != "" {
		builder.WriteString(s.FormatSourceContext(sourceLine, f.Column))
	}

	return builder.String()
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev config.Severity) string {
	switch sev {
	case config.SeverityError:
		return s.Error.Render("error")
	case config.SeverityWarning:
		return s.Warning.Render("warning")
	case config.SeverityInfo:
		return s.Info.Render("info")
	default:
		return string(sev)
	}
}

// FormatSourceContext formats the source line with a caret marker.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	const indent = "        "

	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	if column > 0 {
		padding := indent + strings.Repeat(" ", column-1)
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.FilePath.Render(path)
	if issueCount == 1 {
		header += s.Dim.Render(" (1 issue)")
	} else if issueCount > 1 {
		header += s.Dim.Render(fmt.Sprintf(" (%d issues)", issueCount))
	}
	return header
}
