package reporter

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/notelint/notelint/internal/ui/pretty"
	"github.com/notelint/notelint/pkg/runner"
)

// contextIndent matches the indentation FormatSourceContext applies.
const contextIndent = 8

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts      Options
	styles    *pretty.Styles
	bw        *bufio.Writer
	termWidth int
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:      opts,
		styles:    pretty.NewStyles(colorEnabled),
		bw:        bufio.NewWriterSize(opts.Writer, bufWriterSize),
		termWidth: terminalWidth(opts.Writer),
	}
}

// terminalWidth returns the width of the output terminal, or 0 when the
// writer is not one.
func terminalWidth(w io.Writer) int {
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return 0
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	var total int
	for i := range result.Files {
		total += r.reportFile(&result.Files[i])
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return total, nil
}

func (r *TextReporter) reportFile(file *runner.FileOutcome) int {
	path := displayPath(r.opts.WorkingDir, file.Path)

	if file.Error != nil {
		fmt.Fprintf(r.bw, "%s: %s\n",
			r.styles.FilePath.Render(path),
			r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
		)
		return 0
	}
	if file.Skipped {
		fmt.Fprintf(r.bw, "%s: %s\n",
			r.styles.FilePath.Render(path),
			r.styles.Warning.Render("skipped: modified during run"),
		)
		return 0
	}
	if len(file.Findings) == 0 {
		return 0
	}

	var lines *sourceLines
	if r.opts.ShowContext {
		lines = loadSourceLines(file.Path)
	}

	if r.opts.GroupByFile {
		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, len(file.Findings)))
	}

	for i := range file.Findings {
		f := &file.Findings[i]
		var sourceLine string
		if lines != nil {
			sourceLine = lines.at(f.Line)
			if r.termWidth > contextIndent {
				sourceLine = runewidth.Truncate(sourceLine, r.termWidth-contextIndent, "…")
			}
		}
		fmt.Fprint(r.bw, r.styles.FormatFinding(path, f, r.opts.ShowContext, sourceLine))
	}

	if r.opts.GroupByFile {
		fmt.Fprintln(r.bw)
	}
	return len(file.Findings)
}

// sourceLines holds a file's lines for context rendering. Loaded once
// per file that has findings, only when context display is on.
type sourceLines struct {
	lines [][]byte
}

func loadSourceLines(path string) *sourceLines {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return &sourceLines{lines: bytes.Split(content, []byte("\n"))}
}

func (s *sourceLines) at(line int) string {
	if line < 1 || line > len(s.lines) {
		return ""
	}
	return string(bytes.TrimSuffix(s.lines[line-1], []byte("\r")))
}
