package mdast

import (
	"bytes"
	"regexp"
)

// DialectSpans collects extended-syntax constructs recognized when parsing
// with the obsidian flavor. Rules consult these spans to avoid reporting
// vault syntax as Markdown violations (a "#tag" line is not a malformed
// heading, "==term==" is not unbalanced emphasis, and so on).
type DialectSpans struct {
	WikiLinks    []WikiLink
	Tags         []Tag
	Callouts     []Callout
	Highlights   []SourceRange
	Comments     []SourceRange
	BlockAnchors []BlockAnchor
	InlineFields []InlineField
	Templates    []SourceRange
}

// WikiLink is a [[target|alias]] or ![[target]] span.
type WikiLink struct {
	Span   SourceRange
	Target string
	Alias  string
	Embed  bool
}

// Tag is an inline #tag span.
type Tag struct {
	Span SourceRange
	Name string
}

// Callout is a "> [!kind]" blockquote marker line.
type Callout struct {
	Span SourceRange
	Line int
	Kind string
	Fold byte // '+', '-', or 0
}

// BlockAnchor is a trailing ^name block-reference anchor.
type BlockAnchor struct {
	Span SourceRange
	Line int
	Name string
}

// InlineField is a "key:: value" field line.
type InlineField struct {
	Span SourceRange
	Line int
	Key  string
}

var (
	wikiLinkRe    = regexp.MustCompile(`(!?)\[\[([^\[\]|]*)(?:\|([^\[\]]*))?\]\]`)
	tagRe         = regexp.MustCompile(`(^|[\s(])#([\pL_][\pL\pN_/-]*)`)
	calloutRe     = regexp.MustCompile(`^(\s*>\s*)\[!([A-Za-z][A-Za-z-]*)\]([+-]?)`)
	highlightRe   = regexp.MustCompile(`==[^=\n](?:[^\n]*?[^=\n])?==`)
	blockAnchorRe = regexp.MustCompile(`\s(\^[A-Za-z0-9-]+)\s*$`)
	inlineFieldRe = regexp.MustCompile(`^([\pL\pN _/-]+)::(\s|$)`)
	templateRe    = regexp.MustCompile(`<%[^\n]*?%>|\{\{[^{}\n]+\}\}`)
	fenceOpenRe   = regexp.MustCompile("^(\\s*)(```+|~~~+)")
)

// ScanDialect scans content for extended-syntax spans. Code fences are
// skipped entirely; inline code spans are masked per line. %%..%% comments
// may span lines and everything inside them is left unscanned.
func ScanDialect(content []byte, lines []LineInfo) *DialectSpans {
	spans := &DialectSpans{}

	inFence := false
	var fenceMarker []byte
	inComment := false
	commentStart := -1

	for idx, info := range lines {
		lineNum := idx + 1
		line := content[info.StartOffset:info.NewlineStart]

		// Fence tracking: dialect constructs never apply inside code.
		if m := fenceOpenRe.FindSubmatch(line); m != nil {
			if !inFence {
				inFence = true
				fenceMarker = m[2]
			} else if bytes.HasPrefix(bytes.TrimLeft(line, " \t"), fenceMarker) {
				inFence = false
			}
			continue
		}
		if inFence {
			continue
		}

		base := info.StartOffset
		masked := maskInlineCode(line)

		// %%..%% comments, possibly multi-line.
		rest := masked
		restBase := base
		for {
			p := bytes.Index(rest, []byte("%%"))
			if p < 0 {
				break
			}
			if inComment {
				spans.Comments = append(spans.Comments, SourceRange{
					StartOffset: commentStart,
					EndOffset:   restBase + p + 2,
				})
				inComment = false
			} else {
				inComment = true
				commentStart = restBase + p
			}
			rest = rest[p+2:]
			restBase += p + 2
		}
		if inComment {
			continue
		}

		if m := calloutRe.FindSubmatchIndex(masked); m != nil {
			var fold byte
			if m[7] > m[6] {
				fold = masked[m[6]]
			}
			spans.Callouts = append(spans.Callouts, Callout{
				Span: SourceRange{StartOffset: base + m[0], EndOffset: base + m[1]},
				Line: lineNum,
				Kind: string(masked[m[4]:m[5]]),
				Fold: fold,
			})
		}

		for _, m := range wikiLinkRe.FindAllSubmatchIndex(masked, -1) {
			wl := WikiLink{
				Span:   SourceRange{StartOffset: base + m[0], EndOffset: base + m[1]},
				Target: string(masked[m[4]:m[5]]),
				Embed:  m[3] > m[2],
			}
			if m[6] >= 0 {
				wl.Alias = string(masked[m[6]:m[7]])
			}
			spans.WikiLinks = append(spans.WikiLinks, wl)
		}

		for _, m := range tagRe.FindAllSubmatchIndex(masked, -1) {
			spans.Tags = append(spans.Tags, Tag{
				Span: SourceRange{StartOffset: base + m[4] - 1, EndOffset: base + m[5]},
				Name: string(masked[m[4]:m[5]]),
			})
		}

		for _, m := range highlightRe.FindAllIndex(masked, -1) {
			spans.Highlights = append(spans.Highlights, SourceRange{
				StartOffset: base + m[0],
				EndOffset:   base + m[1],
			})
		}

		if m := blockAnchorRe.FindSubmatchIndex(masked); m != nil {
			spans.BlockAnchors = append(spans.BlockAnchors, BlockAnchor{
				Span: SourceRange{StartOffset: base + m[2], EndOffset: base + m[3]},
				Line: lineNum,
				Name: string(masked[m[2]+1 : m[3]]),
			})
		}

		if m := inlineFieldRe.FindSubmatchIndex(masked); m != nil {
			spans.InlineFields = append(spans.InlineFields, InlineField{
				Span: SourceRange{StartOffset: base + m[0], EndOffset: base + m[3] + 2},
				Line: lineNum,
				Key:  string(bytes.TrimSpace(masked[m[2]:m[3]])),
			})
		}

		for _, m := range templateRe.FindAllIndex(masked, -1) {
			spans.Templates = append(spans.Templates, SourceRange{
				StartOffset: base + m[0],
				EndOffset:   base + m[1],
			})
		}
	}

	return spans
}

// maskInlineCode replaces the interior of `code` spans with spaces so the
// dialect regexes cannot match inside them. Backticks themselves are kept.
func maskInlineCode(line []byte) []byte {
	ticks := bytes.IndexByte(line, '`')
	if ticks < 0 {
		return line
	}

	masked := make([]byte, len(line))
	copy(masked, line)

	i := 0
	for i < len(masked) {
		if masked[i] != '`' {
			i++
			continue
		}
		// Opening run of backticks.
		runStart := i
		for i < len(masked) && masked[i] == '`' {
			i++
		}
		runLen := i - runStart

		// Find a matching closing run of the same length.
		close := -1
		for j := i; j < len(masked); j++ {
			if masked[j] != '`' {
				continue
			}
			k := j
			for k < len(masked) && masked[k] == '`' {
				k++
			}
			if k-j == runLen {
				close = j
				break
			}
			j = k - 1
		}
		if close < 0 {
			break
		}
		for j := i; j < close; j++ {
			masked[j] = ' '
		}
		i = close + runLen
	}

	return masked
}

// TagAt returns the tag containing the given offset, if any.
func (ds *DialectSpans) TagAt(offset int) (Tag, bool) {
	if ds == nil {
		return Tag{}, false
	}
	for _, t := range ds.Tags {
		if t.Span.Contains(offset) {
			return t, true
		}
	}
	return Tag{}, false
}

// Suppresses reports whether the given range intersects a span that should
// silence style rules: comments, templates, highlights, and wikilinks.
func (ds *DialectSpans) Suppresses(r SourceRange) bool {
	if ds == nil {
		return false
	}
	for _, c := range ds.Comments {
		if c.Overlaps(r) {
			return true
		}
	}
	for _, t := range ds.Templates {
		if t.Overlaps(r) {
			return true
		}
	}
	for _, h := range ds.Highlights {
		if h.Overlaps(r) {
			return true
		}
	}
	for _, w := range ds.WikiLinks {
		if w.Span.Overlaps(r) {
			return true
		}
	}
	return false
}
