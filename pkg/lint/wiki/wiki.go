// Package wiki indexes vault constructs (wikilinks and block anchors)
// for the dialect rules. The index is built lazily per rule context from
// the dialect spans the parser collected.
package wiki

import "github.com/notelint/notelint/pkg/mdast"

// Index holds the vault constructs of one document.
type Index struct {
	// Links are all wikilinks in document order.
	Links []mdast.WikiLink

	// Anchors are all block-reference anchors in document order.
	Anchors []mdast.BlockAnchor

	// byAnchor groups anchors by name for duplicate detection.
	byAnchor map[string][]mdast.BlockAnchor
}

// Collect builds an Index from dialect spans. A nil spans value (standard
// flavor) yields an empty index.
func Collect(spans *mdast.DialectSpans) *Index {
	idx := &Index{byAnchor: make(map[string][]mdast.BlockAnchor)}
	if spans == nil {
		return idx
	}

	idx.Links = spans.WikiLinks
	idx.Anchors = spans.BlockAnchors
	for _, a := range spans.BlockAnchors {
		idx.byAnchor[a.Name] = append(idx.byAnchor[a.Name], a)
	}

	return idx
}

// DuplicateAnchors returns, for each anchor name used more than once,
// every occurrence after the first, in document order.
func (idx *Index) DuplicateAnchors() []mdast.BlockAnchor {
	var dups []mdast.BlockAnchor
	for _, a := range idx.Anchors {
		occurrences := idx.byAnchor[a.Name]
		if len(occurrences) < 2 {
			continue
		}
		if occurrences[0].Span != a.Span {
			dups = append(dups, a)
		}
	}
	return dups
}

// EmptyLinks returns wikilinks with an empty target, in document order.
func (idx *Index) EmptyLinks() []mdast.WikiLink {
	var empty []mdast.WikiLink
	for _, l := range idx.Links {
		if l.Target == "" {
			empty = append(empty, l)
		}
	}
	return empty
}
