package rules

import "github.com/notelint/notelint/pkg/lint"

// Registration order is load-bearing: when two fixes overlap, the
// earlier-registered rule wins. Rules are registered by number, with
// the notelint extensions after the common markdown set.
func init() {
	for _, rule := range []lint.Rule{
		NewHeadingIncrementRule(),	// MD001
		NewHeadingStyleRule(),		// MD003
		NewULStyleRule(),		// MD004
		NewULIndentRule(),		// MD007
		NewTrailingSpacesRule(),	// MD009
		NewHardTabsRule(),		// MD010
		NewReversedLinkRule(),		// MD011
		NewMultipleBlanksRule(),	// MD012
		NewLineLengthRule(),		// MD013
		NewMissingSpaceATXRule(),	// MD018
		NewMultipleSpaceATXRule(),	// MD019
		NewBlanksAroundHeadingsRule(),	// MD022
		NewHeadingStartLeftRule(),	// MD023
		NewSingleH1Rule(),		// MD025
		NewTrailingPunctuationRule(),	// MD026
		NewOLPrefixRule(),		// MD029
		NewListMarkerSpaceRule(),	// MD030
		NewBlanksAroundFencesRule(),	// MD031
		NewBlanksAroundListsRule(),	// MD032
		NewBareURLRule(),		// MD034
		NewSpaceInEmphasisRule(),	// MD037
		NewFencedCodeLanguageRule(),	// MD040
		NewTrailingNewlineRule(),	// MD047
		NewEmphasisStyleRule(),		// MD049
		NewDuplicateBlockAnchorRule(),	// NL001
		NewEmptyWikiLinkRule(),		// NL002
	} {
		lint.DefaultRegistry.Register(rule)
	}
}
