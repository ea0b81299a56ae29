package config

// StarterTemplate returns the contents of a starter .notelint.toml.
// Every setting is present but commented out, so the file documents
// itself without changing behavior until edited.
func StarterTemplate() []byte {
	return []byte(`# notelint configuration
# See 'notelint rules' for the full rule list.

# Markdown dialect: "standard" (CommonMark + GFM) or "obsidian"
# (adds wikilinks, tags, callouts, block anchors, ...).
flavor = "standard"

# Maximum line length checked by MD013. 0 means unlimited.
# line-length = 80

# Rules that must not run.
# disable = ["MD013"]

# When set, only these rules run.
# enable = ["MD009", "MD010", "MD012", "MD047"]

# Cap on fix iteration passes. 0 means the default.
# fix-passes = 5

# Per-rule options.
# [rules.MD007]
# indent = 4
#
# [rules.MD004]
# style = "dash"
`)
}
