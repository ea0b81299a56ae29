// Package rules contains the built-in rule catalog for notelint.
//
// Rules register themselves with lint.DefaultRegistry during init() in
// ascending rule-name order. Registration order matters: it is the tie
// break for finding ordering and decides which rule wins when two fixes
// overlap in a pass. Adding a rule means adding one implementation and
// one Register call; the coordinator never changes.
package rules
