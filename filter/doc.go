// Package filter selects configuration fragment files beneath a service root.
//
// A PatternSet is an ordered list of glob patterns evaluated left to right against
// root-relative, slash separated paths. A plain pattern selects matching files and a
// pattern starting with "!" deselects them; the last matching pattern decides.
// Globs follow github.com/bmatcuk/doublestar: "**" spans directories, "*" stays
// within one path segment.
//
// Discover walks the tree once in lexical order and returns the selected files in
// that order, which is also the order fragments are merged in.
//
// DiscoverLegacy keeps the older substring based selection (config extension, then
// include substrings, then exclude substrings). With default settings both functions
// select the same files.
package filter
