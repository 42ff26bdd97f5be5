// Package merge applies configuration fragments to a service configuration.
//
// Apply walks a fragment and writes it into the target tree, dispatching on the
// pair of node kinds found at each path:
//   - mapping onto mapping: keys are unioned, shared keys merge recursively
//   - sequence onto sequence: a mapping element merges into the mapping at the same
//     index of the target, every other element is appended
//   - scalar onto anything: the fragment value wins (last write wins)
//   - null in the fragment: nothing is written
//
// A mapping or sequence replaces a target value of a different kind. Every time an
// existing value is replaced by a different one the engine logs the dotted path,
// the old and new values and the fragment responsible, so unexpected precedence can
// be traced.
package merge
