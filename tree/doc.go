// Package tree provides the tagged value model used for configuration documents.
//
// A document is a tree of Node values. Every Node is exactly one of:
//   - Null: an explicit YAML null
//   - *Scalar: a string, number or boolean
//   - *Sequence: an ordered list of nodes
//   - *Map: string keys mapped to nodes, keeping insertion order
//
// Code that walks a tree dispatches on the concrete type with a type switch,
// so no reflection is needed to tell mappings, sequences and scalars apart.
//
// FromValue converts values decoded by github.com/goccy/go-yaml (with the
// UseOrderedMap option) into nodes, and ToValue converts nodes back into values
// that marshal with key order preserved.
package tree
