// Package fragment loads configuration fragments and rewrites their location fields.
//
// A fragment is a YAML mapping placed next to the code it configures. Handler
// references (functions.*.handler) and layer artifacts (layers.*.package.artifact)
// inside it are written relative to the fragment's own directory; Rewrite prefixes
// them with the fragment's root-relative directory so they resolve from the service
// root. Rewriting is idempotent.
//
// A fragment with a truthy top-level "ignore" key is skipped entirely by callers.
// Fragments that are merged have the key removed first.
package fragment
