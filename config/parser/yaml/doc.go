// Package yaml provides the YAML parser used for service files and configuration fragments.
//
// The parser is built on github.com/goccy/go-yaml and offers two entry points:
//   - Parse unmarshals a document, or a section of it, into a Go value. Sections are
//     addressed with colon separated paths ("custom:colocate" -> "$.custom.colocate").
//   - ParseDocument decodes a whole document into an ordered tree.Map.
//
// Malformed documents, and documents whose root is not a mapping, are reported by
// ParseDocument as *ParseError carrying the document name.
package yaml
