// Package logging builds the structured loggers used by colocate.
// Records go through log/slog as JSON by default, or as logfmt-style text when Format is "text".
package logging
