package colocate

import (
	"io"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules     []fx.Option
	ServicePath string
	LogLevel    string
	LogFormat   string
	LogOutput   io.Writer
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
// Modules may depend on *orchestrator.Service; its configuration is merged once the App starts.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithServicePath sets the service root directory. Defaults to the working directory.
func WithServicePath(path string) Option {
	return func(opts *Options) {
		opts.ServicePath = path
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat sets the log format, "json" (default) or "text".
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

// WithLogOutput sets where log records are written. Defaults to stderr.
func WithLogOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.LogOutput = w
	}
}
