// Package orchestrator runs the colocate merge pass.
//
// A pass reads the root service file (serverless.yml, or serverless.yaml), takes the
// colocate settings from its custom.colocate block, discovers fragment files beneath
// the service root and, in discovery order, loads each one, skips it when ignored,
// rewrites its handler and artifact locations and merges it into a copy of the root
// service document. The merged document is owned by the pass until Run returns it.
//
// NewModule registers the pass as an fx OnStart hook so it completes before the rest
// of the application looks at the configuration. The resulting Service hands the
// merged configuration, and its effective rendering, to the host.
//
// Errors abort the pass: a fragment outside the root (*pathutil.InvalidPathError), a
// malformed fragment (*yaml.ParseError), a fragment that vanished after discovery
// (*file.NotFoundError) or a function without a handler (*fragment.MissingHandlerError).
package orchestrator
