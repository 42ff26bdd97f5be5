package orchestrator

import (
	"context"
	"errors"
	"log/slog"

	"go.uber.org/fx"

	yamlparser "github.com/kevinsewell/serverless-plugin-colocate/config/parser/yaml"
	"github.com/kevinsewell/serverless-plugin-colocate/tree"
)

// ErrNotMerged is returned when the merged configuration is requested before the pass ran.
var ErrNotMerged = errors.New("configuration fragments have not been merged")

// Config holds the host settings for the merge pass.
type Config struct {
	ServicePath string
}

// Service runs the merge pass for the host and keeps its result.
type Service struct {
	config        Config
	logger        *slog.Logger
	parser        *yamlparser.Parser
	definition    *Definition
	configuration *tree.Map
}

// NewService creates a Service for the service directory in cfg.
func NewService(cfg Config, logger *slog.Logger) *Service {
	if cfg.ServicePath == "" {
		cfg.ServicePath = "."
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		config:        cfg,
		logger:        logger,
		parser:        yamlparser.NewParser(),
		definition:    nil,
		configuration: nil,
	}
}

// Start runs the merge pass. Every call starts from the service file again.
func (s *Service) Start(_ context.Context) error {
	definition, err := LoadDefinition(s.config.ServicePath, s.parser)
	if err != nil {
		s.logger.Error("failed to load service definition", "path", s.config.ServicePath, "error", err)

		return err
	}

	configuration, err := New(s.logger, s.parser).Run(definition.Root, definition.Document, definition.Settings)
	if err != nil {
		s.logger.Error("failed to merge configuration fragments", "path", definition.Root, "error", err)

		return err
	}

	s.definition = definition
	s.configuration = configuration

	return nil
}

// Definition returns the root service file the pass started from.
func (s *Service) Definition() (*Definition, error) {
	if s.definition == nil {
		return nil, ErrNotMerged
	}

	return s.definition, nil
}

// Configuration returns a copy of the merged service configuration.
func (s *Service) Configuration() (*tree.Map, error) {
	if s.configuration == nil {
		return nil, ErrNotMerged
	}

	return s.configuration.Clone(), nil
}

// Effective renders the effective fields of the merged configuration.
func (s *Service) Effective() ([]byte, error) {
	if s.configuration == nil {
		return nil, ErrNotMerged
	}

	return RenderEffective(s.configuration)
}

// NewModule creates the Fx module running the merge pass on start.
// Config and *slog.Logger must be available in the container.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule() fx.Option {
	return fx.Module("colocate",
		fx.Provide(NewService),
		fx.Invoke(func(lifecycle fx.Lifecycle, service *Service) {
			lifecycle.Append(fx.Hook{
				OnStart: service.Start,
				OnStop:  nil,
			})
		}),
	)
}
