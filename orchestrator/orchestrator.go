package orchestrator

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/kevinsewell/serverless-plugin-colocate/config"
	"github.com/kevinsewell/serverless-plugin-colocate/filter"
	"github.com/kevinsewell/serverless-plugin-colocate/fragment"
	"github.com/kevinsewell/serverless-plugin-colocate/merge"
	"github.com/kevinsewell/serverless-plugin-colocate/tree"
)

// Orchestrator discovers fragments and merges them into a service configuration.
type Orchestrator struct {
	logger *slog.Logger
	loader *fragment.Loader
}

// New creates an Orchestrator decoding fragments with parser.
func New(logger *slog.Logger, parser fragment.DocumentParser) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}

	return &Orchestrator{
		logger: logger,
		loader: fragment.NewLoader(parser),
	}
}

// Run merges every fragment selected by settings beneath root into a copy of base
// and returns the merged configuration. Base is not modified.
func (o *Orchestrator) Run(root string, base *tree.Map, settings config.Settings) (*tree.Map, error) {
	logger := o.logger.With(slog.String("pass", uuid.NewString()))
	engine := merge.NewEngine(logger)

	files, err := filter.Discover(root, filter.Build(settings))
	if err != nil {
		return nil, fmt.Errorf("discovering fragments: %w", err)
	}

	logger.Info("merging configuration fragments", slog.String("root", root), slog.Int("fragments", len(files)))

	configuration := tree.NewMap()
	if base != nil {
		configuration = base.Clone()
	}

	for _, name := range files {
		path, err := fragment.NewPath(filepath.Join(root, filepath.FromSlash(name)), root)
		if err != nil {
			return nil, fmt.Errorf("fragment %s: %w", name, err)
		}

		loaded, err := o.loader.Load(path)
		if err != nil {
			return nil, err
		}

		if loaded.IsIgnored() {
			logger.Info("colocate is ignoring fragment", slog.String("fragment", path.Name))

			continue
		}

		loaded.StripIgnore()

		err = loaded.Rewrite()
		if err != nil {
			return nil, fmt.Errorf("rewriting fragment %s: %w", path.Name, err)
		}

		engine.Apply(configuration, loaded.Document, path.Name)

		logger.Debug("fragment applied", slog.String("fragment", path.Name))
	}

	return configuration, nil
}
