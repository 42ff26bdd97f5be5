package colocate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"github.com/kevinsewell/serverless-plugin-colocate/logging"
	"github.com/kevinsewell/serverless-plugin-colocate/orchestrator"
	"github.com/kevinsewell/serverless-plugin-colocate/tree"
)

var errAppNotInitialized = errors.New("app not initialized")

// App hosts the colocate merge pass in an Fx container.
// Starting the App merges every configuration fragment of the service directory.
type App struct {
	app     *fx.App
	service *orchestrator.Service
}

// NewApp creates a new instance of App with Fx configured.
func NewApp(opts ...Option) *App {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	app := &App{
		app:     nil,
		service: nil,
	}
	app.app = configure(&options, &app.service)

	return app
}

func configure(options *Options, service **orchestrator.Service) *fx.App {
	output := options.LogOutput
	if output == nil {
		output = os.Stderr
	}

	loggerConfig := logging.LoggerConfig{Level: options.LogLevel, Format: options.LogFormat}
	logger := createLogger(loggerConfig, output)
	slog.SetDefault(logger)

	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			fxLogger := &fxevent.SlogLogger{Logger: logger}
			fxLogger.UseLogLevel(slog.LevelDebug)

			return fxLogger
		}),
		fx.Supply(loggerConfig),
		fx.Supply(logger),
		fx.Supply(orchestrator.Config{ServicePath: options.ServicePath}),
		orchestrator.NewModule(),
		fx.Populate(service),
		fx.Options(options.Modules...),
	)
}

func createLogger(config logging.LoggerConfig, w io.Writer) *slog.Logger {
	return logging.NewLogger(config, w)
}

// Start starts the Fx application, which runs the merge pass.
func (app *App) Start() error {
	if app != nil && app.app != nil {
		err := app.app.Start(context.Background())
		if err != nil {
			return fmt.Errorf("failed to start app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

// Stop stops the Fx application gracefully.
func (app *App) Stop() error {
	if app != nil && app.app != nil {
		err := app.app.Stop(context.Background())
		if err != nil {
			return fmt.Errorf("failed to stop app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

// Configuration returns the merged service configuration. The App must be started.
func (app *App) Configuration() (*tree.Map, error) {
	if app == nil || app.service == nil {
		return nil, errAppNotInitialized
	}

	return app.service.Configuration()
}

// Effective renders the effective service configuration as YAML. The App must be started.
func (app *App) Effective() ([]byte, error) {
	if app == nil || app.service == nil {
		return nil, errAppNotInitialized
	}

	return app.service.Effective()
}
