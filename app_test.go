package colocate_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	colocate "github.com/kevinsewell/serverless-plugin-colocate"
	"github.com/kevinsewell/serverless-plugin-colocate/logging"
	"github.com/kevinsewell/serverless-plugin-colocate/orchestrator"
	"github.com/kevinsewell/serverless-plugin-colocate/tree"
)

func writeService(t *testing.T, files map[string]string) string {
	t.Helper()

	root := t.TempDir()

	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}

	return root
}

func TestNewApp_MergesFragmentsOnStart(t *testing.T) {
	t.Parallel()

	root := writeService(t, map[string]string{
		"serverless.yml":              "service: demo\nprovider:\n  name: aws\n",
		"example/package1/config.yml": "functions:\n  hello:\n    handler: hello.handle\n",
	})

	app := colocate.NewApp(
		colocate.WithServicePath(root),
		colocate.WithLogOutput(&bytes.Buffer{}),
	)

	err := app.Start()
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Stop() })

	configuration, err := app.Configuration()
	require.NoError(t, err)

	handler, ok := configuration.Lookup("functions.hello.handler")
	require.True(t, ok)
	require.Equal(t, "example/package1/hello.handle", handler.(*tree.Scalar).Value)

	effective, err := app.Effective()
	require.NoError(t, err)
	require.Contains(t, string(effective), "example/package1/hello.handle")
}

func TestNewApp_MergeCompletesBeforeOtherModulesStart(t *testing.T) {
	t.Parallel()

	root := writeService(t, map[string]string{
		"api/config.yml": "custom:\n  table: users\n",
	})

	var seen string

	module := fx.Module("consumer",
		fx.Invoke(func(lifecycle fx.Lifecycle, service *orchestrator.Service) {
			lifecycle.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					configuration, err := service.Configuration()
					if err != nil {
						return err
					}

					table, _ := configuration.Lookup("custom.table")
					seen = table.(*tree.Scalar).Value.(string)

					return nil
				},
			})
		}),
	)

	app := colocate.NewApp(
		colocate.WithServicePath(root),
		colocate.WithLogOutput(&bytes.Buffer{}),
		colocate.WithModules(module),
	)

	err := app.Start()
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Stop() })
	require.Equal(t, "users", seen)
}

func TestNewApp_LoggerIsAvailableInFxContainer(t *testing.T) {
	t.Parallel()

	var capturedConfig logging.LoggerConfig

	module := fx.Module("test",
		fx.Invoke(func(config logging.LoggerConfig) {
			capturedConfig = config
		}),
	)

	app := colocate.NewApp(
		colocate.WithServicePath(t.TempDir()),
		colocate.WithLogLevel("warn"),
		colocate.WithLogFormat("text"),
		colocate.WithLogOutput(&bytes.Buffer{}),
		colocate.WithModules(module),
	)

	err := app.Start()
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Stop() })
	require.Equal(t, logging.LoggerConfig{Level: "warn", Format: "text"}, capturedConfig)
}

func TestNewApp_StartFailsOnMalformedFragment(t *testing.T) {
	t.Parallel()

	root := writeService(t, map[string]string{
		"broken/config.yml": "functions: [broken\n",
	})

	var logs bytes.Buffer

	app := colocate.NewApp(colocate.WithServicePath(root), colocate.WithLogOutput(&logs))

	err := app.Start()
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to start app")
	require.Contains(t, err.Error(), "broken/config.yml")
	require.Contains(t, logs.String(), "failed to merge configuration fragments")

	_, err = app.Effective()
	require.ErrorIs(t, err, orchestrator.ErrNotMerged)
}

func TestNewApp_IgnoredFragmentIsLogged(t *testing.T) {
	t.Parallel()

	root := writeService(t, map[string]string{
		"drafts/config.yml": "ignore: true\nfunctions:\n  foo:\n    handler: foo.handle\n",
	})

	var logs bytes.Buffer

	app := colocate.NewApp(colocate.WithServicePath(root), colocate.WithLogOutput(&logs))

	err := app.Start()
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Stop() })

	require.Contains(t, logs.String(), "colocate is ignoring fragment")

	configuration, err := app.Configuration()
	require.NoError(t, err)

	_, ok := configuration.Get("functions")
	require.False(t, ok)
}

func TestApp_Stop(t *testing.T) {
	t.Parallel()

	var stopCalled bool

	module := fx.Module("test",
		fx.Invoke(func(lc fx.Lifecycle) {
			lc.Append(fx.Hook{
				OnStop: func(_ context.Context) error {
					stopCalled = true

					return nil
				},
			})
		}),
	)

	app := colocate.NewApp(
		colocate.WithServicePath(t.TempDir()),
		colocate.WithLogOutput(&bytes.Buffer{}),
		colocate.WithModules(module),
	)

	require.NoError(t, app.Start())
	require.NoError(t, app.Stop())
	require.True(t, stopCalled, "OnStop hook should be called")
}

func TestApp_NilApp(t *testing.T) {
	t.Parallel()

	var app *colocate.App

	require.Error(t, app.Start())
	require.Error(t, app.Stop())

	_, err := app.Configuration()
	require.Error(t, err)

	_, err = app.Effective()
	require.Error(t, err)
}
