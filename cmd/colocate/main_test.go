package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func TestEffective(t *testing.T) {
	t.Parallel()

	root := writeService(t, map[string]string{
		"serverless.yml":              "service: demo\nplugins:\n  - serverless-plugin-colocate\n",
		"example/package1/config.yml": "functions:\n  hello:\n    handler: hello.handle\n",
	})

	var stdout, stderr bytes.Buffer

	err := newApp(&stdout, &stderr).Run([]string{"colocate", "--path", root, "effective"})
	require.NoError(t, err)

	expected := "Effective serverless.yml:\n" +
		"functions:\n" +
		"  hello:\n" +
		"    handler: example/package1/hello.handle\n" +
		"service: demo\n"
	assert.Equal(t, expected, stdout.String())
	assert.NotContains(t, stdout.String(), "plugins")
}

func TestEffective_Failure(t *testing.T) {
	t.Parallel()

	root := writeService(t, map[string]string{
		"api/config.yml": "functions:\n  broken:\n    timeout: 6\n",
	})

	var stdout, stderr bytes.Buffer

	err := newApp(&stdout, &stderr).Run([]string{"colocate", "-p", root, "effective"})
	require.Error(t, err)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "failed to merge configuration fragments")
}

func TestNoCommandPrintsHelp(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer

	err := newApp(&stdout, &stderr).Run([]string{"colocate"})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Colocate your configuration and code")
	assert.Contains(t, stdout.String(), "effective")
}
