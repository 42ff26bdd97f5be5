package fragment_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	filefetcher "github.com/kevinsewell/serverless-plugin-colocate/config/fetcher/file"
	yamlparser "github.com/kevinsewell/serverless-plugin-colocate/config/parser/yaml"
	"github.com/kevinsewell/serverless-plugin-colocate/fragment"
	"github.com/kevinsewell/serverless-plugin-colocate/internal/pathutil"
	"github.com/kevinsewell/serverless-plugin-colocate/tree"
)

func writeFile(t *testing.T, root, name, content string) string {
	t.Helper()

	path := filepath.Join(root, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestNewPath(t *testing.T) {
	t.Parallel()

	root := t.TempDir()

	path, err := fragment.NewPath(filepath.Join(root, "example", "package1", "config.yml"), root)
	require.NoError(t, err)
	assert.Equal(t, "example/package1", path.RelativeDir)
	assert.Equal(t, "example/package1/config.yml", path.Name)

	path, err = fragment.NewPath(filepath.Join(root, "config.yml"), root)
	require.NoError(t, err)
	assert.Empty(t, path.RelativeDir)
	assert.Equal(t, "config.yml", path.Name)
}

func TestNewPath_OutsideRoot(t *testing.T) {
	t.Parallel()

	_, err := fragment.NewPath(filepath.Join(t.TempDir(), "config.yml"), t.TempDir())

	var pathErr *pathutil.InvalidPathError
	require.ErrorAs(t, err, &pathErr)
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	file := writeFile(t, root, "example/package1/config.yml", `
functions:
  hello:
    handler: hello.handle
`)

	path, err := fragment.NewPath(file, root)
	require.NoError(t, err)

	loaded, err := fragment.NewLoader(yamlparser.NewParser()).Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, loaded.Path)

	handler, ok := loaded.Document.Lookup("functions.hello.handler")
	require.True(t, ok)
	assert.Equal(t, "hello.handle", handler.(*tree.Scalar).Value)
}

func TestLoader_Load_Vanished(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	file := writeFile(t, root, "a/config.yml", "service: demo\n")

	path, err := fragment.NewPath(file, root)
	require.NoError(t, err)
	require.NoError(t, os.Remove(file))

	loaded, err := fragment.NewLoader(yamlparser.NewParser()).Load(path)

	assert.Nil(t, loaded)

	var notFound *filefetcher.NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "a/config.yml")
}

func TestLoader_Load_Malformed(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	file := writeFile(t, root, "broken/config.yml", "functions: [unterminated\n")

	path, err := fragment.NewPath(file, root)
	require.NoError(t, err)

	_, err = fragment.NewLoader(yamlparser.NewParser()).Load(path)

	var parseErr *yamlparser.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, file, parseErr.Path)
}

func TestLoader_Load_EmptyFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	file := writeFile(t, root, "empty/config.yml", "")

	path, err := fragment.NewPath(file, root)
	require.NoError(t, err)

	loaded, err := fragment.NewLoader(yamlparser.NewParser()).Load(path)

	require.NoError(t, err)
	assert.Equal(t, 0, loaded.Document.Len())
	assert.False(t, loaded.IsIgnored())
}

func TestFragment_IsIgnored(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		document *tree.Map
		expected bool
	}{
		{"absent", tree.NewMap(), false},
		{"true", tree.NewMap().Set("ignore", tree.NewScalar(true)), true},
		{"false", tree.NewMap().Set("ignore", tree.NewScalar(false)), false},
		{"null", tree.NewMap().Set("ignore", tree.Null{}), false},
		{"non-empty string", tree.NewMap().Set("ignore", tree.String("yes")), true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			loaded := &fragment.Fragment{Document: testCase.document}
			assert.Equal(t, testCase.expected, loaded.IsIgnored())
		})
	}
}

func TestFragment_StripIgnore(t *testing.T) {
	t.Parallel()

	loaded := &fragment.Fragment{
		Document: tree.NewMap().
			Set("ignore", tree.NewScalar(false)).
			Set("service", tree.String("demo")),
	}

	loaded.StripIgnore()

	assert.Equal(t, []string{"service"}, loaded.Document.Keys())
}
