package orchestrator

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kevinsewell/serverless-plugin-colocate/config"
	filefetcher "github.com/kevinsewell/serverless-plugin-colocate/config/fetcher/file"
	yamlparser "github.com/kevinsewell/serverless-plugin-colocate/config/parser/yaml"
	"github.com/kevinsewell/serverless-plugin-colocate/tree"
)

// ServiceFileNames lists the root service file names in lookup order.
func ServiceFileNames() []string {
	return []string{"serverless.yml", "serverless.yaml"}
}

// Definition is the root service file of a service directory.
type Definition struct {
	// Root is the absolute service root.
	Root string
	// File is the service file path, empty when the directory has none.
	File     string
	Document *tree.Map
	Settings config.Settings
}

// LoadDefinition reads the service file beneath root.
// A directory without a service file yields an empty document and default settings.
func LoadDefinition(root string, parser *yamlparser.Parser) (*Definition, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving service root %q: %w", root, err)
	}

	definition := &Definition{
		Root:     absRoot,
		File:     "",
		Document: tree.NewMap(),
		Settings: config.Settings{},
	}

	file, err := findServiceFile(absRoot)
	if err != nil {
		return nil, err
	}

	if file == "" {
		definition.Settings.SetDefaults()

		return definition, nil
	}

	fetcher, err := filefetcher.NewFetcher(file)()
	if err != nil {
		return nil, fmt.Errorf("reading service file: %w", err)
	}

	data, err := fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("reading service file: %w", err)
	}

	definition.File = file

	definition.Document, err = parser.ParseDocument(file, data)
	if err != nil {
		return nil, err
	}

	settings, err := config.Provider(&config.Settings{}, config.SettingsPath)(parser, fetcher)

	switch {
	case errors.Is(err, yamlparser.ErrPathNotFound), errors.Is(err, yamlparser.ErrEmptyData):
		definition.Settings.SetDefaults()
	case err != nil:
		return nil, fmt.Errorf("reading colocate settings from %q: %w", file, err)
	default:
		definition.Settings = *settings
	}

	return definition, nil
}

func findServiceFile(root string) (string, error) {
	for _, name := range ServiceFileNames() {
		candidate := filepath.Join(root, name)

		info, err := os.Stat(candidate)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}

		if err != nil {
			return "", fmt.Errorf("stat service file %q: %w", candidate, err)
		}

		if !info.IsDir() {
			return candidate, nil
		}
	}

	return "", nil
}
