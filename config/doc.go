// Package config provides the colocate settings and the generic machinery used to read them.
//
// The package uses an interface-based design with four extension points:
//   - Parser: deserializes raw data into a struct, with path navigation support
//   - DataFetcher: retrieves raw data (the root service file)
//   - Validator: validates the struct after parsing
//   - Defaulter: applies default values before validation
//
// Settings implements Defaulter and Validator. It is read from the "custom:colocate"
// section of the root service file:
//
//	provider := config.Provider(&config.Settings{}, config.SettingsPath)
//	settings, err := provider(yamlparser.NewParser(), fetcher)
//
// Unset pattern lists fall back to DefaultIncludePatterns and DefaultExcludePatterns.
package config
