package orchestrator_test

import "github.com/kevinsewell/serverless-plugin-colocate/config"

func defaultSettings() config.Settings {
	var settings config.Settings

	settings.SetDefaults()

	return settings
}
