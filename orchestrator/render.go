package orchestrator

import (
	"github.com/kevinsewell/serverless-plugin-colocate/tree"
)

// EffectiveFields lists the top-level fields shown by RenderEffective, in output order.
func EffectiveFields() []string {
	return []string{"custom", "functions", "layers", "package", "provider", "resources", "service", "stepFunctions"}
}

// RenderEffective renders the effective fields of configuration as YAML, leaving out empty ones.
func RenderEffective(configuration *tree.Map) ([]byte, error) {
	effective := tree.NewMap()

	for _, field := range EffectiveFields() {
		value, ok := configuration.Get(field)
		if ok && !tree.IsEmpty(value) {
			effective.Set(field, value)
		}
	}

	return tree.Marshal(effective)
}
