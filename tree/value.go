package tree

import (
	"errors"
	"fmt"
	"sort"

	"github.com/goccy/go-yaml"
)

// ErrNotMapping is returned when a document root is expected to be a mapping but is not.
var ErrNotMapping = errors.New("document is not a mapping")

// FromValue converts a decoded YAML value into a Node.
func FromValue(value any) Node {
	switch typed := value.(type) {
	case nil:
		return Null{}
	case Node:
		return typed
	case yaml.MapSlice:
		mapping := NewMap()
		for _, item := range typed {
			mapping.Set(keyString(item.Key), FromValue(item.Value))
		}

		return mapping
	case map[string]any:
		mapping := NewMap()
		for _, key := range sortedKeys(typed) {
			mapping.Set(key, FromValue(typed[key]))
		}

		return mapping
	case map[any]any:
		converted := make(map[string]any, len(typed))
		for key, item := range typed {
			converted[keyString(key)] = item
		}

		return FromValue(converted)
	case []any:
		sequence := NewSequence()
		for _, item := range typed {
			sequence.Append(FromValue(item))
		}

		return sequence
	default:
		return NewScalar(typed)
	}
}

// MapFromValue converts a decoded YAML document into a mapping.
// A nil document yields an empty mapping.
func MapFromValue(value any) (*Map, error) {
	switch node := FromValue(value).(type) {
	case Null:
		return NewMap(), nil
	case *Map:
		return node, nil
	default:
		return nil, fmt.Errorf("%w: got %s", ErrNotMapping, node.Kind())
	}
}

// ToValue converts a Node into a value that goccy/go-yaml marshals with key order preserved.
func ToValue(node Node) any {
	switch typed := node.(type) {
	case *Map:
		slice := make(yaml.MapSlice, 0, typed.Len())
		for _, key := range typed.keys {
			slice = append(slice, yaml.MapItem{Key: key, Value: ToValue(typed.values[key])})
		}

		return slice
	case *Sequence:
		items := make([]any, 0, len(typed.Items))
		for _, item := range typed.Items {
			items = append(items, ToValue(item))
		}

		return items
	case *Scalar:
		return typed.Value
	default:
		return nil
	}
}

// Plain converts a Node into plain Go maps and slices. Key order is lost.
func Plain(node Node) any {
	switch typed := node.(type) {
	case *Map:
		result := make(map[string]any, typed.Len())
		for _, key := range typed.keys {
			result[key] = Plain(typed.values[key])
		}

		return result
	case *Sequence:
		items := make([]any, 0, len(typed.Items))
		for _, item := range typed.Items {
			items = append(items, Plain(item))
		}

		return items
	case *Scalar:
		return typed.Value
	default:
		return nil
	}
}

// Marshal renders a Node as YAML.
func Marshal(node Node) ([]byte, error) {
	data, err := yaml.Marshal(ToValue(node))
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return data, nil
}

func keyString(key any) string {
	if text, ok := key.(string); ok {
		return text
	}

	return fmt.Sprint(key)
}

func sortedKeys(values map[string]any) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
