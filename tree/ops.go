package tree

// Clone returns a deep copy of node.
func Clone(node Node) Node {
	switch typed := node.(type) {
	case *Map:
		return typed.Clone()
	case *Sequence:
		items := make([]Node, 0, len(typed.Items))
		for _, item := range typed.Items {
			items = append(items, Clone(item))
		}

		return &Sequence{Items: items}
	case *Scalar:
		return &Scalar{Value: typed.Value}
	default:
		return Null{}
	}
}

// Clone returns a deep copy of the mapping.
func (m *Map) Clone() *Map {
	clone := NewMap()
	for _, key := range m.keys {
		clone.Set(key, Clone(m.values[key]))
	}

	return clone
}

// Truthy reports whether node counts as set: true booleans, non-empty strings,
// non-zero numbers and any mapping or sequence. Null is never truthy.
func Truthy(node Node) bool {
	switch typed := node.(type) {
	case *Map, *Sequence:
		return true
	case *Scalar:
		return truthyScalar(typed.Value)
	default:
		return false
	}
}

// IsEmpty reports whether node is null, an empty mapping, an empty sequence or an empty string.
func IsEmpty(node Node) bool {
	switch typed := node.(type) {
	case nil, Null:
		return true
	case *Map:
		return typed.Len() == 0
	case *Sequence:
		return typed.Len() == 0
	case *Scalar:
		text, ok := typed.Text()

		return typed.Value == nil || (ok && text == "")
	default:
		return false
	}
}

func truthyScalar(value any) bool {
	switch typed := value.(type) {
	case nil:
		return false
	case bool:
		return typed
	case string:
		return typed != ""
	case int:
		return typed != 0
	case int64:
		return typed != 0
	case uint64:
		return typed != 0
	case float64:
		return typed != 0
	default:
		return true
	}
}
