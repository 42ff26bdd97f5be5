package tree

import (
	"fmt"
	"strings"
)

// Kind identifies the variant of a Node.
type Kind int

const (
	KindNull Kind = iota
	KindScalar
	KindSequence
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMap:
		return "mapping"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Node is a value in a configuration document.
type Node interface {
	Kind() Kind
	node()
}

// Null is an explicit null value.
type Null struct{}

func (Null) Kind() Kind { return KindNull }
func (Null) node()      {}

// Scalar holds a string, number or boolean.
type Scalar struct {
	Value any
}

// NewScalar wraps a scalar value.
func NewScalar(value any) *Scalar {
	return &Scalar{Value: value}
}

// String returns a string scalar.
func String(value string) *Scalar {
	return &Scalar{Value: value}
}

func (*Scalar) Kind() Kind { return KindScalar }
func (*Scalar) node()      {}

// Text returns the string value and whether the scalar holds a string.
func (s *Scalar) Text() (string, bool) {
	text, ok := s.Value.(string)

	return text, ok
}

func (s *Scalar) String() string {
	return fmt.Sprint(s.Value)
}

// Sequence is an ordered list of nodes.
type Sequence struct {
	Items []Node
}

// NewSequence creates a sequence holding items.
func NewSequence(items ...Node) *Sequence {
	return &Sequence{Items: items}
}

func (*Sequence) Kind() Kind { return KindSequence }
func (*Sequence) node()      {}

// Len returns the number of items.
func (s *Sequence) Len() int {
	return len(s.Items)
}

// Append adds an item to the end of the sequence.
func (s *Sequence) Append(item Node) {
	s.Items = append(s.Items, item)
}

// Map is a mapping from string keys to nodes that remembers insertion order.
type Map struct {
	keys   []string
	values map[string]Node
}

// NewMap creates an empty mapping.
func NewMap() *Map {
	return &Map{
		keys:   nil,
		values: make(map[string]Node),
	}
}

func (*Map) Kind() Kind { return KindMap }
func (*Map) node()      {}

// Len returns the number of keys.
func (m *Map) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)

	return keys
}

// Get returns the node stored under key.
func (m *Map) Get(key string) (Node, bool) {
	value, ok := m.values[key]

	return value, ok
}

// Set stores value under key. Existing keys keep their position.
func (m *Map) Set(key string, value Node) *Map {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}

	m.values[key] = value

	return m
}

// Delete removes key and reports whether it was present.
func (m *Map) Delete(key string) bool {
	if _, exists := m.values[key]; !exists {
		return false
	}

	delete(m.values, key)

	for i, existing := range m.keys {
		if existing == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)

			break
		}
	}

	return true
}

// Map returns the mapping stored under key, if key holds one.
func (m *Map) Map(key string) (*Map, bool) {
	value, ok := m.values[key]
	if !ok {
		return nil, false
	}

	child, ok := value.(*Map)

	return child, ok
}

// Lookup follows a dot separated path of mapping keys, e.g. "provider.environment".
func (m *Map) Lookup(path string) (Node, bool) {
	var current Node = m

	for _, key := range strings.Split(path, ".") {
		mapping, ok := current.(*Map)
		if !ok {
			return nil, false
		}

		current, ok = mapping.Get(key)
		if !ok {
			return nil, false
		}
	}

	return current, true
}
