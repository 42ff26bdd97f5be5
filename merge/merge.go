package merge

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/kevinsewell/serverless-plugin-colocate/tree"
)

// Engine merges fragments into a target configuration.
type Engine struct {
	logger *slog.Logger
}

// NewEngine creates an Engine logging overwrites to logger.
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}

	return &Engine{logger: logger}
}

// Apply merges source into target. The origin names the fragment in log records.
// Source nodes are copied; target never shares nodes with source afterwards.
func (e *Engine) Apply(target, source *tree.Map, origin string) {
	e.mergeMap(pass{origin: origin}, target, source)
}

// pass carries the position inside the document being merged.
type pass struct {
	origin string
	path   []string
}

func (p pass) child(key string) pass {
	path := make([]string, len(p.path), len(p.path)+1)
	copy(path, p.path)

	return pass{origin: p.origin, path: append(path, key)}
}

func (p pass) String() string {
	return strings.Join(p.path, ".")
}

func (e *Engine) mergeMap(at pass, target, source *tree.Map) {
	for _, key := range source.Keys() {
		value, _ := source.Get(key)
		existing, _ := target.Get(key)

		merged, ok := e.merge(at.child(key), existing, value)
		if ok {
			target.Set(key, merged)
		}
	}
}

func (e *Engine) mergeSequence(at pass, target, source *tree.Sequence) {
	// only elements present before this merge take part in positional merging
	existingLen := target.Len()

	for index, item := range source.Items {
		if mapping, ok := item.(*tree.Map); ok && index < existingLen {
			if existing, ok := target.Items[index].(*tree.Map); ok {
				e.mergeMap(at.child(strconv.Itoa(index)), existing, mapping)

				continue
			}
		}

		merged, ok := e.merge(at.child(strconv.Itoa(target.Len())), nil, item)
		if ok {
			target.Append(merged)
		}
	}
}

// merge returns the node to store at the current path; false means nothing is stored.
func (e *Engine) merge(at pass, existing, value tree.Node) (tree.Node, bool) {
	switch source := value.(type) {
	case *tree.Map:
		target, ok := existing.(*tree.Map)
		if !ok {
			e.replaced(at, existing, source)
			target = tree.NewMap()
		}

		e.mergeMap(at, target, source)

		return target, true
	case *tree.Sequence:
		target, ok := existing.(*tree.Sequence)
		if !ok {
			e.replaced(at, existing, source)
			target = tree.NewSequence()
		}

		e.mergeSequence(at, target, source)

		return target, true
	case *tree.Scalar:
		if previous, ok := existing.(*tree.Scalar); !ok || !sameScalar(previous, source) {
			e.replaced(at, existing, source)
		}

		return tree.NewScalar(source.Value), true
	default:
		return nil, false
	}
}

func (e *Engine) replaced(at pass, existing, value tree.Node) {
	if existing == nil || existing.Kind() == tree.KindNull {
		return
	}

	e.logger.Info("overwriting configuration value",
		slog.String("path", at.String()),
		slog.String("previous", describe(existing)),
		slog.String("value", describe(value)),
		slog.String("fragment", at.origin),
	)
}

func describe(node tree.Node) string {
	if scalar, ok := node.(*tree.Scalar); ok {
		return scalar.String()
	}

	return node.Kind().String()
}

func sameScalar(a, b *tree.Scalar) bool {
	return fmt.Sprintf("%T:%v", a.Value, a.Value) == fmt.Sprintf("%T:%v", b.Value, b.Value)
}
