package yamlbind

import (
	"maps"

	"github.com/reoring/yamlbind/internal/yamlnode"
	"go.yaml.in/yaml/v3"
)

// ScalarConstructor builds a Go value from a scalar node. The node's tag has
// already been resolved; use n.ShortTag() to read it.
type ScalarConstructor func(n *yaml.Node) (any, error)

// Constructors maps short tags ("!!int", "!!timestamp", ...) to scalar
// constructors for the untyped loader. Tags with no entry yield the raw scalar text.
type Constructors map[string]ScalarConstructor

// DefaultConstructors returns the engine's own scalar construction for the core tags.
// Timestamps become time.Time.
func DefaultConstructors() Constructors {
	return Constructors{
		"!!str":       constructString,
		"!!null":      constructNull,
		"!!bool":      constructEngine,
		"!!int":       constructEngine,
		"!!float":     constructEngine,
		"!!binary":    constructEngine,
		timestampTag: func(n *yaml.Node) (any, error) { return constructTimestamp(n) },
	}
}

// LocalConstructors returns DefaultConstructors with timestamps constructed as
// LocalDateTime (UTC projection).
func LocalConstructors() Constructors {
	return DefaultConstructors().With(timestampTag, func(n *yaml.Node) (any, error) {
		return constructLocalTimestamp(n)
	})
}

// With returns a copy of c with fn registered for tag. c is not modified.
func (c Constructors) With(tag string, fn ScalarConstructor) Constructors {
	out := make(Constructors, len(c)+1)
	maps.Copy(out, c)
	out[tag] = fn
	return out
}

func (c Constructors) lookup(tag string) yamlnode.ScalarFunc {
	fn, ok := c[tag]
	if !ok || fn == nil {
		return nil
	}
	return yamlnode.ScalarFunc(fn)
}

func constructString(n *yaml.Node) (any, error) { return n.Value, nil }

func constructNull(*yaml.Node) (any, error) { return nil, nil }

// constructEngine defers to the engine's resolution for the node's tag.
func constructEngine(n *yaml.Node) (any, error) {
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
