package yamlnode

import (
	"errors"
	"fmt"

	"go.yaml.in/yaml/v3"
)

// ScalarFunc constructs a Go value from a scalar node whose tag has been resolved.
type ScalarFunc func(n *yaml.Node) (any, error)

// Lookup returns the constructor registered for a short tag (e.g. "!!int"), or nil.
type Lookup func(tag string) ScalarFunc

const mergeTag = "!!merge"

// DuplicateKeyError reports a duplicate key found in a YAML mapping with both
// the first occurrence position and the duplicate occurrence position.
type DuplicateKeyError struct {
	Key       string
	FirstLine int
	FirstCol  int
	Line      int
	Col       int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate YAML key %q at %d:%d (first at %d:%d)", e.Key, e.Line, e.Col, e.FirstLine, e.FirstCol)
}

// RecursiveAliasError reports an alias that refers to a node still being built.
type RecursiveAliasError struct {
	Anchor string
	Line   int
}

func (e *RecursiveAliasError) Error() string {
	return fmt.Sprintf("line %d: anchor %q value contains itself", e.Line, e.Anchor)
}

// ErrExcessiveAliasing reports a document whose aliases expand to far more nodes
// than it spells out.
var ErrExcessiveAliasing = errors.New("yaml: document contains excessive aliasing")

// Alias expansion budget, the same ratios the engine applies when decoding into
// Go values.
const (
	aliasRatioRangeLow  = 400000
	aliasRatioRangeHigh = 4000000
	aliasRatioRange     = float64(aliasRatioRangeHigh - aliasRatioRangeLow)
)

func allowedAliasRatio(built int) float64 {
	switch {
	case built <= aliasRatioRangeLow:
		return 0.99
	case built >= aliasRatioRangeHigh:
		return 0.10
	default:
		return 0.99 - 0.89*(float64(built-aliasRatioRangeLow)/aliasRatioRange)
	}
}

// ToValue converts a node tree into JSON-like Go values (map[string]any, []any,
// scalars). Scalars are built by the constructor lookup returns for their tag;
// tags without a constructor yield the raw scalar text.
func ToValue(n *yaml.Node, lookup Lookup) (any, error) {
	w := &walker{lookup: lookup, active: make(map[*yaml.Node]bool)}
	return w.value(n)
}

type walker struct {
	lookup Lookup
	// nodes currently being converted, used to reject self-referencing aliases
	active map[*yaml.Node]bool

	built      int // nodes visited
	viaAlias   int // nodes visited below an alias
	aliasDepth int
}

func (w *walker) value(n *yaml.Node) (any, error) {
	w.built++
	if w.aliasDepth > 0 {
		w.viaAlias++
	}
	if w.viaAlias > 100 && w.built > 1000 && float64(w.viaAlias)/float64(w.built) > allowedAliasRatio(w.built) {
		return nil, ErrExcessiveAliasing
	}
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return w.value(n.Content[0])
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, nil
		}
		if w.active[n.Alias] {
			return nil, &RecursiveAliasError{Anchor: n.Value, Line: n.Line}
		}
		w.aliasDepth++
		defer func() { w.aliasDepth-- }()
		return w.value(n.Alias)
	case yaml.MappingNode:
		w.active[n] = true
		defer delete(w.active, n)
		return w.mapping(n)
	case yaml.SequenceNode:
		w.active[n] = true
		defer delete(w.active, n)
		arr := make([]any, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := w.value(c)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.ScalarNode:
		if fn := w.lookup(n.ShortTag()); fn != nil {
			return fn(n)
		}
		return n.Value, nil
	default:
		return nil, nil
	}
}

func (w *walker) mapping(n *yaml.Node) (map[string]any, error) {
	m := make(map[string]any, len(n.Content)/2)
	first := make(map[string][2]int, len(n.Content)/2)
	var merged []map[string]any
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := n.Content[i]
		v := n.Content[i+1]
		if k.Kind == yaml.ScalarNode && k.ShortTag() == mergeTag {
			srcs, err := w.mergeSources(v)
			if err != nil {
				return nil, err
			}
			merged = append(merged, srcs...)
			continue
		}
		if k.Kind != yaml.ScalarNode {
			return nil, &yaml.TypeError{Errors: []string{fmt.Sprintf("line %d: mapping keys must be scalars", k.Line)}}
		}
		key := k.Value
		if pos, dup := first[key]; dup {
			return nil, &DuplicateKeyError{Key: key, FirstLine: pos[0], FirstCol: pos[1], Line: k.Line, Col: k.Column}
		}
		first[key] = [2]int{k.Line, k.Column}
		val, err := w.value(v)
		if err != nil {
			return nil, err
		}
		m[key] = val
	}
	// Explicit keys win over merged ones; earlier merge sources win over later ones.
	for _, src := range merged {
		for k, v := range src {
			if _, ok := m[k]; !ok {
				m[k] = v
			}
		}
	}
	return m, nil
}

// mergeSources resolves the value of a "<<" key: a mapping, an alias to one, or a
// sequence of those.
func (w *walker) mergeSources(v *yaml.Node) ([]map[string]any, error) {
	target := v
	if target.Kind == yaml.AliasNode && target.Alias != nil {
		target = target.Alias
	}
	switch target.Kind {
	case yaml.MappingNode:
		val, err := w.value(v)
		if err != nil {
			return nil, err
		}
		m, _ := val.(map[string]any)
		return []map[string]any{m}, nil
	case yaml.SequenceNode:
		out := make([]map[string]any, 0, len(target.Content))
		for _, c := range target.Content {
			inner := c
			if inner.Kind == yaml.AliasNode && inner.Alias != nil {
				inner = inner.Alias
			}
			if inner.Kind != yaml.MappingNode {
				return nil, mergeError(c)
			}
			val, err := w.value(c)
			if err != nil {
				return nil, err
			}
			m, _ := val.(map[string]any)
			out = append(out, m)
		}
		return out, nil
	default:
		return nil, mergeError(v)
	}
}

func mergeError(n *yaml.Node) error {
	return &yaml.TypeError{Errors: []string{fmt.Sprintf("line %d: map merge requires map or sequence of maps as the value", n.Line)}}
}
