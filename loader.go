package yamlbind

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/reoring/yamlbind/internal/yamlnode"
	"go.yaml.in/yaml/v3"
)

// DuplicateKeyError reports a key repeated within one mapping (untyped loading).
type DuplicateKeyError = yamlnode.DuplicateKeyError

// RecursiveAliasError reports an alias whose anchored value contains the alias itself.
type RecursiveAliasError = yamlnode.RecursiveAliasError

// ErrExcessiveAliasing is reported (inside a ParseError) when the aliases of a
// document expand to far more nodes than the document spells out.
var ErrExcessiveAliasing = yamlnode.ErrExcessiveAliasing

// LoadAs parses text as a single YAML document and binds it to a new T. Fields
// of type LocalDateTime accept timestamp scalars only. On error the zero T is
// returned; no partial results.
//
// Empty input (no document) yields the zero T and a nil error. Multiple opts
// are merged, later non-zero fields winning. Duplicate mapping keys are
// reported as a ParseError.
func LoadAs[T any](text string, opts ...LoadOpt) (T, error) {
	var out T
	if err := LoadInto(text, &out, opts...); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// LoadInto is LoadAs for a caller-supplied pointer.
func LoadInto(text string, out any, opts ...LoadOpt) error {
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &BindingError{Issues: Issues{{
			Path:    "/",
			Code:    CodeInvalidType,
			Message: fmt.Sprintf("load target must be a non-nil pointer, got %T", out),
		}}}
	}
	opt := mergeLoadOpts(opts)
	dec := yaml.NewDecoder(strings.NewReader(text))
	dec.KnownFields(opt.Unknown == UnknownStrict)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return classifyLoadError(err)
	}
	return expectEnd(dec)
}

// Load parses text as a single YAML document into JSON-like values
// (map[string]any, []any, scalars). Scalars are built by opt.Constructors,
// LocalConstructors() when unset, so timestamps become LocalDateTime by default.
// Multiple opts are merged like LoadAs. Duplicate keys and alias expansion
// beyond the engine's budget (ErrExcessiveAliasing) fail with a ParseError.
func Load(text string, opts ...LoadOpt) (any, error) {
	opt := mergeLoadOpts(opts)
	ctors := opt.Constructors
	if ctors == nil {
		ctors = LocalConstructors()
	}
	dec := yaml.NewDecoder(strings.NewReader(text))
	var doc yaml.Node
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, classifyLoadError(err)
	}
	if err := expectEnd(dec); err != nil {
		return nil, err
	}
	v, err := yamlnode.ToValue(&doc, ctors.lookup)
	if err != nil {
		return nil, classifyLoadError(err)
	}
	return v, nil
}

// ToJSON loads text like Load and renders the result as JSON. LocalDateTime
// values become ISO local date-time strings.
func ToJSON(text string, opts ...LoadOpt) ([]byte, error) {
	v, err := Load(text, opts...)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, representationError(err)
	}
	return b, nil
}

// expectEnd fails when the stream holds another document.
func expectEnd(dec *yaml.Decoder) error {
	var extra yaml.Node
	err := dec.Decode(&extra)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return classifyLoadError(err)
	}
	return &ParseError{Issues: Issues{{
		Code:    CodeParseError,
		Message: "expected a single document in the stream",
		Line:    extra.Line,
		Column:  extra.Column,
	}}}
}
