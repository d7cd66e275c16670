package yamlbind

import (
	"fmt"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"go.yaml.in/yaml/v3"
)

const timestampTag = "!!timestamp"

// MarshalYAML emits the date part only, as a yyyy-MM-dd timestamp scalar.
func (l LocalDateTime) MarshalYAML() (any, error) {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: timestampTag, Value: l.Date()}, nil
}

// UnmarshalYAML accepts timestamp scalars only. The engine resolves the scalar to
// an instant, which is then projected onto the UTC calendar.
func (l *LocalDateTime) UnmarshalYAML(n *yaml.Node) error {
	v, err := constructLocalTimestamp(n)
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// MarshalJSON emits the ISO local date-time string.
func (l LocalDateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON reads any form ParseLocalDateTime accepts. null leaves l unchanged.
func (l *LocalDateTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseLocalDateTime(s)
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// constructLocalTimestamp is the timestamp override shared by the typed and
// untyped loaders. Errors are *yaml.TypeError so the engine aggregates them with
// its own binding errors.
func constructLocalTimestamp(n *yaml.Node) (LocalDateTime, error) {
	if n.Kind != yaml.ScalarNode || n.ShortTag() != timestampTag {
		return LocalDateTime{}, &yaml.TypeError{Errors: []string{
			fmt.Sprintf("line %d: cannot unmarshal %s `%s` into yamlbind.LocalDateTime", n.Line, n.ShortTag(), n.Value),
		}}
	}
	t, err := constructTimestamp(n)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTimeOf(t), nil
}

// constructTimestamp runs the engine's own timestamp resolution.
func constructTimestamp(n *yaml.Node) (time.Time, error) {
	var t time.Time
	if err := n.Decode(&t); err != nil {
		if _, ok := err.(*yaml.TypeError); ok {
			return time.Time{}, err
		}
		return time.Time{}, &yaml.TypeError{Errors: []string{
			fmt.Sprintf("line %d: %s", n.Line, strings.TrimPrefix(err.Error(), "yaml: ")),
		}}
	}
	return t, nil
}
