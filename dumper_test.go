package yamlbind_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	yamlbind "github.com/reoring/yamlbind"
	"github.com/reoring/yamlbind/model"
	"go.yaml.in/yaml/v3"
)

func createServer() model.Server {
	item := func(id, key string) model.Item {
		return model.Item{
			ItemID:    id,
			Key:       key,
			StartDate: yamlbind.NewLocalDateTime(2016, time.May, 1, 0, 0, 0, 0),
			EndDate:   yamlbind.NewLocalDateTime(2016, time.May, 31, 0, 0, 0, 0),
		}
	}
	return model.Server{
		Name: "server1",
		Hosts: []model.Host{{
			HostID: "1",
			Name:   "host1",
			Items:  []model.Item{item("1", "item1"), item("2", "item2")},
		}},
	}
}

func TestDump_DateOnlyScalars(t *testing.T) {
	out, err := yamlbind.Dump(createServer())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(out, "startDate: 2016-05-01\n") {
		t.Fatalf("expected date-only startDate in:\n%s", out)
	}
	if !strings.Contains(out, "endDate: 2016-05-31\n") {
		t.Fatalf("expected date-only endDate in:\n%s", out)
	}
	if strings.Contains(out, "T00:00") || strings.Contains(out, "!!timestamp") {
		t.Fatalf("expected no time component or explicit tag in:\n%s", out)
	}
}

func TestDump_BlockLayout(t *testing.T) {
	out, err := yamlbind.Dump(createServer())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if strings.ContainsAny(out, "{[") {
		t.Fatalf("expected block style only:\n%s", out)
	}
	for _, line := range []string{
		"name: server1\n",
		"hosts:\n  - hostid: \"1\"\n",
		"\n    name: host1\n",
		"\n    items:\n      - itemid: \"1\"\n",
		"\n        key: item1\n",
		"\n      - itemid: \"2\"\n",
	} {
		if !strings.Contains(out, line) {
			t.Fatalf("expected %q in:\n%s", line, out)
		}
	}
}

func TestDump_NestedMappingIndent(t *testing.T) {
	out, err := yamlbind.Dump(map[string]any{"outer": map[string]any{"inner": 1}})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out != "outer:\n    inner: 1\n" {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

type flowTagged struct {
	Tags []string       `yaml:"tags,flow"`
	Meta map[string]int `yaml:"meta,flow"`
}

func TestDump_FlowStyles(t *testing.T) {
	v := flowTagged{Tags: []string{"a", "b"}, Meta: map[string]int{"x": 1}}

	out, err := yamlbind.Dump(v)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if strings.ContainsAny(out, "{[") {
		t.Fatalf("block style should override flow struct tags:\n%s", out)
	}

	out, err = yamlbind.DumpWith(v, yamlbind.DumpOpt{Flow: yamlbind.FlowAuto})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(out, "tags: [a, b]") {
		t.Fatalf("expected engine flow style kept:\n%s", out)
	}

	out, err = yamlbind.DumpWith(map[string]any{"k": []int{1}}, yamlbind.DumpOpt{Flow: yamlbind.FlowFlow})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(out, "{") {
		t.Fatalf("expected flow mapping:\n%s", out)
	}
}

func TestDump_ZeroOptEqualsDefault(t *testing.T) {
	a, err := yamlbind.Dump(createServer())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	b, err := yamlbind.DumpWith(createServer(), yamlbind.DumpOpt{})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if a != b {
		t.Fatalf("zero DumpOpt differs from default:\n%s\n---\n%s", a, b)
	}
}

func TestDump_WideIndicator(t *testing.T) {
	out, err := yamlbind.DumpWith(map[string]any{"xs": []int{1}}, yamlbind.DumpOpt{Indent: 4, IndicatorIndent: 4})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out != "xs:\n    - 1\n" {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestDump_InvalidOptions(t *testing.T) {
	_, err := yamlbind.DumpWith(createServer(), yamlbind.DumpOpt{Indent: 4, IndicatorIndent: 3})
	iss, ok := yamlbind.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != yamlbind.CodeInvalidOption {
		t.Fatalf("expected invalid_option, got %v", err)
	}
	_, err = yamlbind.DumpWith(createServer(), yamlbind.DumpOpt{Indent: 12})
	if iss, ok := yamlbind.AsIssues(err); !ok || iss[0].Path != "/indent" {
		t.Fatalf("expected indent issue, got %v", err)
	}
}

func TestDump_DateRoundTripIsLossy(t *testing.T) {
	s := createServer()
	orig := yamlbind.NewLocalDateTime(2016, time.May, 1, 13, 45, 30, 0)
	s.Hosts[0].Items[0].StartDate = orig

	out, err := yamlbind.Dump(s)
	if err != nil {
		t.Fatalf("dump: %v", err)
	}
	back, err := yamlbind.LoadAs[model.Server](out)
	if err != nil {
		t.Fatalf("load: %v\n%s", err, out)
	}
	got := back.Hosts[0].Items[0].StartDate
	if got.Equal(orig) {
		t.Fatalf("expected time of day to be dropped, got %s", got)
	}
	if got.String() != "2016-05-01T00:00:00" {
		t.Fatalf("expected midnight of the same date, got %s", got)
	}
	if !got.Equal(orig.TruncateToDate()) {
		t.Fatalf("expected truncation, got %s", got)
	}
	if back.Name != s.Name || back.Hosts[0].Items[1].Key != "item2" {
		t.Fatalf("non-date fields should survive: %+v", back)
	}
}

func TestDump_Unrepresentable(t *testing.T) {
	_, err := yamlbind.Dump(map[string]any{"c": make(chan int)})
	var re *yamlbind.RepresentationError
	if !errors.As(err, &re) {
		t.Fatalf("expected RepresentationError, got %T %v", err, err)
	}
	if re.Issues[0].Code != yamlbind.CodeUnrepresentable {
		t.Fatalf("expected unrepresentable, got %+v", re.Issues)
	}
}

var errNoYAML = errors.New("no yaml for you")

type refusing struct{}

func (refusing) MarshalYAML() (any, error) { return nil, errNoYAML }

type panicking struct{}

func (panicking) MarshalYAML() (any, error) { panic("boom") }

func TestDump_MarshalerFailures(t *testing.T) {
	_, err := yamlbind.Dump(map[string]any{"r": refusing{}})
	var re *yamlbind.RepresentationError
	if !errors.As(err, &re) || !errors.Is(err, errNoYAML) {
		t.Fatalf("expected RepresentationError wrapping marshaler error, got %T %v", err, err)
	}
	_, err = yamlbind.Dump(panicking{})
	if !errors.As(err, &re) {
		t.Fatalf("expected RepresentationError for panic, got %T %v", err, err)
	}
}

type taggedServer struct{ Name string }

func (s taggedServer) MarshalYAML() (any, error) {
	return &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!server",
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Value: "name"},
			{Kind: yaml.ScalarNode, Value: s.Name},
		},
	}, nil
}

func TestDump_PlainMapRepresenter(t *testing.T) {
	v := taggedServer{Name: "server1"}
	out, err := yamlbind.Dump(v)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !strings.Contains(out, "!server") {
		t.Fatalf("expected custom tag without representer:\n%s", out)
	}

	opt := yamlbind.DefaultDumpOpt()
	opt.Representer = yamlbind.NewRepresenter().PlainMap("!server")
	out, err = yamlbind.DumpWith(v, opt)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out != "name: server1\n" {
		t.Fatalf("expected plain mapping, got:\n%s", out)
	}
}
