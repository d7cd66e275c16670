package yamlbind

import (
	"bytes"
	"fmt"

	"github.com/reoring/yamlbind/internal/yamlnode"
	"go.yaml.in/yaml/v3"
)

// Representer holds per-call tagging overrides for Dump.
//
// Go structs are always emitted as plain mappings; custom tags only appear when a
// yaml.Marshaler attaches one. PlainMap lists such tags to be dropped again.
type Representer struct {
	plain map[string]bool
}

// NewRepresenter returns an empty Representer.
func NewRepresenter() *Representer { return &Representer{} }

// PlainMap registers mapping tags (e.g. "!server") to be emitted as plain mappings.
// Registration is by tag only; Go types cannot be registered, since a struct is
// already emitted as a plain mapping unless its MarshalYAML sets a tag.
func (r *Representer) PlainMap(tags ...string) *Representer {
	if r.plain == nil {
		r.plain = make(map[string]bool, len(tags))
	}
	for _, t := range tags {
		r.plain[t] = true
	}
	return r
}

func (r *Representer) plainTags() map[string]bool {
	if r == nil {
		return nil
	}
	return r.plain
}

// Dump encodes v with DefaultDumpOpt().
func Dump(v any) (string, error) {
	return DumpWith(v, DefaultDumpOpt())
}

// DumpWith encodes v as a YAML document. LocalDateTime values are emitted as
// yyyy-MM-dd timestamps; everything else uses the engine's representation.
func DumpWith(v any, opt DumpOpt) (string, error) {
	if err := opt.Validate(); err != nil {
		return "", err
	}
	opt = opt.withDefaults()

	var n yaml.Node
	if err := encodeNode(&n, v); err != nil {
		return "", representationError(err)
	}
	yamlnode.Restyle(&n, flowMode(opt.Flow), opt.Representer.plainTags())

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(opt.Indent)
	if opt.compactSeq() {
		enc.CompactSeqIndent()
	}
	if err := enc.Encode(&n); err != nil {
		return "", representationError(err)
	}
	if err := enc.Close(); err != nil {
		return "", representationError(err)
	}
	return buf.String(), nil
}

// encodeNode builds the node tree for v. Panics raised by user marshalers are
// reported as errors.
func encodeNode(n *yaml.Node, v any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("yaml: marshal panic: %v", r)
		}
	}()
	return n.Encode(v)
}

func flowMode(f FlowStyle) yamlnode.FlowMode {
	switch f {
	case FlowAuto:
		return yamlnode.KeepFlow
	case FlowFlow:
		return yamlnode.ForceFlow
	default:
		return yamlnode.ForceBlock
	}
}
