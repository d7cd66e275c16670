package yamlnode

import "go.yaml.in/yaml/v3"

// FlowMode selects how Restyle treats collection styles.
type FlowMode int

const (
	ForceBlock FlowMode = iota
	KeepFlow
	ForceFlow
)

const mapTag = "!!map"

// Restyle rewrites a node tree in place before emission: collection styles follow
// mode, and mapping nodes whose tag is in plainTags are retagged as plain maps.
func Restyle(n *yaml.Node, mode FlowMode, plainTags map[string]bool) {
	seen := make(map[*yaml.Node]bool)
	var walk func(*yaml.Node)
	walk = func(n *yaml.Node) {
		if n == nil || seen[n] {
			return
		}
		seen[n] = true
		switch n.Kind {
		case yaml.MappingNode, yaml.SequenceNode:
			switch mode {
			case ForceBlock:
				n.Style &^= yaml.FlowStyle
			case ForceFlow:
				n.Style |= yaml.FlowStyle
			}
			if n.Kind == yaml.MappingNode && plainTags[n.Tag] {
				n.Tag = mapTag
				n.Style &^= yaml.TaggedStyle
			}
		case yaml.AliasNode:
			walk(n.Alias)
		}
		for _, c := range n.Content {
			walk(c)
		}
	}
	walk(n)
}
