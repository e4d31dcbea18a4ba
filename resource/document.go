package resource

import (
	"fmt"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v4"
)

// Document is the capability a parsed API description must expose for the
// grouping pass: reference resolution over its node tree. Any container of
// specification nodes satisfying this interface can substitute for the
// default YAML-backed implementation.
type Document interface {
	// Root returns the top of the document tree.
	Root() *yaml.Node
	// Resolve follows $ref chains (and YAML aliases) on node until it
	// reaches a concrete value.
	Resolve(node *yaml.Node) (*yaml.Node, error)
	// Lookup returns the resolved value stored under key in a resolved
	// mapping node, or nil when the key is absent.
	Lookup(node *yaml.Node, key string) (*yaml.Node, error)
	// Entries returns the key/value pairs of a resolved mapping in document
	// order, with every value resolved. A nil node yields no entries.
	Entries(node *yaml.Node) ([]Entry, error)
	// StringList resolves a sequence node into its string items. A nil node
	// yields an empty list.
	StringList(node *yaml.Node) ([]string, error)
}

// Entry is one key/value pair of a resolved mapping.
type Entry struct {
	Key   string
	Value *yaml.Node
}

// YAMLDocument implements Document over a YAML node tree, resolving local
// JSON-pointer references ("#/components/..."). The tree is treated as
// immutable for the lifetime of the document.
type YAMLDocument struct {
	root *yaml.Node
}

// NewYAMLDocument wraps an already-parsed node tree.
func NewYAMLDocument(root *yaml.Node) *YAMLDocument {
	return &YAMLDocument{root: root}
}

// ParseYAML parses raw YAML (or JSON, which YAML subsumes) into a document.
func ParseYAML(data []byte) (*YAMLDocument, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}
	return &YAMLDocument{root: &root}, nil
}

func (d *YAMLDocument) Root() *yaml.Node {
	return d.root
}

func (d *YAMLDocument) Resolve(node *yaml.Node) (*yaml.Node, error) {
	seen := make(map[*yaml.Node]bool)
	for node != nil {
		switch {
		case node.Kind == yaml.DocumentNode && len(node.Content) > 0:
			node = node.Content[0]
		case node.Kind == yaml.AliasNode && node.Alias != nil:
			node = node.Alias
		default:
			ref, ok := refTarget(node)
			if !ok {
				return node, nil
			}
			if seen[node] {
				return nil, fmt.Errorf("reference cycle through %q", ref)
			}
			seen[node] = true
			next, err := d.pointer(ref)
			if err != nil {
				return nil, err
			}
			node = next
		}
	}
	return nil, nil
}

func (d *YAMLDocument) Lookup(node *yaml.Node, key string) (*yaml.Node, error) {
	resolved, err := d.Resolve(node)
	if err != nil {
		return nil, err
	}
	if resolved == nil {
		return nil, nil
	}
	if resolved.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("looking up %q: expected mapping, got %s", key, kindName(resolved.Kind))
	}
	for i := 0; i+1 < len(resolved.Content); i += 2 {
		if resolved.Content[i].Value == key {
			return d.Resolve(resolved.Content[i+1])
		}
	}
	return nil, nil
}

func (d *YAMLDocument) Entries(node *yaml.Node) ([]Entry, error) {
	resolved, err := d.Resolve(node)
	if err != nil {
		return nil, err
	}
	if resolved == nil {
		return nil, nil
	}
	if resolved.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected mapping, got %s", kindName(resolved.Kind))
	}
	entries := make([]Entry, 0, len(resolved.Content)/2)
	for i := 0; i+1 < len(resolved.Content); i += 2 {
		value, err := d.Resolve(resolved.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("resolving %q: %w", resolved.Content[i].Value, err)
		}
		entries = append(entries, Entry{Key: resolved.Content[i].Value, Value: value})
	}
	return entries, nil
}

func (d *YAMLDocument) StringList(node *yaml.Node) ([]string, error) {
	resolved, err := d.Resolve(node)
	if err != nil {
		return nil, err
	}
	if resolved == nil {
		return nil, nil
	}
	if resolved.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("expected sequence, got %s", kindName(resolved.Kind))
	}
	items := make([]string, 0, len(resolved.Content))
	for _, item := range resolved.Content {
		value, err := d.Resolve(item)
		if err != nil {
			return nil, err
		}
		if value == nil || value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("expected string list item, got %s", kindName(item.Kind))
		}
		items = append(items, value.Value)
	}
	return items, nil
}

// pointer walks a local JSON pointer ("#/a/b/0") from the document root.
func (d *YAMLDocument) pointer(ref string) (*yaml.Node, error) {
	target, ok := strings.CutPrefix(ref, "#/")
	if !ok {
		return nil, fmt.Errorf("unsupported reference %q: only local references are resolvable", ref)
	}

	node := d.root
	for _, segment := range strings.Split(target, "/") {
		segment = strings.ReplaceAll(segment, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")

		for node != nil && (node.Kind == yaml.DocumentNode || node.Kind == yaml.AliasNode) {
			if node.Kind == yaml.AliasNode {
				node = node.Alias
			} else if len(node.Content) > 0 {
				node = node.Content[0]
			} else {
				node = nil
			}
		}
		if node == nil {
			return nil, fmt.Errorf("unresolvable reference %q", ref)
		}

		switch node.Kind {
		case yaml.MappingNode:
			var found *yaml.Node
			for i := 0; i+1 < len(node.Content); i += 2 {
				if node.Content[i].Value == segment {
					found = node.Content[i+1]
					break
				}
			}
			if found == nil {
				return nil, fmt.Errorf("unresolvable reference %q: no key %q", ref, segment)
			}
			node = found
		case yaml.SequenceNode:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= len(node.Content) {
				return nil, fmt.Errorf("unresolvable reference %q: bad index %q", ref, segment)
			}
			node = node.Content[idx]
		default:
			return nil, fmt.Errorf("unresolvable reference %q: %q is not a container", ref, segment)
		}
	}
	return node, nil
}

// refTarget reports whether node is a mapping of the form {"$ref": "..."}.
func refTarget(node *yaml.Node) (string, bool) {
	if node == nil || node.Kind != yaml.MappingNode {
		return "", false
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == "$ref" && node.Content[i+1].Kind == yaml.ScalarNode {
			return node.Content[i+1].Value, true
		}
	}
	return "", false
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}
