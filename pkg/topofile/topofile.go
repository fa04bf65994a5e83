package topofile

import (
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/tbraz/linknet/pkg/tree"
)

// NodeSpec is the list-form record for one peer and its subtree.
type NodeSpec struct {
	Name  string     `mapstructure:"name" yaml:"name"`
	Peers []NodeSpec `mapstructure:"peers" yaml:"peers,omitempty"`
}

// Load parses a topology document and builds a tree from it. Child order
// follows document order in both accepted shapes.
func Load(r io.Reader) (*tree.Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read topology: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse topology: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return tree.New(), nil
	}

	root := doc.Content[0]
	switch root.Kind {
	case yaml.MappingNode:
		roots, err := mappingNodes(root)
		if err != nil {
			return nil, err
		}
		return tree.Import(roots...), nil
	case yaml.SequenceNode:
		return loadListForm(data)
	default:
		return nil, fmt.Errorf("parse topology: document must be a mapping or a list, got %s", root.Tag)
	}
}

// LoadFile is Load over a file on disk.
func LoadFile(path string) (*tree.Tree, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open topology: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// mappingNodes walks a YAML mapping in document order and builds the node
// graph beneath it. Values may be null (leaf) or a nested mapping.
func mappingNodes(m *yaml.Node) ([]*tree.Node, error) {
	// Mapping content alternates key, value.
	nodes := make([]*tree.Node, 0, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		key, val := m.Content[i], m.Content[i+1]
		if key.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("parse topology: line %d: peer name must be a scalar", key.Line)
		}
		n := &tree.Node{Name: key.Value}
		switch val.Kind {
		case yaml.ScalarNode:
			if val.Tag != "!!null" {
				return nil, fmt.Errorf("parse topology: line %d: peer %q: expected children mapping or null", val.Line, key.Value)
			}
		case yaml.MappingNode:
			children, err := mappingNodes(val)
			if err != nil {
				return nil, err
			}
			n.Children = children
		default:
			return nil, fmt.Errorf("parse topology: line %d: peer %q: expected children mapping or null", val.Line, key.Value)
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// loadListForm decodes the name/peers record shape. The document is first
// unmarshalled loosely and then mapped onto NodeSpec records, so unknown
// keys are tolerated rather than fatal.
func loadListForm(data []byte) (*tree.Tree, error) {
	var raw []any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse topology: %w", err)
	}

	var specs []NodeSpec
	if err := mapstructure.Decode(raw, &specs); err != nil {
		return nil, fmt.Errorf("decode topology records: %w", err)
	}

	roots := make([]*tree.Node, len(specs))
	for i, s := range specs {
		roots[i] = specNode(s)
	}
	return tree.Import(roots...), nil
}

func specNode(s NodeSpec) *tree.Node {
	n := &tree.Node{Name: s.Name}
	for _, p := range s.Peers {
		n.Children = append(n.Children, specNode(p))
	}
	return n
}

// Save writes the tree in the canonical mapping form, children in stored
// order, leaves as nulls.
func Save(w io.Writer, t *tree.Tree) error {
	doc := mappingNode(t.Roots())
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode topology: %w", err)
	}
	return enc.Close()
}

// SaveFile is Save to a file on disk.
func SaveFile(path string, t *tree.Tree) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create topology: %w", err)
	}
	defer f.Close()
	return Save(f, t)
}

func mappingNode(nodes []*tree.Node) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, n := range nodes {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: n.Name}
		var val *yaml.Node
		if len(n.Children) == 0 {
			val = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
		} else {
			val = mappingNode(n.Children)
		}
		m.Content = append(m.Content, key, val)
	}
	return m
}
