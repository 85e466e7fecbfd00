package locale

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DecodeYAML parses a YAML mapping into a tree, keeping document order.
// An empty document decodes to an empty tree. Comments are dropped.
func DecodeYAML(data []byte) (*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return NewTree(), nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top-level YAML value must be a mapping", ErrParse)
	}
	return fromYAML(root)
}

// fromYAML walks a mapping node. Only !!str scalars become leaves;
// sequences and other scalars are decoded as values.
func fromYAML(node *yaml.Node) (*Node, error) {
	tree := NewTree()
	for i := 0; i < len(node.Content)-1; i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]
		if valNode.Kind == yaml.AliasNode {
			valNode = valNode.Alias
		}
		switch {
		case valNode.Kind == yaml.MappingNode:
			child, err := fromYAML(valNode)
			if err != nil {
				return nil, err
			}
			tree.Set(keyNode.Value, child)
		case valNode.Kind == yaml.ScalarNode && valNode.ShortTag() == "!!str":
			tree.Set(keyNode.Value, Leaf(valNode.Value))
		default:
			var v any
			if err := valNode.Decode(&v); err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrParse, valNode.Line, err)
			}
			tree.Set(keyNode.Value, Value(v))
		}
	}
	return tree, nil
}

// EncodeYAML renders tree as nested YAML with two-space indentation.
func EncodeYAML(tree *Node) ([]byte, error) {
	root, err := toYAML(tree)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func toYAML(n *Node) (*yaml.Node, error) {
	switch n.kind {
	case KindLeaf:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: n.text}, nil
	case KindValue:
		var v yaml.Node
		if err := v.Encode(n.value); err != nil {
			return nil, err
		}
		return &v, nil
	}
	m := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range n.keys {
		child, err := toYAML(n.children[k])
		if err != nil {
			return nil, fmt.Errorf("encoding %q: %w", k, err)
		}
		m.Content = append(m.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			child,
		)
	}
	return m, nil
}
