package docjson

import "gopkg.in/yaml.v3"

// Node is one node of a parsed document tree. It wraps the yaml.v3
// node model, which keeps object members in encounter order and
// integer literals as exact decimal text.
type Node struct {
	y *yaml.Node
}

// ScalarKind classifies a scalar node by its decoded tag.
type ScalarKind int

const (
	ScalarString ScalarKind = iota
	ScalarInt
	ScalarFloat
	ScalarBool
	ScalarNull
	ScalarOther
)

func (k ScalarKind) String() string {
	switch k {
	case ScalarString:
		return "string"
	case ScalarInt:
		return "integer"
	case ScalarFloat:
		return "float"
	case ScalarBool:
		return "boolean"
	case ScalarNull:
		return "null"
	}
	return "scalar"
}

func wrap(y *yaml.Node) *Node {
	for y != nil {
		switch {
		case y.Kind == yaml.DocumentNode && len(y.Content) > 0:
			y = y.Content[0]
		case y.Kind == yaml.AliasNode && y.Alias != nil:
			y = y.Alias
		default:
			return &Node{y: y}
		}
	}
	return nil
}

// IsMapping reports whether the node is an object.
func (n *Node) IsMapping() bool { return n.y.Kind == yaml.MappingNode }

// IsSequence reports whether the node is an array.
func (n *Node) IsSequence() bool { return n.y.Kind == yaml.SequenceNode }

// IsScalar reports whether the node is a leaf scalar.
func (n *Node) IsScalar() bool { return n.y.Kind == yaml.ScalarNode }

// Scalar returns the scalar kind and the literal text of a scalar node.
func (n *Node) Scalar() (ScalarKind, string) {
	switch n.y.Tag {
	case "!!str":
		return ScalarString, n.y.Value
	case "!!int":
		return ScalarInt, n.y.Value
	case "!!float":
		return ScalarFloat, n.y.Value
	case "!!bool":
		return ScalarBool, n.y.Value
	case "!!null":
		return ScalarNull, n.y.Value
	}
	return ScalarOther, n.y.Value
}

// KindName names the node's shape for diagnostics.
func (n *Node) KindName() string {
	switch {
	case n.IsMapping():
		return "object"
	case n.IsSequence():
		return "array"
	case n.IsScalar():
		k, _ := n.Scalar()
		return k.String()
	}
	return "unknown"
}

// Member returns the values of every member with the given key, in
// encounter order. A non-object node has no members.
func (n *Node) Member(key string) []*Node {
	if !n.IsMapping() {
		return nil
	}
	var out []*Node
	for i := 0; i+1 < len(n.y.Content); i += 2 {
		if n.y.Content[i].Value == key {
			if v := wrap(n.y.Content[i+1]); v != nil {
				out = append(out, v)
			}
		}
	}
	return out
}

// Elems returns the elements of an array node in index order.
func (n *Node) Elems() []*Node {
	if !n.IsSequence() {
		return nil
	}
	out := make([]*Node, 0, len(n.y.Content))
	for _, c := range n.y.Content {
		if v := wrap(c); v != nil {
			out = append(out, v)
		}
	}
	return out
}

// Children returns all direct children in document order: member
// values for objects, elements for arrays, nothing for scalars.
func (n *Node) Children() []*Node {
	if n.IsMapping() {
		out := make([]*Node, 0, len(n.y.Content)/2)
		for i := 1; i < len(n.y.Content); i += 2 {
			if v := wrap(n.y.Content[i]); v != nil {
				out = append(out, v)
			}
		}
		return out
	}
	return n.Elems()
}

// Descendants returns the node and every node below it, pre-order.
func (n *Node) Descendants() []*Node {
	out := []*Node{n}
	for _, c := range n.Children() {
		out = append(out, c.Descendants()...)
	}
	return out
}
