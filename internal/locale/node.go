// Package locale models translation trees: nested, ordered mappings from
// keys to translated strings, addressed by dotted key paths.
package locale

import (
	"fmt"
	"reflect"
)

// Kind discriminates the variants of a Node.
type Kind uint8

const (
	// KindBranch is an ordered mapping of keys to child nodes.
	KindBranch Kind = iota
	// KindLeaf is a translated string.
	KindLeaf
	// KindValue is any other terminal: arrays, numbers, booleans, null.
	KindValue
)

func (k Kind) String() string {
	switch k {
	case KindBranch:
		return "branch"
	case KindLeaf:
		return "leaf"
	case KindValue:
		return "value"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Node is one element of a translation tree. A tree is a branch node.
type Node struct {
	kind     Kind
	text     string
	value    any
	keys     []string
	children map[string]*Node
}

// NewTree returns an empty branch.
func NewTree() *Node {
	return &Node{kind: KindBranch, children: make(map[string]*Node)}
}

// Leaf returns a string terminal.
func Leaf(s string) *Node {
	return &Node{kind: KindLeaf, text: s}
}

// Value returns a non-string terminal holding v as decoded from the
// source format ([]any, float64, bool, nil, ...).
func Value(v any) *Node {
	return &Node{kind: KindValue, value: v}
}

// Kind reports which variant n is.
func (n *Node) Kind() Kind { return n.kind }

// IsBranch reports whether n holds child nodes.
func (n *Node) IsBranch() bool { return n.kind == KindBranch }

// Text returns the string of a leaf. ok is false for other kinds.
func (n *Node) Text() (s string, ok bool) {
	if n.kind != KindLeaf {
		return "", false
	}
	return n.text, true
}

// Raw returns the decoded value of a KindValue node.
func (n *Node) Raw() any { return n.value }

// Keys returns the child keys of a branch in insertion order.
func (n *Node) Keys() []string {
	out := make([]string, len(n.keys))
	copy(out, n.keys)
	return out
}

// Len returns the number of direct children of a branch.
func (n *Node) Len() int { return len(n.keys) }

// Get returns the direct child stored under key.
func (n *Node) Get(key string) (*Node, bool) {
	if n.kind != KindBranch {
		return nil, false
	}
	c, ok := n.children[key]
	return c, ok
}

// Set stores child under key. A key that already exists keeps its
// position and has its value replaced. Set panics if n is not a branch.
func (n *Node) Set(key string, child *Node) {
	if n.kind != KindBranch {
		panic("locale: Set on " + n.kind.String() + " node")
	}
	if _, exists := n.children[key]; !exists {
		n.keys = append(n.keys, key)
	}
	n.children[key] = child
}

// Delete removes key from a branch and reports whether it was present.
func (n *Node) Delete(key string) bool {
	if n.kind != KindBranch {
		return false
	}
	if _, exists := n.children[key]; !exists {
		return false
	}
	delete(n.children, key)
	for i, k := range n.keys {
		if k == key {
			n.keys = append(n.keys[:i], n.keys[i+1:]...)
			break
		}
	}
	return true
}

// Lookup resolves a key path to the node it addresses.
func (n *Node) Lookup(path KeyPath) (*Node, bool) {
	cur := n
	for _, part := range path.Split() {
		next, ok := cur.Get(part)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// SetPath stores child at path, creating intermediate branches as needed.
// A terminal sitting where a branch is needed is replaced by a branch.
func (n *Node) SetPath(path KeyPath, child *Node) {
	parts := path.Split()
	if len(parts) == 0 {
		return
	}
	cur := n
	for _, part := range parts[:len(parts)-1] {
		next, ok := cur.Get(part)
		if !ok || !next.IsBranch() {
			next = NewTree()
			cur.Set(part, next)
		}
		cur = next
	}
	cur.Set(parts[len(parts)-1], child)
}

// DeletePath removes the node at path, pruning parents left empty.
// Returns true if the path was found and removed.
func (n *Node) DeletePath(path KeyPath) bool {
	return deleteParts(n, path.Split())
}

func deleteParts(n *Node, parts []string) bool {
	if !n.IsBranch() || len(parts) == 0 {
		return false
	}
	if len(parts) == 1 {
		return n.Delete(parts[0])
	}
	child, ok := n.Get(parts[0])
	if !ok || !deleteParts(child, parts[1:]) {
		return false
	}
	if child.IsBranch() && child.Len() == 0 {
		n.Delete(parts[0])
	}
	return true
}

// Clone returns a deep copy of n. Values of KindValue nodes are shared.
func (n *Node) Clone() *Node {
	switch n.kind {
	case KindBranch:
		out := NewTree()
		for _, k := range n.keys {
			out.Set(k, n.children[k].Clone())
		}
		return out
	case KindLeaf:
		return Leaf(n.text)
	default:
		return Value(n.value)
	}
}

// Equal reports whether a and b have the same structure, key order and
// terminal values.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindLeaf:
		return a.text == b.text
	case KindValue:
		return reflect.DeepEqual(a.value, b.value)
	}
	if len(a.keys) != len(b.keys) {
		return false
	}
	for i, k := range a.keys {
		if b.keys[i] != k || !Equal(a.children[k], b.children[k]) {
			return false
		}
	}
	return true
}
