package locale

import (
	"fmt"
	"sort"
	"strings"
)

// Separator joins the segments of a KeyPath.
const Separator = "."

// KeyPath is the dotted address of one terminal within a tree,
// e.g. "nav.home" or "services.mechanical.title".
type KeyPath string

// Join appends key to p.
func (p KeyPath) Join(key string) KeyPath {
	if p == "" {
		return KeyPath(key)
	}
	return p + Separator + KeyPath(key)
}

// Split returns the segments of p. The empty path has no segments.
func (p KeyPath) Split() []string {
	if p == "" {
		return nil
	}
	return strings.Split(string(p), Separator)
}

// Parent returns p without its last segment.
func (p KeyPath) Parent() KeyPath {
	i := strings.LastIndex(string(p), Separator)
	if i < 0 {
		return ""
	}
	return p[:i]
}

func (p KeyPath) String() string { return string(p) }

// Walk calls fn for every terminal reachable from tree, depth first, in
// insertion order. Branches are recursed into and never passed to fn.
func Walk(tree *Node, fn func(path KeyPath, terminal *Node)) {
	walk("", tree, fn)
}

func walk(prefix KeyPath, n *Node, fn func(KeyPath, *Node)) {
	for _, k := range n.keys {
		child := n.children[k]
		path := prefix.Join(k)
		if child.IsBranch() {
			walk(path, child, fn)
			continue
		}
		fn(path, child)
	}
}

// ExtractKeys flattens tree into the ordered list of key paths of its
// terminals. Arrays and other non-string values are terminals.
func ExtractKeys(tree *Node) []KeyPath {
	keys := make([]KeyPath, 0)
	Walk(tree, func(path KeyPath, _ *Node) {
		keys = append(keys, path)
	})
	return keys
}

// KeySet returns the key paths of tree as a set.
func KeySet(tree *Node) map[KeyPath]struct{} {
	set := make(map[KeyPath]struct{})
	Walk(tree, func(path KeyPath, _ *Node) {
		set[path] = struct{}{}
	})
	return set
}

// Flatten returns the display string of every terminal, keyed by path.
// Non-string terminals are formatted with %v.
func Flatten(tree *Node) map[KeyPath]string {
	result := make(map[KeyPath]string)
	Walk(tree, func(path KeyPath, t *Node) {
		if s, ok := t.Text(); ok {
			result[path] = s
			return
		}
		result[path] = fmt.Sprintf("%v", t.Raw())
	})
	return result
}

// SortedKeys returns the keys of m in lexical order.
func SortedKeys[V any](m map[KeyPath]V) []KeyPath {
	keys := make([]KeyPath, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// IsValidKeyPath reports whether s looks like a dotted translation key
// with at least two segments (e.g. "nav.home", "contact.info.phone").
func IsValidKeyPath(s string) bool {
	parts := strings.Split(s, Separator)
	if len(parts) < 2 {
		return false
	}
	for _, part := range parts {
		if part == "" {
			return false
		}
		for _, c := range part {
			if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' || c == '-') {
				return false
			}
		}
	}
	return true
}
