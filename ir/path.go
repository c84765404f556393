package ir

import (
	"strconv"
	"strings"
)

const RootName = "root"

// SplitPath splits a dotted path into its names, dropping a leading "root".
func SplitPath(path string) []string {
	parts := strings.Split(path, ".")
	if len(parts) > 0 && parts[0] == RootName {
		parts = parts[1:]
	}
	return parts
}

// Lookup resolves path relative to n. A bare name is searched among the
// children of n's parent; a dotted path is resolved from the root of n's
// tree. It returns nil when nothing matches.
func Lookup(n *Node, path string) *Node {
	if path == "" {
		return nil
	}
	if !strings.Contains(path, ".") {
		if n.Parent == nil {
			return nil
		}
		return n.Parent.Child(path)
	}
	return n.Root().Get(path)
}

// Get resolves a dotted path from n, which is taken to be the root.
func (n *Node) Get(path string) *Node {
	if path == RootName || path == "" {
		return n
	}
	cur := n
	for _, name := range SplitPath(path) {
		if name == "" || cur.Type != NodeType {
			return nil
		}
		cur = cur.Child(name)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// IsAncestor reports whether elder is n or one of n's ancestors.
func IsAncestor(n, elder *Node) bool {
	for x := n; x != nil; x = x.Parent {
		if x == elder {
			return true
		}
	}
	return false
}

// Path renders the dotted path of n from its root. Unnamed nodes, such as
// array elements, are rendered by index.
func (n *Node) Path() string {
	var parts []string
	for x := n; x != nil; x = x.Parent {
		switch {
		case x.Name != "":
			parts = append(parts, x.Name)
		case x.Parent != nil && x.Parent.Type == ArrayType:
			parts = append(parts, "["+strconv.Itoa(x.Index())+"]")
		case x.Parent != nil && x.Parent.Type == AttrType:
		default:
			parts = append(parts, RootName)
		}
	}
	var b strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		p := parts[i]
		if b.Len() > 0 && !strings.HasPrefix(p, "[") {
			b.WriteByte('.')
		}
		b.WriteString(p)
	}
	return b.String()
}
