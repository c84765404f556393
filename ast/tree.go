package ast

import (
	"iter"

	"github.com/openharmony/go-hcs/ir"
	"github.com/openharmony/go-hcs/token"
)

type NodeID int32

// Nil is the id of no node.
const Nil NodeID = -1

type Kind int

const (
	Integer Kind = iota
	String
	Bool
	ConfigNode
	ConfigTerm
	Array
	NodeRef
	Delete
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		Integer:    "Integer",
		String:     "String",
		Bool:       "Bool",
		ConfigNode: "ConfigNode",
		ConfigTerm: "ConfigTerm",
		Array:      "Array",
		NodeRef:    "NodeRef",
		Delete:     "Delete",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

type Node struct {
	Kind     Kind
	Name     string
	Relation ir.Relation
	// Ref is the target path of a ConfigNode or NodeRef.
	Ref string

	Text  string
	Value uint64
	Neg   bool
	Radix int
	Bool  bool

	Pos token.Pos

	parent, first, last, prev, next NodeID
}

type Tree struct {
	nodes []Node
	root  NodeID
}

func NewTree() *Tree {
	return &Tree{root: Nil}
}

func (t *Tree) Len() int { return len(t.nodes) }

// New adds an unlinked copy of n to the arena.
func (t *Tree) New(n Node) NodeID {
	n.parent, n.first, n.last, n.prev, n.next = Nil, Nil, Nil, Nil, Nil
	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes) - 1)
}

// At returns the node for id. The pointer is invalidated by New.
func (t *Tree) At(id NodeID) *Node {
	return &t.nodes[id]
}

func (t *Tree) Root() NodeID { return t.root }

func (t *Tree) SetRoot(id NodeID) { t.root = id }

func (t *Tree) Parent(id NodeID) NodeID { return t.nodes[id].parent }

// Append makes child the last child of parent, detaching it first if needed.
func (t *Tree) Append(parent, child NodeID) {
	if t.nodes[child].parent != Nil {
		t.Detach(child)
	}
	p := &t.nodes[parent]
	c := &t.nodes[child]
	c.parent = parent
	c.prev = p.last
	c.next = Nil
	if p.last == Nil {
		p.first = child
	} else {
		t.nodes[p.last].next = child
	}
	p.last = child
}

func (t *Tree) Detach(id NodeID) {
	n := &t.nodes[id]
	if n.parent == Nil {
		return
	}
	p := &t.nodes[n.parent]
	if n.prev == Nil {
		p.first = n.next
	} else {
		t.nodes[n.prev].next = n.next
	}
	if n.next == Nil {
		p.last = n.prev
	} else {
		t.nodes[n.next].prev = n.prev
	}
	n.parent, n.prev, n.next = Nil, Nil, Nil
}

func (t *Tree) Children(id NodeID) iter.Seq[NodeID] {
	return func(yield func(NodeID) bool) {
		for c := t.nodes[id].first; c != Nil; {
			next := t.nodes[c].next
			if !yield(c) {
				return
			}
			c = next
		}
	}
}

func (t *Tree) NumChildren(id NodeID) int {
	n := 0
	for range t.Children(id) {
		n++
	}
	return n
}
