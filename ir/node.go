package ir

import (
	"slices"

	"github.com/openharmony/go-hcs/token"
)

// UnknownRef is the placeholder target given to a node whose relation is
// changed to one that needs a target before the user has picked one.
const UnknownRef = "_unknown_"

type Node struct {
	Type     Type
	Name     string
	Parent   *Node
	Children []*Node

	Relation Relation
	Ref      string

	Int    uint64
	Neg    bool
	Radix  int
	String string
	Bool   bool

	Pos        token.Pos
	Diagnostic string

	// Origin is the per-file node this node was merged from.
	Origin *Node
	// Target is the node a reference attribute resolved to.
	Target *Node

	// NestedCopy marks a node expanded from a copy whose target was itself
	// an unexpanded copy.
	NestedCopy bool
}

func NewNode(name string) *Node {
	return &Node{Type: NodeType, Name: name, Relation: RelData}
}

func NewRelNode(name string, rel Relation, ref string) *Node {
	n := NewNode(name)
	n.Relation = rel
	if rel.HasRef() {
		n.Ref = ref
	}
	return n
}

func NewAttr(name string, value *Node) *Node {
	n := &Node{Type: AttrType, Name: name}
	if value != nil {
		n.Add(value)
	}
	return n
}

func FromInt(v uint64, radix int) *Node {
	if radix == 0 {
		radix = 10
	}
	return &Node{Type: FitInt(v, false), Int: v, Radix: radix}
}

func FromSigned(v int64) *Node {
	return &Node{Type: FitInt(uint64(v), v < 0), Int: uint64(v), Neg: v < 0, Radix: 10}
}

func FromString(s string) *Node {
	return &Node{Type: StringType, String: s}
}

func FromBool(b bool) *Node {
	return &Node{Type: BoolType, Bool: b}
}

func FromRef(path string) *Node {
	return &Node{Type: RefType, Ref: path}
}

func FromDelete() *Node {
	return &Node{Type: DeleteType}
}

// FromArray builds an array and widens integer elements to the widest
// element type.
func FromArray(elems ...*Node) *Node {
	n := &Node{Type: ArrayType}
	for _, e := range elems {
		n.Add(e)
	}
	n.Widen()
	return n
}

// Widen retypes every integer element of an array to the widest element
// type.
func (n *Node) Widen() {
	if n.Type != ArrayType {
		return
	}
	w := Int8Type
	for _, e := range n.Children {
		if e.Type.IsInt() {
			w = WiderInt(w, e.Type)
		}
	}
	for _, e := range n.Children {
		if e.Type.IsInt() {
			e.Type = w
		}
	}
}

func (n *Node) IsNode() bool { return n.Type == NodeType }
func (n *Node) IsAttr() bool { return n.Type == AttrType }

// Value returns the value of an attribute, or nil.
func (n *Node) Value() *Node {
	if n.Type != AttrType || len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}

// SetValue replaces the value of an attribute.
func (n *Node) SetValue(v *Node) {
	for _, c := range n.Children {
		c.Parent = nil
	}
	n.Children = n.Children[:0]
	n.Add(v)
}

func (n *Node) Add(c *Node) *Node {
	c.Parent = n
	n.Children = append(n.Children, c)
	return c
}

func (n *Node) Insert(i int, c *Node) *Node {
	c.Parent = n
	n.Children = slices.Insert(n.Children, i, c)
	return c
}

// Index returns the position of n among its parent's children, or -1.
func (n *Node) Index() int {
	if n.Parent == nil {
		return -1
	}
	return slices.Index(n.Parent.Children, n)
}

// Detach removes n from its parent.
func (n *Node) Detach() {
	i := n.Index()
	if i < 0 {
		return
	}
	n.Parent.Children = slices.Delete(n.Parent.Children, i, i+1)
	n.Parent = nil
}

// Replace puts r where n is in n's parent.
func (n *Node) Replace(r *Node) {
	i := n.Index()
	if i < 0 {
		return
	}
	n.Parent.Children[i] = r
	r.Parent = n.Parent
	n.Parent = nil
}

// Child returns the first child named name.
func (n *Node) Child(name string) *Node {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (n *Node) Root() *Node {
	for n.Parent != nil {
		n = n.Parent
	}
	return n
}

func (n *Node) Depth() int {
	d := 0
	for p := n.Parent; p != nil; p = p.Parent {
		d++
	}
	return d
}

// Clone makes a deep copy of n with no parent. Diagnostics and pass marks
// are not copied.
func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Type = n.Type
	dst.Name = n.Name
	dst.Parent = nil
	dst.Relation = n.Relation
	dst.Ref = n.Ref
	dst.Int = n.Int
	dst.Neg = n.Neg
	dst.Radix = n.Radix
	dst.String = n.String
	dst.Bool = n.Bool
	dst.Pos = n.Pos
	dst.Origin = n.Origin
	dst.Target = n.Target
	dst.Diagnostic = ""
	dst.NestedCopy = false
	dst.Children = make([]*Node, 0, len(n.Children))
	for _, c := range n.Children {
		dst.Add(c.Clone())
	}
	return dst
}

// Visit calls f on n before (isPost false) and after (isPost true) its
// children. Children are visited only if the pre call returns true.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range slices.Clone(n.Children) {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

// SetDiagnostic annotates n and every node on its Origin chain.
func (n *Node) SetDiagnostic(msg string) {
	for x := n; x != nil; x = x.Origin {
		x.Diagnostic = msg
		if x.Origin == x {
			break
		}
	}
}

// ClearDiagnostics clears diagnostics in the subtree rooted at n.
func (n *Node) ClearDiagnostics() {
	n.Diagnostic = ""
	n.NestedCopy = false
	for _, c := range n.Children {
		c.ClearDiagnostics()
	}
}

// Diagnostics returns the nodes in n's subtree carrying a diagnostic, in
// document order.
func (n *Node) Diagnostics() []*Node {
	var res []*Node
	_ = n.Visit(func(x *Node, isPost bool) (bool, error) {
		if !isPost && x.Diagnostic != "" {
			res = append(res, x)
		}
		return true, nil
	})
	return res
}

// Position returns the nearest known source position of n.
func (n *Node) Position() token.Pos {
	for x := n; x != nil; x = x.Parent {
		if x.Pos.IsValid() {
			return x.Pos
		}
		if x.Origin != nil && x.Origin.Pos.IsValid() {
			return x.Origin.Pos
		}
	}
	return token.Pos{}
}
