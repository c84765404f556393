package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// ignoreLinks drops back pointers that make trees cyclic for cmp.
var ignoreLinks = cmpopts.IgnoreFields(Node{}, "Parent", "Origin", "Target")

func twos(v int64) uint64 { return uint64(v) }

func TestFitInt(t *testing.T) {
	for _, tc := range []struct {
		v    uint64
		neg  bool
		want Type
	}{
		{0, false, Int8Type},
		{0xff, false, Int8Type},
		{0x100, false, Int16Type},
		{0xffff, false, Int16Type},
		{0x10000, false, Int32Type},
		{0xffffffff, false, Int32Type},
		{0x100000000, false, Int64Type},
		{twos(-1), true, Int8Type},
		{twos(-128), true, Int8Type},
		{twos(-129), true, Int16Type},
		{twos(-1 << 20), true, Int32Type},
		{twos(-1 << 40), true, Int64Type},
	} {
		if got := FitInt(tc.v, tc.neg); got != tc.want {
			t.Errorf("FitInt(%#x, %t) = %s, want %s", tc.v, tc.neg, got, tc.want)
		}
	}
}

func TestWiden(t *testing.T) {
	a := FromArray(FromInt(1, 10), FromInt(2, 10), FromInt(300, 10))
	for i, e := range a.Children {
		if e.Type != Int16Type {
			t.Errorf("element %d is %s", i, e.Type)
		}
		if e.Parent != a {
			t.Errorf("element %d not linked", i)
		}
	}
}

func sample() *Node {
	root := NewNode(RootName)
	a := root.Add(NewNode("a"))
	a.Add(NewAttr("x", FromInt(1, 16)))
	a.Add(NewAttr("s", FromString("str")))
	b := root.Add(NewRelNode("b", RelCopy, "root.a"))
	b.Add(NewAttr("arr", FromArray(FromInt(1, 10), FromInt(2, 10))))
	return root
}

func TestClone(t *testing.T) {
	root := sample()
	root.Child("a").SetDiagnostic("boom")
	c := root.Clone()
	if c.Parent != nil {
		t.Fatal("clone has a parent")
	}
	if diff := cmp.Diff(root, c, ignoreLinks, cmpopts.EquateEmpty(), cmpopts.IgnoreFields(Node{}, "Diagnostic")); diff != "" {
		t.Fatalf("clone differs (-orig +clone):\n%s", diff)
	}
	if c.Child("a").Diagnostic != "" {
		t.Error("diagnostic copied")
	}
	if c.Child("a").Parent != c {
		t.Error("clone children not relinked")
	}
	c.Child("a").Name = "z"
	if root.Child("a") == nil {
		t.Error("clone aliases original")
	}
}

func TestDetachReplace(t *testing.T) {
	root := sample()
	a := root.Child("a")
	a.Detach()
	if a.Parent != nil || root.Child("a") != nil || len(root.Children) != 1 {
		t.Fatalf("detach failed: %d children", len(root.Children))
	}
	b := root.Child("b")
	b.Replace(a)
	if root.Children[0] != a || a.Parent != root || b.Parent != nil {
		t.Fatal("replace failed")
	}
	if a.Index() != 0 || b.Index() != -1 {
		t.Errorf("indexes %d %d", a.Index(), b.Index())
	}
}

func TestSetDiagnosticOrigin(t *testing.T) {
	file := NewNode("a")
	merged := NewNode("a")
	merged.Origin = file
	merged.SetDiagnostic("type conflict")
	if file.Diagnostic != "type conflict" {
		t.Errorf("origin not annotated: %q", file.Diagnostic)
	}
	root := NewNode(RootName)
	root.Add(merged)
	if got := root.Diagnostics(); len(got) != 1 || got[0] != merged {
		t.Errorf("diagnostics %v", got)
	}
	root.ClearDiagnostics()
	if merged.Diagnostic != "" {
		t.Error("not cleared")
	}
}
