package ir

import "testing"

func TestLookup(t *testing.T) {
	root := sample()
	a := root.Child("a")
	b := root.Child("b")
	x := a.Child("x")
	for _, tc := range []struct {
		from *Node
		path string
		want *Node
	}{
		{b, "a", a},
		{x, "s", a.Child("s")},
		{x, "a", nil},
		{x, "root.a", a},
		{x, "a.x", x},
		{b, "root.a.x", x},
		{b, "root.b.arr", b.Child("arr")},
		{b, "root.zz", nil},
		{b, "root..a", nil},
		{b, "", nil},
		{root, "a", nil},
		{b, "root.a.x.y", nil},
	} {
		if got := Lookup(tc.from, tc.path); got != tc.want {
			t.Errorf("Lookup(%s, %q) = %v, want %v", tc.from.Path(), tc.path, got, tc.want)
		}
	}
}

func TestIsAncestor(t *testing.T) {
	root := sample()
	a := root.Child("a")
	x := a.Child("x")
	if !IsAncestor(x, a) || !IsAncestor(x, root) || !IsAncestor(a, a) {
		t.Error("expected ancestor")
	}
	if IsAncestor(a, x) || IsAncestor(a, root.Child("b")) {
		t.Error("unexpected ancestor")
	}
}

func TestPath(t *testing.T) {
	root := sample()
	arr := root.Child("b").Child("arr")
	for _, tc := range []struct {
		n    *Node
		want string
	}{
		{root, "root"},
		{root.Child("a").Child("x"), "root.a.x"},
		{root.Child("a").Child("x").Value(), "root.a.x"},
		{arr.Value().Children[1], "root.b.arr[1]"},
	} {
		if got := tc.n.Path(); got != tc.want {
			t.Errorf("got %q want %q", got, tc.want)
		}
	}
}
