package encode_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/openharmony/go-hcs/encode"
	"github.com/openharmony/go-hcs/ir"
	"github.com/openharmony/go-hcs/parse"
)

func sample() *ir.Node {
	root := ir.NewNode(ir.RootName)
	root.Add(ir.NewAttr("module", ir.FromString("sample")))
	d := root.Add(ir.NewNode("data"))
	d.Add(ir.NewAttr("hex", ir.FromInt(0x1f, 16)))
	d.Add(ir.NewAttr("oct", ir.FromInt(8, 8)))
	d.Add(ir.NewAttr("bin", ir.FromInt(5, 2)))
	d.Add(ir.NewAttr("neg", ir.FromSigned(-7)))
	d.Add(ir.NewAttr("arr", ir.FromArray(ir.FromInt(1, 10), ir.FromInt(2, 10), ir.FromInt(300, 10))))
	d.Add(ir.NewAttr("strs", ir.FromArray(ir.FromString("a"), ir.FromString("b"))))
	d.Add(ir.NewAttr("on", ir.FromBool(true)))
	d.Add(ir.NewAttr("r", ir.FromRef("root.other")))
	d.Add(ir.NewAttr("gone", ir.FromDelete()))
	root.Add(ir.NewRelNode("cp", ir.RelCopy, "data"))
	root.Add(ir.NewRelNode("rf", ir.RelReference, "root.data"))
	root.Add(ir.NewRelNode("rm", ir.RelDelete, ""))
	tmpl := root.Add(ir.NewRelNode("t", ir.RelTemplate, ""))
	tmpl.Add(ir.NewAttr("v", ir.FromInt(1, 10)))
	root.Add(ir.NewRelNode("in", ir.RelInherit, "t"))
	return root
}

const sampleText = `root {
    module = "sample";
    data {
        hex = 0x1f;
        oct = 010;
        bin = 0b101;
        neg = -7;
        arr = [1, 2, 300];
        strs = ["a", "b"];
        on = true;
        r = &root.other;
        gone = delete;
    }
    cp : data {
    }
    rf : &root.data {
    }
    rm : delete {
    }
    template t {
        v = 1;
    }
    in :: t {
    }
}
`

func TestEncode(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(sample(), buf); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(sampleText, buf.String()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestEncodeParses(t *testing.T) {
	f, err := parse.ParseFile("/x.hcs", []byte(sampleText))
	if err != nil {
		t.Fatal(err)
	}
	got := f.Tree.ToIR()
	opts := []cmp.Option{
		cmpopts.IgnoreFields(ir.Node{}, "Parent", "Origin", "Target", "Pos"),
		cmpopts.EquateEmpty(),
	}
	if diff := cmp.Diff(sample(), got, opts...); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestArrayWidening(t *testing.T) {
	f, err := parse.ParseFile("/x.hcs", []byte("root { a = [1, 2, 300]; }"))
	if err != nil {
		t.Fatal(err)
	}
	root := f.Tree.ToIR()
	for _, e := range root.Get("a").Value().Children {
		if e.Type != ir.Int16Type {
			t.Errorf("element %s is %s", encode.MustString(e), e.Type)
		}
	}
	if got := encode.MustString(root.Get("a")); got != "a = [1, 2, 300];" {
		t.Errorf("got %q", got)
	}
}

func TestEncodeFile(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	root := ir.NewNode(ir.RootName)
	includes := []string{"/cfg/base.hcs", "/cfg/sub/x.hcs", "/common/y.hcs"}
	if err := encode.EncodeFile(root, includes, "/cfg/main.hcs", buf); err != nil {
		t.Fatal(err)
	}
	want := `#include "./base.hcs"
#include "./sub/x.hcs"
#include "../common/y.hcs"
root {
}
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	f, err := parse.ParseFile("/cfg/main.hcs", buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(includes, f.Includes); diff != "" {
		t.Errorf("includes do not round trip (-want +got):\n%s", diff)
	}
}

func TestEncodeOptions(t *testing.T) {
	root := ir.NewNode(ir.RootName)
	a := root.Add(ir.NewRelNode("a", ir.RelCopy, "nope"))
	a.SetDiagnostic("copy target not found")
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(root, buf, encode.Indent(2), encode.EncodeDiagnostics(true)); err != nil {
		t.Fatal(err)
	}
	want := "root {\n  a : nope { // error: copy target not found\n  }\n}\n"
	if buf.String() != want {
		t.Errorf("got %q", buf.String())
	}
	buf.Reset()
	if err := encode.Encode(root, buf, encode.EncodeColors(encode.NewColors())); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "nope") {
		t.Errorf("colored output lost content: %q", buf.String())
	}
}

func TestExport(t *testing.T) {
	root := ir.NewNode(ir.RootName)
	root.Add(ir.NewAttr("b", ir.FromInt(2, 16)))
	d := root.Add(ir.NewNode("a"))
	d.Add(ir.NewAttr("s", ir.FromString("x")))
	d.Add(ir.NewAttr("l", ir.FromArray(ir.FromSigned(-1), ir.FromInt(7, 10))))

	buf := bytes.NewBuffer(nil)
	if err := encode.ToJSON(root, buf); err != nil {
		t.Fatal(err)
	}
	want := `{
  "b": 2,
  "a": {
    "s": "x",
    "l": [
      -1,
      7
    ]
  }
}
`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("json (-want +got):\n%s", diff)
	}

	buf.Reset()
	if err := encode.ToYAML(root, buf); err != nil {
		t.Fatal(err)
	}
	y := buf.String()
	if !strings.HasPrefix(y, "b: 2\na:\n") || !strings.Contains(y, "s: x") {
		t.Errorf("yaml %q", y)
	}
}
