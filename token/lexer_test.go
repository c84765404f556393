package token

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func types(toks []Token) []TokenType {
	res := make([]TokenType, len(toks))
	for i := range toks {
		res[i] = toks[i].Type
	}
	return res
}

func TestTokenize(t *testing.T) {
	src := `#include "base.hcs"
// line comment
root {
    module = "sample"; /* block
    comment */
    a : &root.b {}
    t :: tmpl {}
    flag = true;
    list = [1, 0x2, 03];
    x : delete {}
    template tmpl {}
}
`
	toks, err := Tokenize("f.hcs", []byte(src))
	if err != nil {
		t.Fatal(err)
	}
	want := []TokenType{
		TInclude, TString,
		TRoot, TLCurl,
		TLiteral, TAssign, TString, TSemi,
		TLiteral, TColon, TAmp, TRefPath, TLCurl, TRCurl,
		TLiteral, TColon, TColon, TLiteral, TLCurl, TRCurl,
		TLiteral, TAssign, TBool, TSemi,
		TLiteral, TAssign, TLSquare, TNumber, TComma, TNumber, TComma, TNumber, TRSquare, TSemi,
		TLiteral, TColon, TDelete, TLCurl, TRCurl,
		TTemplate, TLiteral, TLCurl, TRCurl,
		TRCurl,
		TEOF,
	}
	if diff := cmp.Diff(want, types(toks)); diff != "" {
		t.Fatalf("token types (-want +got):\n%s", diff)
	}
	if toks[1].Text != "base.hcs" {
		t.Errorf("include path %q", toks[1].Text)
	}
	// module is on line 4, after the two leading lines and root.
	if toks[4].Pos.Line != 4 {
		t.Errorf("module at line %d", toks[4].Pos.Line)
	}
	// the block comment spans a line
	if toks[8].Pos.Line != 6 || toks[8].Text != "a" {
		t.Errorf("a at %s %q", toks[8].Pos, toks[8].Text)
	}
	if toks[len(toks)-1].Pos.Line != 13 {
		t.Errorf("eof at line %d", toks[len(toks)-1].Pos.Line)
	}
}

func TestNumbers(t *testing.T) {
	for _, tc := range []struct {
		in    string
		value uint64
		radix int
		neg   bool
	}{
		{"0", 0, 10, false},
		{"42", 42, 10, false},
		{"+42", 42, 10, false},
		{"-1", ^uint64(0), 10, true},
		{"-0", 0, 10, false},
		{"0x1F", 31, 16, false},
		{"0XFF", 255, 16, false},
		{"0b101", 5, 2, false},
		{"017", 15, 8, false},
		{"18446744073709551615", ^uint64(0), 10, false},
		{"-9223372036854775808", 1 << 63, 10, true},
	} {
		t.Run(tc.in, func(t *testing.T) {
			toks, err := Tokenize("", []byte(tc.in))
			if err != nil {
				t.Fatal(err)
			}
			tok := toks[0]
			if tok.Type != TNumber {
				t.Fatalf("got %s", tok.Type)
			}
			if tok.Value != tc.value || tok.Radix != tc.radix || tok.Neg != tc.neg {
				t.Errorf("got value %d radix %d neg %t", tok.Value, tok.Radix, tok.Neg)
			}
			if tok.Text != tc.in {
				t.Errorf("text %q", tok.Text)
			}
		})
	}
}

func TestLexErrors(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want error
		line int
	}{
		{`"abc`, ErrUnterminatedString, 1},
		{"\n/* abc", ErrUnterminatedComment, 2},
		{"0x", ErrIllegalNumber, 1},
		{"0b", ErrIllegalNumber, 1},
		{"089", ErrIllegalNumber, 1},
		{"12ab", ErrIllegalNumber, 1},
		{"0b102", ErrIllegalNumber, 1},
		{"18446744073709551616", ErrIllegalNumber, 1},
		{"\n\n@", ErrUnrecognizedChar, 3},
		{"#includes", ErrUnrecognizedChar, 1},
		{"#define", ErrUnrecognizedChar, 1},
		{"a / b", ErrUnrecognizedChar, 1},
	} {
		t.Run(tc.in, func(t *testing.T) {
			_, err := Tokenize("x.hcs", []byte(tc.in))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v got %v", tc.want, err)
			}
			if !errors.Is(err, ErrLex) {
				t.Errorf("%v does not wrap ErrLex", err)
			}
			var lexErr *LexError
			if !errors.As(err, &lexErr) {
				t.Fatalf("%T is not a *LexError", err)
			}
			if lexErr.Pos.Line != tc.line || lexErr.Pos.File != "x.hcs" {
				t.Errorf("error at %s, want line %d", lexErr.Pos, tc.line)
			}
		})
	}
}

func TestKeywordsAndPaths(t *testing.T) {
	toks, err := Tokenize("", []byte("root delete template true false rooty a.b.c _x1"))
	if err != nil {
		t.Fatal(err)
	}
	want := []TokenType{TRoot, TDelete, TTemplate, TBool, TBool, TLiteral, TRefPath, TLiteral, TEOF}
	if diff := cmp.Diff(want, types(toks)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if !toks[3].Bool || toks[4].Bool {
		t.Errorf("bool values %t %t", toks[3].Bool, toks[4].Bool)
	}
}

type mapSource map[string][]byte

func (m mapSource) Get(name string) ([]byte, bool) {
	d, ok := m[name]
	return d, ok
}

func TestOpenUnavailable(t *testing.T) {
	src := mapSource{"/a.hcs": []byte("root {}")}
	if _, err := Open("/a.hcs", src); err != nil {
		t.Fatal(err)
	}
	_, err := Open("/b.hcs", src)
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if errors.Is(err, ErrLex) {
		t.Errorf("unavailable must not be a lex error")
	}
	var ue *UnavailableError
	if !errors.As(err, &ue) || ue.File != "/b.hcs" {
		t.Errorf("got %#v", err)
	}
}

func TestIncludeKeyword(t *testing.T) {
	for _, src := range []string{"#includes", "#inc", "#"} {
		if _, err := Tokenize("", []byte(src)); !errors.Is(err, ErrUnrecognizedChar) {
			t.Errorf("%q: got %v", src, err)
		}
	}
	toks, err := Tokenize("", []byte(`#include"a.hcs"`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]TokenType{TInclude, TString, TEOF}, types(toks)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestPrintTokens(t *testing.T) {
	toks, err := Tokenize("p.hcs", []byte("root { }"))
	if err != nil {
		t.Fatal(err)
	}
	var b strings.Builder
	PrintTokens(&b, toks, "p.hcs")
	want := "p.hcs tokens:\n\troot `root` p.hcs:1\n\t'{' `{` p.hcs:1\n\t'}' `}` p.hcs:1\n\tend of file `` p.hcs:1\n"
	if diff := cmp.Diff(want, b.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}
