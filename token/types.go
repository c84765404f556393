package token

import (
	"fmt"
	"strconv"
)

type TokenType int

const (
	TEOF TokenType = iota
	TLiteral
	TRefPath
	TNumber
	TString
	TBool
	TInclude
	TRoot
	TDelete
	TTemplate
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TLParen
	TRParen
	TSemi
	TComma
	TAssign
	TAmp
	TColon
)

func (t TokenType) String() string {
	s, ok := map[TokenType]string{
		TEOF:      "end of file",
		TLiteral:  "literal",
		TRefPath:  "reference path",
		TNumber:   "number",
		TString:   "string",
		TBool:     "bool",
		TInclude:  "#include",
		TRoot:     "root",
		TDelete:   "delete",
		TTemplate: "template",
		TLCurl:    "'{'",
		TRCurl:    "'}'",
		TLSquare:  "'['",
		TRSquare:  "']'",
		TLParen:   "'('",
		TRParen:   "')'",
		TSemi:     "';'",
		TComma:    "','",
		TAssign:   "'='",
		TAmp:      "'&'",
		TColon:    "':'",
	}[t]
	if ok {
		return s
	}
	return "<unknown token " + strconv.Itoa(int(t)) + ">"
}

var keywords = map[string]TokenType{
	"root":     TRoot,
	"delete":   TDelete,
	"template": TTemplate,
	"true":     TBool,
	"false":    TBool,
}

var punctuation = map[byte]TokenType{
	'{': TLCurl,
	'}': TRCurl,
	'[': TLSquare,
	']': TRSquare,
	'(': TLParen,
	')': TRParen,
	';': TSemi,
	',': TComma,
	'=': TAssign,
	'&': TAmp,
	':': TColon,
}

// Token is a single lexeme. Text holds the identifier, path or string
// contents; for numbers it holds the source spelling and Value the
// two's-complement value.
type Token struct {
	Type TokenType
	Pos  Pos
	Text string

	Value uint64
	Radix int
	Neg   bool
	Bool  bool
}

func (t Token) String() string {
	switch t.Type {
	case TEOF:
		return t.Type.String()
	case TString:
		return strconv.Quote(t.Text)
	case TLiteral, TRefPath, TNumber, TBool:
		return fmt.Sprintf("%s %q", t.Type, t.Text)
	default:
		return t.Type.String()
	}
}

func (t Token) Info() string {
	return fmt.Sprintf("%s at %s", t, t.Pos)
}
