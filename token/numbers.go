package token

import (
	"strconv"
)

// number lexes decimal, 0x hex, 0b binary and leading-zero octal integers.
// Only decimal literals take a sign.
func (l *Lexer) number(pos Pos) (Token, error) {
	start := l.i
	neg := false
	signed := false
	if c := l.d[l.i]; c == '-' || c == '+' {
		neg = c == '-'
		signed = true
		l.i++
	}
	radix := 10
	digitsAt := l.i
	if !signed && l.d[l.i] == '0' && l.i+1 < len(l.d) {
		switch l.d[l.i+1] {
		case 'x', 'X':
			radix = 16
			digitsAt = l.i + 2
		case 'b', 'B':
			radix = 2
			digitsAt = l.i + 2
		default:
			if isDigit(l.d[l.i+1]) {
				radix = 8
				digitsAt = l.i + 1
			}
		}
	}
	l.i = digitsAt
	for l.i < len(l.d) && isHexDigit(l.d[l.i]) {
		l.i++
	}
	text := string(l.d[start:l.i])
	digits := string(l.d[digitsAt:l.i])
	if l.i < len(l.d) && isIdentChar(l.d[l.i]) {
		for l.i < len(l.d) && isIdentChar(l.d[l.i]) {
			l.i++
		}
		return Token{}, NewLexError(ErrIllegalNumber, pos, strconv.Quote(string(l.d[start:l.i])))
	}
	if digits == "" {
		return Token{}, NewLexError(ErrIllegalNumber, pos, strconv.Quote(text))
	}
	v, err := strconv.ParseUint(digits, radix, 64)
	if err != nil {
		return Token{}, NewLexError(ErrIllegalNumber, pos, strconv.Quote(text))
	}
	if neg {
		if v > 1<<63 {
			return Token{}, NewLexError(ErrIllegalNumber, pos, strconv.Quote(text))
		}
		v = ^v + 1
		neg = v != 0
	}
	return Token{Type: TNumber, Pos: pos, Text: text, Value: v, Radix: radix, Neg: neg}, nil
}

func isHexDigit(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}
