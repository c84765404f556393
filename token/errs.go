package token

import (
	"errors"
	"fmt"
)

var (
	ErrLex                 = errors.New("lex error")
	ErrUnterminatedString  = errors.New("unterminated string")
	ErrUnterminatedComment = errors.New("unterminated comment")
	ErrIllegalNumber       = errors.New("illegal number")
	ErrUnrecognizedChar    = errors.New("unrecognized character")

	// ErrUnavailable is not a lexing failure: the source content has not
	// been delivered yet.
	ErrUnavailable = errors.New("source unavailable")
)

type LexError struct {
	Err    error
	Pos    Pos
	Detail string
}

func NewLexError(e error, p Pos, detail string) *LexError {
	return &LexError{Err: e, Pos: p, Detail: detail}
}

func (e *LexError) Unwrap() []error {
	return []error{e.Err, ErrLex}
}

func (e *LexError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s", e.Pos, e.Err)
	}
	return fmt.Sprintf("%s: %s %s", e.Pos, e.Err, e.Detail)
}

type UnavailableError struct {
	File string
}

func (e *UnavailableError) Unwrap() error {
	return ErrUnavailable
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnavailable, e.File)
}
