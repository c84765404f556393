package parse

import (
	"errors"
	"fmt"

	"github.com/openharmony/go-hcs/token"
)

var (
	ErrSyntax = errors.New("syntax error")
)

type SyntaxError struct {
	Pos      token.Pos
	Expected string
	Got      string
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s: expected %s, got %s", e.Pos, ErrSyntax, e.Expected, e.Got)
}
