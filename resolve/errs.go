package resolve

import (
	"errors"
	"fmt"

	"github.com/openharmony/go-hcs/ir"
	"github.com/openharmony/go-hcs/token"
)

var (
	ErrUnresolvedTarget = errors.New("unresolved target")
	ErrCycle            = errors.New("cycle")
	ErrRedefinition     = errors.New("redefinition")
	ErrTypeConflict     = errors.New("type conflict")
	ErrNestedRelation   = errors.New("nested relation")
	ErrNameFormat       = errors.New("name format")
)

// NodeError is a diagnostic attached to a node. Path and Pos are captured
// when it is reported since the node may be detached afterwards.
type NodeError struct {
	Err  error
	Msg  string
	Path string
	Pos  token.Pos
	Node *ir.Node
}

func newNodeError(n *ir.Node, err error, msg string) *NodeError {
	return &NodeError{
		Err:  err,
		Msg:  msg,
		Path: n.Path(),
		Pos:  n.Position(),
		Node: n,
	}
}

func (e *NodeError) Unwrap() error {
	return e.Err
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos, e.Path, e.Msg)
}
