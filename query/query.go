// Package query selects nodes of HCS trees with boolean expressions.
//
// Queries are expr-lang expressions evaluated against an [Env] describing
// one node or attribute, for example
//
//	kind == "attribute" && valtype == "int8" && value > 10
//	relation == "copy" || Has("match_attr")
//	Under("root.platform") && name startsWith "gpio"
//
// Queries only select; they never compute attribute values.
package query

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/openharmony/go-hcs/debug"
	"github.com/openharmony/go-hcs/ir"
)

var ErrQuery = errors.New("query error")

type Query struct {
	src string
	prg *vm.Program
}

func Compile(src string) (*Query, error) {
	prg, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return &Query{src: src, prg: prg}, nil
}

func (q *Query) String() string {
	return q.src
}

// Match evaluates q on n, which must be a node or an attribute.
func (q *Query) Match(n *ir.Node) (bool, error) {
	if n.Type != ir.NodeType && n.Type != ir.AttrType {
		return false, nil
	}
	res, err := expr.Run(q.prg, NewEnv(n))
	if err != nil {
		return false, fmt.Errorf("%w: at %s: %w", ErrQuery, n.Path(), err)
	}
	ok, _ := res.(bool)
	return ok, nil
}

// Find returns the nodes and attributes below root, root included, that
// match q, in pre-order.
func (q *Query) Find(root *ir.Node) ([]*ir.Node, error) {
	var res []*ir.Node
	err := root.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return false, nil
		}
		ok, err := q.Match(n)
		if err != nil {
			return false, err
		}
		if ok {
			if debug.Match() {
				debug.Logf("query %q matched %s\n", q.src, n.Path())
			}
			res = append(res, n)
		}
		return n.Type == ir.NodeType, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
