package ir

import (
	"encoding/json"
	"fmt"
)

type irBase struct {
	Type     Type     `json:"type"`
	Name     string   `json:"name,omitempty"`
	Relation Relation `json:"relation,omitempty"`
	Ref      string   `json:"ref,omitempty"`
	Children []*Node  `json:"children,omitempty"`

	Radix int    `json:"radix,omitempty"`
	Neg   bool   `json:"neg,omitempty"`
	File  string `json:"file,omitempty"`
	Line  int    `json:"line,omitempty"`

	Diagnostic string `json:"diagnostic,omitempty"`
}

func (n *Node) MarshalJSON() ([]byte, error) {
	base := &irBase{
		Type:       n.Type,
		Name:       n.Name,
		Ref:        n.Ref,
		Children:   n.Children,
		Radix:      n.Radix,
		Neg:        n.Neg,
		File:       n.Pos.File,
		Line:       n.Pos.Line,
		Diagnostic: n.Diagnostic,
	}
	switch n.Type {
	case NodeType:
		type C struct {
			irBase
			Relation Relation `json:"relation"`
		}
		return json.Marshal(C{irBase: *base, Relation: n.Relation})
	case StringType:
		type C struct {
			irBase
			String string `json:"string"`
		}
		return json.Marshal(C{irBase: *base, String: n.String})
	case BoolType:
		type C struct {
			irBase
			Bool bool `json:"bool"`
		}
		return json.Marshal(C{irBase: *base, Bool: n.Bool})
	case Int8Type, Int16Type, Int32Type, Int64Type:
		type C struct {
			irBase
			Int uint64 `json:"int"`
		}
		return json.Marshal(C{irBase: *base, Int: n.Int})
	default:
		return json.Marshal(base)
	}
}

func (n *Node) UnmarshalJSON(d []byte) error {
	type C struct {
		irBase
		String string `json:"string"`
		Bool   bool   `json:"bool"`
		Int    uint64 `json:"int"`
	}
	tmp := &C{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	n.Type = tmp.Type
	n.Name = tmp.Name
	n.Relation = tmp.Relation
	n.Ref = tmp.Ref
	n.Radix = tmp.Radix
	n.Neg = tmp.Neg
	n.Pos.File = tmp.File
	n.Pos.Line = tmp.Line
	n.Diagnostic = tmp.Diagnostic
	n.String = tmp.String
	n.Bool = tmp.Bool
	n.Int = tmp.Int
	n.Children = tmp.Children
	for i, c := range n.Children {
		if c == nil {
			return fmt.Errorf("null child %d of %q", i, n.Name)
		}
		c.Parent = n
	}
	if n.Type == AttrType && len(n.Children) != 1 {
		return fmt.Errorf("attribute %q has %d values", n.Name, len(n.Children))
	}
	if n.Type.IsInt() && n.Radix == 0 {
		n.Radix = 10
	}
	return nil
}
