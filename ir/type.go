package ir

import "fmt"

type Type int

const (
	Int8Type Type = iota
	Int16Type
	Int32Type
	Int64Type
	StringType
	BoolType
	NodeType
	AttrType
	ArrayType
	RefType
	DeleteType
)

var typeNames = map[Type]string{
	Int8Type:   "Int8",
	Int16Type:  "Int16",
	Int32Type:  "Int32",
	Int64Type:  "Int64",
	StringType: "String",
	BoolType:   "Bool",
	NodeType:   "Node",
	AttrType:   "Attribute",
	ArrayType:  "Array",
	RefType:    "Reference",
	DeleteType: "Delete",
}

func (t Type) String() string {
	s, ok := typeNames[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for k, v := range typeNames {
		if v == string(d) {
			*t = k
			return nil
		}
	}
	return fmt.Errorf("%w %q", ErrType, d)
}

func Types() []Type {
	return []Type{
		Int8Type,
		Int16Type,
		Int32Type,
		Int64Type,
		StringType,
		BoolType,
		NodeType,
		AttrType,
		ArrayType,
		RefType,
		DeleteType,
	}
}

func (t Type) IsInt() bool {
	return t >= Int8Type && t <= Int64Type
}

func (t Type) IsLeaf() bool {
	switch t {
	case NodeType, AttrType, ArrayType:
		return false
	default:
		return true
	}
}

// FitInt returns the narrowest integer type holding v. neg marks v as the
// two's complement of a negative number.
func FitInt(v uint64, neg bool) Type {
	if neg {
		s := int64(v)
		switch {
		case s >= -1<<7:
			return Int8Type
		case s >= -1<<15:
			return Int16Type
		case s >= -1<<31:
			return Int32Type
		default:
			return Int64Type
		}
	}
	switch {
	case v <= 0xff:
		return Int8Type
	case v <= 0xffff:
		return Int16Type
	case v <= 0xffffffff:
		return Int32Type
	default:
		return Int64Type
	}
}

// WiderInt returns the wider of two integer types.
func WiderInt(a, b Type) Type {
	if b > a {
		return b
	}
	return a
}

type Relation int

const (
	RelData Relation = iota
	RelCopy
	RelReference
	RelDelete
	RelTemplate
	RelInherit
)

var relationNames = map[Relation]string{
	RelData:      "Data",
	RelCopy:      "Copy",
	RelReference: "Reference",
	RelDelete:    "Delete",
	RelTemplate:  "Template",
	RelInherit:   "Inherit",
}

func (r Relation) String() string {
	s, ok := relationNames[r]
	if ok {
		return s
	}
	return "<unknown relation>"
}

func (r Relation) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Relation) UnmarshalText(d []byte) error {
	for k, v := range relationNames {
		if v == string(d) {
			*r = k
			return nil
		}
	}
	return fmt.Errorf("%w %q", ErrRelation, d)
}

// HasRef reports whether nodes of this relation carry a target path.
func (r Relation) HasRef() bool {
	switch r {
	case RelCopy, RelReference, RelInherit:
		return true
	default:
		return false
	}
}
