package libdiff

// Op is the kind of a Change.
type Op int

const (
	Insert Op = iota
	Delete
	Replace
	// Relink is a change of a node's relation or target.
	Relink
)

var opNames = map[Op]string{
	Insert:  "insert",
	Delete:  "delete",
	Replace: "replace",
	Relink:  "relink",
}

var opSigns = map[Op]string{
	Insert:  "+",
	Delete:  "-",
	Replace: "~",
	Relink:  "~",
}

func (o Op) String() string {
	if s, ok := opNames[o]; ok {
		return s
	}
	return "<unknown op>"
}
