package libdiff

import "github.com/openharmony/go-hcs/ir"

func DiffNumber(from *ir.Node, to *ir.Node) []Change {
	if from.Int != to.Int || from.Neg != to.Neg {
		return []Change{replace(from, to)}
	}
	return nil
}
