package libdiff

import (
	"strconv"

	"github.com/openharmony/go-hcs/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffArrayByIndex aligns the elements of two arrays.
//
//  1. every element is summarised as <type>-<value>, integers ignoring
//     their width and radix
//  2. the sequences of summaries are diffed
//  3. equal runs are compared again with df, a deletion directly followed
//     by an insertion becomes a replacement, the rest become deletions or
//     insertions
func DiffArrayByIndex(from, to *ir.Node, df DiffFunc) []Change {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)

	var res []Change
	fi, ti := 0, 0
	lastDel := -1
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range n {
				res = append(res, Change{Op: Delete, Path: from.Children[fi].Path(), From: from.Children[fi]})
				lastDel = len(res) - 1
				fi++
			}
		case diffpatch.DiffEqual:
			lastDel = -1
			for range n {
				res = append(res, df(from.Children[fi], to.Children[ti])...)
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				if lastDel >= 0 && lastDel == len(res)-1 {
					res[lastDel] = replace(res[lastDel].From, to.Children[ti])
				} else {
					res = append(res, Change{Op: Insert, Path: to.Children[ti].Path(), To: to.Children[ti]})
				}
				lastDel = -1
				ti++
			}
		}
	}
	return res
}

func mapValues(m map[string]rune, node *ir.Node) []rune {
	rs := make([]rune, len(node.Children))
	for i, v := range node.Children {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

func summaryStr(node *ir.Node) string {
	switch {
	case node.Type.IsInt():
		if node.Neg {
			return "Int-" + strconv.FormatInt(int64(node.Int), 10)
		}
		return "Int-" + strconv.FormatUint(node.Int, 10)
	case node.Type == ir.StringType:
		return node.Type.String() + "-" + node.String
	case node.Type == ir.BoolType:
		return node.Type.String() + "-" + strconv.FormatBool(node.Bool)
	case node.Type == ir.RefType:
		return node.Type.String() + "-" + node.Ref
	default:
		return node.Type.String()
	}
}
