package libdiff

import "slices"

// Reverse returns the changes turning the to side back into the from
// side.
func Reverse(changes []Change) []Change {
	res := slices.Clone(changes)
	for i := range res {
		c := &res[i]
		c.From, c.To = c.To, c.From
		switch c.Op {
		case Insert:
			c.Op = Delete
		case Delete:
			c.Op = Insert
		}
		if c.Op == Delete {
			c.Path = c.From.Path()
		} else {
			c.Path = c.To.Path()
		}
	}
	return res
}
