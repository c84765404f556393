// Package ast holds the raw parse tree of a single HCS file.
//
// Nodes live in a [Tree] arena and are addressed by [NodeID]. Each node
// records its parent, first and last child and both siblings as ids, so
// appending, detaching and reparenting are constant time and no node holds
// a pointer to another.
//
// A raw tree is short lived: the parser builds it and [Tree.ToIR] converts it
// into the resolved model.
package ast
