// Package ir provides the resolved object model for HCS configuration trees.
//
// # Overview
//
// Every HCS file, after parsing, is converted into a tree of [Node] values.
// Per-file trees are merged into a single tree rooted at a node named
// "root", and the resolve package expands copies, references, deletes and
// template inheritance in place on that tree.
//
// # Node Types
//
// The Type field indicates what a node is:
//
//   - Int8Type, Int16Type, Int32Type, Int64Type: an integer leaf, with the
//     value in Int and the radix it was written in in Radix
//   - StringType, BoolType: scalar leaves
//   - ArrayType: an ordered list of homogeneous leaves
//   - RefType: a reference leaf; Ref holds the target path and Target the
//     node it resolved to, if any
//   - DeleteType: the "delete" attribute value
//   - AttrType: a named attribute; its only child is the value
//   - NodeType: a named configuration node with ordered children
//
// A NodeType node carries a [Relation]: Data, Copy, Reference, Delete,
// Template or Inherit. For Copy, Reference and Inherit, Ref holds the
// target path as written.
//
// # Integer Widths
//
// Integers take the narrowest unsigned width that holds their value (see
// [FitInt]). Negative decimal values are kept in two's complement with Neg
// set, and take the narrowest signed width instead.
//
// # Diagnostics
//
// Diagnostic is a sticky message describing why a node failed to resolve.
// [Node.SetDiagnostic] also annotates the Origin chain, so that a message
// found on a merged tree shows up on the per-file node it was derived from.
//
// # Paths
//
// Nodes are addressed by dotted name paths such as "root.a.b"; see
// [Lookup] for how bare and dotted paths resolve.
package ir
