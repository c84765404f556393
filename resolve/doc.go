// Package resolve turns per-file HCS trees into one resolved tree.
//
// [Run] performs, in order:
//
//  1. a redefinition check on every file; any duplicate sibling name
//     refuses the whole batch with [ErrRedefinition]
//  2. a merge of all files into a fresh root, the requested root file last
//     so that it wins
//  3. node expansion, post-order: deletes are removed, copies are filled in
//     from their target, reference nodes are merged into their target and
//     removed, and reference attributes are validated
//  4. inherit expansion, pre-order: names are validated, inherit nodes are
//     filled in from their template and then every template is removed
//  5. a nesting check flagging copies of unexpanded copies
//
// Semantic failures do not stop a pass. Each one sets the Diagnostic of the
// offending node (and its origin in the per-file tree) and is recorded in a
// [Report] as a [*NodeError].
package resolve
