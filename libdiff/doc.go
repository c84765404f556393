// Package libdiff compares HCS trees and texts.
//
// # Usage
//
//	// Structural changes between two resolved trees
//	changes := libdiff.Diff(oldRoot, newRoot)
//	for _, c := range changes {
//		fmt.Println(c)
//	}
//
//	// Line diff of two renderings
//	fmt.Print(libdiff.Lines("a.hcs", "b.hcs", oldText, newText))
//
// Nodes and attributes are matched by name, array elements by position
// after aligning equal elements. Integers compare by value: width and
// radix are presentation only.
//
// # Related Packages
//
//   - github.com/openharmony/go-hcs/ir - resolved trees
//   - github.com/openharmony/go-hcs/encode - rendering of changed values
package libdiff
