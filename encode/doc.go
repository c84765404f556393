// Package encode writes resolved HCS trees.
//
// # Usage
//
//	// Encode a tree as HCS text
//	err := encode.Encode(root, w)
//
//	// Encode one file, re-emitting its includes relative to the file
//	err := encode.EncodeFile(root, includes, "/cfg/main.hcs", w)
//
//	// Export the data of a tree
//	err := encode.ToYAML(root, w)
//	err := encode.ToJSON(root, w)
//
// Text produced by Encode parses back to an equivalent tree.
//
// # Related Packages
//
//   - github.com/openharmony/go-hcs/ir - resolved node model
//   - github.com/openharmony/go-hcs/parse - parse text to raw trees
package encode
