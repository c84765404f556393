// Package hcs loads, resolves and edits HCS configuration sources.
//
// A [Document] owns the include batch of one root file: the content cache,
// the per-file trees the parser produced and the resolved tree built from
// them. Content arrives through a [source.Provider], possibly out of order;
// every arrival re-parses the whole batch from the cache.
//
// Edits apply to per-file trees and are followed by a new resolution, so
// diagnostics always describe the current state of the sources. Use
// [Document.Generate] to turn a per-file tree back into text.
package hcs
