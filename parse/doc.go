// Package parse implements the HCS grammar.
//
// [ParseFile] turns the bytes of one file into a raw [ast.Tree] plus the
// normalised paths of the files it includes (see [source.IncludePath]). A [Parser] reads files
// from a [token.Source] and parses a whole include closure breadth first;
// when a file in the closure is not in the source yet, ParseBatch stops with
// a [*token.UnavailableError] so the caller can fetch it and try again.
//
//	file       := { "#include" STRING [";"] } [ "root" body ] EOF
//	body       := "{" { "template" LITERAL body | nodeOrTerm } "}"
//	nodeOrTerm := LITERAL ( "=" value ";" | body | ":" ref )
//	ref        := "&" path body | "delete" body | ":" path body | path body
//	value      := BOOL | STRING | NUMBER | "[" array "]" | "&" path | "delete"
//	array      := [ elem { "," elem } [","] ]
//	path       := LITERAL | REFPATH
//
// Array elements must be all numbers or all strings.
package parse
