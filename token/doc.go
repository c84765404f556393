// Package token provides tokenization of HCS source text.
//
// A [Lexer] produces [Token] values one at a time from an in-memory file.
// [Open] builds a lexer from a [Source]; when the source has no content for
// the requested file yet, Open reports an [*UnavailableError] instead of a
// lexing failure so that callers can fetch the file and try again.
//
// [Tokenize] lexes a whole file at once and is what the parser uses.
package token
