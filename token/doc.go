// Package token provides the lexical rules shared by the encoder and the
// decoder.
//
// [Quote] and [Unquote] convert between text and its quoted scalar form.
//
// [Scanner] splits a document into tokens on demand, so that lexical
// errors are reported in the order a parser encounters them.
//
// [PosDoc] maps byte offsets to line and column numbers for messages.
package token
