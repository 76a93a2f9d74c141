// Package parse decodes sfmt documents into ir nodes.
//
// A document is exactly one value surrounded by optional whitespace.
// Scalars are double-quoted strings, lists are bracketed and tables are
// braced with quoted keys bound by '='. Commas separate elements and may
// not trail. Every failure is reported as an *Error carrying the byte
// offset where decoding stopped.
package parse
