// Package eval evaluates expr-lang expressions over sfmt trees.
//
// Expressions see the tree as plain Go values (see gomap.ToAny) through
// the variable doc, and through one variable per top-level table key.
// The functions get, has, kind and compact take a path such as
// `a.b[0]` and resolve it against the tree; getenv reads the
// environment.
package eval
