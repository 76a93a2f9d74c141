// Package ir provides the tree representation of sfmt documents.
//
// # Overview
//
// Every document, whether decoded from text, converted from JSON or YAML,
// or built programmatically, is a tree of *Node values. A node is one of
// three kinds:
//
//   - ScalarKind: literal text, stored verbatim. Numbers and booleans are
//     just text; there is no type coercion.
//   - ListKind: an ordered sequence of nodes.
//   - TableKind: a mapping from string keys to nodes. Keys are unique and
//     entries are kept in ascending key order.
//
// # Creating Nodes
//
// Trees are built bottom-up with constructor functions:
//
//	name := ir.Scalar("alice")
//	tags := ir.List(ir.Scalar("a"), ir.Scalar("b"))
//	user, err := ir.Table(
//	    ir.KeyVal{Key: "name", Val: name},
//	    ir.KeyVal{Key: "tags", Val: tags},
//	)
//
// Table fails with a *DuplicateKeyError if a key is given twice. FromMap
// cannot fail since map keys are already unique.
//
// # Immutability
//
// A Node cannot be changed after construction. Constructors copy the
// slices they are given and accessors return copies, so a tree can be
// shared freely between goroutines without synchronization.
//
// # Accessing Nodes
//
// Kind reports the variant. AsScalar, AsList and AsTable return the
// payload, or a *TypeMismatchError when called on the wrong kind.
// Visitor and Accept provide exhaustive dispatch over the three kinds.
//
// Paths address nodes within a tree:
//
//	child, err := ir.Get(root, `users[0]."display name"`)
//
// # Comparison and Hashing
//
//	equal := ir.Equal(a, b)
//	h := a.Hash()
package ir
