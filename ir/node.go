package ir

import (
	"cmp"
	"maps"
	"slices"
)

// Node is a single value in a tree: a scalar, a list or a table.
//
// Nodes are immutable once constructed and own their children. The zero
// value is the empty scalar.
type Node struct {
	kind  Kind
	text  string
	items []*Node
	kvs   []KeyVal
}

// KeyVal is a table entry.
type KeyVal struct {
	Key string
	Val *Node
}

// Visitor receives the payload of a node according to its kind. The slices
// passed to VisitList and VisitTable belong to the node and must not be
// modified or retained.
type Visitor interface {
	VisitScalar(text string) error
	VisitList(items []*Node) error
	VisitTable(kvs []KeyVal) error
}

// Accept dispatches n to the Visitor method for its kind.
func (n *Node) Accept(v Visitor) error {
	switch n.kind {
	case ScalarKind:
		return v.VisitScalar(n.text)
	case ListKind:
		return v.VisitList(n.items)
	case TableKind:
		return v.VisitTable(n.kvs)
	}
	panic("ir: node of unknown kind")
}

func Scalar(text string) *Node {
	return &Node{kind: ScalarKind, text: text}
}

func List(items ...*Node) *Node {
	return FromSlice(items)
}

func FromSlice(items []*Node) *Node {
	for _, item := range items {
		mustChild(item)
	}
	return &Node{kind: ListKind, items: slices.Clone(items)}
}

// Table builds a table from kvs, failing with a *DuplicateKeyError if a
// key occurs more than once.
func Table(kvs ...KeyVal) (*Node, error) {
	return FromKeyVals(kvs)
}

func FromKeyVals(kvs []KeyVal) (*Node, error) {
	sorted := slices.Clone(kvs)
	for _, kv := range sorted {
		mustChild(kv.Val)
	}
	slices.SortStableFunc(sorted, func(a, b KeyVal) int {
		return cmp.Compare(a.Key, b.Key)
	})
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Key == sorted[i-1].Key {
			return nil, &DuplicateKeyError{Key: sorted[i].Key}
		}
	}
	return &Node{kind: TableKind, kvs: sorted}, nil
}

func MustTable(kvs ...KeyVal) *Node {
	n, err := FromKeyVals(kvs)
	if err != nil {
		panic(err)
	}
	return n
}

func FromMap(m map[string]*Node) *Node {
	kvs := make([]KeyVal, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		v := m[k]
		mustChild(v)
		kvs = append(kvs, KeyVal{Key: k, Val: v})
	}
	return &Node{kind: TableKind, kvs: kvs}
}

func mustChild(n *Node) {
	if n == nil {
		panic("ir: nil child node")
	}
}

func (n *Node) Kind() Kind {
	return n.kind
}

func (n *Node) AsScalar() (string, error) {
	if n.kind != ScalarKind {
		return "", &TypeMismatchError{Want: ScalarKind, Got: n.kind}
	}
	return n.text, nil
}

func (n *Node) AsList() ([]*Node, error) {
	if n.kind != ListKind {
		return nil, &TypeMismatchError{Want: ListKind, Got: n.kind}
	}
	return slices.Clone(n.items), nil
}

// AsTable returns the entries of a table in ascending key order.
func (n *Node) AsTable() ([]KeyVal, error) {
	if n.kind != TableKind {
		return nil, &TypeMismatchError{Want: TableKind, Got: n.kind}
	}
	return slices.Clone(n.kvs), nil
}

// Len returns the number of children of a list or table, and 0 for a
// scalar.
func (n *Node) Len() int {
	switch n.kind {
	case ListKind:
		return len(n.items)
	case TableKind:
		return len(n.kvs)
	}
	return 0
}

// Index returns the i'th element of a list.
func (n *Node) Index(i int) (*Node, bool) {
	if n.kind != ListKind || i < 0 || i >= len(n.items) {
		return nil, false
	}
	return n.items[i], true
}

// Get looks up key in a table.
func (n *Node) Get(key string) (*Node, bool) {
	if n.kind != TableKind {
		return nil, false
	}
	i, ok := slices.BinarySearchFunc(n.kvs, key, func(kv KeyVal, k string) int {
		return cmp.Compare(kv.Key, k)
	})
	if !ok {
		return nil, false
	}
	return n.kvs[i].Val, true
}

func (n *Node) Keys() []string {
	if n.kind != TableKind {
		return nil
	}
	res := make([]string, len(n.kvs))
	for i := range n.kvs {
		res[i] = n.kvs[i].Key
	}
	return res
}

func ToMap(n *Node) map[string]*Node {
	if n.kind != TableKind {
		return nil
	}
	res := make(map[string]*Node, len(n.kvs))
	for _, kv := range n.kvs {
		res[kv.Key] = kv.Val
	}
	return res
}
