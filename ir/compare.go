package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Scalars sort before lists and lists before tables. Scalars compare by
// text, lists element-wise, and tables entry-wise by key and then value,
// with a shorter prefix sorting first.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.kind != b.kind {
		return cmp.Compare(a.kind, b.kind)
	}
	switch a.kind {
	case ScalarKind:
		return strings.Compare(a.text, b.text)
	case ListKind:
		return compareLists(a.items, b.items)
	case TableKind:
		return compareTables(a.kvs, b.kvs)
	}
	panic("ir: node of unknown kind")
}

func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

func compareLists(a, b []*Node) int {
	for i := 0; i < min(len(a), len(b)); i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareTables(a, b []KeyVal) int {
	for i := 0; i < min(len(a), len(b)); i++ {
		if c := strings.Compare(a[i].Key, b[i].Key); c != 0 {
			return c
		}
		if c := Compare(a[i].Val, b[i].Val); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}
