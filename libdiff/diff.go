// Package libdiff computes structural differences between sfmt trees.
package libdiff

import (
	"github.com/signadot/sfmt/ir"
)

type Op int

const (
	Add Op = iota
	Remove
	Replace
)

func (o Op) String() string {
	switch o {
	case Add:
		return "add"
	case Remove:
		return "remove"
	case Replace:
		return "replace"
	}
	return "<unknown op>"
}

// Change is one difference between two trees. From is nil for Add and To
// is nil for Remove.
type Change struct {
	Path string
	Op   Op
	From *ir.Node
	To   *ir.Node
}

// Diff returns the changes turning from into to, in path order. Lists are
// compared by index and tables by key. When a list shrinks, the removals
// of its trailing elements are listed last index first, so the changes can
// be applied in sequence.
func Diff(from, to *ir.Node) []Change {
	var res []Change
	return diff(res, "", from, to)
}

func diff(res []Change, path string, from, to *ir.Node) []Change {
	if from.Kind() != to.Kind() {
		return append(res, Change{Path: path, Op: Replace, From: from, To: to})
	}
	switch from.Kind() {
	case ir.ScalarKind:
		a, _ := from.AsScalar()
		b, _ := to.AsScalar()
		if a != b {
			res = append(res, Change{Path: path, Op: Replace, From: from, To: to})
		}
	case ir.ListKind:
		a, _ := from.AsList()
		b, _ := to.AsList()
		n := min(len(a), len(b))
		for i := range n {
			res = diff(res, ir.JoinIndex(path, i), a[i], b[i])
		}
		for i := n; i < len(b); i++ {
			res = append(res, Change{Path: ir.JoinIndex(path, i), Op: Add, To: b[i]})
		}
		for i := len(a) - 1; i >= n; i-- {
			res = append(res, Change{Path: ir.JoinIndex(path, i), Op: Remove, From: a[i]})
		}
	case ir.TableKind:
		a, _ := from.AsTable()
		b, _ := to.AsTable()
		i, j := 0, 0
		for i < len(a) || j < len(b) {
			switch {
			case j == len(b) || (i < len(a) && a[i].Key < b[j].Key):
				res = append(res, Change{Path: ir.JoinKey(path, a[i].Key), Op: Remove, From: a[i].Val})
				i++
			case i == len(a) || b[j].Key < a[i].Key:
				res = append(res, Change{Path: ir.JoinKey(path, b[j].Key), Op: Add, To: b[j].Val})
				j++
			default:
				res = diff(res, ir.JoinKey(path, a[i].Key), a[i].Val, b[j].Val)
				i++
				j++
			}
		}
	}
	return res
}
