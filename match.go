package sfmt

import (
	"github.com/signadot/sfmt/debug"
	"github.com/signadot/sfmt/ir"
)

// Match reports whether doc matches pattern. A table pattern matches a
// table holding at least its keys, each with a matching value. A list
// pattern matches a list of the same length element by element. A scalar
// pattern matches an equal scalar.
func Match(doc, pattern *ir.Node) bool {
	if debug.Patch() {
		debug.Logf("match %v against %v\n", doc, pattern)
	}
	if doc.Kind() != pattern.Kind() {
		return false
	}
	switch pattern.Kind() {
	case ir.TableKind:
		return matchTable(doc, pattern)
	case ir.ListKind:
		return matchList(doc, pattern)
	}
	a, _ := doc.AsScalar()
	b, _ := pattern.AsScalar()
	return a == b
}

func matchTable(doc, pattern *ir.Node) bool {
	kvs, _ := pattern.AsTable()
	for _, kv := range kvs {
		v, ok := doc.Get(kv.Key)
		if !ok || !Match(v, kv.Val) {
			return false
		}
	}
	return true
}

func matchList(doc, pattern *ir.Node) bool {
	if doc.Len() != pattern.Len() {
		return false
	}
	items, _ := pattern.AsList()
	for i, item := range items {
		v, _ := doc.Index(i)
		if !Match(v, item) {
			return false
		}
	}
	return true
}
