package eval

import (
	"fmt"
	"strings"

	"github.com/signadot/sfmt/encode"
	"github.com/signadot/sfmt/gomap"
	"github.com/signadot/sfmt/ir"
)

// Expand evaluates the $[expr] references in every scalar of root against
// root itself. A scalar consisting of a single reference is replaced by the
// result as a tree; references embedded in other text are replaced by the
// text of their result. root is not modified.
func Expand(root *ir.Node) (*ir.Node, error) {
	return expand(root, root)
}

func expand(root, n *ir.Node) (*ir.Node, error) {
	switch n.Kind() {
	case ir.ListKind:
		items, _ := n.AsList()
		for i, item := range items {
			x, err := expand(root, item)
			if err != nil {
				return nil, err
			}
			items[i] = x
		}
		return ir.FromSlice(items), nil
	case ir.TableKind:
		kvs, _ := n.AsTable()
		for i := range kvs {
			x, err := expand(root, kvs[i].Val)
			if err != nil {
				return nil, err
			}
			kvs[i].Val = x
		}
		return ir.FromKeyVals(kvs)
	}
	s, _ := n.AsScalar()
	if key, ok := rawRef(s); ok {
		return Eval(key, root)
	}
	res, err := ExpandString(s, root)
	if err != nil {
		return nil, err
	}
	if res == s {
		return n, nil
	}
	return ir.Scalar(res), nil
}

// rawRef reports whether s is exactly one $[expr] reference.
func rawRef(s string) (string, bool) {
	if !strings.HasPrefix(s, "$[") {
		return "", false
	}
	key, end, ok := scanRef(s, 2)
	if !ok || end != len(s) {
		return "", false
	}
	return key, true
}

// ExpandString replaces each $[expr] in v with the text of evaluating expr
// against root. Within expr, \] and \\ stand for ] and \. A reference
// without a closing ] is left as is.
func ExpandString(v string, root *ir.Node) (string, error) {
	var b strings.Builder
	i := 0
	for i < len(v) {
		j := strings.Index(v[i:], "$[")
		if j == -1 {
			break
		}
		key, end, ok := scanRef(v, i+j+2)
		if !ok {
			break
		}
		b.WriteString(v[i : i+j])
		x, err := run(key, root)
		if err != nil {
			return "", err
		}
		text, err := anyText(x)
		if err != nil {
			return "", fmt.Errorf("%w: result of %q: %w", ErrEval, key, err)
		}
		b.WriteString(text)
		i = end
	}
	b.WriteString(v[i:])
	return b.String(), nil
}

// scanRef reads an expression starting at v[start] up to the first
// unescaped ']'. end is the offset after the ']'.
func scanRef(v string, start int) (key string, end int, ok bool) {
	var buf []byte
	for i := start; i < len(v); i++ {
		switch c := v[i]; c {
		case '\\':
			if i+1 < len(v) && (v[i+1] == ']' || v[i+1] == '\\') {
				i++
				buf = append(buf, v[i])
				continue
			}
			buf = append(buf, c)
		case ']':
			return strings.TrimSpace(string(buf)), i + 1, true
		default:
			buf = append(buf, c)
		}
	}
	return "", 0, false
}

func anyText(x any) (string, error) {
	if s, ok := x.(string); ok {
		return s, nil
	}
	n, err := gomap.FromAny(x)
	if err != nil {
		return "", err
	}
	if n.Kind() == ir.ScalarKind {
		s, _ := n.AsScalar()
		return s, nil
	}
	return encode.Compact(n), nil
}
