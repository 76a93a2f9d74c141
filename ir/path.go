package ir

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/sfmt/token"
)

// Path is a parsed node path such as `a.b[0]."x y"`. Fields select table
// entries and indices select list elements. The empty path selects the root.
type Path struct {
	Field *string
	Index *int
	Next  *Path
}

func (p *Path) String() string {
	return p.prefix(nil)
}

// JoinKey appends a table key segment to a path string.
func JoinKey(prefix, key string) string {
	if prefix == "" {
		return quoteField(key)
	}
	return prefix + "." + quoteField(key)
}

// JoinIndex appends a list index segment to a path string.
func JoinIndex(prefix string, i int) string {
	return prefix + "[" + strconv.Itoa(i) + "]"
}

func quoteField(f string) string {
	if f == "" || strings.ContainsAny(f, ".[]\"\\= \t\r\n") {
		return token.Quote(f)
	}
	for i := 0; i < len(f); i++ {
		if f[i] < 0x20 {
			return token.Quote(f)
		}
	}
	return f
}

func ParsePath(p string) (*Path, error) {
	var (
		head, tail *Path
		i          int
	)
	add := func(seg *Path) {
		if head == nil {
			head = seg
		} else {
			tail.Next = seg
		}
		tail = seg
	}
	for i < len(p) {
		switch p[i] {
		case '[':
			j := strings.IndexByte(p[i:], ']')
			if j == -1 {
				return nil, fmt.Errorf("%w: unterminated index in %q", ErrPath, p)
			}
			n, err := strconv.Atoi(p[i+1 : i+j])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: bad index %q in %q", ErrPath, p[i+1:i+j], p)
			}
			add(&Path{Index: &n})
			i += j + 1
			continue
		case '.':
			if head == nil {
				return nil, fmt.Errorf("%w: leading '.' in %q", ErrPath, p)
			}
			i++
		default:
			if head != nil {
				return nil, fmt.Errorf("%w: expected '.' or '[' at offset %d in %q", ErrPath, i, p)
			}
		}
		field, n, err := parseField(p[i:])
		if err != nil {
			return nil, fmt.Errorf("%w: %w in %q", ErrPath, err, p)
		}
		add(&Path{Field: &field})
		i += n
	}
	return head, nil
}

func parseField(p string) (string, int, error) {
	if p == "" {
		return "", 0, fmt.Errorf("empty field")
	}
	if p[0] == '"' {
		s := token.NewScanner([]byte(p))
		tok, err := s.Next()
		if err != nil {
			return "", 0, err
		}
		return tok.Text, tok.End, nil
	}
	n := strings.IndexAny(p, ".[")
	if n == -1 {
		n = len(p)
	}
	if n == 0 {
		return "", 0, fmt.Errorf("empty field")
	}
	return p[:n], n, nil
}

// Get follows path from root.
func Get(root *Node, path string) (*Node, error) {
	p, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return p.Get(root)
}

func (p *Path) Get(root *Node) (*Node, error) {
	node := root
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Field != nil:
			child, ok := node.Get(*x.Field)
			if !ok {
				return nil, fmt.Errorf("%w: no field %q at %q (%s)", ErrPath, *x.Field, p.prefix(x), node.Kind())
			}
			node = child
		case x.Index != nil:
			child, ok := node.Index(*x.Index)
			if !ok {
				return nil, fmt.Errorf("%w: no index %d at %q (%s of length %d)", ErrPath, *x.Index, p.prefix(x), node.Kind(), node.Len())
			}
			node = child
		}
	}
	return node, nil
}

// prefix renders the segments of p that precede stop.
func (p *Path) prefix(stop *Path) string {
	buf := bytes.NewBuffer(nil)
	for x := p; x != nil && x != stop; x = x.Next {
		switch {
		case x.Field != nil:
			if buf.Len() > 0 {
				buf.WriteByte('.')
			}
			buf.WriteString(quoteField(*x.Field))
		case x.Index != nil:
			fmt.Fprintf(buf, "[%d]", *x.Index)
		}
	}
	return buf.String()
}

// Walk calls fn for root and every descendant in pre-order, with the path
// of each node. Table entries are visited in key order. If fn returns an
// error, Walk stops and returns it.
func Walk(root *Node, fn func(path string, node *Node) error) error {
	return walk("", root, fn)
}

func walk(path string, node *Node, fn func(string, *Node) error) error {
	if err := fn(path, node); err != nil {
		return err
	}
	switch node.kind {
	case ListKind:
		for i, item := range node.items {
			if err := walk(JoinIndex(path, i), item, fn); err != nil {
				return err
			}
		}
	case TableKind:
		for _, kv := range node.kvs {
			if err := walk(JoinKey(path, kv.Key), kv.Val, fn); err != nil {
				return err
			}
		}
	}
	return nil
}
