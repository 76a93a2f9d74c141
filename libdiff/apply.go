package libdiff

import (
	"errors"
	"fmt"
	"slices"

	"github.com/signadot/sfmt/ir"
)

var ErrApply = errors.New("cannot apply change")

// Apply applies changes in order to root and returns the resulting tree.
// root is not modified.
func Apply(root *ir.Node, changes []Change) (*ir.Node, error) {
	for i := range changes {
		c := &changes[i]
		p, err := ir.ParsePath(c.Path)
		if err != nil {
			return nil, err
		}
		res, err := apply(root, p, c)
		if err != nil {
			return nil, fmt.Errorf("%w: %s at %q: %w", ErrApply, c.Op, c.Path, err)
		}
		if res == nil {
			return nil, fmt.Errorf("%w: cannot remove the root", ErrApply)
		}
		root = res
	}
	return root, nil
}

// apply returns the replacement for n, or nil if n is removed.
func apply(n *ir.Node, p *ir.Path, c *Change) (*ir.Node, error) {
	if p == nil {
		switch c.Op {
		case Remove:
			return nil, nil
		case Replace:
			return c.To, nil
		}
		return nil, errors.New("target exists")
	}
	switch {
	case p.Field != nil:
		if n.Kind() != ir.TableKind {
			return nil, fmt.Errorf("field %q of %s", *p.Field, n.Kind())
		}
		m := ir.ToMap(n)
		child, ok := m[*p.Field]
		if !ok {
			if p.Next == nil && c.Op == Add {
				m[*p.Field] = c.To
				return ir.FromMap(m), nil
			}
			return nil, fmt.Errorf("no field %q", *p.Field)
		}
		res, err := apply(child, p.Next, c)
		if err != nil {
			return nil, err
		}
		if res == nil {
			delete(m, *p.Field)
		} else {
			m[*p.Field] = res
		}
		return ir.FromMap(m), nil

	default:
		items, err := n.AsList()
		if err != nil {
			return nil, err
		}
		i := *p.Index
		if p.Next == nil && c.Op == Add {
			if i > len(items) {
				return nil, fmt.Errorf("index %d beyond length %d", i, len(items))
			}
			return ir.FromSlice(slices.Insert(items, i, c.To)), nil
		}
		if i >= len(items) {
			return nil, fmt.Errorf("no index %d", i)
		}
		res, err := apply(items[i], p.Next, c)
		if err != nil {
			return nil, err
		}
		if res == nil {
			return ir.FromSlice(slices.Delete(items, i, i+1)), nil
		}
		items[i] = res
		return ir.FromSlice(items), nil
	}
}
