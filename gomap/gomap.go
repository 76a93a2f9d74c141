// Package gomap maps sfmt trees to and from plain Go values.
//
// A tree maps to string, []any and map[string]any. In the other direction
// any Go value built from literals, slices and string-keyed maps is
// accepted; literals become scalars holding their literal text.
package gomap

import (
	"encoding"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/signadot/sfmt/ir"
)

var ErrUnsupported = errors.New("unsupported go value")

// ToAny converts n to nested string, []any and map[string]any values.
func ToAny(n *ir.Node) any {
	switch n.Kind() {
	case ir.ListKind:
		items, _ := n.AsList()
		res := make([]any, len(items))
		for i, item := range items {
			res[i] = ToAny(item)
		}
		return res
	case ir.TableKind:
		kvs, _ := n.AsTable()
		res := make(map[string]any, len(kvs))
		for _, kv := range kvs {
			res[kv.Key] = ToAny(kv.Val)
		}
		return res
	default:
		s, _ := n.AsScalar()
		return s
	}
}

// FromAny converts v to a tree. nil becomes the scalar "null".
func FromAny(v any) (*ir.Node, error) {
	return fromAny("", v)
}

func fromAny(path string, v any) (*ir.Node, error) {
	switch x := v.(type) {
	case *ir.Node:
		if x == nil {
			return ir.Scalar("null"), nil
		}
		return x, nil
	case []any:
		items := make([]*ir.Node, len(x))
		for i, item := range x {
			n, err := fromAny(ir.JoinIndex(path, i), item)
			if err != nil {
				return nil, err
			}
			items[i] = n
		}
		return ir.FromSlice(items), nil
	case map[string]any:
		m := make(map[string]*ir.Node, len(x))
		for k, val := range x {
			n, err := fromAny(ir.JoinKey(path, k), val)
			if err != nil {
				return nil, err
			}
			m[k] = n
		}
		return ir.FromMap(m), nil
	}
	if s, ok := scalarText(v); ok {
		return ir.Scalar(s), nil
	}
	return fromReflect(path, reflect.ValueOf(v))
}

// scalarText returns the literal text of a leaf value.
func scalarText(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "null", true
	case string:
		return x, true
	case json.Number:
		return x.String(), true
	case bool:
		return strconv.FormatBool(x), true
	case int:
		return strconv.Itoa(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case uint64:
		return strconv.FormatUint(x, 10), true
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32), true
	case encoding.TextMarshaler:
		if rv := reflect.ValueOf(x); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return "null", true
		}
		d, err := x.MarshalText()
		if err != nil {
			return "", false
		}
		return string(d), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'g', -1, 64), true
	}
	return "", false
}

func fromReflect(path string, rv reflect.Value) (*ir.Node, error) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return ir.Scalar("null"), nil
		}
		return fromAny(path, rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		items := make([]*ir.Node, rv.Len())
		for i := range items {
			n, err := fromAny(ir.JoinIndex(path, i), rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			items[i] = n
		}
		return ir.FromSlice(items), nil
	case reflect.Map:
		m := make(map[string]*ir.Node, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k, ok := scalarText(iter.Key().Interface())
			if !ok {
				return nil, fmt.Errorf("%w: map key of type %s at %q", ErrUnsupported, iter.Key().Type(), path)
			}
			if _, dup := m[k]; dup {
				return nil, fmt.Errorf("%w: %q at %q", ir.ErrDuplicateKey, k, path)
			}
			n, err := fromAny(ir.JoinKey(path, k), iter.Value().Interface())
			if err != nil {
				return nil, err
			}
			m[k] = n
		}
		return ir.FromMap(m), nil
	}
	if !rv.IsValid() {
		return ir.Scalar("null"), nil
	}
	return nil, fmt.Errorf("%w: %s at %q", ErrUnsupported, rv.Type(), path)
}
