package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFactories(t *testing.T) {
	s := Scalar("a\"b")
	if s.Kind() != ScalarKind {
		t.Fatalf("kind %s", s.Kind())
	}
	if v, err := s.AsScalar(); err != nil || v != "a\"b" {
		t.Errorf("AsScalar = %q, %v", v, err)
	}

	l := List()
	if l.Kind() != ListKind || l.Len() != 0 {
		t.Errorf("empty list: %s %d", l.Kind(), l.Len())
	}

	tbl, err := Table()
	if err != nil {
		t.Fatal(err)
	}
	if tbl.Kind() != TableKind || tbl.Len() != 0 {
		t.Errorf("empty table: %s %d", tbl.Kind(), tbl.Len())
	}

	var zero Node
	if zero.Kind() != ScalarKind {
		t.Errorf("zero node kind %s", zero.Kind())
	}
}

func TestTableDuplicateKey(t *testing.T) {
	_, err := Table(
		KeyVal{Key: "k", Val: Scalar("1")},
		KeyVal{Key: "k", Val: Scalar("2")},
	)
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected duplicate key error, got %v", err)
	}
	var dk *DuplicateKeyError
	if !errors.As(err, &dk) || dk.Key != "k" {
		t.Errorf("expected *DuplicateKeyError for k, got %#v", err)
	}
}

func TestTableOrder(t *testing.T) {
	tbl := MustTable(
		KeyVal{Key: "b", Val: Scalar("2")},
		KeyVal{Key: "a", Val: Scalar("1")},
		KeyVal{Key: "c", Val: List()},
	)
	if diff := cmp.Diff([]string{"a", "b", "c"}, tbl.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	v, ok := tbl.Get("b")
	if !ok {
		t.Fatal("missing b")
	}
	if s, _ := v.AsScalar(); s != "2" {
		t.Errorf("b = %q", s)
	}
	if _, ok := tbl.Get("z"); ok {
		t.Errorf("unexpected z")
	}
	m := ToMap(tbl)
	if len(m) != 3 || m["c"].Kind() != ListKind {
		t.Errorf("ToMap = %v", m)
	}
}

func TestTypeMismatch(t *testing.T) {
	nodes := []*Node{Scalar("x"), List(Scalar("x")), FromMap(map[string]*Node{"x": Scalar("y")})}
	for _, n := range nodes {
		_, errS := n.AsScalar()
		_, errL := n.AsList()
		_, errT := n.AsTable()
		for _, c := range []struct {
			kind Kind
			err  error
		}{{ScalarKind, errS}, {ListKind, errL}, {TableKind, errT}} {
			if c.kind == n.Kind() {
				if c.err != nil {
					t.Errorf("%s accessor on %s: %v", c.kind, n.Kind(), c.err)
				}
				continue
			}
			var tm *TypeMismatchError
			if !errors.As(c.err, &tm) {
				t.Errorf("%s accessor on %s: expected type mismatch, got %v", c.kind, n.Kind(), c.err)
				continue
			}
			if tm.Want != c.kind || tm.Got != n.Kind() || !errors.Is(c.err, ErrTypeMismatch) {
				t.Errorf("bad mismatch error %v", tm)
			}
		}
	}
}

func TestImmutable(t *testing.T) {
	items := []*Node{Scalar("a"), Scalar("b")}
	l := FromSlice(items)
	items[0] = Scalar("changed")
	got, _ := l.AsList()
	if s, _ := got[0].AsScalar(); s != "a" {
		t.Errorf("list shares caller slice")
	}
	got[1] = Scalar("changed")
	again, _ := l.AsList()
	if s, _ := again[1].AsScalar(); s != "b" {
		t.Errorf("AsList exposes internal slice")
	}

	tbl := MustTable(KeyVal{Key: "k", Val: Scalar("v")})
	kvs, _ := tbl.AsTable()
	kvs[0].Val = Scalar("changed")
	v, _ := tbl.Get("k")
	if s, _ := v.AsScalar(); s != "v" {
		t.Errorf("AsTable exposes internal slice")
	}
}

func TestNilChildPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic")
		}
	}()
	List(Scalar("a"), nil)
}

type countVisitor struct {
	scalars, lists, tables int
}

func (c *countVisitor) VisitScalar(string) error {
	c.scalars++
	return nil
}

func (c *countVisitor) VisitList(items []*Node) error {
	c.lists++
	for _, item := range items {
		if err := item.Accept(c); err != nil {
			return err
		}
	}
	return nil
}

func (c *countVisitor) VisitTable(kvs []KeyVal) error {
	c.tables++
	for _, kv := range kvs {
		if err := kv.Val.Accept(c); err != nil {
			return err
		}
	}
	return nil
}

func TestAccept(t *testing.T) {
	n := MustTable(
		KeyVal{Key: "a", Val: List(Scalar("1"), Scalar("2"), FromMap(nil))},
		KeyVal{Key: "b", Val: Scalar("3")},
	)
	c := &countVisitor{}
	if err := n.Accept(c); err != nil {
		t.Fatal(err)
	}
	if c.scalars != 3 || c.lists != 1 || c.tables != 2 {
		t.Errorf("counts %+v", c)
	}
}

func TestKindText(t *testing.T) {
	for _, k := range Kinds() {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Kind
		if err := back.UnmarshalText(d); err != nil || back != k {
			t.Errorf("%s: got %s, %v", k, back, err)
		}
	}
	var k Kind
	if err := k.UnmarshalText([]byte("Number")); err == nil {
		t.Errorf("expected error")
	}
}
