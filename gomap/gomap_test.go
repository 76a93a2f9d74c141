package gomap

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/sfmt/encode"
	"github.com/signadot/sfmt/ir"
)

func TestFromAny(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, `"null"`},
		{"string", "x", `"x"`},
		{"bool", true, `"true"`},
		{"int", 42, `"42"`},
		{"int8", int8(-3), `"-3"`},
		{"uint", uint(7), `"7"`},
		{"float", 1.5, `"1.5"`},
		{"big float", 1e21, `"1e+21"`},
		{"json number", json.Number("1.50"), `"1.50"`},
		{"time", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), `"2024-01-02T03:04:05Z"`},
		{"slice", []any{"a", 1, nil}, `["a","1","null"]`},
		{"typed slice", []int{1, 2}, `["1","2"]`},
		{"map", map[string]any{"b": []any{}, "a": map[string]any{}}, `{"a"={},"b"=[]}`},
		{"any-keyed map", map[any]any{"k": "v", 1: "one"}, `{"1"="one","k"="v"}`},
		{"pointer", func() *string { s := "p"; return &s }(), `"p"`},
		{"nil pointer", (*int)(nil), `"null"`},
		{"node", ir.List(ir.Scalar("n")), `["n"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := FromAny(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if got := encode.Compact(n); got != tt.want {
				t.Errorf("got %s want %s", got, tt.want)
			}
		})
	}
}

func TestFromAnyErrors(t *testing.T) {
	_, err := FromAny(map[string]any{"a": []any{"x", make(chan int)}})
	if !errors.Is(err, ErrUnsupported) {
		t.Fatalf("expected unsupported, got %v", err)
	}
	_, err = FromAny(map[any]any{1: "int", "1": "string"})
	if !errors.Is(err, ir.ErrDuplicateKey) {
		t.Errorf("expected duplicate key, got %v", err)
	}
	_, err = FromAny(map[any]any{[2]int{}: "x"})
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("expected unsupported key, got %v", err)
	}
}

func TestToAny(t *testing.T) {
	n := ir.MustTable(
		ir.KeyVal{Key: "l", Val: ir.List(ir.Scalar("1"), ir.FromMap(nil))},
		ir.KeyVal{Key: "s", Val: ir.Scalar("x")},
	)
	want := map[string]any{
		"l": []any{"1", map[string]any{}},
		"s": "x",
	}
	got := ToAny(n)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	back, err := FromAny(got)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(n, back) {
		t.Errorf("round trip: %s", encode.Compact(back))
	}
}
