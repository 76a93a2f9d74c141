package ir

import (
	"testing"
)

func TestCompare(t *testing.T) {
	kv := func(k string, v *Node) KeyVal { return KeyVal{Key: k, Val: v} }
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Kind ranking: Scalar < List < Table
		{"Scalar < List", Scalar("z"), List(), -1},
		{"List < Table", List(Scalar("z")), FromMap(nil), -1},
		{"Table > Scalar", FromMap(nil), Scalar(""), 1},

		{"Scalar == Scalar", Scalar("a"), Scalar("a"), 0},
		{"Scalar < Scalar", Scalar("a"), Scalar("b"), -1},
		{"numbers are text", Scalar("10"), Scalar("9"), -1},

		{"Empty List == Empty List", List(), List(), 0},
		{"Short List < Long List", List(Scalar("1")), List(Scalar("1"), Scalar("2")), -1},
		{"List Element Comparison", List(Scalar("1")), List(Scalar("2")), -1},

		{"Empty Table == Empty Table", FromMap(nil), MustTable(), 0},
		{"Short Table < Long Table",
			MustTable(kv("a", Scalar("1"))),
			MustTable(kv("a", Scalar("1")), kv("b", Scalar("2"))),
			-1},
		{"Table Key Comparison",
			MustTable(kv("a", Scalar("1"))),
			MustTable(kv("b", Scalar("1"))),
			-1},
		{"Table Value Comparison",
			MustTable(kv("a", Scalar("2"))),
			MustTable(kv("a", Scalar("1"))),
			1},
		{"Table construction order is irrelevant",
			MustTable(kv("a", Scalar("1")), kv("b", Scalar("2"))),
			MustTable(kv("b", Scalar("2")), kv("a", Scalar("1"))),
			0},
		{"nil < node", nil, Scalar(""), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %d, want %d", got, tt.expected)
			}
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("reverse Compare() = %d, want %d", got, -tt.expected)
			}
			if tt.expected == 0 && tt.a != nil && tt.a.Hash() != tt.b.Hash() {
				t.Errorf("equal nodes hash differently")
			}
		})
	}
}

func TestHashDistinguishesStructure(t *testing.T) {
	a := List(Scalar("ab"), Scalar("c"))
	b := List(Scalar("a"), Scalar("bc"))
	if a.Hash() == b.Hash() {
		t.Errorf("hash collision on differently split lists")
	}
	if Scalar("").Hash() == List().Hash() {
		t.Errorf("hash collision between empty scalar and empty list")
	}
}
