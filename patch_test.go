package sfmt

import (
	"errors"
	"testing"
)

func mustDecode(t *testing.T, s string) *Node {
	t.Helper()
	n, err := DecodeString(s)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestPatch(t *testing.T) {
	tests := []struct {
		doc, ops, want string
	}{
		{
			doc:  `{"a"="1","l"=["x","y"]}`,
			ops:  `[{"op"="add","path"="/b","value"={"c"="2"}}]`,
			want: `{"a"="1","b"={"c"="2"},"l"=["x","y"]}`,
		},
		{
			doc:  `{"a"="1","l"=["x","y"]}`,
			ops:  `[{"op"="remove","path"="/l/0"},{"op"="replace","path"="/a","value"="10"}]`,
			want: `{"a"="10","l"=["y"]}`,
		},
		{
			doc:  `{"a"="1"}`,
			ops:  `[{"op"="test","path"="/a","value"="1"},{"op"="move","from"="/a","path"="/b"}]`,
			want: `{"b"="1"}`,
		},
	}
	for _, tt := range tests {
		doc := mustDecode(t, tt.doc)
		got, err := Patch(doc, mustDecode(t, tt.ops))
		if err != nil {
			t.Errorf("%s: %v", tt.ops, err)
			continue
		}
		if s := EncodeCompact(got); s != tt.want {
			t.Errorf("%s: got %s want %s", tt.ops, s, tt.want)
		}
		if s := EncodeCompact(doc); s != tt.doc {
			t.Errorf("input modified: %s", s)
		}
	}
}

func TestPatchErrors(t *testing.T) {
	doc := mustDecode(t, `{"a"="1"}`)
	for _, ops := range []string{
		`[{"op"="test","path"="/a","value"="2"}]`,
		`[{"op"="remove","path"="/nope"}]`,
		`[{"op"="frobnicate","path"="/a"}]`,
	} {
		if _, err := Patch(doc, mustDecode(t, ops)); !errors.Is(err, ErrPatch) {
			t.Errorf("%s: expected patch error, got %v", ops, err)
		}
	}
}

func TestMergePatch(t *testing.T) {
	doc := mustDecode(t, `{"a"="1","b"={"c"="2","d"="3"},"s"="null"}`)
	patch := mustDecode(t, `{"a"="one","b"={"c"="null","e"="4"},"n"=["1.50","true"]}`)
	got, err := MergePatch(doc, patch)
	if err != nil {
		t.Fatal(err)
	}
	want := `{"a"="one","b"={"d"="3","e"="4"},"n"=["1.50","true"],"s"="null"}`
	if s := EncodeCompact(got); s != want {
		t.Errorf("got %s\nwant %s", s, want)
	}
}
