package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func pathDoc() *Node {
	return FromMap(map[string]*Node{
		"users": List(
			FromMap(map[string]*Node{
				"name":         Scalar("alice"),
				"display name": Scalar("Alice A."),
			}),
			FromMap(map[string]*Node{
				"name": Scalar("bob"),
			}),
		),
		"a.b": Scalar("dotted"),
	})
}

func TestGetPath(t *testing.T) {
	doc := pathDoc()
	tests := []struct {
		path string
		want string
	}{
		{`users[0].name`, "alice"},
		{`users[1].name`, "bob"},
		{`users[0]."display name"`, "Alice A."},
		{`"a.b"`, "dotted"},
	}
	for _, tt := range tests {
		n, err := Get(doc, tt.path)
		if err != nil {
			t.Errorf("%s: %v", tt.path, err)
			continue
		}
		if s, _ := n.AsScalar(); s != tt.want {
			t.Errorf("%s: got %q want %q", tt.path, s, tt.want)
		}
	}
	root, err := Get(doc, "")
	if err != nil || root != doc {
		t.Errorf("empty path should select root: %v", err)
	}
}

func TestGetPathErrors(t *testing.T) {
	doc := pathDoc()
	for _, p := range []string{
		`users[2]`,
		`users.name`,
		`nope`,
		`users[0].name.x`,
		`users[`,
		`users[-1]`,
		`.users`,
		`users[0]name`,
		`"unterminated`,
	} {
		if _, err := Get(doc, p); !errors.Is(err, ErrPath) {
			t.Errorf("%s: expected path error, got %v", p, err)
		}
	}
}

func TestPathString(t *testing.T) {
	for _, p := range []string{
		`users[0].name`,
		`users[0]."display name"`,
		`"a.b"`,
		`[3][4]`,
		`"".x`,
	} {
		parsed, err := ParsePath(p)
		if err != nil {
			t.Fatalf("%s: %v", p, err)
		}
		if got := parsed.String(); got != p {
			t.Errorf("String() = %s, want %s", got, p)
		}
	}
}

func TestWalk(t *testing.T) {
	var paths []string
	err := Walk(pathDoc(), func(path string, n *Node) error {
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		``,
		`"a.b"`,
		`users`,
		`users[0]`,
		`users[0]."display name"`,
		`users[0].name`,
		`users[1]`,
		`users[1].name`,
	}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Errorf("paths (-want +got):\n%s", diff)
	}
	for _, p := range want {
		if _, err := Get(pathDoc(), p); err != nil {
			t.Errorf("walked path %s does not resolve: %v", p, err)
		}
	}
}
