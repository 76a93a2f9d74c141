package parse

import (
	"bytes"
	"testing"

	"github.com/signadot/sfmt/encode"
	"github.com/signadot/sfmt/ir"
)

func FuzzParse(f *testing.F) {
	seeds := []string{
		`""`,
		`"hello"`,
		`"with \"quotes\" and \\"`,
		`"é😀"`,
		`[]`,
		`["a","b"]`,
		`[[],[[]]]`,
		`{}`,
		`{"a"="1","b"=["2",{}]}`,
		`{"users"=[{"name"="alice"},{"name"="bob"}]}`,

		// errors
		`{"a"=}`,
		`["a",]`,
		`{"a"="1","a"="2"}`,
		`"unterminated`,
		`"\q"`,
		`"a" "b"`,
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		node, err := Parse(data)
		if err != nil {
			if node != nil {
				t.Fatalf("non-nil node with error %v", err)
			}
			return
		}
		for _, pretty := range []bool{false, true} {
			var buf bytes.Buffer
			if err := encode.Encode(node, &buf, encode.EncodePretty(pretty)); err != nil {
				t.Fatal(err)
			}
			again, err := Parse(buf.Bytes())
			if err != nil {
				t.Fatalf("re-parse of %q failed: %v", buf.String(), err)
			}
			if !ir.Equal(node, again) {
				t.Fatalf("round trip of %q changed the tree", data)
			}
		}
	})
}
