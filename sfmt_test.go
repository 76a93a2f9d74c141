package sfmt

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/signadot/sfmt/ir"
	"github.com/signadot/sfmt/parse"
)

func TestSample(t *testing.T) {
	tbl, err := Table(
		KeyVal{Key: "key1", Val: Scalar("value1")},
		KeyVal{Key: "key2", Val: List(Scalar("value2"), Scalar("value3"))},
	)
	if err != nil {
		t.Fatal(err)
	}
	compact := EncodeCompact(tbl)
	if compact != `{"key1"="value1","key2"=["value2","value3"]}` {
		t.Errorf("compact %s", compact)
	}
	pretty := EncodePretty(tbl)
	lines := strings.Split(pretty, "\n")
	if lines[0] != "{" || lines[len(lines)-1] != "}" {
		t.Errorf("closing brace not aligned with opener:\n%s", pretty)
	}
	for _, enc := range []string{compact, pretty} {
		back, err := DecodeString(enc)
		if err != nil {
			t.Fatal(err)
		}
		if !Equal(back, tbl) {
			t.Errorf("round trip changed tree: %s", EncodeCompact(back))
		}
	}
}

func TestEscaping(t *testing.T) {
	s := Scalar(`a"b`)
	if got := EncodeCompact(s); got != `"a\"b"` {
		t.Errorf("got %s", got)
	}
	back, err := DecodeString(`"a\"b"`)
	if err != nil {
		t.Fatal(err)
	}
	if text, _ := back.AsScalar(); text != `a"b` {
		t.Errorf("got %q", text)
	}
}

func TestEmpty(t *testing.T) {
	if got := EncodeCompact(List()); got != "[]" {
		t.Errorf("got %s", got)
	}
	if got := EncodeCompact(TableFromMap(nil)); got != "{}" {
		t.Errorf("got %s", got)
	}
	tbl, err := Table()
	if err != nil || EncodePretty(tbl) != "{}" {
		t.Errorf("got %v %v", tbl, err)
	}
}

func TestDuplicateKey(t *testing.T) {
	_, err := Table(KeyVal{Key: "k", Val: Scalar("1")}, KeyVal{Key: "k", Val: Scalar("2")})
	if !errors.Is(err, ir.ErrDuplicateKey) {
		t.Errorf("expected duplicate key error, got %v", err)
	}
	_, err = DecodeString(`{"k"="1","k"="2"}`)
	if !errors.Is(err, parse.ErrDuplicateKey) {
		t.Errorf("expected duplicate key error, got %v", err)
	}
}

func TestMalformed(t *testing.T) {
	_, err := Decode([]byte(`{"a"=}`))
	var perr *parse.Error
	if !errors.As(err, &perr) || !errors.Is(err, parse.ErrUnexpectedToken) || perr.Offset != 5 {
		t.Errorf("got %v", err)
	}
}

// genText produces strings biased toward the characters the format has to
// escape or treat specially.
func genText(r *rand.Rand) string {
	const alphabet = "ab\"\\=,[]{} \t\n\x00\x1fé😀"
	runes := []rune(alphabet)
	n := r.IntN(6)
	b := &strings.Builder{}
	for range n {
		b.WriteRune(runes[r.IntN(len(runes))])
	}
	return b.String()
}

func genTree(r *rand.Rand, depth int) *Node {
	k := r.IntN(3)
	if depth == 0 {
		k = 0
	}
	switch k {
	case 1:
		items := make([]*Node, r.IntN(4))
		for i := range items {
			items[i] = genTree(r, depth-1)
		}
		return List(items...)
	case 2:
		m := map[string]*Node{}
		for range r.IntN(4) {
			m[genText(r)] = genTree(r, depth-1)
		}
		return TableFromMap(m)
	}
	return Scalar(genText(r))
}

func TestRoundTripProperty(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := range 500 {
		tree := genTree(r, 4)
		compact := EncodeCompact(tree)
		if again := EncodeCompact(tree); again != compact {
			t.Fatalf("#%d: non-deterministic encoding", i)
		}
		for _, enc := range []string{compact, EncodePretty(tree)} {
			back, err := DecodeString(enc)
			if err != nil {
				t.Fatalf("#%d: decoding %q: %v", i, enc, err)
			}
			if !Equal(back, tree) {
				t.Fatalf("#%d: round trip of %q changed the tree", i, enc)
			}
			if got := EncodeCompact(back); got != compact {
				t.Fatalf("#%d: canonical form not idempotent: %q vs %q", i, got, compact)
			}
		}
	}
}

func TestMatch(t *testing.T) {
	doc, err := DecodeString(`{"a"="1","b"=["x",{"c"="2","d"="3"}]}`)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		pattern string
		want    bool
	}{
		{`{}`, true},
		{`{"a"="1"}`, true},
		{`{"b"=["x",{"d"="3"}]}`, true},
		{`{"a"="2"}`, false},
		{`{"z"="1"}`, false},
		{`{"b"=["x"]}`, false},
		{`["x"]`, false},
	}
	for _, tt := range tests {
		p, err := DecodeString(tt.pattern)
		if err != nil {
			t.Fatal(err)
		}
		if got := Match(doc, p); got != tt.want {
			t.Errorf("%s: got %v", tt.pattern, got)
		}
	}
}
