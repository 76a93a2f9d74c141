package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/sfmt/encode"
	"github.com/signadot/sfmt/ir"
	"github.com/signadot/sfmt/parse"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	n, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

var diffCases = []struct {
	name     string
	from, to string
	changes  []string
}{
	{
		name: "equal",
		from: `{"a"=["1","2"]}`,
		to:   `{"a"=["1","2"]}`,
	},
	{
		name:    "scalar",
		from:    `"hello world"`,
		to:      `"hello there"`,
		changes: []string{`~ . hello [-world-]{+there+}`},
	},
	{
		name:    "kind change",
		from:    `{"a"="x"}`,
		to:      `{"a"=["x"]}`,
		changes: []string{`~ a "x" -> ["x"]`},
	},
	{
		name: "table keys",
		from: `{"a"="1","b"="2","d"="4"}`,
		to:   `{"a"="1","c"="3","d"="5"}`,
		changes: []string{
			`- b "2"`,
			`+ c "3"`,
			`~ d [-4-]{+5+}`,
		},
	},
	{
		name: "list grows",
		from: `["a"]`,
		to:   `["a","b","c"]`,
		changes: []string{
			`+ [1] "b"`,
			`+ [2] "c"`,
		},
	},
	{
		name: "list shrinks",
		from: `[{"k"="v"},"b","c"]`,
		to:   `[{"k"="w"}]`,
		changes: []string{
			`~ [0].k [-v-]{+w+}`,
			`- [2] "c"`,
			`- [1] "b"`,
		},
	},
	{
		name:    "quoted path",
		from:    `{"a b"={"c.d"=[]}}`,
		to:      `{"a b"={"c.d"=["x"]}}`,
		changes: []string{`+ "a b"."c.d"[0] "x"`},
	},
}

func TestDiff(t *testing.T) {
	for _, tt := range diffCases {
		t.Run(tt.name, func(t *testing.T) {
			changes := Diff(mustParse(t, tt.from), mustParse(t, tt.to))
			var got []string
			for i := range changes {
				got = append(got, changes[i].String())
			}
			if diff := cmp.Diff(tt.changes, got); diff != "" {
				t.Errorf("changes (-want +got):\n%s", diff)
			}
		})
	}
}

func TestApplyReverse(t *testing.T) {
	for _, tt := range diffCases {
		t.Run(tt.name, func(t *testing.T) {
			from, to := mustParse(t, tt.from), mustParse(t, tt.to)
			changes := Diff(from, to)
			got, err := Apply(from, changes)
			if err != nil {
				t.Fatal(err)
			}
			if !ir.Equal(got, to) {
				t.Errorf("apply: got %s want %s", encode.Compact(got), tt.to)
			}
			back, err := Apply(got, Reverse(changes))
			if err != nil {
				t.Fatal(err)
			}
			if !ir.Equal(back, from) {
				t.Errorf("reverse: got %s want %s", encode.Compact(back), tt.from)
			}
		})
	}
}

func TestApplyErrors(t *testing.T) {
	root := mustParse(t, `{"a"=["1"]}`)
	for _, c := range []Change{
		{Path: "b", Op: Replace, To: ir.Scalar("x")},
		{Path: "a[3]", Op: Add, To: ir.Scalar("x")},
		{Path: "a", Op: Add, To: ir.Scalar("x")},
		{Path: "a.b", Op: Remove},
		{Path: "", Op: Remove},
	} {
		if _, err := Apply(root, []Change{c}); err == nil {
			t.Errorf("%s %q: expected error", c.Op, c.Path)
		}
	}
}

func TestToNode(t *testing.T) {
	changes := Diff(mustParse(t, `{"a"="1"}`), mustParse(t, `{"b"="2"}`))
	got := encode.Compact(ToNode(changes))
	want := `[{"from"="1","op"="remove","path"="a"},{"op"="add","path"="b","to"="2"}]`
	if got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}
}

func TestTextDiff(t *testing.T) {
	if got := TextDiff("abc", "abc"); got != "abc" {
		t.Errorf("got %s", got)
	}
	if got := TextDiff("", "new"); got != "{+new+}" {
		t.Errorf("got %s", got)
	}
	if got := TextDiff("old", ""); got != "[-old-]" {
		t.Errorf("got %s", got)
	}
}
