package libdiff

import (
	"strings"

	"github.com/signadot/sfmt/encode"
	"github.com/signadot/sfmt/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// TextDiff renders the character level difference between two strings,
// marking deletions as [-text-] and insertions as {+text+}.
func TextDiff(from, to string) string {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	b := &strings.Builder{}
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffInsert:
			b.WriteString("{+")
			b.WriteString(diff.Text)
			b.WriteString("+}")
		case diffpatch.DiffDelete:
			b.WriteString("[-")
			b.WriteString(diff.Text)
			b.WriteString("-]")
		case diffpatch.DiffEqual:
			b.WriteString(diff.Text)
		}
	}
	return b.String()
}

func (c *Change) String() string {
	path := c.Path
	if path == "" {
		path = "."
	}
	switch c.Op {
	case Add:
		return "+ " + path + " " + encode.Compact(c.To)
	case Remove:
		return "- " + path + " " + encode.Compact(c.From)
	}
	if c.From.Kind() == ir.ScalarKind && c.To.Kind() == ir.ScalarKind {
		a, _ := c.From.AsScalar()
		b, _ := c.To.AsScalar()
		return "~ " + path + " " + TextDiff(a, b)
	}
	return "~ " + path + " " + encode.Compact(c.From) + " -> " + encode.Compact(c.To)
}
