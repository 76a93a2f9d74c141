package libdiff

import (
	"github.com/signadot/sfmt/ir"
)

// ToNode renders changes as a list of tables with keys "op", "path" and,
// where present, "from" and "to".
func ToNode(changes []Change) *ir.Node {
	items := make([]*ir.Node, len(changes))
	for i := range changes {
		c := &changes[i]
		m := map[string]*ir.Node{
			"op":   ir.Scalar(c.Op.String()),
			"path": ir.Scalar(c.Path),
		}
		if c.From != nil {
			m["from"] = c.From
		}
		if c.To != nil {
			m["to"] = c.To
		}
		items[i] = ir.FromMap(m)
	}
	return ir.FromSlice(items)
}
