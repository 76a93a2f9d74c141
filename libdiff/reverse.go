package libdiff

// Reverse returns the changes undoing changes: applying changes and then
// Reverse(changes) gives back the original tree.
func Reverse(changes []Change) []Change {
	res := make([]Change, len(changes))
	for i, c := range changes {
		switch c.Op {
		case Add:
			c.Op = Remove
		case Remove:
			c.Op = Add
		}
		c.From, c.To = c.To, c.From
		res[len(changes)-1-i] = c
	}
	return res
}
