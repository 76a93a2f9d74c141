// Package encode encodes trees to sfmt text.
//
// # Usage
//
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.Scalar("alice"),
//	    "tags": ir.List(ir.Scalar("a"), ir.Scalar("b")),
//	})
//	s := encode.Compact(node) // {"name"="alice","tags"=["a","b"]}
//
//	// Indented, one element per line
//	err := encode.Encode(node, os.Stdout, encode.EncodePretty(true))
//
// Compact output is canonical: table keys are sorted and no whitespace is
// emitted, so equal trees encode to identical bytes. Pretty output adds
// only whitespace and decodes to the same tree.
//
// # Related Packages
//
//   - github.com/signadot/sfmt/ir - tree representation
//   - github.com/signadot/sfmt/parse - decode text to trees
package encode
