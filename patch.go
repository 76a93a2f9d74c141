package sfmt

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/signadot/sfmt/convert"
	"github.com/signadot/sfmt/debug"
	"github.com/signadot/sfmt/format"
	"github.com/signadot/sfmt/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

var ErrPatch = errors.New("patch error")

// Patch applies an RFC 6902 JSON patch to doc. ops is a list of tables
// with keys "op", "path" and, depending on the operation, "value" and
// "from". Paths are JSON pointers. doc is not modified.
func Patch(doc, ops *ir.Node) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("patch %v with %v\n", doc, ops)
	}
	opsJSON, err := toJSON(ops, false)
	if err != nil {
		return nil, err
	}
	jOps, err := jsonpatch.DecodePatch(opsJSON)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	docJSON, err := toJSON(doc, false)
	if err != nil {
		return nil, err
	}
	jOut, err := jOps.Apply(docJSON)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return patchResult(jOut)
}

// MergePatch applies an RFC 7386 merge patch to doc. Tables in patch are
// merged into doc key by key, a scalar "null" in patch removes the key and
// any other value replaces it. doc is not modified.
func MergePatch(doc, patch *ir.Node) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("merge patch %v with %v\n", doc, patch)
	}
	docJSON, err := toJSON(doc, false)
	if err != nil {
		return nil, err
	}
	// literals so that "null" reaches the merge as JSON null
	patchJSON, err := toJSON(patch, true)
	if err != nil {
		return nil, err
	}
	jOut, err := jsonpatch.MergePatch(docJSON, patchJSON)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return patchResult(jOut)
}

func patchResult(d []byte) (*ir.Node, error) {
	res, err := convert.Decode(d, format.JSONFormat)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("patch result:\n%s\n", debug.Sfmt{Node: res})
	}
	return res, nil
}

func toJSON(n *ir.Node, literals bool) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := convert.Encode(n, buf, format.JSONFormat, convert.EncodeLiterals(literals)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
