// Package convert moves sfmt trees in and out of JSON and YAML.
//
// Scalars hold text, so by default they are written as JSON and YAML
// strings. With EncodeLiterals, scalars whose text is a number, a boolean
// or null are written as bare literals instead.
package convert

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/sfmt/encode"
	"github.com/signadot/sfmt/format"
	"github.com/signadot/sfmt/gomap"
	"github.com/signadot/sfmt/ir"
	"github.com/signadot/sfmt/parse"

	"github.com/goccy/go-yaml"
	"github.com/tidwall/jsonc"
)

var (
	ErrJSON = errors.New("json error")
	ErrYAML = errors.New("yaml error")
)

type encOpts struct {
	pretty   bool
	literals bool
	encode   []encode.EncodeOption
}

type EncodeOption func(*encOpts)

func EncodePretty(v bool) EncodeOption   { return func(o *encOpts) { o.pretty = v } }
func EncodeLiterals(v bool) EncodeOption { return func(o *encOpts) { o.literals = v } }

// EncodeSfmt passes options through to the sfmt encoder.
func EncodeSfmt(opts ...encode.EncodeOption) EncodeOption {
	return func(o *encOpts) { o.encode = append(o.encode, opts...) }
}

// Decode reads a document of format f. JSON input may carry comments and
// trailing commas. JSON numbers keep their literal text.
func Decode(d []byte, f format.Format, opts ...parse.ParseOption) (*ir.Node, error) {
	switch f {
	case format.SfmtFormat:
		return parse.Parse(d, opts...)
	case format.JSONFormat:
		return decodeJSON(d)
	case format.YAMLFormat:
		return decodeYAML(d)
	}
	return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, f)
}

func decodeJSON(d []byte) (*ir.Node, error) {
	// jsonc blanks out comments in place so offsets in errors still match d
	dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(d)))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrJSON, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data at offset %d", ErrJSON, dec.InputOffset())
	}
	return gomap.FromAny(v)
}

func decodeYAML(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrYAML, err)
	}
	return gomap.FromAny(v)
}

// Encode writes n to w in format f without a trailing newline.
func Encode(n *ir.Node, w io.Writer, f format.Format, opts ...EncodeOption) error {
	o := &encOpts{}
	for _, opt := range opts {
		opt(o)
	}
	switch f {
	case format.SfmtFormat:
		eOpts := append([]encode.EncodeOption{encode.EncodePretty(o.pretty)}, o.encode...)
		return encode.Encode(n, w, eOpts...)
	case format.JSONFormat:
		return encodeJSON(n, w, o)
	case format.YAMLFormat:
		return encodeYAML(n, w, o)
	}
	return fmt.Errorf("%w: %d", format.ErrBadFormat, f)
}

func encodeJSON(n *ir.Node, w io.Writer, o *encOpts) error {
	buf := bytes.NewBuffer(nil)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if o.pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(toGo(n, o.literals, jsonLiteral)); err != nil {
		return fmt.Errorf("%w: %w", ErrJSON, err)
	}
	_, err := w.Write(bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}))
	return err
}

func encodeYAML(n *ir.Node, w io.Writer, o *encOpts) error {
	d, err := yaml.MarshalWithOptions(toGo(n, o.literals, yamlLiteral), yaml.Indent(2), yaml.Flow(!o.pretty))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrYAML, err)
	}
	_, err = w.Write(bytes.TrimSuffix(d, []byte{'\n'}))
	return err
}

// toGo is like gomap.ToAny but lets lit replace literal-looking scalars.
func toGo(n *ir.Node, literals bool, lit func(string) (any, bool)) any {
	switch n.Kind() {
	case ir.ListKind:
		items, _ := n.AsList()
		res := make([]any, len(items))
		for i, item := range items {
			res[i] = toGo(item, literals, lit)
		}
		return res
	case ir.TableKind:
		kvs, _ := n.AsTable()
		res := make(map[string]any, len(kvs))
		for _, kv := range kvs {
			res[kv.Key] = toGo(kv.Val, literals, lit)
		}
		return res
	}
	s, _ := n.AsScalar()
	if literals {
		if v, ok := lit(s); ok {
			return v
		}
	}
	return s
}

// IsLiteral reports whether s is the text of a JSON number, boolean or
// null.
func IsLiteral(s string) bool {
	switch s {
	case "true", "false", "null":
		return true
	case "":
		return false
	}
	if c := s[0]; c != '-' && (c < '0' || c > '9') {
		return false
	}
	return strings.TrimSpace(s) == s && json.Valid([]byte(s))
}

func jsonLiteral(s string) (any, bool) {
	if !IsLiteral(s) {
		return nil, false
	}
	return json.RawMessage(s), true
}

func yamlLiteral(s string) (any, bool) {
	if !IsLiteral(s) {
		return nil, false
	}
	switch s {
	case "true":
		return true, true
	case "false":
		return false, true
	case "null":
		return nil, true
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, true
	}
	return nil, false
}
