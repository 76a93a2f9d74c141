package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		got, err := ParseFormat(f.String())
		if err != nil || got != f {
			t.Errorf("%s: got %s, %v", f, got, err)
		}
		short, err := ParseFormat(f.String()[:1])
		if err != nil || short != f {
			t.Errorf("%s short: got %s, %v", f, short, err)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected bad format, got %v", err)
	}
}

func TestFromSuffix(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{"a.sfmt", SfmtFormat, true},
		{"dir/a.JSON", JSONFormat, true},
		{"a.jsonc", JSONFormat, true},
		{"a.yml", YAMLFormat, true},
		{"a.yaml.gz", YAMLFormat, true},
		{"a.json.zst", JSONFormat, true},
		{"a.sfmt.lz4", SfmtFormat, true},
		{"a.txt", SfmtFormat, false},
		{"noext", SfmtFormat, false},
		{"a.gz", SfmtFormat, false},
	}
	for _, tt := range tests {
		got, ok := FromSuffix(tt.path)
		if got != tt.want || ok != tt.ok {
			t.Errorf("%s: got %s %v, want %s %v", tt.path, got, ok, tt.want, tt.ok)
		}
		if ok && got.Suffix() == "" {
			t.Errorf("%s: empty suffix", got)
		}
	}
}
