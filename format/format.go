package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	SfmtFormat Format = iota
	JSONFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"s":    SfmtFormat,
		"sfmt": SfmtFormat,
		"j":    JSONFormat,
		"json": JSONFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case SfmtFormat:
		return []byte("sfmt"), nil
	case JSONFormat:
		return []byte("json"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsSfmt() bool { return f == SfmtFormat }
func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case SfmtFormat:
		return ".sfmt"
	case JSONFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	default:
		return ""
	}
}

// FromSuffix guesses the format of a file from its extension. Compression
// suffixes such as ".gz" are skipped. ok is false when the extension names
// no format.
func FromSuffix(path string) (f Format, ok bool) {
	for {
		ext := strings.ToLower(filepath.Ext(path))
		switch ext {
		case ".gz", ".zst", ".lz4":
			path = strings.TrimSuffix(path, filepath.Ext(path))
			continue
		case ".sfmt":
			return SfmtFormat, true
		case ".json", ".jsonc":
			return JSONFormat, true
		case ".yaml", ".yml":
			return YAMLFormat, true
		}
		return SfmtFormat, false
	}
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{SfmtFormat, JSONFormat, YAMLFormat}
}
