package ir

import "fmt"

// Kind identifies which of the three node variants a Node holds.
type Kind int

const (
	ScalarKind Kind = iota
	ListKind
	TableKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		ScalarKind: "Scalar",
		ListKind:   "List",
		TableKind:  "Table",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Scalar": ScalarKind,
		"List":   ListKind,
		"Table":  TableKind,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		ScalarKind,
		ListKind,
		TableKind,
	}
}
