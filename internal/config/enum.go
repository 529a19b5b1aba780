package config

import "nifty-filter/internal/validation"

// enumTable is the bidirectional string table of a closed enumeration.
// A variant's value is its index in names, so parsing, rendering and the
// list of legal values in error messages all come from the same slice.
type enumTable[T ~uint8] struct {
	what  string
	names []string
}

func (t enumTable[T]) parse(input string) (T, error) {
	i, err := validation.MatchAllowlist(t.what, input, t.names)
	if err != nil {
		return 0, err
	}
	return T(i), nil
}

func (t enumTable[T]) name(v T) string {
	if int(v) < len(t.names) {
		return t.names[v]
	}
	return "unknown"
}

func (t enumTable[T]) all() []T {
	out := make([]T, len(t.names))
	for i := range t.names {
		out[i] = T(i)
	}
	return out
}

func (t enumTable[T]) legal() []string {
	return cloneList(t.names)
}
