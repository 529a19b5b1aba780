package config

import (
	"sort"
	"strings"
)

// Inputs is an immutable set of named raw configuration values.
// Resolution reads nothing else.
type Inputs struct {
	values map[string]string
}

// NewInputs copies values into a new Inputs.
func NewInputs(values map[string]string) Inputs {
	m := make(map[string]string, len(values))
	for k, v := range values {
		m[k] = v
	}
	return Inputs{values: m}
}

// FromEnviron builds Inputs from KEY=VALUE pairs as returned by os.Environ.
func FromEnviron(environ []string) Inputs {
	m := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		m[k] = v
	}
	return Inputs{values: m}
}

// Lookup returns the raw value for name and whether it was present.
func (in Inputs) Lookup(name string) (string, bool) {
	v, ok := in.values[name]
	return v, ok
}

// Merge returns a new Inputs holding in's values overridden by over's.
func (in Inputs) Merge(over Inputs) Inputs {
	m := make(map[string]string, len(in.values)+len(over.values))
	for k, v := range in.values {
		m[k] = v
	}
	for k, v := range over.values {
		m[k] = v
	}
	return Inputs{values: m}
}

// Only returns a new Inputs restricted to the given names.
func (in Inputs) Only(names ...string) Inputs {
	m := make(map[string]string, len(names))
	for _, name := range names {
		if v, ok := in.values[name]; ok {
			m[name] = v
		}
	}
	return Inputs{values: m}
}

// Names returns the present names in sorted order.
func (in Inputs) Names() []string {
	names := make([]string, 0, len(in.values))
	for k := range in.values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of present names.
func (in Inputs) Len() int { return len(in.values) }
