package config

import "nifty-filter/internal/validation"

// Interface is a validated network interface name.
type Interface struct {
	name string
}

// ParseInterface validates an interface name such as "eth0" or "enp3s0.100".
func ParseInterface(s string) (Interface, error) {
	if err := validation.ValidateInterfaceName(s); err != nil {
		return Interface{}, err
	}
	return Interface{name: s}, nil
}

func (i Interface) String() string { return i.name }

// IsZero reports whether i was never parsed.
func (i Interface) IsZero() bool { return i.name == "" }
