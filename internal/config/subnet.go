package config

import (
	"net/netip"

	"nifty-filter/internal/validation"
)

// Subnet is an IPv4 or IPv6 network in CIDR notation. The address is kept
// as written; Network returns the masked form.
type Subnet struct {
	prefix netip.Prefix
}

// ParseSubnet parses "192.168.1.0/24" or "fd00::/64".
func ParseSubnet(s string) (Subnet, error) {
	p, err := validation.ParseCIDR(s)
	if err != nil {
		return Subnet{}, err
	}
	return Subnet{prefix: p}, nil
}

func (s Subnet) String() string {
	if !s.prefix.IsValid() {
		return ""
	}
	return s.prefix.String()
}

// Network returns the subnet with host bits cleared, e.g. "192.168.1.0/24".
func (s Subnet) Network() string { return s.prefix.Masked().String() }

// Family returns the nftables address family keyword for the subnet: "ip" or "ip6".
func (s Subnet) Family() string {
	if s.prefix.Addr().Is4() {
		return "ip"
	}
	return "ip6"
}

// IsZero reports whether s was never parsed.
func (s Subnet) IsZero() bool { return !s.prefix.IsValid() }
