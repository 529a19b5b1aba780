package validation

import (
	"net/netip"
	"regexp"
	"strconv"
	"strings"

	"nifty-filter/internal/errors"
)

var (
	// Valid interface name: starts alphanumeric, then alphanumeric, dash, underscore or dot, max 15 chars
	interfaceNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,14}$`)
)

// ValidateInterfaceName validates a network interface name
func ValidateInterfaceName(name string) error {
	if name == "" {
		return errors.New(errors.KindValidation, "interface name cannot be empty")
	}

	if !interfaceNameRegex.MatchString(name) {
		return errors.Errorf(errors.KindValidation, "invalid interface name: %q (must be 1-15 characters of A-Z a-z 0-9 . _ - and start alphanumeric)", name)
	}

	return nil
}

// ParsePortNumber parses a decimal TCP/UDP port number.
func ParsePortNumber(s string) (uint16, error) {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil || n == 0 {
		return 0, errors.Errorf(errors.KindValidation, "invalid port number: %q (must be 1-65535)", s)
	}
	return uint16(n), nil
}

// ParseCIDR parses an IPv4 or IPv6 network in CIDR notation.
func ParseCIDR(s string) (netip.Prefix, error) {
	if s == "" {
		return netip.Prefix{}, errors.New(errors.KindValidation, "CIDR cannot be empty")
	}
	p, err := netip.ParsePrefix(s)
	if err != nil {
		return netip.Prefix{}, errors.Errorf(errors.KindValidation, "invalid CIDR: %q", s)
	}
	return p, nil
}

// ParseIP parses a single IPv4 or IPv6 address.
func ParseIP(s string) (netip.Addr, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, errors.Errorf(errors.KindValidation, "invalid IP address: %q", s)
	}
	return addr, nil
}

// MatchAllowlist returns the index of value in allowed, compared case-insensitively.
// what names the kind of value in the error message.
func MatchAllowlist(what, value string, allowed []string) (int, error) {
	for i, a := range allowed {
		if strings.EqualFold(value, a) {
			return i, nil
		}
	}
	return -1, errors.Errorf(errors.KindValidation, "invalid %s: %q (must be one of: %s)", what, value, strings.Join(allowed, ", "))
}

// ParseBool accepts exactly "true" or "false".
func ParseBool(s string) (bool, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, errors.Errorf(errors.KindValidation, "invalid boolean: %q (must be true or false)", s)
}
