package config

import (
	"strconv"

	"nifty-filter/internal/validation"
)

// Port is a TCP or UDP port in the range 1-65535.
type Port struct {
	number uint16
}

// ParsePort parses a decimal port number.
func ParsePort(s string) (Port, error) {
	n, err := validation.ParsePortNumber(s)
	if err != nil {
		return Port{}, err
	}
	return Port{number: n}, nil
}

// Number returns the port as an integer.
func (p Port) Number() uint16 { return p.number }

func (p Port) String() string { return strconv.Itoa(int(p.number)) }

// PortList is an ordered list of ports, e.g. "22, 80, 443".
type PortList struct {
	ports []Port
}

// ParsePortList parses a comma separated port list. The empty string is
// an empty list.
func ParsePortList(s string) (PortList, error) {
	ports, err := parseList(s, ParsePort)
	if err != nil {
		return PortList{}, err
	}
	return PortList{ports: ports}, nil
}

// Ports returns a copy of the ports in order.
func (l PortList) Ports() []Port { return cloneList(l.ports) }

// Len returns the number of ports.
func (l PortList) Len() int { return len(l.ports) }

func (l PortList) String() string { return joinList(l.ports) }
