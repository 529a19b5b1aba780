package network

import (
	"net/netip"

	"github.com/vishvananda/netlink"
)

// InterfaceType classifies a network interface by how it is backed.
type InterfaceType int

const (
	TypeUnknown InterfaceType = iota
	TypeLoopback
	TypeBridge
	TypePhysicalEthernet
	TypePhysicalWifi
	TypeVirtual
	TypeTap
)

func (t InterfaceType) String() string {
	switch t {
	case TypeLoopback:
		return "Loopback"
	case TypeBridge:
		return "Bridge"
	case TypePhysicalEthernet:
		return "Physical Ethernet"
	case TypePhysicalWifi:
		return "Physical WiFi"
	case TypeVirtual:
		return "Virtual Ethernet"
	case TypeTap:
		return "Tap device"
	default:
		return "Unknown"
	}
}

// MarshalText renders the type by its display name in JSON and YAML output.
func (t InterfaceType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// ManagedTypes are the interface types the router can be configured on.
var ManagedTypes = []InterfaceType{TypePhysicalEthernet, TypePhysicalWifi, TypeVirtual}

// IsManaged reports whether t is one of ManagedTypes.
func (t InterfaceType) IsManaged() bool {
	for _, m := range ManagedTypes {
		if t == m {
			return true
		}
	}
	return false
}

// InterfaceInfo describes one interface present on the host.
type InterfaceInfo struct {
	Name       string        `json:"name" yaml:"name"`
	Status     string        `json:"status" yaml:"status"`
	MTU        int           `json:"mtu" yaml:"mtu"`
	State      string        `json:"state" yaml:"state"`
	Group      string        `json:"group" yaml:"group"`
	Type       InterfaceType `json:"interface_type" yaml:"interface_type"`
	TxQueueLen int           `json:"tx_queue_len" yaml:"tx_queue_len"`
	Flags      []string      `json:"types" yaml:"types"`
	MAC        string        `json:"mac_address,omitempty" yaml:"mac_address,omitempty"`
	Addresses  []string      `json:"ip_addresses" yaml:"ip_addresses"`
	Hardware   string        `json:"pci_info" yaml:"pci_info"`
}

// FirstIPv4 returns the first IPv4 address of the interface, or "".
func (i InterfaceInfo) FirstIPv4() string {
	for _, a := range i.Addresses {
		if addr, err := netip.ParseAddr(a); err == nil && addr.Is4() {
			return a
		}
	}
	return ""
}

// MarshalYAML lets yaml.v2 use the display name for Type.
func (t InterfaceType) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

// LinkSource supplies the links and their addresses.
type LinkSource interface {
	Links() ([]netlink.Link, error)
	Addrs(link netlink.Link) ([]netlink.Addr, error)
}

// HardwareDescriber returns a human-readable description of the device
// behind an interface (driver and bus location).
type HardwareDescriber interface {
	Describe(iface string) (string, error)
}
