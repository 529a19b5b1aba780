package network

import (
	"net"

	"nifty-filter/internal/errors"
	"nifty-filter/internal/logging"
)

const unknown = "Unknown"

// Enumerator lists the host's network interfaces.
type Enumerator struct {
	links    LinkSource
	sys      Sysfs
	hardware HardwareDescriber
	log      *logging.Logger
}

// NewEnumerator returns an Enumerator backed by netlink, sysfs and ethtool.
func NewEnumerator() *Enumerator {
	return NewEnumeratorWith(netlinkSource{}, Sysfs{}, EthtoolHardware{})
}

// NewEnumeratorWith returns an Enumerator using the given collaborators.
func NewEnumeratorWith(links LinkSource, sys Sysfs, hardware HardwareDescriber) *Enumerator {
	return &Enumerator{
		links:    links,
		sys:      sys,
		hardware: hardware,
		log:      logging.WithComponent("network"),
	}
}

// Interfaces returns one descriptor per link, in kernel order. Attributes
// that cannot be read fall back to placeholders rather than failing.
func (e *Enumerator) Interfaces() ([]InterfaceInfo, error) {
	links, err := e.links.Links()
	if err != nil {
		return nil, errors.Wrap(err, errors.KindIO, "failed to list network interfaces")
	}

	out := make([]InterfaceInfo, 0, len(links))
	for _, link := range links {
		attrs := link.Attrs()
		name := attrs.Name

		info := InterfaceInfo{
			Name:       name,
			Status:     "Down",
			MTU:        attrs.MTU,
			TxQueueLen: attrs.TxQLen,
			Type:       e.sys.Classify(name, attrs.Flags&net.FlagLoopback != 0),
			Flags:      flagNames(attrs.Flags),
			Addresses:  []string{},
		}
		if attrs.Flags&net.FlagUp != 0 {
			info.Status = "Up"
		}
		if len(attrs.HardwareAddr) > 0 {
			info.MAC = attrs.HardwareAddr.String()
		}

		info.State = e.readOr(name, unknown, "operstate")
		info.Group = e.readOr(name, "default", "phys_port_name")
		info.Hardware = e.describe(name, info.Type)

		addrs, err := e.links.Addrs(link)
		if err != nil {
			e.log.Debug("failed to list addresses", "interface", name, "error", err)
		}
		for _, a := range addrs {
			if a.IPNet != nil {
				info.Addresses = append(info.Addresses, a.IP.String())
			}
		}

		out = append(out, info)
	}
	return out, nil
}

func (e *Enumerator) readOr(iface, fallback string, elem ...string) string {
	v, err := e.sys.Read(iface, elem...)
	if err != nil || v == "" {
		return fallback
	}
	return v
}

// describe prefers the ethtool driver, then the PCI id, for physical devices.
func (e *Enumerator) describe(iface string, t InterfaceType) string {
	if t != TypePhysicalEthernet && t != TypePhysicalWifi {
		return unknown
	}
	if e.hardware != nil {
		if desc, err := e.hardware.Describe(iface); err == nil && desc != "" {
			return desc
		}
	}
	if id, err := e.sys.PCIID(iface); err == nil {
		return "PCI " + id
	}
	return unknown
}

func flagNames(f net.Flags) []string {
	names := []string{}
	if f&net.FlagBroadcast != 0 {
		names = append(names, "Broadcast")
	}
	if f&net.FlagMulticast != 0 {
		names = append(names, "Multicast")
	}
	if f&net.FlagLoopback != 0 {
		names = append(names, "Loopback")
	}
	if f&net.FlagPointToPoint != 0 {
		names = append(names, "Point-to-Point")
	}
	return names
}
