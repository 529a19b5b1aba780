package network

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultSysfsRoot is where the kernel exposes per-interface attributes.
const DefaultSysfsRoot = "/sys/class/net"

// Sysfs reads per-interface attributes below a sysfs class directory.
type Sysfs struct {
	Root string
}

func (s Sysfs) path(iface string, elem ...string) string {
	root := s.Root
	if root == "" {
		root = DefaultSysfsRoot
	}
	return filepath.Join(append([]string{root, iface}, elem...)...)
}

// Read returns the trimmed content of an attribute file.
func (s Sysfs) Read(iface string, elem ...string) (string, error) {
	data, err := os.ReadFile(s.path(iface, elem...))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Exists reports whether an attribute file or directory exists.
func (s Sysfs) Exists(iface string, elem ...string) bool {
	_, err := os.Stat(s.path(iface, elem...))
	return err == nil
}

// Classify determines the interface type from sysfs. Interfaces with a
// device link are physical; the rest are tap devices, bridges or virtual.
func (s Sysfs) Classify(iface string, loopback bool) InterfaceType {
	switch {
	case loopback:
		return TypeLoopback
	case s.Exists(iface, "device"):
		if s.Exists(iface, "wireless") {
			return TypePhysicalWifi
		}
		return TypePhysicalEthernet
	case s.Exists(iface, "tun_flags"):
		return TypeTap
	case s.Exists(iface, "bridge"):
		return TypeBridge
	}
	return TypeVirtual
}

// PCIID returns the "vendor:device" id of the backing PCI device, e.g. "8086:15d7".
func (s Sysfs) PCIID(iface string) (string, error) {
	vendor, err := s.Read(iface, "device", "vendor")
	if err != nil {
		return "", err
	}
	device, err := s.Read(iface, "device", "device")
	if err != nil {
		return "", err
	}
	return strings.TrimPrefix(vendor, "0x") + ":" + strings.TrimPrefix(device, "0x"), nil
}

func formatDriver(driver, busInfo string) string {
	if busInfo == "" {
		return driver
	}
	return driver + " (" + busInfo + ")"
}
