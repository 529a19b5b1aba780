package network

import (
	"encoding/json"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vishvananda/netlink"
	"gopkg.in/yaml.v2"
)

// fakeSysfs lays out a sysfs class directory under t.TempDir().
func fakeSysfs(t *testing.T, files map[string]string) Sysfs {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		if content == "/" {
			require.NoError(t, os.MkdirAll(path, 0o755))
			continue
		}
		require.NoError(t, os.WriteFile(path, []byte(content+"\n"), 0o644))
	}
	return Sysfs{Root: root}
}

func device(name string, flags net.Flags, mac string) *netlink.Device {
	hw, _ := net.ParseMAC(mac)
	return &netlink.Device{LinkAttrs: netlink.LinkAttrs{
		Name:         name,
		MTU:          1500,
		TxQLen:       1000,
		Flags:        flags,
		HardwareAddr: hw,
	}}
}

func TestSysfs_Classify(t *testing.T) {
	sys := fakeSysfs(t, map[string]string{
		"eth0/device":     "/",
		"wlan0/device":    "/",
		"wlan0/wireless":  "/",
		"tap0/tun_flags":  "0x1002",
		"br0/bridge":      "/",
		"veth0/operstate": "up",
	})

	tests := []struct {
		iface    string
		loopback bool
		want     InterfaceType
	}{
		{"lo", true, TypeLoopback},
		{"eth0", false, TypePhysicalEthernet},
		{"wlan0", false, TypePhysicalWifi},
		{"tap0", false, TypeTap},
		{"br0", false, TypeBridge},
		{"veth0", false, TypeVirtual},
	}
	for _, tt := range tests {
		t.Run(tt.iface, func(t *testing.T) {
			assert.Equal(t, tt.want, sys.Classify(tt.iface, tt.loopback))
		})
	}
}

func TestInterfaceType_Managed(t *testing.T) {
	assert.True(t, TypePhysicalEthernet.IsManaged())
	assert.True(t, TypePhysicalWifi.IsManaged())
	assert.True(t, TypeVirtual.IsManaged())
	assert.False(t, TypeLoopback.IsManaged())
	assert.False(t, TypeBridge.IsManaged())
	assert.False(t, TypeTap.IsManaged())
	assert.False(t, TypeUnknown.IsManaged())

	assert.Equal(t, "Virtual Ethernet", TypeVirtual.String())
	assert.Equal(t, "Tap device", TypeTap.String())
}

func TestEnumerator_Interfaces(t *testing.T) {
	sys := fakeSysfs(t, map[string]string{
		"lo/operstate":        "unknown",
		"eth0/device":         "/",
		"eth0/operstate":      "up",
		"eth0/device/vendor":  "0x8086",
		"eth0/device/device":  "0x15d7",
		"eth1/device":         "/",
		"eth1/operstate":      "down",
		"eth1/phys_port_name": "p1",
	})

	lo := device("lo", net.FlagUp|net.FlagLoopback, "")
	eth0 := device("eth0", net.FlagUp|net.FlagBroadcast|net.FlagMulticast, "52:54:00:12:34:56")
	eth1 := device("eth1", net.FlagBroadcast, "52:54:00:12:34:57")

	links := new(MockLinkSource)
	links.On("Links").Return([]netlink.Link{lo, eth0, eth1}, nil)
	links.On("Addrs", "lo").Return([]netlink.Addr{
		{IPNet: &net.IPNet{IP: net.ParseIP("127.0.0.1"), Mask: net.CIDRMask(8, 32)}},
	}, nil)
	links.On("Addrs", "eth0").Return([]netlink.Addr{
		{IPNet: &net.IPNet{IP: net.ParseIP("fe80::1"), Mask: net.CIDRMask(64, 128)}},
		{IPNet: &net.IPNet{IP: net.ParseIP("192.168.1.1").To4(), Mask: net.CIDRMask(24, 32)}},
	}, nil)
	links.On("Addrs", "eth1").Return(nil, fmt.Errorf("boom"))

	hw := new(MockHardware)
	hw.On("Describe", "eth0").Return("", fmt.Errorf("no ethtool"))
	hw.On("Describe", "eth1").Return("igb (0000:03:00.0)", nil)

	infos, err := NewEnumeratorWith(links, sys, hw).Interfaces()
	require.NoError(t, err)
	require.Len(t, infos, 3)
	links.AssertExpectations(t)
	hw.AssertExpectations(t)

	assert.Equal(t, TypeLoopback, infos[0].Type)
	assert.Equal(t, []string{"Loopback"}, infos[0].Flags)
	assert.Equal(t, "Unknown", infos[0].Hardware)
	assert.Equal(t, "", infos[0].MAC)
	assert.Equal(t, "default", infos[0].Group)

	eth := infos[1]
	assert.Equal(t, "eth0", eth.Name)
	assert.Equal(t, "Up", eth.Status)
	assert.Equal(t, "up", eth.State)
	assert.Equal(t, 1500, eth.MTU)
	assert.Equal(t, 1000, eth.TxQueueLen)
	assert.Equal(t, TypePhysicalEthernet, eth.Type)
	assert.Equal(t, []string{"Broadcast", "Multicast"}, eth.Flags)
	assert.Equal(t, "52:54:00:12:34:56", eth.MAC)
	assert.Equal(t, []string{"fe80::1", "192.168.1.1"}, eth.Addresses)
	assert.Equal(t, "192.168.1.1", eth.FirstIPv4())
	assert.Equal(t, "PCI 8086:15d7", eth.Hardware)

	assert.Equal(t, "Down", infos[2].Status)
	assert.Equal(t, "p1", infos[2].Group)
	assert.Equal(t, "igb (0000:03:00.0)", infos[2].Hardware)
	assert.Empty(t, infos[2].Addresses)
	assert.Equal(t, "", infos[2].FirstIPv4())
}

func TestEnumerator_LinksError(t *testing.T) {
	links := new(MockLinkSource)
	links.On("Links").Return(nil, fmt.Errorf("permission denied"))

	_, err := NewEnumeratorWith(links, Sysfs{Root: t.TempDir()}, nil).Interfaces()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
}

func TestInterfaceInfo_Marshal(t *testing.T) {
	info := InterfaceInfo{Name: "eth0", Type: TypePhysicalWifi, Addresses: []string{}}

	data, err := json.Marshal(info)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"interface_type":"Physical WiFi"`)

	out, err := yaml.Marshal(info)
	require.NoError(t, err)
	assert.Contains(t, string(out), "interface_type: Physical WiFi")
}
