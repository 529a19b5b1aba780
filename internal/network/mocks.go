package network

import (
	"github.com/stretchr/testify/mock"
	"github.com/vishvananda/netlink"
)

// MockLinkSource is a testify mock of LinkSource.
type MockLinkSource struct {
	mock.Mock
}

func (m *MockLinkSource) Links() ([]netlink.Link, error) {
	args := m.Called()
	links, _ := args.Get(0).([]netlink.Link)
	return links, args.Error(1)
}

func (m *MockLinkSource) Addrs(link netlink.Link) ([]netlink.Addr, error) {
	args := m.Called(link.Attrs().Name)
	addrs, _ := args.Get(0).([]netlink.Addr)
	return addrs, args.Error(1)
}

// MockHardware is a testify mock of HardwareDescriber.
type MockHardware struct {
	mock.Mock
}

func (m *MockHardware) Describe(iface string) (string, error) {
	args := m.Called(iface)
	return args.String(0), args.Error(1)
}
