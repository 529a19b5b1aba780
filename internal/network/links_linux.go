//go:build linux

package network

import (
	"github.com/vishvananda/netlink"
	"golang.org/x/sys/unix"
)

// netlinkSource reads links and addresses from the kernel.
type netlinkSource struct{}

func (netlinkSource) Links() ([]netlink.Link, error) {
	return netlink.LinkList()
}

// Addrs returns IPv4 and IPv6 addresses.
func (netlinkSource) Addrs(link netlink.Link) ([]netlink.Addr, error) {
	return netlink.AddrList(link, unix.AF_UNSPEC)
}
