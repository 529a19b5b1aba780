//go:build !linux

package network

import (
	"github.com/vishvananda/netlink"

	"nifty-filter/internal/errors"
)

type netlinkSource struct{}

func (netlinkSource) Links() ([]netlink.Link, error) {
	return nil, errors.New(errors.KindInternal, "interface enumeration is only available on linux")
}

func (netlinkSource) Addrs(netlink.Link) ([]netlink.Addr, error) {
	return nil, nil
}
