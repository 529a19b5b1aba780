//go:build linux

package network

import (
	"github.com/safchain/ethtool"

	"nifty-filter/internal/errors"
)

// EthtoolHardware describes devices using the ethtool driver info ioctl.
type EthtoolHardware struct{}

// Describe returns "driver (bus info)", e.g. "e1000e (0000:00:1f.6)".
func (EthtoolHardware) Describe(iface string) (string, error) {
	h, err := ethtool.NewEthtool()
	if err != nil {
		return "", errors.Wrap(err, errors.KindIO, "failed to open ethtool handle")
	}
	defer h.Close()

	info, err := h.DriverInfo(iface)
	if err != nil {
		return "", errors.Wrapf(err, errors.KindIO, "ethtool DriverInfo failed for %s", iface)
	}
	return formatDriver(info.Driver, info.BusInfo), nil
}
