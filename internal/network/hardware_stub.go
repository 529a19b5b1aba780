//go:build !linux

package network

import "nifty-filter/internal/errors"

// EthtoolHardware is unavailable off Linux.
type EthtoolHardware struct{}

func (EthtoolHardware) Describe(iface string) (string, error) {
	return "", errors.Errorf(errors.KindInternal, "ethtool not supported on this platform (%s)", iface)
}
