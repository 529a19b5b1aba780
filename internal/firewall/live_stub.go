//go:build !linux

package firewall

import "nifty-filter/internal/errors"

// NewLiveSource is unavailable off Linux.
func NewLiveSource() (ChainSource, error) {
	return nil, errors.New(errors.KindInternal, "nftables is only available on Linux")
}
