package tui

import (
	"nifty-filter/internal/config"
	"nifty-filter/internal/errors"
	"nifty-filter/internal/firewall"
	"nifty-filter/internal/host"
	"nifty-filter/internal/network"
)

// Backend supplies everything the shell displays.
type Backend interface {
	Interfaces() ([]network.InterfaceInfo, error)
	ActiveConflicts() []string
	Ruleset() (string, error)
	Chains() ([]firewall.ChainSummary, error)
	Inputs() config.Inputs
}

// SystemBackend reads from the running host.
type SystemBackend struct {
	In         config.Inputs
	Enumerator *network.Enumerator
	Services   *host.ServiceChecker
	// ChainSource may be nil when nftables is unavailable.
	ChainSource firewall.ChainSource
}

func (b *SystemBackend) Interfaces() ([]network.InterfaceInfo, error) {
	return b.Enumerator.Interfaces()
}

func (b *SystemBackend) ActiveConflicts() []string {
	return b.Services.ActiveConflicts()
}

// Ruleset resolves the inputs and renders the normalized ruleset.
func (b *SystemBackend) Ruleset() (string, error) {
	r, err := config.Resolve(b.In)
	if err != nil {
		return "", err
	}
	raw, err := firewall.Render(r)
	if err != nil {
		return "", err
	}
	return firewall.Normalize(raw), nil
}

func (b *SystemBackend) Chains() ([]firewall.ChainSummary, error) {
	if b.ChainSource == nil {
		return nil, errors.New(errors.KindInternal, "nftables is not available")
	}
	return b.ChainSource.Chains()
}

func (b *SystemBackend) Inputs() config.Inputs {
	return b.In
}
