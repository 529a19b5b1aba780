//go:build linux

package firewall

import (
	"sort"

	"github.com/google/nftables"

	"nifty-filter/internal/errors"
)

// ChainLister reads chains from the kernel. *nftables.Conn satisfies it.
type ChainLister interface {
	ListChains() ([]*nftables.Chain, error)
}

type liveSource struct {
	lister ChainLister
}

// NewLiveSource opens a netlink connection to nftables.
func NewLiveSource() (ChainSource, error) {
	conn, err := nftables.New()
	if err != nil {
		return nil, errors.Wrap(err, errors.KindIO, "failed to open nftables connection")
	}
	return liveSource{lister: conn}, nil
}

func (s liveSource) Chains() ([]ChainSummary, error) {
	return LiveChains(s.lister)
}

// LiveChains lists the chains currently loaded in the kernel, sorted by
// family, table and chain name. Regular (non-base) chains have no hook or policy.
func LiveChains(lister ChainLister) ([]ChainSummary, error) {
	chains, err := lister.ListChains()
	if err != nil {
		return nil, errors.Wrap(err, errors.KindIO, "failed to list nftables chains")
	}

	out := make([]ChainSummary, 0, len(chains))
	for _, c := range chains {
		s := ChainSummary{
			Name: c.Name,
			Type: string(c.Type),
		}
		var family nftables.TableFamily
		if c.Table != nil {
			s.Table = c.Table.Name
			family = c.Table.Family
		}
		s.Family = familyName(family)
		if c.Hooknum != nil {
			s.Hook = hookName(family, *c.Hooknum)
		}
		if c.Policy != nil {
			s.Policy = policyName(*c.Policy)
		}
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Family != out[j].Family {
			return out[i].Family < out[j].Family
		}
		if out[i].Table != out[j].Table {
			return out[i].Table < out[j].Table
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func familyName(f nftables.TableFamily) string {
	switch f {
	case nftables.TableFamilyINet:
		return "inet"
	case nftables.TableFamilyIPv4:
		return "ip"
	case nftables.TableFamilyIPv6:
		return "ip6"
	case nftables.TableFamilyARP:
		return "arp"
	case nftables.TableFamilyNetdev:
		return "netdev"
	case nftables.TableFamilyBridge:
		return "bridge"
	}
	return "unspec"
}

func hookName(f nftables.TableFamily, h nftables.ChainHook) string {
	if f == nftables.TableFamilyNetdev {
		if h == *nftables.ChainHookIngress {
			return "ingress"
		}
		return "unknown"
	}
	switch h {
	case *nftables.ChainHookPrerouting:
		return "prerouting"
	case *nftables.ChainHookInput:
		return "input"
	case *nftables.ChainHookForward:
		return "forward"
	case *nftables.ChainHookOutput:
		return "output"
	case *nftables.ChainHookPostrouting:
		return "postrouting"
	}
	return "unknown"
}

func policyName(p nftables.ChainPolicy) string {
	if p == nftables.ChainPolicyAccept {
		return "accept"
	}
	return "drop"
}
