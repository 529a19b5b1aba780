package firewall

import (
	_ "embed"
	"net/netip"
	"strconv"
	"strings"
	"text/template"

	"nifty-filter/internal/config"
	"nifty-filter/internal/errors"
)

//go:embed router.nft.tmpl
var routerTemplate string

var tmpl = template.Must(template.New("router.nft").
	Option("missingkey=error").
	Funcs(template.FuncMap{"upper": strings.ToUpper}).
	Parse(routerTemplate))

type chainView struct {
	Policy   string
	Terminal string
}

type forwardView struct {
	Zone      string
	Interface string
	Protocol  string
	Port      string
	Target    string
}

// rulesetView is the flattened form of a Router the template reads.
type rulesetView struct {
	LAN     string
	WAN     string
	Family  string
	Network string

	IcmpLAN string
	IcmpWAN string
	TCPLAN  string
	UDPLAN  string
	TCPWAN  string
	UDPWAN  string

	Forwards []forwardView

	Input   chainView
	Forward chainView
	Output  chainView
}

// Render produces the raw nftables script for r. The result has loose
// blank lines; pass it through Normalize before writing it out.
func Render(r *config.Router) (string, error) {
	if r == nil {
		return "", errors.New(errors.KindValidation, "no router configuration")
	}
	if r.InterfaceLAN.IsZero() || r.InterfaceWAN.IsZero() || r.SubnetLAN.IsZero() {
		return "", errors.New(errors.KindValidation, "router configuration is missing interfaces or LAN subnet")
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, newRulesetView(r)); err != nil {
		return "", errors.Wrap(err, errors.KindInternal, "failed to render ruleset")
	}
	return b.String(), nil
}

func newRulesetView(r *config.Router) rulesetView {
	lan := r.InterfaceLAN.String()
	wan := r.InterfaceWAN.String()

	v := rulesetView{
		LAN:     lan,
		WAN:     wan,
		Family:  r.SubnetLAN.Family(),
		Network: r.SubnetLAN.Network(),
		IcmpLAN: r.IcmpAcceptLAN.NftSet(),
		IcmpWAN: r.IcmpAcceptWAN.NftSet(),
		TCPLAN:  r.TCPAcceptLAN.String(),
		UDPLAN:  r.UDPAcceptLAN.String(),
		TCPWAN:  r.TCPAcceptWAN.String(),
		UDPWAN:  r.UDPAcceptWAN.String(),
		Input:   newChainView(r.ChainInputPolicy),
		Forward: newChainView(r.ChainForwardPolicy),
		Output:  newChainView(r.ChainOutputPolicy),
	}

	v.Forwards = appendForwards(v.Forwards, "LAN", lan, "tcp", r.TCPForwardLAN)
	v.Forwards = appendForwards(v.Forwards, "LAN", lan, "udp", r.UDPForwardLAN)
	v.Forwards = appendForwards(v.Forwards, "WAN", wan, "tcp", r.TCPForwardWAN)
	v.Forwards = appendForwards(v.Forwards, "WAN", wan, "udp", r.UDPForwardWAN)
	return v
}

func newChainView(p config.ChainPolicy) chainView {
	return chainView{Policy: p.BasePolicy(), Terminal: p.TerminalRule()}
}

func appendForwards(dst []forwardView, zone, iface, proto string, routes config.ForwardRouteList) []forwardView {
	for _, route := range routes.Routes() {
		dst = append(dst, forwardView{
			Zone:      zone,
			Interface: iface,
			Protocol:  proto,
			Port:      route.IncomingPort().String(),
			Target:    dnatTarget(route.DestinationIP(), route.DestinationPort().Number()),
		})
	}
	return dst
}

// dnatTarget formats the "addr:port" target of a dnat statement. Forward
// routes split on ':' so their destinations are always IPv4.
func dnatTarget(ip netip.Addr, port uint16) string {
	return ip.String() + ":" + strconv.Itoa(int(port))
}
