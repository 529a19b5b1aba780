package config

import "nifty-filter/internal/errors"

// Named inputs read by Resolve.
const (
	KeyInterfaceLAN       = "INTERFACE_LAN"
	KeyInterfaceWAN       = "INTERFACE_WAN"
	KeySubnetLAN          = "SUBNET_LAN"
	KeyIcmpAcceptLAN      = "ICMP_ACCEPT_LAN"
	KeyIcmpAcceptWAN      = "ICMP_ACCEPT_WAN"
	KeyTCPAcceptLAN       = "TCP_ACCEPT_LAN"
	KeyUDPAcceptLAN       = "UDP_ACCEPT_LAN"
	KeyTCPAcceptWAN       = "TCP_ACCEPT_WAN"
	KeyUDPAcceptWAN       = "UDP_ACCEPT_WAN"
	KeyTCPForwardLAN      = "TCP_FORWARD_LAN"
	KeyUDPForwardLAN      = "UDP_FORWARD_LAN"
	KeyTCPForwardWAN      = "TCP_FORWARD_WAN"
	KeyUDPForwardWAN      = "UDP_FORWARD_WAN"
	KeyChainInputPolicy   = "CHAIN_INPUT_POLICY"
	KeyChainForwardPolicy = "CHAIN_FORWARD_POLICY"
	KeyChainOutputPolicy  = "CHAIN_OUTPUT_POLICY"
)

// Defaults for optional inputs that are absent.
var (
	DefaultIcmpAcceptLAN = IcmpTypeList{types: []IcmpType{
		IcmpEchoRequest,
		IcmpEchoReply,
		IcmpDestinationUnreachable,
		IcmpTimeExceeded,
	}}
	DefaultIcmpAcceptWAN      = IcmpTypeList{}
	DefaultTCPAcceptLAN       = PortList{ports: []Port{{number: 22}, {number: 80}, {number: 443}}}
	DefaultPortList           = PortList{}
	DefaultForwardRouteList   = ForwardRouteList{}
	DefaultChainInputPolicy   = PolicyDrop
	DefaultChainForwardPolicy = PolicyDrop
	DefaultChainOutputPolicy  = PolicyAccept
)

// Placeholders stand in for required fields that failed so the remaining
// fields still get resolved. They never reach a successful result.
var (
	placeholderInterface = Interface{name: "eth0"}
	placeholderSubnet    = Subnet{}
)

// Router is the fully resolved configuration handed to the renderer.
type Router struct {
	InterfaceLAN Interface
	InterfaceWAN Interface
	SubnetLAN    Subnet

	IcmpAcceptLAN IcmpTypeList
	IcmpAcceptWAN IcmpTypeList

	TCPAcceptLAN PortList
	UDPAcceptLAN PortList
	TCPAcceptWAN PortList
	UDPAcceptWAN PortList

	TCPForwardLAN ForwardRouteList
	UDPForwardLAN ForwardRouteList
	TCPForwardWAN ForwardRouteList
	UDPForwardWAN ForwardRouteList

	ChainInputPolicy   ChainPolicy
	ChainForwardPolicy ChainPolicy
	ChainOutputPolicy  ChainPolicy
}

// Resolve turns named inputs into a Router. Every field is resolved even
// after failures; if any failed, the Router is discarded and the returned
// error combines every failure in field order (see errors.Split).
//
// Absent optional fields take their default silently. A field that is
// present but invalid is always an error, optional or not.
func Resolve(in Inputs) (*Router, error) {
	var errs errors.List

	r := &Router{
		InterfaceLAN: required(in, &errs, KeyInterfaceLAN, ParseInterface, placeholderInterface),
		InterfaceWAN: required(in, &errs, KeyInterfaceWAN, ParseInterface, placeholderInterface),
		SubnetLAN:    required(in, &errs, KeySubnetLAN, ParseSubnet, placeholderSubnet),

		IcmpAcceptLAN: optional(in, &errs, KeyIcmpAcceptLAN, ParseIcmpTypeList, DefaultIcmpAcceptLAN),
		IcmpAcceptWAN: optional(in, &errs, KeyIcmpAcceptWAN, ParseIcmpTypeList, DefaultIcmpAcceptWAN),

		TCPAcceptLAN: optional(in, &errs, KeyTCPAcceptLAN, ParsePortList, DefaultTCPAcceptLAN),
		UDPAcceptLAN: optional(in, &errs, KeyUDPAcceptLAN, ParsePortList, DefaultPortList),
		TCPAcceptWAN: optional(in, &errs, KeyTCPAcceptWAN, ParsePortList, DefaultPortList),
		UDPAcceptWAN: optional(in, &errs, KeyUDPAcceptWAN, ParsePortList, DefaultPortList),

		TCPForwardLAN: optional(in, &errs, KeyTCPForwardLAN, ParseForwardRouteList, DefaultForwardRouteList),
		UDPForwardLAN: optional(in, &errs, KeyUDPForwardLAN, ParseForwardRouteList, DefaultForwardRouteList),
		TCPForwardWAN: optional(in, &errs, KeyTCPForwardWAN, ParseForwardRouteList, DefaultForwardRouteList),
		UDPForwardWAN: optional(in, &errs, KeyUDPForwardWAN, ParseForwardRouteList, DefaultForwardRouteList),

		ChainInputPolicy:   optional(in, &errs, KeyChainInputPolicy, ParseChainPolicy, DefaultChainInputPolicy),
		ChainForwardPolicy: optional(in, &errs, KeyChainForwardPolicy, ParseChainPolicy, DefaultChainForwardPolicy),
		ChainOutputPolicy:  optional(in, &errs, KeyChainOutputPolicy, ParseChainPolicy, DefaultChainOutputPolicy),
	}

	if err := errs.Err(); err != nil {
		return nil, err
	}
	return r, nil
}

func required[T any](in Inputs, errs *errors.List, name string, parse func(string) (T, error), placeholder T) T {
	raw, ok := in.Lookup(name)
	if !ok {
		errs.Add(errors.MissingInput(name))
		return placeholder
	}
	return parseField(errs, name, raw, parse, placeholder)
}

func optional[T any](in Inputs, errs *errors.List, name string, parse func(string) (T, error), def T) T {
	raw, ok := in.Lookup(name)
	if !ok {
		return def
	}
	return parseField(errs, name, raw, parse, def)
}

func parseField[T any](errs *errors.List, name, raw string, parse func(string) (T, error), placeholder T) T {
	v, err := parse(raw)
	if err != nil {
		errs.Add(errors.InvalidFormat(name, raw, err))
		return placeholder
	}
	return v
}
