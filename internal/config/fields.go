package config

// Field describes one named input for help output, the setup wizard and
// configuration summaries.
type Field struct {
	Name        string
	Required    bool
	Default     string
	Description string
	Validate    func(string) error
}

func validator[T any](parse func(string) (T, error)) func(string) error {
	return func(s string) error {
		_, err := parse(s)
		return err
	}
}

// Fields returns the input table in resolution order.
func Fields() []Field {
	return []Field{
		{KeyInterfaceLAN, true, "", "LAN network interface", validator(ParseInterface)},
		{KeyInterfaceWAN, true, "", "WAN network interface", validator(ParseInterface)},
		{KeySubnetLAN, true, "", "LAN subnet in CIDR notation", validator(ParseSubnet)},
		{KeyIcmpAcceptLAN, false, DefaultIcmpAcceptLAN.String(), "ICMP types accepted from the LAN", validator(ParseIcmpTypeList)},
		{KeyIcmpAcceptWAN, false, DefaultIcmpAcceptWAN.String(), "ICMP types accepted from the WAN", validator(ParseIcmpTypeList)},
		{KeyTCPAcceptLAN, false, DefaultTCPAcceptLAN.String(), "TCP ports open to the LAN", validator(ParsePortList)},
		{KeyUDPAcceptLAN, false, DefaultPortList.String(), "UDP ports open to the LAN", validator(ParsePortList)},
		{KeyTCPAcceptWAN, false, DefaultPortList.String(), "TCP ports open to the WAN", validator(ParsePortList)},
		{KeyUDPAcceptWAN, false, DefaultPortList.String(), "UDP ports open to the WAN", validator(ParsePortList)},
		{KeyTCPForwardLAN, false, DefaultForwardRouteList.String(), "TCP forwards from the LAN (port:ip:port, ...)", validator(ParseForwardRouteList)},
		{KeyUDPForwardLAN, false, DefaultForwardRouteList.String(), "UDP forwards from the LAN (port:ip:port, ...)", validator(ParseForwardRouteList)},
		{KeyTCPForwardWAN, false, DefaultForwardRouteList.String(), "TCP forwards from the WAN (port:ip:port, ...)", validator(ParseForwardRouteList)},
		{KeyUDPForwardWAN, false, DefaultForwardRouteList.String(), "UDP forwards from the WAN (port:ip:port, ...)", validator(ParseForwardRouteList)},
		{KeyChainInputPolicy, false, DefaultChainInputPolicy.String(), "input chain policy", validator(ParseChainPolicy)},
		{KeyChainForwardPolicy, false, DefaultChainForwardPolicy.String(), "forward chain policy", validator(ParseChainPolicy)},
		{KeyChainOutputPolicy, false, DefaultChainOutputPolicy.String(), "output chain policy", validator(ParseChainPolicy)},
	}
}

// FieldNames returns the names of all inputs in resolution order.
func FieldNames() []string {
	fields := Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

// LookupField returns the field with the given name.
func LookupField(name string) (Field, bool) {
	for _, f := range Fields() {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Source reports where a field's value comes from: "input" or "default".
// Required fields that are absent report "missing".
func (f Field) Source(in Inputs) string {
	if _, ok := in.Lookup(f.Name); ok {
		return "input"
	}
	if f.Required {
		return "missing"
	}
	return "default"
}
