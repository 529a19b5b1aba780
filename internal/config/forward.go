package config

import (
	"fmt"
	"net/netip"
	"strings"

	"nifty-filter/internal/errors"
	"nifty-filter/internal/validation"
)

// ForwardRoute is a port forward written as incoming_port:destination_ip:destination_port.
type ForwardRoute struct {
	incomingPort    Port
	destinationIP   netip.Addr
	destinationPort Port
}

// ParseForwardRoute parses "8080:192.168.1.100:80". All three parts are required.
func ParseForwardRoute(s string) (ForwardRoute, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return ForwardRoute{}, errors.Errorf(errors.KindValidation,
			"invalid forward route: %q (expected incoming_port:destination_ip:destination_port)", s)
	}

	incoming, err := ParsePort(parts[0])
	if err != nil {
		return ForwardRoute{}, errors.Wrapf(err, errors.KindValidation, "invalid forward route %q: incoming port", s)
	}
	ip, err := validation.ParseIP(parts[1])
	if err != nil {
		return ForwardRoute{}, errors.Wrapf(err, errors.KindValidation, "invalid forward route %q: destination", s)
	}
	dest, err := ParsePort(parts[2])
	if err != nil {
		return ForwardRoute{}, errors.Wrapf(err, errors.KindValidation, "invalid forward route %q: destination port", s)
	}

	return ForwardRoute{
		incomingPort:    incoming,
		destinationIP:   ip,
		destinationPort: dest,
	}, nil
}

// IncomingPort is the port traffic arrives on.
func (r ForwardRoute) IncomingPort() Port { return r.incomingPort }

// DestinationIP is the host traffic is forwarded to.
func (r ForwardRoute) DestinationIP() netip.Addr { return r.destinationIP }

// DestinationPort is the port on the destination host.
func (r ForwardRoute) DestinationPort() Port { return r.destinationPort }

func (r ForwardRoute) String() string {
	return fmt.Sprintf("%s:%s:%s", r.incomingPort, r.destinationIP, r.destinationPort)
}

// ForwardRouteList is an ordered, comma separated list of forward routes.
type ForwardRouteList struct {
	routes []ForwardRoute
}

// ParseForwardRouteList parses "8080:192.168.1.100:80, 8443:192.168.1.101:443".
// The empty string is an empty list; one invalid route fails the list.
func ParseForwardRouteList(s string) (ForwardRouteList, error) {
	routes, err := parseList(s, ParseForwardRoute)
	if err != nil {
		return ForwardRouteList{}, err
	}
	return ForwardRouteList{routes: routes}, nil
}

// Routes returns a copy of the routes in order.
func (l ForwardRouteList) Routes() []ForwardRoute { return cloneList(l.routes) }

// Len returns the number of routes.
func (l ForwardRouteList) Len() int { return len(l.routes) }

func (l ForwardRouteList) String() string { return joinList(l.routes) }
