// Package config turns named string inputs into a validated router
// configuration.
//
// # Overview
//
// Inputs come from the process environment or a seed file (.env, .hcl,
// .yaml). [Resolve] reads every field of [Fields], parsing each with its
// value type, and collects every failure instead of stopping at the first:
//
//	Inputs → Resolve → *Router
//	              ↘ errors.List (MissingInput, InvalidFormat)
//
// # Value Types
//
//   - [Interface]: a network interface name
//   - [Subnet]: an IPv4 or IPv6 prefix
//   - [Port], [PortList]: ports 1-65535
//   - [IcmpType], [IcmpTypeList]: ICMP type keywords
//   - [ForwardRoute], [ForwardRouteList]: port:ip:port DNAT routes
//   - [ChainPolicy]: accept, drop, reject, continue, return, queue, log
//
// Optional fields take their default only when absent. A value that is
// present and invalid is reported, optional or not.
package config
