package config

import "strings"

// IcmpType is one of the ICMP message types that can be accepted per zone.
type IcmpType uint8

const (
	IcmpEchoReply IcmpType = iota
	IcmpDestinationUnreachable
	IcmpSourceQuench
	IcmpRedirect
	IcmpEchoRequest
	IcmpTimeExceeded
	IcmpParameterProblem
	IcmpTimestampRequest
	IcmpTimestampReply
	IcmpInformationRequest
	IcmpInformationReply
	IcmpAddressMaskRequest
	IcmpAddressMaskReply
)

var icmpTypes = enumTable[IcmpType]{
	what: "ICMP type",
	names: []string{
		"echo-reply",
		"destination-unreachable",
		"source-quench",
		"redirect",
		"echo-request",
		"time-exceeded",
		"parameter-problem",
		"timestamp-request",
		"timestamp-reply",
		"information-request",
		"information-reply",
		"address-mask-request",
		"address-mask-reply",
	},
}

// nft spells these two differently from their kebab-case names.
var icmpNftKeywords = map[IcmpType]string{
	IcmpInformationRequest: "info-request",
	IcmpInformationReply:   "info-reply",
}

// ParseIcmpType parses a kebab-case ICMP type name, ignoring case.
func ParseIcmpType(s string) (IcmpType, error) {
	return icmpTypes.parse(s)
}

// IcmpTypeNames returns every legal ICMP type name.
func IcmpTypeNames() []string { return icmpTypes.legal() }

// AllIcmpTypes returns every ICMP type in declaration order.
func AllIcmpTypes() []IcmpType { return icmpTypes.all() }

func (t IcmpType) String() string { return icmpTypes.name(t) }

// NftKeyword returns the name nftables uses for the type.
func (t IcmpType) NftKeyword() string {
	if kw, ok := icmpNftKeywords[t]; ok {
		return kw
	}
	return t.String()
}

// IcmpTypeList is an ordered list of ICMP types, e.g. "echo-request, echo-reply".
type IcmpTypeList struct {
	types []IcmpType
}

// ParseIcmpTypeList parses a comma separated list of ICMP type names. The
// empty string is an empty list.
func ParseIcmpTypeList(s string) (IcmpTypeList, error) {
	types, err := parseList(s, ParseIcmpType)
	if err != nil {
		return IcmpTypeList{}, err
	}
	return IcmpTypeList{types: types}, nil
}

// Types returns a copy of the types in order.
func (l IcmpTypeList) Types() []IcmpType { return cloneList(l.types) }

// Len returns the number of types.
func (l IcmpTypeList) Len() int { return len(l.types) }

func (l IcmpTypeList) String() string { return joinList(l.types) }

// NftSet renders the list with nftables keywords, e.g. "echo-request, info-request".
func (l IcmpTypeList) NftSet() string {
	parts := make([]string, len(l.types))
	for i, t := range l.types {
		parts[i] = t.NftKeyword()
	}
	return strings.Join(parts, listSeparator)
}
