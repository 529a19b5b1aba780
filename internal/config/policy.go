package config

// ChainPolicy is the verdict applied to packets that reach the end of a chain.
type ChainPolicy uint8

const (
	PolicyAccept ChainPolicy = iota
	PolicyDrop
	PolicyReject
	PolicyContinue
	PolicyReturn
	PolicyQueue
	PolicyLog
)

var chainPolicies = enumTable[ChainPolicy]{
	what:  "chain policy",
	names: []string{"accept", "drop", "reject", "continue", "return", "queue", "log"},
}

// ParseChainPolicy parses a chain policy name, ignoring case.
func ParseChainPolicy(s string) (ChainPolicy, error) {
	return chainPolicies.parse(s)
}

// ChainPolicyNames returns every legal chain policy name.
func ChainPolicyNames() []string { return chainPolicies.legal() }

func (p ChainPolicy) String() string { return chainPolicies.name(p) }

// BasePolicy returns the policy keyword for an nftables base chain.
// Base chains only take accept or drop; anything else drops and relies on
// TerminalRule for the final verdict.
func (p ChainPolicy) BasePolicy() string {
	if p == PolicyAccept {
		return "accept"
	}
	return "drop"
}

// TerminalRule returns the statement appended as the last rule of a chain,
// or "" when the base policy already expresses p.
func (p ChainPolicy) TerminalRule() string {
	switch p {
	case PolicyAccept, PolicyDrop:
		return ""
	case PolicyLog:
		return "log prefix \"nifty-filter: \""
	}
	return p.String()
}
