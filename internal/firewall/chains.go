package firewall

// ChainSummary describes one chain of the live ruleset.
type ChainSummary struct {
	Table  string `json:"table" yaml:"table"`
	Family string `json:"family" yaml:"family"`
	Name   string `json:"name" yaml:"name"`
	Type   string `json:"type,omitempty" yaml:"type,omitempty"`
	Hook   string `json:"hook,omitempty" yaml:"hook,omitempty"`
	Policy string `json:"policy,omitempty" yaml:"policy,omitempty"`
}

// ChainSource reports the chains of the live ruleset.
type ChainSource interface {
	Chains() ([]ChainSummary, error)
}
