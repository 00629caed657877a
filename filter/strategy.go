package filter

import (
	"gitlab.com/fetchk/fetchk"
)

// ScopeStrategy selects how scope admission is decided. It is sealed, the
// only implementations are ContextScope and RuleScope.
type ScopeStrategy interface {
	scopeStrategy()
}

// ContextScope defers scope membership to an external scan context
type ContextScope struct {
	Context fetchk.ScanContext
}

func (ContextScope) scopeStrategy() {}

// RuleScope admits uris matching a scope rule or an always in scope domain
type RuleScope struct {
	Rules   RuleSet
	Domains []DomainMatcher
}

func (RuleScope) scopeStrategy() {}

// InScope returns true if the uri string matches a scope rule or
// the host is one of the always in scope domains
func (s RuleScope) InScope(uri, host string) bool {
	if s.Rules.Matches(uri) {
		return true
	}

	for _, d := range s.Domains {
		if d.Matches(host) {
			return true
		}
	}
	return false
}
