package filter

import (
	"strings"

	"github.com/pkg/errors"
	"gitlab.com/fetchk/fetchk"
	"golang.org/x/net/publicsuffix"
)

// DomainMatcher puts a single domain always in scope. Matching is a case
// insensitive equality on the host. Subdomains only match when
// IncludeSubdomains is set, it is never inferred from the domain.
type DomainMatcher struct {
	domain            string
	includeSubdomains bool
}

// NewDomainMatcher for exact host matches
func NewDomainMatcher(domain string) DomainMatcher {
	return DomainMatcher{domain: normalizeDomain(domain)}
}

// NewSubdomainMatcher matches domain and any host below it. Domains that are
// public suffixes (com, co.uk, github.io) are refused.
func NewSubdomainMatcher(domain string) (DomainMatcher, error) {
	d := normalizeDomain(domain)
	if isPublicSuffix(d) {
		return DomainMatcher{}, errors.Wrapf(fetchk.ErrPublicSuffix, "always in scope domain %q", domain)
	}
	return DomainMatcher{domain: d, includeSubdomains: true}, nil
}

// NewDomainMatchers from config entries
func NewDomainMatchers(domains []fetchk.AlwaysInScopeDomain) ([]DomainMatcher, error) {
	matchers := make([]DomainMatcher, 0, len(domains))
	for _, d := range domains {
		if !d.IncludeSubdomains {
			matchers = append(matchers, NewDomainMatcher(d.Domain))
			continue
		}
		m, err := NewSubdomainMatcher(d.Domain)
		if err != nil {
			return nil, err
		}
		matchers = append(matchers, m)
	}
	return matchers, nil
}

// Domain this matcher was created for
func (m DomainMatcher) Domain() string {
	return m.domain
}

// IncludesSubdomains reports the subdomain policy
func (m DomainMatcher) IncludesSubdomains() bool {
	return m.includeSubdomains
}

// Matches the host of a uri
func (m DomainMatcher) Matches(host string) bool {
	if m.domain == "" {
		return false
	}
	host = normalizeDomain(host)
	if host == m.domain {
		return true
	}
	return m.includeSubdomains && strings.HasSuffix(host, "."+m.domain)
}

func normalizeDomain(domain string) string {
	return strings.ToLower(domain)
}

func isPublicSuffix(domain string) bool {
	if domain == "" {
		return true
	}
	suffix, icann := publicsuffix.PublicSuffix(domain)
	if suffix != domain {
		return false
	}
	// the default "*" rule makes every unknown single label a suffix (localhost, intranet names)
	return icann || strings.Contains(domain, ".")
}
