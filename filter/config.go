package filter

import (
	"net/url"
	"regexp"

	"github.com/pkg/errors"
	"gitlab.com/fetchk/fetchk"
)

// FromConfig builds a sealed filter for cfg. Without scope rules or always
// in scope domains the host of cfg.URL is always in scope.
func FromConfig(cfg *fetchk.Config) (*FetchFilter, error) {
	b := NewBuilder()
	if cfg.SessionID != "" {
		if err := b.SetSessionID(cfg.SessionID); err != nil {
			return nil, err
		}
	}

	var target *url.URL
	if cfg.URL != "" {
		var err error
		target, err = url.Parse(cfg.URL)
		if err != nil {
			return nil, errors.Wrap(err, "parse target url")
		}
	}

	if err := b.AddScopeRules(cfg.ScopeRegexes); err != nil {
		return nil, errors.Wrap(err, "scope regexes")
	}

	if err := b.SetExcludeRules(cfg.ExcludeRegexes); err != nil {
		return nil, errors.Wrap(err, "exclude regexes")
	}

	domains, err := NewDomainMatchers(cfg.AlwaysInScope)
	if err != nil {
		return nil, err
	}
	if len(domains) == 0 && len(cfg.ScopeRegexes) == 0 && target != nil && target.Hostname() != "" {
		domains = append(domains, NewDomainMatcher(target.Hostname()))
	}
	if err := b.SetDomainsAlwaysInScope(domains); err != nil {
		return nil, err
	}

	if cfg.UseContext {
		scanContext := NewHostContext(target)
		scanContext.AddHosts(cfg.AllowedHosts, AllowedHost)
		scanContext.AddHosts(cfg.IgnoredHosts, IgnoredHost)
		scanContext.AddHosts(cfg.ExcludedHosts, ExcludedHost)
		scanContext.AddExcludedPaths(cfg.ExcludedPaths)
		if err := b.SetScanContext(scanContext); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

// ScopeRegexForHost returns a scope rule admitting any http(s) uri on host
func ScopeRegexForHost(host string) string {
	return `^https?://` + regexp.QuoteMeta(host) + `(:\d+)?(/|$|\?|#)`
}
