package filter

import (
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"
	"gitlab.com/fetchk/fetchk"
)

// FetchFilter is the sealed admission policy of one crawl session. It is
// immutable and safe for concurrent CheckFilter calls.
type FetchFilter struct {
	sessionID string
	scope     ScopeStrategy
	exclude   RuleSet
}

// SessionID of the crawl session this filter was built for
func (f *FetchFilter) SessionID() string {
	return f.sessionID
}

// Scope strategy used for admission
func (f *FetchFilter) Scope() ScopeStrategy {
	return f.scope
}

// Excludes returns the user rule patterns
func (f *FetchFilter) Excludes() []string {
	return f.exclude.Patterns()
}

// CheckFilter runs the protocol check, then scope (or context) admission,
// then the user exclusion rules. Later steps only ever downgrade a Valid
// verdict.
func (f *FetchFilter) CheckFilter(uri *url.URL) fetchk.FetchStatus {
	if uri == nil {
		return f.reject("", fetchk.IllegalProtocol)
	}
	raw := uri.String()

	if !isHTTPScheme(uri.Scheme) {
		return f.reject(raw, fetchk.IllegalProtocol)
	}

	switch s := f.scope.(type) {
	case ContextScope:
		if !s.Context.IsInContext(raw) {
			return f.reject(raw, fetchk.OutOfContext)
		}
	case RuleScope:
		if !s.InScope(raw, uri.Hostname()) {
			return f.reject(raw, fetchk.OutOfScope)
		}
	default:
		// a zero FetchFilter has no scope
		return f.reject(raw, fetchk.OutOfScope)
	}

	if f.exclude.Matches(raw) {
		return f.reject(raw, fetchk.UserRules)
	}
	return fetchk.Valid
}

// CheckString parses raw and checks it. URIs that fail to parse can not be
// fetched and are reported as IllegalProtocol.
func (f *FetchFilter) CheckString(raw string) fetchk.FetchStatus {
	uri, err := url.Parse(raw)
	if err != nil {
		log.Debug().Err(err).Str("uri", raw).Msg("failed to parse uri")
		return fetchk.IllegalProtocol
	}
	return f.CheckFilter(uri)
}

func (f *FetchFilter) reject(uri string, status fetchk.FetchStatus) fetchk.FetchStatus {
	log.Debug().Str("session", f.sessionID).Str("uri", uri).Str("status", status.String()).Msg("uri filtered")
	return status
}

func isHTTPScheme(scheme string) bool {
	return strings.EqualFold(scheme, "http") || strings.EqualFold(scheme, "https")
}
