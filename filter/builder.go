package filter

import (
	"reflect"

	uuid "github.com/satori/go.uuid"
	"gitlab.com/fetchk/fetchk"
)

// Builder collects fetch filter configuration during crawl setup. It is not
// safe for concurrent use. Build seals it, after which every mutator
// returns fetchk.ErrSealed. On error no configuration is changed.
type Builder struct {
	sessionID string
	scope     RuleSet
	domains   []DomainMatcher
	exclude   RuleSet
	context   fetchk.ScanContext
	sealed    bool
}

// NewBuilder for a new crawl session
func NewBuilder() *Builder {
	return &Builder{}
}

// SetSessionID overrides the generated crawl session id. Ids may not
// contain ':'.
func (b *Builder) SetSessionID(id string) error {
	if b.sealed {
		return fetchk.ErrSealed
	}
	if err := fetchk.ValidateSessionID(id); err != nil {
		return err
	}
	b.sessionID = id
	return nil
}

// AddScopeRule compiles pattern and adds it to the scope rules. A pattern
// that does not compile is returned as a *fetchk.InvalidPatternError.
func (b *Builder) AddScopeRule(pattern string) error {
	if b.sealed {
		return fetchk.ErrSealed
	}

	re, err := CompileRule(pattern)
	if err != nil {
		return err
	}
	b.scope = b.scope.with(re)
	return nil
}

// AddScopeRules adds all patterns or none, every invalid pattern is
// reported in the returned fetchk.PatternErrors
func (b *Builder) AddScopeRules(patterns []string) error {
	if b.sealed {
		return fetchk.ErrSealed
	}

	rules, err := NewRuleSet(patterns)
	if err != nil {
		return err
	}
	b.scope = b.scope.union(rules)
	return nil
}

// SetExcludeRules replaces every exclude rule. An empty slice clears them.
func (b *Builder) SetExcludeRules(patterns []string) error {
	if b.sealed {
		return fetchk.ErrSealed
	}

	rules, err := NewRuleSet(patterns)
	if err != nil {
		return err
	}
	b.exclude = rules
	return nil
}

// AddExcludeRules is SetExcludeRules, the whole set is replaced
func (b *Builder) AddExcludeRules(patterns []string) error {
	return b.SetExcludeRules(patterns)
}

// SetDomainsAlwaysInScope replaces the always in scope domains. An empty
// slice clears them.
func (b *Builder) SetDomainsAlwaysInScope(domains []DomainMatcher) error {
	if b.sealed {
		return fetchk.ErrSealed
	}

	b.domains = make([]DomainMatcher, len(domains))
	copy(b.domains, domains)
	return nil
}

// SetScanContext assigns the scan context, nil clears it. While a context
// is set it replaces scope rules and always in scope domains entirely.
// A non nil interface holding a nil pointer or func returns
// fetchk.ErrNilContext.
func (b *Builder) SetScanContext(ctx fetchk.ScanContext) error {
	if b.sealed {
		return fetchk.ErrSealed
	}
	if isNilValue(ctx) {
		return fetchk.ErrNilContext
	}
	b.context = ctx
	return nil
}

// Sealed returns true once Build has been called
func (b *Builder) Sealed() bool {
	return b.sealed
}

// Build seals the builder and returns the immutable filter
func (b *Builder) Build() (*FetchFilter, error) {
	if b.sealed {
		return nil, fetchk.ErrSealed
	}
	b.sealed = true

	if b.sessionID == "" {
		b.sessionID = uuid.NewV4().String()
	}

	f := &FetchFilter{
		sessionID: b.sessionID,
		exclude:   b.exclude,
	}

	if b.context != nil {
		f.scope = ContextScope{Context: b.context}
	} else {
		domains := make([]DomainMatcher, len(b.domains))
		copy(domains, b.domains)
		f.scope = RuleScope{Rules: b.scope, Domains: domains}
	}
	return f, nil
}

func isNilValue(ctx fetchk.ScanContext) bool {
	if ctx == nil {
		return false
	}
	rv := reflect.ValueOf(ctx)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
