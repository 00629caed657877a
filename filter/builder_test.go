package filter_test

import (
	"testing"

	"github.com/pkg/errors"
	"gitlab.com/fetchk/fetchk"
	"gitlab.com/fetchk/filter"
	"gitlab.com/fetchk/mock"
)

func TestInvalidScopeRule(t *testing.T) {
	b := filter.NewBuilder()
	b.AddScopeRule("example.com")

	err := b.AddScopeRule("example(")
	if err == nil {
		t.Fatalf("expected error for invalid pattern")
	}

	var patternErr *fetchk.InvalidPatternError
	if !errors.As(err, &patternErr) {
		t.Fatalf("expected InvalidPatternError got %T\n", err)
	}
	if patternErr.Pattern != "example(" {
		t.Fatalf("error should name the pattern got %s\n", patternErr.Pattern)
	}

	f := testBuild(t, b)
	rules := f.Scope().(filter.RuleScope).Rules
	if rules.Len() != 1 {
		t.Fatalf("failed rule should not be added, have %d rules\n", rules.Len())
	}
}

func TestInvalidExcludeRulesAggregated(t *testing.T) {
	b := filter.NewBuilder()
	b.AddScopeRule("example.com")
	if err := b.SetExcludeRules([]string{"logout"}); err != nil {
		t.Fatalf("error setting exclude rules: %s\n", err)
	}

	err := b.SetExcludeRules([]string{"[bad", "signout", "(also"})
	if err == nil {
		t.Fatalf("expected error for invalid patterns")
	}

	var patternErrs fetchk.PatternErrors
	if !errors.As(err, &patternErrs) {
		t.Fatalf("expected PatternErrors got %T\n", err)
	}
	patterns := patternErrs.Patterns()
	if len(patterns) != 2 || patterns[0] != "[bad" || patterns[1] != "(also" {
		t.Fatalf("expected both invalid patterns got %v\n", patterns)
	}

	f := testBuild(t, b)
	testCheck(t, f, "http://example.com/logout", fetchk.UserRules)
	testCheck(t, f, "http://example.com/signout", fetchk.Valid)
}

func TestAddScopeRulesAllOrNothing(t *testing.T) {
	b := filter.NewBuilder()
	if err := b.AddScopeRules([]string{"example.com", "*bad"}); err == nil {
		t.Fatalf("expected error for invalid pattern")
	}
	if err := b.AddScopeRules([]string{"example.com", "other.com"}); err != nil {
		t.Fatalf("error adding scope rules: %s\n", err)
	}

	f := testBuild(t, b)
	if n := f.Scope().(filter.RuleScope).Rules.Len(); n != 2 {
		t.Fatalf("expected 2 scope rules got %d\n", n)
	}
}

func TestSealed(t *testing.T) {
	b := filter.NewBuilder()
	b.AddScopeRule("example.com")
	f := testBuild(t, b)

	if !b.Sealed() {
		t.Fatalf("builder should be sealed after build")
	}

	var errs = []error{
		b.AddScopeRule("other.com"),
		b.AddScopeRules([]string{"other.com"}),
		b.SetExcludeRules([]string{"example"}),
		b.AddExcludeRules([]string{"example"}),
		b.SetDomainsAlwaysInScope([]filter.DomainMatcher{filter.NewDomainMatcher("other.com")}),
		b.SetScanContext(mock.MakeMockScanContext(false)),
		b.SetSessionID("abc"),
	}
	for i, err := range errs {
		if !errors.Is(err, fetchk.ErrSealed) {
			t.Fatalf("mutator %d should fail with ErrSealed got %v\n", i, err)
		}
	}

	if _, err := b.Build(); !errors.Is(err, fetchk.ErrSealed) {
		t.Fatalf("second build should fail with ErrSealed got %v\n", err)
	}

	testCheck(t, f, "http://example.com", fetchk.Valid)
	testCheck(t, f, "http://other.com", fetchk.OutOfScope)
}

func TestDomainsCopiedOnSet(t *testing.T) {
	domains := []filter.DomainMatcher{filter.NewDomainMatcher("example.com")}
	b := filter.NewBuilder()
	b.SetDomainsAlwaysInScope(domains)
	domains[0] = filter.NewDomainMatcher("other.com")
	f := testBuild(t, b)

	testCheck(t, f, "http://example.com", fetchk.Valid)
	testCheck(t, f, "http://other.com", fetchk.OutOfScope)
}

func TestClearDomains(t *testing.T) {
	b := filter.NewBuilder()
	b.SetDomainsAlwaysInScope([]filter.DomainMatcher{filter.NewDomainMatcher("example.com")})
	b.SetDomainsAlwaysInScope(nil)
	testCheck(t, testBuild(t, b), "http://example.com", fetchk.OutOfScope)
}

func TestSessionID(t *testing.T) {
	f1 := testBuild(t, filter.NewBuilder())
	f2 := testBuild(t, filter.NewBuilder())
	if f1.SessionID() == "" || f1.SessionID() == f2.SessionID() {
		t.Fatalf("expected unique generated session ids got %s %s\n", f1.SessionID(), f2.SessionID())
	}

	b := filter.NewBuilder()
	b.SetSessionID("crawl-1")
	if f := testBuild(t, b); f.SessionID() != "crawl-1" {
		t.Fatalf("expected crawl-1 got %s\n", f.SessionID())
	}
}

func TestTypedNilScanContext(t *testing.T) {
	b := filter.NewBuilder()
	b.AddScopeRule("example.com")

	var hostContext *filter.HostContext
	if err := b.SetScanContext(hostContext); !errors.Is(err, fetchk.ErrNilContext) {
		t.Fatalf("expected ErrNilContext for nil *HostContext got %v\n", err)
	}
	var fn fetchk.ScanContextFunc
	if err := b.SetScanContext(fn); !errors.Is(err, fetchk.ErrNilContext) {
		t.Fatalf("expected ErrNilContext for nil ScanContextFunc got %v\n", err)
	}

	f := testBuild(t, b)
	if _, ok := f.Scope().(filter.RuleScope); !ok {
		t.Fatalf("rejected context should leave rule scope got %T\n", f.Scope())
	}
	if ret := f.CheckString("http://example.com"); ret != fetchk.Valid {
		t.Fatalf("expected valid got %v\n", ret)
	}
}

func TestSessionIDWithSeparator(t *testing.T) {
	b := filter.NewBuilder()
	if err := b.SetSessionID("a:b"); !errors.Is(err, fetchk.ErrInvalidSessionID) {
		t.Fatalf("expected ErrInvalidSessionID got %v\n", err)
	}

	f := testBuild(t, b)
	if f.SessionID() == "a:b" {
		t.Fatalf("rejected session id should not be used")
	}
}
