package filter

import (
	"regexp"

	"gitlab.com/fetchk/fetchk"
)

// RuleSet is an ordered list of compiled patterns. A string is a member
// when any pattern matches somewhere in it.
type RuleSet struct {
	patterns []*regexp.Regexp
}

// CompileRule compiles a single scope or exclude pattern
func CompileRule(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &fetchk.InvalidPatternError{Pattern: pattern, Err: err}
	}
	return re, nil
}

// NewRuleSet compiles every pattern. If any fail, all failures are returned
// as fetchk.PatternErrors and the rule set is empty.
func NewRuleSet(patterns []string) (RuleSet, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	var errs fetchk.PatternErrors
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			errs = append(errs, &fetchk.InvalidPatternError{Pattern: pattern, Err: err})
			continue
		}
		compiled = append(compiled, re)
	}

	if len(errs) > 0 {
		return RuleSet{}, errs
	}
	return RuleSet{patterns: compiled}, nil
}

// Matches returns true if any pattern matches s
func (r RuleSet) Matches(s string) bool {
	for _, re := range r.patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// Len of the rule set
func (r RuleSet) Len() int {
	return len(r.patterns)
}

// Patterns returns the source of every compiled pattern
func (r RuleSet) Patterns() []string {
	src := make([]string, len(r.patterns))
	for i, re := range r.patterns {
		src[i] = re.String()
	}
	return src
}

func (r RuleSet) with(re *regexp.Regexp) RuleSet {
	patterns := make([]*regexp.Regexp, len(r.patterns), len(r.patterns)+1)
	copy(patterns, r.patterns)
	return RuleSet{patterns: append(patterns, re)}
}

func (r RuleSet) union(o RuleSet) RuleSet {
	patterns := make([]*regexp.Regexp, 0, len(r.patterns)+len(o.patterns))
	patterns = append(patterns, r.patterns...)
	return RuleSet{patterns: append(patterns, o.patterns...)}
}
