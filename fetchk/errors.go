package fetchk

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrSealed is returned when a filter builder is mutated after Build
	ErrSealed = errors.New("filter configuration is sealed")
	// ErrPublicSuffix is returned when subdomains of a public suffix would be put in scope
	ErrPublicSuffix = errors.New("domain is a public suffix")
	// ErrNilContext is returned for a scan context holding a nil pointer or func
	ErrNilContext = errors.New("scan context is a nil value")
	// ErrInvalidSessionID is returned for session ids that can not be used as a store key
	ErrInvalidSessionID = errors.New("invalid session id")
)

// ValidateSessionID rejects ids containing ':', the separator of store keys
func ValidateSessionID(id string) error {
	if strings.Contains(id, ":") {
		return errors.Wrapf(ErrInvalidSessionID, "%q contains ':'", id)
	}
	return nil
}

// InvalidPatternError is returned when a scope or exclude rule does not compile
type InvalidPatternError struct {
	Pattern string
	Err     error
}

func (e *InvalidPatternError) Error() string {
	if e.Err == nil {
		return "invalid pattern " + strconv.Quote(e.Pattern)
	}
	return "invalid pattern " + strconv.Quote(e.Pattern) + ": " + e.Err.Error()
}

// Unwrap returns the regexp compile error
func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}

// PatternErrors collects every invalid pattern of a single mutation
type PatternErrors []*InvalidPatternError

func (e PatternErrors) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return "invalid patterns: " + strings.Join(msgs, "; ")
}

// Patterns that failed to compile
func (e PatternErrors) Patterns() []string {
	patterns := make([]string, len(e))
	for i, err := range e {
		patterns[i] = err.Pattern
	}
	return patterns
}
