package fetchk

import "github.com/pkg/errors"

// FetchStatus is the verdict of a fetch filter for a single URI
type FetchStatus int8

const (
	// Valid URIs may be fetched
	Valid FetchStatus = iota + 1
	// OutOfScope matched neither a scope rule nor an always in scope domain
	OutOfScope
	// OutOfContext was rejected by the scan context
	OutOfContext
	// IllegalProtocol means the scheme was not http or https
	IllegalProtocol
	// UserRules was admitted but then excluded by an analyst rule
	UserRules
)

// FetchStatusMap for printing and parsing statuses
var FetchStatusMap = map[FetchStatus]string{
	Valid:           "VALID",
	OutOfScope:      "OUT_OF_SCOPE",
	OutOfContext:    "OUT_OF_CONTEXT",
	IllegalProtocol: "ILLEGAL_PROTOCOL",
	UserRules:       "USER_RULES",
}

// FetchStatuses in declaration order
var FetchStatuses = []FetchStatus{Valid, OutOfScope, OutOfContext, IllegalProtocol, UserRules}

func (s FetchStatus) String() string {
	if str, ok := FetchStatusMap[s]; ok {
		return str
	}
	return "INVALID"
}

// IsValid reports whether the status allows fetching the URI
func (s FetchStatus) IsValid() bool {
	return s == Valid
}

// MarshalText implements encoding.TextMarshaler
func (s FetchStatus) MarshalText() ([]byte, error) {
	if _, ok := FetchStatusMap[s]; !ok {
		return nil, errors.Errorf("unknown fetch status %d", s)
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *FetchStatus) UnmarshalText(text []byte) error {
	status, err := ParseFetchStatus(string(text))
	if err != nil {
		return err
	}
	*s = status
	return nil
}

// ParseFetchStatus from its string form
func ParseFetchStatus(str string) (FetchStatus, error) {
	for status, name := range FetchStatusMap {
		if name == str {
			return status, nil
		}
	}
	return 0, errors.Errorf("unknown fetch status %q", str)
}
