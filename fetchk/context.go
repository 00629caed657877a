package fetchk

// ScanContext is an externally owned scope oracle. Implementations may be
// expensive or block, the filter calls it once per check and never caches
// the answer.
type ScanContext interface {
	IsInContext(uri string) bool
}

// ScanContextFunc adapts a plain function to a ScanContext
type ScanContextFunc func(uri string) bool

// IsInContext calls f(uri)
func (f ScanContextFunc) IsInContext(uri string) bool {
	return f(uri)
}
