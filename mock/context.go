package mock

import "sync"

// ScanContext answers IsInContext with IsInContextFn
type ScanContext struct {
	IsInContextFn func(uri string) bool

	mu                sync.Mutex
	IsInContextCalled bool
	Calls             int64
	LastURI           string
}

// IsInContext records the call then calls IsInContextFn
func (c *ScanContext) IsInContext(uri string) bool {
	c.mu.Lock()
	c.IsInContextCalled = true
	c.Calls++
	c.LastURI = uri
	c.mu.Unlock()
	return c.IsInContextFn(uri)
}

// CallCount safe to read while checks are running
func (c *ScanContext) CallCount() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Calls
}

// MakeMockScanContext always returning inContext
func MakeMockScanContext(inContext bool) *ScanContext {
	c := &ScanContext{}
	c.IsInContextFn = func(uri string) bool {
		return inContext
	}
	return c
}
