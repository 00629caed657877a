package mock

import (
	"sync"

	"gitlab.com/fetchk/fetchk"
)

// Decision seen by a mock Recorder
type Decision struct {
	URI    string
	Status fetchk.FetchStatus
}

// Recorder keeps every recorded decision
type Recorder struct {
	RecordFn     func(uri string, status fetchk.FetchStatus) error
	RecordCalled bool

	mu        sync.Mutex
	Decisions []Decision
}

// Record the decision then call RecordFn
func (r *Recorder) Record(uri string, status fetchk.FetchStatus) error {
	r.mu.Lock()
	r.RecordCalled = true
	r.Decisions = append(r.Decisions, Decision{URI: uri, Status: status})
	r.mu.Unlock()
	return r.RecordFn(uri, status)
}

// MakeMockRecorder that never fails
func MakeMockRecorder() *Recorder {
	r := &Recorder{}
	r.RecordFn = func(uri string, status fetchk.FetchStatus) error {
		return nil
	}
	return r
}
