package filter

import (
	"sync/atomic"

	"gitlab.com/fetchk/fetchk"
)

// Stats counts decisions per status, safe for concurrent use
type Stats struct {
	counts [fetchk.UserRules + 1]int64
}

// NewStats counter
func NewStats() *Stats {
	return &Stats{}
}

// Record a decision, it never fails
func (s *Stats) Record(uri string, status fetchk.FetchStatus) error {
	if int(status) <= 0 || int(status) >= len(s.counts) {
		return nil
	}
	atomic.AddInt64(&s.counts[status], 1)
	return nil
}

// Count of decisions with status
func (s *Stats) Count(status fetchk.FetchStatus) int64 {
	if int(status) <= 0 || int(status) >= len(s.counts) {
		return 0
	}
	return atomic.LoadInt64(&s.counts[status])
}

// Total decisions recorded
func (s *Stats) Total() int64 {
	var total int64
	for _, status := range fetchk.FetchStatuses {
		total += s.Count(status)
	}
	return total
}

// Snapshot of every count keyed by status
func (s *Stats) Snapshot() map[fetchk.FetchStatus]int64 {
	snap := make(map[fetchk.FetchStatus]int64, len(fetchk.FetchStatuses))
	for _, status := range fetchk.FetchStatuses {
		snap[status] = s.Count(status)
	}
	return snap
}
