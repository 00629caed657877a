package filter

import (
	"net/url"

	"github.com/rs/zerolog/log"
	"gitlab.com/fetchk/fetchk"
)

// RecordingFilter reports every decision of the wrapped filter to recorders.
// Recorder failures are logged and never change a verdict.
type RecordingFilter struct {
	filter    fetchk.FetchFilterer
	recorders []fetchk.Recorder
}

// NewRecordingFilter wraps filter
func NewRecordingFilter(filter fetchk.FetchFilterer, recorders ...fetchk.Recorder) *RecordingFilter {
	return &RecordingFilter{filter: filter, recorders: recorders}
}

// CheckFilter delegates and records the result
func (r *RecordingFilter) CheckFilter(uri *url.URL) fetchk.FetchStatus {
	status := r.filter.CheckFilter(uri)

	raw := ""
	if uri != nil {
		raw = uri.String()
	}
	for _, rec := range r.recorders {
		if err := rec.Record(raw, status); err != nil {
			log.Warn().Err(err).Str("uri", raw).Str("status", status.String()).Msg("failed to record fetch decision")
		}
	}
	return status
}
