package fetchk

import "net/url"

// FetchFilterer decides whether a discovered URI should be fetched
type FetchFilterer interface {
	CheckFilter(uri *url.URL) FetchStatus
}

// Recorder receives every decision made for crawl statistics/reporting
type Recorder interface {
	Record(uri string, status FetchStatus) error
}
