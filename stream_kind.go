package chirp

import (
	"fmt"
	"net/http"
)

// StreamKind selects one of the fixed streaming endpoints.
type StreamKind int

const (
	StreamUser StreamKind = iota + 1
	StreamSite
	StreamFilter
	StreamSample
	StreamFirehose
)

// Default endpoint URLs by stream kind.
const (
	UserStreamURL     = "https://userstream.twitter.com/1.1/user.json"
	SiteStreamURL     = "https://sitestream.twitter.com/1.1/site.json"
	FilterStreamURL   = "https://stream.twitter.com/1.1/statuses/filter.json"
	SampleStreamURL   = "https://stream.twitter.com/1.1/statuses/sample.json"
	FirehoseStreamURL = "https://stream.twitter.com/1.1/statuses/firehose.json"
)

// URL returns the default endpoint for the stream kind, or "" if unknown.
func (k StreamKind) URL() string {
	switch k {
	case StreamUser:
		return UserStreamURL
	case StreamSite:
		return SiteStreamURL
	case StreamFilter:
		return FilterStreamURL
	case StreamSample:
		return SampleStreamURL
	case StreamFirehose:
		return FirehoseStreamURL
	default:
		return ""
	}
}

// Method returns the HTTP verb used to open the stream. Filter streams carry
// their predicates in a form body and use POST.
func (k StreamKind) Method() string {
	if k == StreamFilter {
		return http.MethodPost
	}
	return http.MethodGet
}

func (k StreamKind) String() string {
	switch k {
	case StreamUser:
		return "user"
	case StreamSite:
		return "site"
	case StreamFilter:
		return "filter"
	case StreamSample:
		return "sample"
	case StreamFirehose:
		return "firehose"
	default:
		return fmt.Sprintf("StreamKind(%d)", int(k))
	}
}

// ParseStreamKind maps a stream name such as "filter" to its StreamKind.
func ParseStreamKind(name string) (StreamKind, error) {
	for _, k := range []StreamKind{StreamUser, StreamSite, StreamFilter, StreamSample, StreamFirehose} {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown stream kind %q: %w", name, ErrValidation)
}
