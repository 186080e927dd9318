package models

import "evalgo.org/archium/pkg/urlutil"

// Defaults applied when a health check is added without explicit
// timing.
const (
	DefaultHealthCheckIntervalSeconds = 60
	DefaultHealthCheckTimeoutMillis   = 0
)

// HTTPHealthCheck describes an HTTP endpoint that can be polled to
// determine whether a container instance is healthy. Values are
// immutable once constructed; two health checks are equal when all
// their fields are equal.
type HTTPHealthCheck struct {
	// Name is the human-readable health check name
	Name string `json:"name"`

	// URL is the endpoint to poll
	URL string `json:"url"`

	// Interval is the polling interval, in seconds
	Interval int `json:"interval"`

	// Timeout is the request timeout, in milliseconds
	Timeout int64 `json:"timeout"`
}

// NewHTTPHealthCheck validates the given values and constructs a health
// check. Each violated constraint (empty name, empty URL, malformed
// URL, negative interval, negative timeout) is reported as a distinct
// ArgumentError.
func NewHTTPHealthCheck(name, rawURL string, intervalSeconds int, timeoutMillis int64) (HTTPHealthCheck, error) {
	switch {
	case isBlank(name):
		return HTTPHealthCheck{}, argumentErrorf("the health check name must not be empty")
	case isBlank(rawURL):
		return HTTPHealthCheck{}, argumentErrorf("the health check URL must not be empty")
	case !urlutil.IsURL(rawURL):
		return HTTPHealthCheck{}, argumentErrorf("%s is not a valid URL", rawURL)
	case intervalSeconds < 0:
		return HTTPHealthCheck{}, argumentErrorf("the polling interval must be zero or a positive integer")
	case timeoutMillis < 0:
		return HTTPHealthCheck{}, argumentErrorf("the timeout must be zero or a positive integer")
	}

	return HTTPHealthCheck{
		Name:     name,
		URL:      rawURL,
		Interval: intervalSeconds,
		Timeout:  timeoutMillis,
	}, nil
}
