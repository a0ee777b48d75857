package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent is sent with every request issued through [HTTPClient].
const UserAgent = "calm-journal-client"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient with its own connection pool.
// A positive timeout bounds every request; zero or negative leaves resty's
// default (no timeout).
//
// Example usage:
//
//	client := utils.NewHTTPClient(10 * time.Second)
//	resp, err := client.R().Get("https://example.com")
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	c := resty.New().SetHeader("User-Agent", UserAgent)
	if timeout > 0 {
		c.SetTimeout(timeout)
	}
	return &HTTPClient{Client: c}
}
