package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions configures [NewHTTPClient]. Zero values keep resty's
// defaults: no base url, no proxy, no timeout.
type HTTPClientOptions struct {
	BaseURL string
	Proxy   string
	Timeout time.Duration
}

// NewHTTPClient creates and returns a new HTTPClient instance. Each call
// returns an independent client with its own connection pool.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientOptions{BaseURL: "http://rhoconnect.local"})
//	resp, err := client.R().
//	    SetHeader("Content-Type", "application/json").
//	    Post("/api/source/push_objects")
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	client := resty.New()

	if opts.BaseURL != "" {
		client.SetBaseURL(opts.BaseURL)
	}
	if opts.Proxy != "" {
		client.SetProxy(opts.Proxy)
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}

	return &HTTPClient{Client: client}
}
