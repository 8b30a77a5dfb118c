package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// resty keeps a cookie jar per client, so the editor session cookie set by
// POST /login is sent back on every later request.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8080", 10*time.Second)
//	resp, err := client.R().Get("/ping")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient with the given base URL and
// per-request timeout. A zero timeout leaves resty's default in place.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and cookie jar.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().SetBaseURL(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
