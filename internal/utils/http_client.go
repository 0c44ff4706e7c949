package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// adminUserAgent identifies admin client requests in the server's request log.
const adminUserAgent = "f4f-admin"

// HTTPClient is the resty client the admin client talks to the portal with.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client that sends every request to baseURL, accepts
// JSON and gives up after timeout. A zero timeout means no limit.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", adminUserAgent)

	return &HTTPClient{Client: client}
}
