package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around resty.Client shared by every outbound
// integration (hosted backend, storage API, text generation).
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent client for baseURL. A zero timeout
// leaves resty's default in place.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
