package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientConfig describes the transport a Tollgate client talks through.
type HTTPClientConfig struct {
	// BaseURL is prefixed to every relative request path.
	BaseURL string
	// Timeout bounds a whole request; zero keeps the resty default.
	Timeout time.Duration
	// ProxyURL routes requests through an HTTP proxy when non-empty.
	ProxyURL string
}

// NewHTTPClient creates an independent resty-backed client for cfg.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientConfig{BaseURL: "https://api.tollgate.io/v1"})
//	resp, err := client.R().Get("/tenants/current")
func NewHTTPClient(cfg HTTPClientConfig) *HTTPClient {
	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetHeader("Accept", "application/json")

	if cfg.Timeout > 0 {
		cli.SetTimeout(cfg.Timeout)
	}
	if cfg.ProxyURL != "" {
		cli.SetProxy(cfg.ProxyURL)
	}

	return &HTTPClient{Client: cli}
}
