package client

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/tollgate-go/internal/logger"
	"github.com/MKhiriev/tollgate-go/internal/utils"
	"github.com/go-resty/resty/v2"
)

// newTransport builds the HTTP client for c. The pre-request hook resolves
// the base URL and API key for each request, so rotated keys and moving
// endpoints are picked up without rebuilding the client.
func newTransport(c *Client, log *logger.Logger) *utils.HTTPClient {
	cfg := utils.HTTPClientConfig{
		BaseURL: c.baseURLResolver.BaseURL(),
		Timeout: c.connectionTimeout,
	}
	if c.proxy != nil {
		cfg.ProxyURL = c.proxy.URL()
	}

	transport := utils.NewHTTPClient(cfg)
	transport.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.URL = absoluteURL(c.baseURLResolver.BaseURL(), req.URL)

		key, err := c.apiKeyResolver.ResolveAPIKey(req.Context())
		if err != nil {
			return fmt.Errorf("resolve api key: %w", err)
		}
		if err = c.authenticator.Authenticate(req, key); err != nil {
			return fmt.Errorf("authenticate request: %w", err)
		}

		requestID := utils.NewRequestID()
		req.SetHeader(utils.RequestIDHeader, requestID)

		log.Debug().
			Str("method", req.Method).
			Str("url", req.URL).
			Str("request_id", requestID).
			Msg("sending request")
		return nil
	})

	return transport
}

func absoluteURL(baseURL, path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if path == "" {
		return baseURL
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(path, "/")
}

// CheckResponse maps a non-2xx response onto the package's status errors.
func CheckResponse(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrTooManyRequests, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}
