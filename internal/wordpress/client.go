package wordpress

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
)

const (
	// API namespaces on the remote host.
	fitbodyPath = "/wp-json/fitbody/v1"
	wcPath      = "/wp-json/wc/v3"
	wpPath      = "/wp-json/wp/v2"

	// DefaultLanguage is the storefront's default; the lang query
	// parameter is only sent for the other languages.
	DefaultLanguage = "mk"

	cartTokenHeader = "Cart-Token"
)

// Client talks to the headless WordPress/WooCommerce API. It is the
// single source of truth for catalog, cart, order and dealer data; this
// service never persists any of it.
//
// Requests are routed through a circuit breaker so a dead CMS host
// fails fast instead of pinning every request on the full timeout. No
// retries: a failed request surfaces as an error to the caller.
type Client struct {
	httpClient *http.Client
	baseURL    string
	breaker    *gobreaker.CircuitBreaker[[]byte]
}

// NewClient creates a client for the given base URL, e.g.
// "https://cms.fitbody.mk". The transport is taken as-is so callers can
// instrument it.
func NewClient(baseURL string, transport http.RoundTripper) *Client {
	if transport == nil {
		transport = http.DefaultTransport
	}
	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:    "wordpress",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
	})
	return &Client{
		httpClient: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
		baseURL: strings.TrimSuffix(baseURL, "/"),
		breaker: breaker,
	}
}

// langQuery appends the lang parameter only when the active language
// differs from the default, matching what the backend expects.
func langQuery(q url.Values, lang string) url.Values {
	if lang != "" && lang != DefaultLanguage {
		if q == nil {
			q = url.Values{}
		}
		q.Set("lang", lang)
	}
	return q
}

// do issues one request and decodes the JSON answer into out. cartToken
// may be empty for non-cart resources. Non-2xx answers are mapped to
// *APIError (404 additionally wraps ErrNotFound).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, cartToken, authToken string, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if cartToken != "" {
		req.Header.Set(cartTokenHeader, cartToken)
	}
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	data, err := c.breaker.Execute(func() ([]byte, error) {
		resp, errDo := c.httpClient.Do(req)
		if errDo != nil {
			return nil, errDo
		}
		defer resp.Body.Close()

		raw, errRead := io.ReadAll(resp.Body)
		if errRead != nil {
			return nil, fmt.Errorf("read response: %w", errRead)
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			apiErr := &APIError{Status: resp.StatusCode}
			var envelope wireError
			if json.Unmarshal(raw, &envelope) == nil {
				apiErr.Code = envelope.Code
				apiErr.Message = envelope.Message
			}
			if resp.StatusCode == http.StatusNotFound {
				return nil, fmt.Errorf("%w: %s", ErrNotFound, apiErr.Error())
			}
			return nil, apiErr
		}
		return raw, nil
	})
	if err != nil {
		return err
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, "", "", nil, out)
}
