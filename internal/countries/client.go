package countries

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Fetcher loads the full country list. *Client implements it; tests and
// offline callers can supply their own.
type Fetcher interface {
	FetchCountries(ctx context.Context) ([]Country, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

const (
	// DefaultEndpoint is the public countries GraphQL API.
	DefaultEndpoint = "https://countries.trevorblades.com/graphql"

	// OperationName is the name of the only operation this client sends.
	OperationName = "GetCountries"

	// Query is the fixed document requested on startup.
	Query = `query GetCountries {
  countries {
    code
    name
    currency
    languages {
      code
      name
    }
  }
}`

	defaultUserAgent = "passport/0.1"
	requestTimeout   = 10 * time.Second
	maxErrorBody     = 512
)

// Client talks to a countries GraphQL endpoint.
type Client struct {
	endpoint  *url.URL
	http      *http.Client
	userAgent string
	timeout   time.Duration
}

// Option customises a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua = strings.TrimSpace(ua); ua != "" {
			c.userAgent = ua
		}
	}
}

// NewClient builds a Client for endpoint. An empty endpoint uses
// DefaultEndpoint.
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	u, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	if _, err := parseDocument(Query); err != nil {
		return nil, err
	}
	c := &Client{
		endpoint:  u,
		userAgent: defaultUserAgent,
		timeout:   requestTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: c.timeout}
	}
	return c, nil
}

// Endpoint returns the resolved endpoint URL.
func (c *Client) Endpoint() string {
	if c == nil || c.endpoint == nil {
		return ""
	}
	return c.endpoint.String()
}

// FetchCountries runs the GetCountries query and returns the countries in
// response order.
func (c *Client) FetchCountries(ctx context.Context) ([]Country, error) {
	if c == nil {
		return nil, errors.New("client is nil")
	}
	var payload response
	if err := c.do(ctx, request{Query: Query, OperationName: OperationName}, &payload); err != nil {
		return nil, err
	}
	if len(payload.Errors) > 0 {
		return nil, queryError(payload.Errors)
	}
	return payload.Data.Countries, nil
}

func (c *Client) do(ctx context.Context, body request, dest any) error {
	if _, ok := ctx.Deadline(); !ok && c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	buf, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "encode request")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint.String(), bytes.NewReader(buf))
	if err != nil {
		return errors.Wrap(err, "create request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "execute request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if text := strings.TrimSpace(string(snippet)); text != "" {
			return errors.Errorf("graphql endpoint returned status %d: %s", resp.StatusCode, text)
		}
		return errors.Errorf("graphql endpoint returned status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return errors.Wrap(err, "decode response")
	}
	return nil
}

func parseEndpoint(endpoint string) (*url.URL, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		trimmed = DefaultEndpoint
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, errors.Wrapf(err, "parse endpoint %q", endpoint)
	}
	if u.Host == "" {
		return nil, errors.Errorf("parse endpoint %q: missing host", endpoint)
	}
	u.Fragment = ""
	return u, nil
}
