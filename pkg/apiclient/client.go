package apiclient

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

	"github.com/google/uuid"

	"github.com/wemolhq/wemolkit/pkg/cookiestore"
)

// Client issues JSON requests against a platform base URL. It is safe for
// concurrent use; the underlying http.Client is reused across requests for
// connection pooling.
type Client struct {
	baseURL    string
	httpClient *http.Client
	jar        cookiestore.Jar
	userAgent  string
	timeout    time.Duration
}

// New creates a client for the given base URL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: only http and https schemes are supported", ErrInvalidBaseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: host is required", ErrInvalidBaseURL)
	}

	c := &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		userAgent: defaultUserAgent,
		timeout:   defaultTimeout,
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Post sends a JSON POST to path. A nil body sends an empty request. The
// configured timeout applies unless overridden per call; a zero timeout
// leaves the request bounded only by the parent context.
func (c *Client) Post(ctx context.Context, path string, body any, opts ...CallOption) (*Response, error) {
	options := callOptions{
		timeout:     c.timeout,
		credentials: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	requestURL := c.baseURL + path
	if len(options.query) > 0 {
		requestURL += "?" + options.query.Encode()
	}

	// Layer the timeout on top of the parent context so both bounds hold.
	if options.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, options.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())

	if options.credentials && c.jar != nil {
		if raw := c.jar.Raw(); raw != "" {
			req.Header.Set("Cookie", raw)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	// Mirror browser behavior: cookies issued by the server become visible
	// in the ambient jar.
	if c.jar != nil {
		for _, sc := range resp.Header.Values("Set-Cookie") {
			c.jar.Write(sc)
		}
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Body:       data,
	}, nil
}

// Response is the outcome of a completed HTTP exchange. Transport failures
// never produce a Response.
type Response struct {
	StatusCode int
	Status     string
	Body       []byte
}

// OK reports whether the status code is in the 2xx range.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// DecodeJSON unmarshals the response body into dest.
func (r *Response) DecodeJSON(dest any) error {
	return json.Unmarshal(r.Body, dest)
}

// Text returns the response body as a string.
func (r *Response) Text() string {
	return string(r.Body)
}
