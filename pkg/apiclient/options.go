package apiclient

import (
	"net/http"
	"net/url"
	"time"

	"github.com/wemolhq/wemolkit/pkg/cookiestore"
)

const (
	defaultTimeout   = 5 * time.Second
	defaultUserAgent = "wemolkit/1.0"
)

// Option configures client construction.
type Option func(*Client)

// WithHTTPClient replaces the default pooled HTTP client. Nil clients are
// ignored.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithJar attaches an ambient cookie jar. Its raw string is presented as the
// Cookie header on credentialed requests, and Set-Cookie response headers are
// written back into it.
func WithJar(jar cookiestore.Jar) Option {
	return func(c *Client) {
		c.jar = jar
	}
}

// WithUserAgent sets the User-Agent header for all requests.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithTimeout sets the default per-request timeout. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

type callOptions struct {
	timeout     time.Duration
	credentials bool
	query       url.Values
}

// CallOption configures a single request.
type CallOption func(*callOptions)

// WithCallTimeout overrides the timeout for one request. Zero leaves the
// request bounded only by the parent context.
func WithCallTimeout(d time.Duration) CallOption {
	return func(o *callOptions) {
		o.timeout = d
	}
}

// WithoutCredentials suppresses the ambient cookie header for one request.
func WithoutCredentials() CallOption {
	return func(o *callOptions) {
		o.credentials = false
	}
}

// WithQuery appends query parameters to the request URL.
func WithQuery(query url.Values) CallOption {
	return func(o *callOptions) {
		o.query = query
	}
}
