package authsession

import (
	"context"
	"log/slog"
	"sync"

	"github.com/wemolhq/wemolkit/pkg/apiclient"
	"github.com/wemolhq/wemolkit/pkg/cookiestore"
)

// Client reconciles three independent signals of session validity: locally
// readable cookie markers, server-confirmed session data, and freshly issued
// credentials from an explicit login call.
type Client struct {
	api     *apiclient.Client
	cookies *cookiestore.Store
	config  Config
	log     *slog.Logger

	mu       sync.Mutex
	lastRole Role
}

// New creates a session client over the given transport and cookie store.
func New(api *apiclient.Client, cookies *cookiestore.Store, opts ...Option) *Client {
	c := &Client{
		api:     api,
		cookies: cookies,
		config:  DefaultConfig(),
		log:     slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// CheckLogin is the reconciliation entry point: the cheap local signal is
// consulted first, and only when it is inconclusive does the server get asked.
func (c *Client) CheckLogin(ctx context.Context) bool {
	if c.IsLoggedIn() {
		return true
	}
	return c.Verify(ctx).Authenticated
}

// RequireAuthenticated returns nil when a valid session exists and the fixed
// ErrNotAuthenticated sentinel otherwise.
func (c *Client) RequireAuthenticated(ctx context.Context) error {
	if c.CheckLogin(ctx) {
		return nil
	}
	return ErrNotAuthenticated
}

// markerRole picks the endpoint family suggested by marker presence: a
// secondary-only jar targets the sys endpoints, everything else the user
// ones. The server stays the source of truth either way.
func (c *Client) markerRole() Role {
	if c.config.MarkersReadable &&
		!c.cookies.Has(c.config.PrimaryMarker) &&
		c.cookies.Has(c.config.SecondaryMarker) {
		return RoleSys
	}
	return RoleUser
}

func (c *Client) setLastRole(role Role) {
	c.mu.Lock()
	c.lastRole = role
	c.mu.Unlock()
}

func (c *Client) getLastRole() Role {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastRole
}
