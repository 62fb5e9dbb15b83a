package authsession

import (
	"context"

	"github.com/wemolhq/wemolkit/pkg/apiclient"
)

// Verify asks the server whether the ambient credentials identify a valid
// session. It never returns an error: the caller cannot distinguish
// "definitely logged out" from "network unavailable" and must fail safe
// toward logged-out, so every failure is absorbed into a negative verdict.
// Background retries are the caller's responsibility.
func (c *Client) Verify(ctx context.Context) Verdict {
	return c.VerifyRole(ctx, c.markerRole())
}

// VerifyRole verifies against the given role's session-status endpoint. It
// does not require local inference to have run; the request always goes out
// with ambient credentials and the server is the source of truth.
func (c *Client) VerifyRole(ctx context.Context, role Role) Verdict {
	path := sessionDataPathUser
	if role == RoleSys {
		path = sessionDataPathSys
	}

	resp, err := c.api.Post(ctx, path, nil, apiclient.WithCallTimeout(c.config.VerifyTimeout))
	if err != nil {
		c.log.DebugContext(ctx, "session verification failed", "path", path, "error", err)
		return Verdict{}
	}
	if !resp.OK() {
		return Verdict{}
	}

	var body map[string]any
	if err := resp.DecodeJSON(&body); err != nil {
		// A malformed success response is not proof of authentication.
		c.log.DebugContext(ctx, "session status response is not structured", "path", path, "error", err)
		return Verdict{}
	}

	if msg, found := errorIndicator(body); found {
		c.log.DebugContext(ctx, "session status reported an error", "path", path, "message", msg)
		return Verdict{}
	}

	for _, adapter := range verdictAdapters {
		if payload, ok := adapter(body); ok {
			return Verdict{Authenticated: true, Session: payload}
		}
	}

	// A 2xx with no locatable user data is not authentication; empty 200
	// responses must not produce false positives.
	return Verdict{}
}
