package authsession

import (
	"context"
	"fmt"

	"github.com/wemolhq/wemolkit/pkg/apiclient"
)

const defaultRejectionMessage = "login failed"

type loginRequest struct {
	Name   string `json:"Name"`
	Passwd string `json:"Passwd"`
}

// Login performs the credential handshake against the role's login endpoint.
// Transport errors are returned to the caller unchanged: login is a
// user-initiated action and the UI must be able to show the real cause. The
// request is not bounded by the client's default timeout.
//
// Concurrent logins for different roles race on the shared marker cookies;
// callers establishing both roles together must serialize.
func (c *Client) Login(ctx context.Context, username, password string, role Role) (bool, error) {
	path := loginPathUser
	marker := c.config.PrimaryMarker
	switch role {
	case RoleUser:
	case RoleSys:
		path = loginPathSys
		marker = c.config.SecondaryMarker
	default:
		return false, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}

	resp, err := c.api.Post(ctx, path, loginRequest{Name: username, Passwd: password},
		apiclient.WithCallTimeout(0))
	if err != nil {
		return false, err
	}
	if !resp.OK() {
		return false, &RequestFailedError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       resp.Text(),
		}
	}

	var body map[string]any
	if err := resp.DecodeJSON(&body); err != nil {
		return false, &RejectedError{Message: defaultRejectionMessage}
	}

	if !loginAccepted(body) {
		msg := defaultRejectionMessage
		if m, found := errorIndicator(body); found {
			msg = m
		}
		return false, &RejectedError{Message: msg}
	}

	// Persist the marker as a client-side convenience cache; the server's
	// own session cookie, if any, is the security boundary.
	if id, ok := resolveUserID(body); ok {
		c.cookies.Set(marker, id, c.config.MarkerTTLDays)
	}
	c.setLastRole(role)

	return true, nil
}

// loginAccepted applies the layered success check; the first condition that
// holds decides.
func loginAccepted(body map[string]any) bool {
	if ok, _ := body["success"].(bool); ok {
		return true
	}
	if code, ok := body["code"].(float64); ok && code == 0 {
		return true
	}
	if status, _ := body["status"].(string); status == "success" {
		return true
	}
	if _, found := errorIndicator(body); !found {
		return true
	}
	_, found := resolveUserID(body)
	return found
}
