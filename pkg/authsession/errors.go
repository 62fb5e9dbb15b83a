package authsession

import (
	"errors"
	"fmt"
)

var (
	// ErrNotAuthenticated is the fixed error RequireAuthenticated fails
	// with, so UI code can branch without re-deriving the message
	ErrNotAuthenticated = errors.New("authsession.not_authenticated")

	// ErrLoginFailed matches both login error kinds via errors.Is
	ErrLoginFailed = errors.New("authsession.login_failed")

	// ErrUnknownRole indicates a role outside user/sys
	ErrUnknownRole = errors.New("authsession.unknown_role")
)

// RequestFailedError reports a login request the server answered with a
// non-2xx status. Status and Body carry the server-provided detail so UI can
// display the real cause.
type RequestFailedError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *RequestFailedError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("login request failed: %s: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("login request failed: %s", e.Status)
}

func (e *RequestFailedError) Is(target error) bool {
	return target == ErrLoginFailed
}

// RejectedError reports a login the server accepted at the HTTP level but
// rejected, carrying the server-supplied message or a generic fallback.
type RejectedError struct {
	Message string
}

func (e *RejectedError) Error() string {
	return "login rejected: " + e.Message
}

func (e *RejectedError) Is(target error) bool {
	return target == ErrLoginFailed
}
