package apiclient

import "errors"

var (
	// ErrInvalidBaseURL indicates the base URL could not be used
	ErrInvalidBaseURL = errors.New("apiclient.invalid_base_url")
)
