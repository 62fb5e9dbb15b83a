package cookiestore

import "errors"

var (
	// ErrNotFound indicates no cookie with the requested name exists
	ErrNotFound = errors.New("cookiestore.not_found")

	// ErrNilJar indicates the store was constructed without a jar
	ErrNilJar = errors.New("cookiestore.nil_jar")
)
