package cookiestore

import (
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Store reads, writes and clears named values in an ambient cookie Jar.
// All operations are synchronous and touch nothing beyond the jar.
type Store struct {
	jar      Jar
	defaults Options
}

// New creates a store over the given jar with the provided default options.
func New(jar Jar, opts ...Option) (*Store, error) {
	if jar == nil {
		return nil, ErrNilJar
	}

	defaults := Options{
		Path: "/",
	}
	defaults = applyOptions(defaults, opts)

	return &Store{jar: jar, defaults: defaults}, nil
}

// Get returns the URL-decoded value of the first cookie whose name matches.
// It returns ErrNotFound when no segment matches, including on an empty
// cookie string. A cookie whose name merely ends in the requested name does
// not match.
func (s *Store) Get(name string) (string, error) {
	raw := s.jar.Raw()
	if raw == "" {
		return "", ErrNotFound
	}

	for _, segment := range strings.Split(raw, ";") {
		segment = strings.TrimSpace(segment)
		value, ok := strings.CutPrefix(segment, name+"=")
		if !ok {
			continue
		}
		decoded, err := url.QueryUnescape(value)
		if err != nil {
			// Not something this store wrote; hand back the raw value.
			return value, nil
		}
		return decoded, nil
	}
	return "", ErrNotFound
}

// Set writes a cookie expiring ttlDays from now, URL-encoding the value.
func (s *Store) Set(name, value string, ttlDays int, opts ...Option) {
	options := applyOptions(s.defaults, opts)
	expires := time.Now().Add(time.Duration(ttlDays) * 24 * time.Hour)
	s.jar.Write(serialize(name, url.QueryEscape(value), expires, options))
}

// Clear removes a cookie by rewriting it with an expiry in the past.
func (s *Store) Clear(name string) {
	s.jar.Write(serialize(name, "", time.Unix(0, 0).UTC(), s.defaults))
}

// Has reports whether a cookie with the given name is present, even when its
// value cannot be read (an HTTP-only cookie visible only as a substring of
// the raw header). It matches "name=" at the start of the string or "; name="
// mid-string, so names that are suffixes of other names do not false-positive.
func (s *Store) Has(name string) bool {
	raw := s.jar.Raw()
	if raw == "" {
		return false
	}
	return strings.HasPrefix(raw, name+"=") || strings.Contains(raw, "; "+name+"=")
}

func serialize(name, encodedValue string, expires time.Time, o Options) string {
	c := http.Cookie{
		Name:    name,
		Value:   encodedValue,
		Path:    o.Path,
		Domain:  o.Domain,
		Secure:  o.Secure,
		Expires: expires,
	}
	return c.String()
}
