// Package cookiestore provides named key-value access over an ambient cookie
// jar: a raw string of "name=value" pairs mutated by assigning single cookie
// strings, the contract a browser exposes through document.cookie.
//
// # Overview
//
// The Store type is the entry point. It is constructed over any Jar
// implementation and offers four primitives:
//
//   - Get() – decoded value of a named cookie, ErrNotFound when absent
//   - Set() – write a value with a TTL in days, URL-encoded
//   - Clear() – delete by rewriting with an expiry in the past
//   - Has() – loose existence check that works even when the value portion
//     is not readable
//
// Values are never interpreted; the store is pure plumbing for the session
// packages that sit on top of it.
//
// # Usage
//
//	jar := cookiestore.NewMemoryJar()
//	store, err := cookiestore.New(jar)
//	if err != nil { log.Fatal(err) }
//
//	store.Set("ant_uid", "alice", 7)
//	uid, err := store.Get("ant_uid")
//
// # Configuration
//
// The Config struct allows the store to be constructed from environment
// variables via github.com/caarlos0/env. Only non-zero fields are applied.
//
// # Error Handling
//
// Package-level sentinel errors (ErrNotFound, ErrNilJar) are returned for
// the two failure scenarios so callers can use errors.Is.
package cookiestore
