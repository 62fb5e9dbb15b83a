package cookiestore

// Jar is the ambient cookie jar contract: a single raw string of
// "name=value" pairs separated by "; ", mutated by assigning one serialized
// cookie at a time. A browser's document.cookie satisfies this contract;
// MemoryJar provides it for tests and non-browser hosts.
//
// The Store depends only on this read/write pair, not on any particular
// storage engine.
type Jar interface {
	// Raw returns the full cookie string currently visible to the caller.
	Raw() string

	// Write assigns a single serialized cookie, including its attributes
	// (Expires, Path, ...). Writing a cookie with an expiry in the past
	// removes it.
	Write(cookie string)
}
