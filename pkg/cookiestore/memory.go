package cookiestore

import (
	"net/http"
	"strings"
	"sync"
	"time"
)

// MemoryJar is an in-process Jar with browser cookie-assignment semantics:
// writes merge by name, a past expiry removes the cookie, and Raw reflects
// insertion order. Attributes are consumed on write and never echoed back,
// matching how document.cookie behaves.
type MemoryJar struct {
	mu      sync.Mutex
	entries []jarEntry
}

type jarEntry struct {
	name  string
	value string
}

// NewMemoryJar returns an empty in-process jar.
func NewMemoryJar() *MemoryJar {
	return &MemoryJar{}
}

// NewMemoryJarFrom seeds a jar from a raw "name=value; ..." string.
func NewMemoryJarFrom(raw string) *MemoryJar {
	j := &MemoryJar{}
	for _, segment := range strings.Split(raw, ";") {
		segment = strings.TrimSpace(segment)
		name, value, ok := strings.Cut(segment, "=")
		if !ok || name == "" {
			continue
		}
		j.entries = append(j.entries, jarEntry{name: name, value: value})
	}
	return j
}

func (j *MemoryJar) Raw() string {
	j.mu.Lock()
	defer j.mu.Unlock()

	pairs := make([]string, len(j.entries))
	for i, e := range j.entries {
		pairs[i] = e.name + "=" + e.value
	}
	return strings.Join(pairs, "; ")
}

func (j *MemoryJar) Write(cookie string) {
	segments := strings.Split(cookie, ";")
	name, value, ok := strings.Cut(strings.TrimSpace(segments[0]), "=")
	if !ok || name == "" {
		return
	}

	expired := false
	for _, segment := range segments[1:] {
		attr, attrValue, _ := strings.Cut(strings.TrimSpace(segment), "=")
		switch strings.ToLower(attr) {
		case "expires":
			if t, err := http.ParseTime(attrValue); err == nil && t.Before(time.Now()) {
				expired = true
			}
		case "max-age":
			if strings.HasPrefix(attrValue, "-") || attrValue == "0" {
				expired = true
			}
		}
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	if expired {
		j.remove(name)
		return
	}
	for i, e := range j.entries {
		if e.name == name {
			j.entries[i].value = value
			return
		}
	}
	j.entries = append(j.entries, jarEntry{name: name, value: value})
}

func (j *MemoryJar) remove(name string) {
	for i, e := range j.entries {
		if e.name == name {
			j.entries = append(j.entries[:i], j.entries[i+1:]...)
			return
		}
	}
}
