// Package diag provides bounded in-memory diagnostic buffers.
//
// The browser client kept ad-hoc global error logs on window.*; here the
// buffers are an explicitly constructed value injected into the transport so
// tests get isolated instances.
package diag

import (
	"sync"
	"time"
)

// BufferCap is how many entries each buffer retains before dropping the
// oldest.
const BufferCap = 50

// Entry is one recorded failure.
type Entry struct {
	Time       time.Time `json:"time"`
	Operation  string    `json:"operation,omitempty"`
	Method     string    `json:"method,omitempty"`
	URL        string    `json:"url,omitempty"`
	StatusCode int       `json:"statusCode,omitempty"`
	Message    string    `json:"message"`
	Duration   string    `json:"duration,omitempty"`
}

// Ring is a fixed-capacity append-only buffer. Safe for concurrent use.
type Ring struct {
	mu      sync.Mutex
	cap     int
	entries []Entry
	head    int
	full    bool
}

// NewRing creates a ring with the given capacity. Capacity <= 0 falls back
// to BufferCap.
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		capacity = BufferCap
	}
	return &Ring{
		cap:     capacity,
		entries: make([]Entry, capacity),
	}
}

// Append records an entry, evicting the oldest when full.
func (r *Ring) Append(e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	r.entries[r.head] = e
	r.head = (r.head + 1) % r.cap
	if r.head == 0 {
		r.full = true
	}
}

// Entries returns a copy of the buffer contents, oldest first.
func (r *Ring) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.full {
		out := make([]Entry, r.head)
		copy(out, r.entries[:r.head])
		return out
	}

	out := make([]Entry, 0, r.cap)
	out = append(out, r.entries[r.head:]...)
	out = append(out, r.entries[:r.head]...)
	return out
}

// Len returns the number of retained entries.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.full {
		return r.cap
	}
	return r.head
}

// Diagnostics groups the per-concern buffers the support tooling inspects.
type Diagnostics struct {
	API     *Ring
	Login   *Ring
	Network *Ring
}

// New creates a Diagnostics value with default-capacity buffers.
func New() *Diagnostics {
	return &Diagnostics{
		API:     NewRing(BufferCap),
		Login:   NewRing(BufferCap),
		Network: NewRing(BufferCap),
	}
}
