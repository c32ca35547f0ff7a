package log

import (
	"fmt"
	"io"
	"sync"
)

// DefaultRingSize is used when [NewRing] is given a non-positive size.
const DefaultRingSize = 200

// Ring is an [io.Writer] that keeps the most recent writes in memory. It is
// used to hold log output while a full-screen program owns the terminal.
// It is safe for concurrent use.
type Ring struct {
	entries [][]byte
	next    int
	count   int
	dropped int
	mu      sync.Mutex
}

// NewRing returns a ring holding up to size writes.
func NewRing(size int) *Ring {
	if size <= 0 {
		size = DefaultRingSize
	}

	return &Ring{entries: make([][]byte, size)}
}

// Write stores a copy of p, replacing the oldest entry when the ring is full.
func (r *Ring) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[r.next] = append([]byte(nil), p...)
	r.next = (r.next + 1) % len(r.entries)

	if r.count < len(r.entries) {
		r.count++
	} else {
		r.dropped++
	}

	return len(p), nil
}

// Len returns the number of stored entries.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.count
}

// Dropped returns how many entries were overwritten since the last flush.
func (r *Ring) Dropped() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.dropped
}

// Entries returns copies of the stored entries, oldest first.
func (r *Ring) Entries() [][]byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.snapshot()
}

// Flush writes the stored entries to w, oldest first, and empties the ring.
// When entries were overwritten, a note saying how many precedes them.
func (r *Ring) Flush(w io.Writer) (int64, error) {
	r.mu.Lock()
	entries := r.snapshot()
	dropped := r.dropped
	r.reset()
	r.mu.Unlock()

	var total int64

	if dropped > 0 {
		n, err := fmt.Fprintf(w, "... %d earlier log entries dropped\n", dropped)
		total += int64(n)

		if err != nil {
			return total, fmt.Errorf("write log entries: %w", err)
		}
	}

	for _, e := range entries {
		n, err := w.Write(e)
		total += int64(n)

		if err != nil {
			return total, fmt.Errorf("write log entries: %w", err)
		}
	}

	return total, nil
}

func (r *Ring) snapshot() [][]byte {
	if r.count == 0 {
		return nil
	}

	out := make([][]byte, 0, r.count)

	start := (r.next - r.count + len(r.entries)) % len(r.entries)
	for i := range r.count {
		e := r.entries[(start+i)%len(r.entries)]
		out = append(out, append([]byte(nil), e...))
	}

	return out
}

func (r *Ring) reset() {
	clear(r.entries)
	r.next = 0
	r.count = 0
	r.dropped = 0
}
