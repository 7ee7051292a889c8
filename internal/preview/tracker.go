// Package preview guards the live price preview against stale forecast
// responses.  Lookups are never cancelled; when the input changes while a
// lookup is in flight, the old response simply loses the race and must not
// overwrite the newer one.  Each lookup is tagged with a monotonically
// increasing sequence number and a result is applied only while its tag is
// still current.
package preview

import "sync"

// Result is the state a completed forecast lookup wants to publish.
type Result struct {
	Temperature float64
	Cached      bool
	Price       float64
	Surcharge   float64
}

// Tracker serializes preview updates.  The zero value is ready to use.
type Tracker struct {
	mu     sync.Mutex
	seq    uint64
	latest *Result
}

// Next registers a new lookup and returns its sequence tag.  Issuing a tag
// invalidates every earlier in-flight lookup.
func (t *Tracker) Next() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.seq++
	return t.seq
}

// Apply publishes r if seq is still the most recent tag.  It reports
// whether the result was accepted; a stale result is discarded unchanged.
func (t *Tracker) Apply(seq uint64, r Result) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if seq != t.seq {
		return false
	}
	t.latest = &r
	return true
}

// Latest returns the most recently accepted result, or nil when no lookup
// has completed yet.
func (t *Tracker) Latest() *Result {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.latest
}
