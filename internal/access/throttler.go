package access

import "sync"

// Throttler counts requests per credential for the life of the process.
// Counts are never reset; once a key exceeds its limit it stays rejected.
type Throttler struct {
	mu     sync.Mutex
	counts map[Credential]int
}

func NewThrottler() *Throttler {
	return &Throttler{counts: make(map[Credential]int)}
}

// Admit increments the count for cred and then rejects when the new count
// is strictly greater than limit. Rejected calls are counted too. The
// returned count is the value this call produced.
func (t *Throttler) Admit(cred Credential, limit int) (int, error) {
	t.mu.Lock()
	t.counts[cred]++
	n := t.counts[cred]
	t.mu.Unlock()

	if n > limit {
		return n, ErrTooManyRequests
	}
	return n, nil
}

// Count returns the current counter value for cred (0 if never seen).
func (t *Throttler) Count(cred Credential) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counts[cred]
}
