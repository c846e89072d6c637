package state

import (
	"sync"
	"time"
)

// Batch is what the UI takes from the inbox on each tick.
type Batch struct {
	Lines []string
	// Reset means the source restarted; Lines are from the new source only.
	Reset               bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
	// Dropped counts lines discarded because the UI fell behind.
	Dropped int
}

// IsOffline returns true when the source has failed several polls in a row.
func (b Batch) IsOffline() bool {
	return b.ConsecutiveFailures >= 2
}

// Inbox hands lines from the follower goroutine to the UI loop. The zero
// value is ready to use and keeps every pending line.
type Inbox struct {
	// Limit caps pending lines; the oldest are dropped first.
	Limit int

	mu       sync.Mutex
	pending  []string
	reset    bool
	dropped  int
	updated  time.Time
	lastErr  error
	failures int
}

// Push queues lines from a successful poll. When reset is set, lines queued
// earlier are discarded.
func (i *Inbox) Push(lines []string, reset bool) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if reset {
		i.pending = nil
		i.dropped = 0
		i.reset = true
	}
	i.pending = append(i.pending, lines...)
	if i.Limit > 0 && len(i.pending) > i.Limit {
		over := len(i.pending) - i.Limit
		i.pending = append([]string(nil), i.pending[over:]...)
		i.dropped += over
	}
	i.updated = time.Now()
	i.lastErr = nil
	i.failures = 0
}

// Fail records a failed poll. Pending lines are kept.
func (i *Inbox) Fail(err error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.lastErr = err
	i.updated = time.Now()
	i.failures++
}

// Drain returns and clears the pending lines and reset flag. Error state is
// reported but stays until the next successful Push.
func (i *Inbox) Drain() Batch {
	i.mu.Lock()
	defer i.mu.Unlock()

	b := Batch{
		Lines:               i.pending,
		Reset:               i.reset,
		LastUpdated:         i.updated,
		LastError:           i.lastErr,
		ConsecutiveFailures: i.failures,
		Dropped:             i.dropped,
	}
	i.pending = nil
	i.reset = false
	i.dropped = 0
	return b
}
