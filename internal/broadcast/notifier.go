package broadcast

import "sync"

// Notifier wakes every current waiter when new work arrives. It uses the
// close-and-replace channel idiom — the same pattern the teacher uses for
// context-based cancellation fan-out — rather than sync.Cond, so waiters
// can select on it alongside other channels instead of blocking a
// dedicated goroutine per waiter.
type Notifier struct {
	mu sync.Mutex
	ch chan struct{}
}

// NewNotifier returns a ready-to-use notifier.
func NewNotifier() *Notifier {
	return &Notifier{ch: make(chan struct{})}
}

// Wait returns a channel that is closed the next time Notify is called.
// Every call to Wait before that Notify observes the same close.
func (n *Notifier) Wait() <-chan struct{} {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.ch
}

// Notify wakes every current waiter and prepares a fresh channel for the
// next generation of waiters. Safe for concurrent use.
func (n *Notifier) Notify() {
	n.mu.Lock()
	defer n.mu.Unlock()
	close(n.ch)
	n.ch = make(chan struct{})
}
