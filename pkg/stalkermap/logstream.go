package stalkermap

import (
	"github.com/firestige/stalkermap/internal/broadcast"
)

// LogStream is the Task-Aware Log Stream from spec.md §4.F: a broadcast
// subscription paired with the engine's shared notifier.
type LogStream[O any] struct {
	sub *broadcast.Broadcaster[O]
	id  int
	ch  <-chan O

	notifier *broadcast.Notifier
}

func newLogStream[O any](b *broadcast.Broadcaster[O], n *broadcast.Notifier) *LogStream[O] {
	id, ch := b.Subscribe()
	return &LogStream[O]{sub: b, id: id, ch: ch, notifier: n}
}

// Next yields the next record, or ok == false once the broadcaster has
// been closed (end-of-stream). The broadcaster itself already swallows
// "lagged" drops for a slow subscriber, so Next never needs to loop past
// one receive.
func (s *LogStream[O]) Next() (o O, ok bool) {
	v, open := <-s.ch
	if !open {
		var zero O
		return zero, false
	}
	return v, true
}

// NotifyWhenNewTasks returns a channel that is closed the next time new
// tasks are added to the engine, matching spec.md §4.F's
// notify_when_new_tasks(): callers that just observed an idle sentinel
// select/receive on this to sleep without polling. The active-task guard
// fires the same notifier when the last active task finishes and the
// engine becomes idle, so the channel also closes on that transition.
func (s *LogStream[O]) NotifyWhenNewTasks() <-chan struct{} {
	return s.notifier.Wait()
}

// Close unsubscribes this stream from the broadcaster. Safe to call more
// than once.
func (s *LogStream[O]) Close() {
	s.sub.Unsubscribe(s.id)
}
