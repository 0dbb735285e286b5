package stalkermap

import (
	"github.com/firestige/stalkermap/internal/broadcast"
	"github.com/firestige/stalkermap/internal/taskqueue"
)

// activeGuard is the RAII value from spec.md §4.E. By the time one is
// constructed the caller has already done `active += 1, pending -= 1`;
// release (always called exactly once, from a single defer at worker
// entry) decrements active and, if the engine has gone quiet, fires the
// engine's shared notifier (the same one LogStream.NotifyWhenNewTasks
// waits on) and publishes the idle sentinel.
type activeGuard[O any] struct {
	queue     *taskqueue.Queue[Task]
	sender    *broadcast.Broadcaster[O]
	notifier  *broadcast.Notifier
	formatter Formatter[O]
	released  bool
}

func newActiveGuard[O any](q *taskqueue.Queue[Task], b *broadcast.Broadcaster[O], n *broadcast.Notifier, f Formatter[O]) *activeGuard[O] {
	return &activeGuard[O]{queue: q, sender: b, notifier: n, formatter: f}
}

// release implements the guard's drop behavior. Calling it more than
// once is a no-op; runWorker calls it only from its single defer.
func (g *activeGuard[O]) release() {
	if g.released {
		return
	}
	g.released = true

	stillActive := g.queue.Active.Add(-1)
	if stillActive == 0 && g.queue.Pending.Load() == 0 {
		g.notifier.Notify()
		g.sender.Send(g.formatter.IdleOutput())
	}
}
