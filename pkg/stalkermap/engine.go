// Package stalkermap is the public surface of the scanner engine: the
// task queue, the concurrent scheduler/executor, and the control surface
// described by spec.md §4.D–§4.H, generic over a caller-supplied
// Formatter's output type.
package stalkermap

import (
	"context"
	"errors"
	"fmt"
	"time"

	uuid "github.com/satori/go.uuid"
	"github.com/sourcegraph/conc/pool"
	"github.com/tevino/abool"
	"go.uber.org/multierr"

	"github.com/firestige/stalkermap/internal/broadcast"
	"github.com/firestige/stalkermap/internal/bufpool"
	"github.com/firestige/stalkermap/internal/netio"
	"github.com/firestige/stalkermap/internal/taskqueue"
)

// Engine is the scheduler/executor plus control surface from spec.md
// §4.G/§4.H, generic over the formatter's output type O.
type Engine[O any] struct {
	opts      ScannerOptions
	formatter Formatter[O]

	queue     *taskqueue.Queue[Task]
	broadcast *broadcast.Broadcaster[O]
	notifier  *broadcast.Notifier
	bufs      *bufpool.Pool

	cancelled *abool.AtomicBool
	started   *abool.AtomicBool

	workers *pool.Pool

	closers []closerFunc
}

type closerFunc func() error

// New constructs an Engine ready to have tasks added to it. execute_tasks
// must still be called to launch the driver loop (spec.md §4.H).
func New[O any](opts ScannerOptions, formatter Formatter[O]) *Engine[O] {
	return &Engine[O]{
		opts:      opts,
		formatter: formatter,
		queue:     taskqueue.New[Task](),
		broadcast: broadcast.New[O](),
		notifier:  broadcast.NewNotifier(),
		bufs:      bufpool.New(),
		cancelled: abool.New(),
		started:   abool.New(),
	}
}

// RegisterCloser attaches a sink (or any other resource) whose Close is
// joined into ShutdownGraceful's combined error, per SPEC_FULL.md §4.H's
// expansion of the control surface.
func (e *Engine[O]) RegisterCloser(name string, close func() error) {
	e.closers = append(e.closers, func() error {
		if err := close(); err != nil {
			return fmt.Errorf("stalkermap: closing %s: %w", name, err)
		}
		return nil
	})
}

// AddTask implements add_task: pending += 1, push, fire notifier.
func (e *Engine[O]) AddTask(actions []Action, target Target) error {
	t, err := NewTask(actions, target)
	if err != nil {
		return err
	}
	e.queue.Push(t)
	e.notifier.Notify()
	return nil
}

// TaskSpec is one entry of an AddMultipleTasks call: an action list paired
// with its target, before NewTask's validation has run.
type TaskSpec struct {
	Actions []Action
	Target  Target
}

// AddMultipleTasks implements add_multiple_tasks: pending += N, push all
// under one lock acquisition, fire the notifier once.
func (e *Engine[O]) AddMultipleTasks(specs []TaskSpec) error {
	tasks := make([]Task, 0, len(specs))
	for _, s := range specs {
		t, err := NewTask(s.Actions, s.Target)
		if err != nil {
			return err
		}
		tasks = append(tasks, t)
	}
	e.queue.PushMany(tasks)
	e.notifier.Notify()
	return nil
}

// TotalTasks implements total_tasks: current queue length, excluding
// active workers.
func (e *Engine[O]) TotalTasks() int {
	return e.queue.Len()
}

// TotalTasksOnQueue implements total_tasks_on_queue: pending + active.
func (e *Engine[O]) TotalTasksOnQueue() int64 {
	return e.queue.TotalOnQueue()
}

// GetLogsStream implements get_logs_stream: a fresh Task-Aware Stream.
// Records produced before subscription are never replayed.
func (e *Engine[O]) GetLogsStream() *LogStream[O] {
	return newLogStream(e.broadcast, e.notifier)
}

// ExecuteTasks implements execute_tasks: an idempotent launch of the
// driver loop. Only the first call starts a driver; later calls are
// no-ops, matching spec.md §4.H ("only one driver should be live at a
// time").
func (e *Engine[O]) ExecuteTasks(ctx context.Context) {
	if !e.started.SetToIf(false, true) {
		return
	}
	e.workers = pool.New().WithMaxGoroutines(e.opts.batchSize())
	go e.drive(ctx)
}

// drive is the single driver coroutine of spec.md §4.G: loop popping one
// task at a time, acquire a concurrency permit, hand the task to a
// worker.
func (e *Engine[O]) drive(ctx context.Context) {
	for {
		task, ok := e.queue.Pop()
		if !ok {
			if e.cancelled.IsSet() {
				return
			}
			select {
			case <-ctx.Done():
				return
			case <-time.After(5 * time.Millisecond):
			}
			continue
		}

		e.queue.Active.Add(1)
		e.queue.Pending.Add(-1)
		guard := newActiveGuard(e.queue, e.broadcast, e.notifier, e.formatter)

		e.workers.Go(func() {
			e.runWorker(ctx, task, guard)
		})
	}
}

// runWorker is the worker protocol of spec.md §4.G steps a-g.
func (e *Engine[O]) runWorker(ctx context.Context, task Task, guard *activeGuard[O]) {
	defer guard.release()

	// a. cancellation check.
	if e.cancelled.IsSet() {
		return
	}

	buf := e.bufs.Get()
	defer e.bufs.Put(buf)

	// b. compose addr.
	addr := task.Target.Addr()
	workerID := uuid.NewV4().String()

	// c. bounded connect.
	conn, err := netio.DialTimeout(ctx, addr, e.opts.timeout())
	if err != nil {
		results := ResultMap{}
		var body string
		if errors.Is(err, context.DeadlineExceeded) {
			results["IsPortOpen"] = "timeout"
			body = "connection timed out: " + err.Error()
		} else {
			results["IsPortOpen"] = "closed"
			body = "connection error: " + err.Error()
		}
		e.broadcast.Send(e.formatter.Format(results, []byte(body)))
		return
	}
	defer conn.Close()

	// d. build ctx.
	actx := ActionContext{Addr: addr, Port: task.Target.effectivePort(), WorkerID: workerID}
	results := ResultMap{}

	// e. run the action pipeline with (at most) one shared read.
	var raw []byte
	readDone := false
	for _, a := range task.Actions {
		if a.WantsRead() {
			if !readDone {
				n, _ := netio.TryReadOnce(conn, buf)
				raw = buf[:n]
				readDone = true
			}
			a.OnConnectedWithRead(actx, raw, results)
		} else {
			a.OnConnected(actx, results)
		}
	}

	// f. emit the formatted record (broadcast-send errors are swallowed
	// by Broadcaster.Send itself).
	e.broadcast.Send(e.formatter.Format(results, raw))

	// g. buffer/permit/guard release happen via the defers above and the
	// pool.Go goroutine returning.
}

// AwaitIdle implements await_idle: blocks until pending+active == 0,
// then publishes the idle sentinel itself every time it returns nil,
// including when the engine was already quiescent on entry
// (the guard's own drop path only fires on a transition, so a caller
// that awaits idle when nothing is running must still see a sentinel —
// this matches spec.md §8 invariant 4's idempotence requirement).
func (e *Engine[O]) AwaitIdle(ctx context.Context) error {
	for {
		if e.queue.Idle() {
			e.broadcast.Send(e.formatter.IdleOutput())
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(2 * time.Millisecond):
		}
	}
}

// ShutdownGraceful implements shutdown_graceful: await idle, set the
// cancellation flag, close the broadcast channel, and join any
// registered sink-close errors via go.uber.org/multierr.
func (e *Engine[O]) ShutdownGraceful(ctx context.Context) error {
	err := e.AwaitIdle(ctx)
	e.cancelled.Set()
	if e.workers != nil {
		e.workers.Wait()
	}
	e.broadcast.Close()

	var combined error
	combined = multierr.Append(combined, err)
	for _, c := range e.closers {
		combined = multierr.Append(combined, c())
	}
	return combined
}
