// Package taskqueue implements the engine's FIFO task queue plus the two
// atomic counters that together define the idle invariant.
package taskqueue

import (
	"container/list"
	"sync"

	"go.uber.org/atomic"
)

// Queue is an unbounded FIFO protected by a short-lived mutex: the lock is
// held only across the single push/pop operation, never across I/O or
// awaits. Pending and Active are exported atomics so the executor and the
// active-task guard can manipulate them directly under the ordering rules
// spec.md §5 requires (every update sequentially consistent).
type Queue[T any] struct {
	mu sync.Mutex
	l  *list.List

	Pending atomic.Int64
	Active  atomic.Int64
}

// New returns an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{l: list.New()}
}

// Push enqueues a single task and increments Pending by one. Pending is
// incremented before the task is published to the list, never after:
// incrementing afterward would let a concurrent Pop dequeue the task
// while Pending still held its pre-push value, driving Pending negative
// once the caller's pending-decrement runs (spec.md §3 invariants 1/2).
func (q *Queue[T]) Push(v T) int64 {
	n := q.Pending.Add(1)
	q.mu.Lock()
	q.l.PushBack(v)
	q.mu.Unlock()
	return n
}

// PushMany enqueues all of tasks under one lock acquisition, incrementing
// Pending by len(tasks) once, before publication — see Push.
func (q *Queue[T]) PushMany(tasks []T) int64 {
	n := q.Pending.Add(int64(len(tasks)))
	q.mu.Lock()
	for _, t := range tasks {
		q.l.PushBack(t)
	}
	q.mu.Unlock()
	return n
}

// Pop removes and returns the task at the head of the queue, if any. It
// does not touch Pending/Active — the caller (the scheduler driver) is
// responsible for the atomic active-increment/pending-decrement pair
// that must happen together, in that order, once it has committed to
// running the popped task.
func (q *Queue[T]) Pop() (v T, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	front := q.l.Front()
	if front == nil {
		return v, false
	}
	q.l.Remove(front)
	return front.Value.(T), true
}

// Len reports the number of tasks currently enqueued but not yet popped
// (total_tasks in the control surface).
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.l.Len()
}

// TotalOnQueue reports pending+active (total_tasks_on_queue).
func (q *Queue[T]) TotalOnQueue() int64 {
	return q.Pending.Load() + q.Active.Load()
}

// Idle reports whether pending == 0 && active == 0.
func (q *Queue[T]) Idle() bool {
	return q.Pending.Load() == 0 && q.Active.Load() == 0
}
