// Package bufpool recycles fixed-size read buffers for the scanner engine.
package bufpool

import "sync"

// Size is the capacity of every buffer handed out by the pool. A single
// non-blocking read never needs more than a small first chunk of a
// connection, so every buffer is fixed at this size.
const Size = 512

// Pool is a bounded-by-nothing, unordered stash of byte buffers. It never
// needs a hard capacity: the number of buffers in flight is already capped
// by the engine's concurrency permit, so Get never blocks. Put discards
// only buffers whose capacity is below Size.
type Pool struct {
	pool sync.Pool
}

// New returns a ready-to-use buffer pool.
func New() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				buf := make([]byte, Size)
				return &buf
			},
		},
	}
}

// Get returns a buffer of length Size, allocating a fresh one if the pool
// is empty. The returned bytes may be uninitialized garbage from a prior
// use; callers must never read past the length actually written by a
// subsequent read.
func (p *Pool) Get() []byte {
	buf := p.pool.Get().(*[]byte)
	return *buf
}

// Put returns a buffer to the pool for reuse. Put re-slices it to its full
// Size before storing it, so the next Get never observes a shrunk buffer;
// a buffer with capacity below Size is dropped instead of stored.
func (p *Pool) Put(buf []byte) {
	if cap(buf) < Size {
		return
	}
	full := buf[:Size]
	p.pool.Put(&full)
}
