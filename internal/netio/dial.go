// Package netio performs the engine's bounded TCP connect and its single
// non-blocking read, keeping both off the hot path beyond their one
// allowed suspension point (spec.md §5).
package netio

import (
	"context"
	"net"
	"time"
)

// DialTimeout opens a TCP connection to addr, bounded by timeout. The
// returned error, when non-nil, is a context.DeadlineExceeded-wrapping
// error on timeout and a plain dial error otherwise — callers distinguish
// the two with context.Error's Timeout()/os.IsTimeout style check via
// errors.Is(err, context.DeadlineExceeded).
func DialTimeout(ctx context.Context, addr string, timeout time.Duration) (net.Conn, error) {
	dctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var d net.Dialer
	conn, err := d.DialContext(dctx, "tcp", addr)
	if err != nil {
		if dctx.Err() != nil {
			return nil, dctx.Err()
		}
		return nil, err
	}
	return conn, nil
}
