//go:build unix

package netio

import (
	"net"
	"syscall"

	"golang.org/x/sys/unix"
)

// TryReadOnce performs at most one non-blocking read from conn into buf.
// If the read would block (EAGAIN/EWOULDBLOCK) or fails for any other
// reason, it returns n=0 and a nil error — per spec.md §4.B, a would-block
// or error read is treated as an empty slice, never propagated as a
// worker failure.
func TryReadOnce(conn net.Conn, buf []byte) (n int, err error) {
	sc, ok := conn.(syscall.Conn)
	if !ok {
		return 0, nil
	}
	raw, rcErr := sc.SyscallConn()
	if rcErr != nil {
		return 0, nil
	}

	_ = raw.Read(func(fd uintptr) bool {
		got, readErr := unix.Read(int(fd), buf)
		if readErr == unix.EAGAIN || readErr == unix.EWOULDBLOCK {
			n = 0
		} else if readErr != nil {
			n = 0
		} else if got < 0 {
			n = 0
		} else {
			n = got
		}
		// Always report "done" so the runtime poller never blocks this
		// goroutine waiting for readability: a single non-blocking
		// attempt is all spec.md allows.
		return true
	})
	return n, nil
}
