//go:build !unix

package netio

import (
	"net"
	"time"
)

// TryReadOnce performs at most one best-effort non-blocking read on
// platforms without raw socket control: it arms a near-zero read deadline
// so a Read call either returns immediately-available bytes or times out,
// then clears the read deadline (any deadline set before the call is not
// kept). A timeout or any other error
// is treated as n=0, matching the unix implementation's contract.
func TryReadOnce(conn net.Conn, buf []byte) (n int, err error) {
	_ = conn.SetReadDeadline(time.Now())
	defer conn.SetReadDeadline(time.Time{})

	got, readErr := conn.Read(buf)
	if readErr != nil {
		return 0, nil
	}
	return got, nil
}
