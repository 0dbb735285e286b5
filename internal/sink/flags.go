package sink

import "os"

// osAppendFlags mirrors the flags the teacher's file-backed log appender
// uses when opening its rotated output file: create if missing, append
// rather than truncate, write-only.
const osAppendFlags = os.O_CREATE | os.O_APPEND | os.O_WRONLY
