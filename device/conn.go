package device

import (
	"time"

	"go.bug.st/serial"
)

// Conn is the byte stream a Session talks over. It must support blocking
// reads bounded by a timeout: Read blocks until at least one byte arrives
// or the timeout elapses, returning (0, nil) on timeout.
//
// serial.Port from go.bug.st/serial satisfies Conn directly; opening and
// configuring the port is the caller's job.
type Conn interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	SetReadTimeout(t time.Duration) error
}

var _ Conn = serial.Port(nil)
