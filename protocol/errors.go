package protocol

import "fmt"

// MalformedFrameError indicates that a frame does not begin with the
// expected start marker or is structurally invalid.
type MalformedFrameError struct {
	// Got is the byte found where the start marker was expected
	Got byte

	// Want is the start marker the profile expects
	Want byte
}

func (e *MalformedFrameError) Error() string {
	return fmt.Sprintf("malformed frame: start marker 0x%02X, expected 0x%02X", e.Got, e.Want)
}

// TruncatedFrameError indicates that fewer bytes were available than the
// frame's declared payload length requires.
type TruncatedFrameError struct {
	// Declared is the total frame size implied by the length field
	Declared int

	// Got is the number of bytes actually available
	Got int
}

func (e *TruncatedFrameError) Error() string {
	return fmt.Sprintf("truncated frame: got %d bytes, declared length requires %d", e.Got, e.Declared)
}

// ChecksumMismatchError indicates that the recomputed frame checksum does
// not match the trailing checksum byte.
type ChecksumMismatchError struct {
	// Want is the checksum carried by the frame
	Want byte

	// Got is the checksum recomputed over the received bytes
	Got byte
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("frame checksum mismatch: computed 0x%02X, frame carries 0x%02X", e.Got, e.Want)
}

// IsRetryable reports whether err is a frame-level decode failure that a
// link session may recover from by re-sending the request.
func IsRetryable(err error) bool {
	switch err.(type) {
	case *MalformedFrameError, *TruncatedFrameError, *ChecksumMismatchError:
		return true
	}
	return false
}
