package device

import (
	"errors"
	"fmt"
	"time"
)

// ErrSessionBusy is returned when a request is issued while another is in
// flight on the same Session. The watch's protocol is strictly half-duplex;
// callers must serialize access.
var ErrSessionBusy = errors.New("session busy: one request-response pair in flight at a time")

// TimeoutError indicates that no complete response frame arrived within the
// per-request timeout.
type TimeoutError struct {
	// Timeout is the per-request budget that elapsed
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("no response within %s", e.Timeout)
}

// LinkExhaustedError indicates that a request failed after exhausting its
// retry budget. It is terminal for the operation that issued the request:
// the enclosing catalog read or track download is aborted.
type LinkExhaustedError struct {
	// Command is the command code of the failed request
	Command byte

	// Attempts is the total number of times the request was sent
	Attempts int

	// Err is the failure of the final attempt
	Err error
}

func (e *LinkExhaustedError) Error() string {
	return fmt.Sprintf("command 0x%02X failed after %d attempts: %v", e.Command, e.Attempts, e.Err)
}

func (e *LinkExhaustedError) Unwrap() error {
	return e.Err
}

// UnexpectedResponseError indicates that the watch answered with a
// different command code than the request carried.
type UnexpectedResponseError struct {
	// Got is the command code found in the response
	Got byte

	// Want is the command code that was requested
	Want byte
}

func (e *UnexpectedResponseError) Error() string {
	return fmt.Sprintf("unexpected response: command 0x%02X, expected 0x%02X", e.Got, e.Want)
}

// IncompleteTransferError indicates that a download completed all its chunk
// requests but the reassembled payload does not have the size the catalog
// declared. This is protocol bookkeeping gone wrong, not a transport
// failure; it is never retried automatically.
type IncompleteTransferError struct {
	// TrackID identifies the affected track
	TrackID uint16

	// Expected is the byte count the catalog declared
	Expected int

	// Got is the byte count actually assembled
	Got int
}

func (e *IncompleteTransferError) Error() string {
	return fmt.Sprintf("incomplete transfer of track %d: assembled %d bytes, catalog declares %d",
		e.TrackID, e.Got, e.Expected)
}

// TrackMismatchError indicates that a downloaded track's own header
// disagrees with the catalog entry it was selected from. The watch was
// likely modified between cataloging and download.
type TrackMismatchError struct {
	// TrackID identifies the affected track
	TrackID uint16
}

func (e *TrackMismatchError) Error() string {
	return fmt.Sprintf("track %d header does not match its catalog entry", e.TrackID)
}
