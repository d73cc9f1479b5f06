package device

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/trackward/go-sq100/protocol"
)

// sessionState tracks the single outstanding request the protocol allows.
type sessionState int

const (
	stateIdle sessionState = iota
	stateAwaitingResponse
	stateRetrying
)

// Session owns a serial connection to the watch and performs its strictly
// half-duplex request/response exchange. Session is not safe for concurrent
// use; see the package documentation.
type Session struct {
	conn   Conn
	codec  *protocol.Codec
	config Config

	mu    sync.Mutex
	state sessionState
}

// NewSession creates a Session over an already-open connection.
//
// Example:
//
//	port, _ := serial.Open("/dev/ttyUSB0", &serial.Mode{BaudRate: 115200})
//	session := device.NewSession(port,
//	    device.WithTimeout(2*time.Second),
//	    device.WithMaxRetries(5),
//	)
func NewSession(conn Conn, opts ...Option) *Session {
	if conn == nil {
		panic("conn cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Session{
		conn:   conn,
		codec:  protocol.NewCodec(cfg.Profile),
		config: cfg,
	}
}

// sendReceive writes one encoded request frame and waits for its response,
// re-sending the identical bytes on timeout or frame corruption up to the
// configured retry budget. All commands used here are read-only, so a
// duplicate delivery has no effect on the watch.
//
// Returns *LinkExhaustedError once the budget is spent.
func (s *Session) sendReceive(ctx context.Context, frame []byte) (*protocol.Frame, error) {
	if err := s.enter(); err != nil {
		return nil, err
	}
	defer s.leave()

	command := frame[protocol.HeaderSize]

	var last error
	for attempt := 1; attempt <= s.config.MaxRetries+1; attempt++ {
		if attempt > 1 {
			s.setState(stateRetrying)
			s.logInfo("re-sending request",
				"command", fmt.Sprintf("0x%02X", command),
				"attempt", attempt,
				"cause", last,
			)
		}
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("cancelled: %w", err)
		}

		resp, err := s.exchange(frame)
		if err == nil {
			return resp, nil
		}
		if !retryable(err) {
			return nil, err
		}
		last = err
	}

	err := &LinkExhaustedError{
		Command:  command,
		Attempts: s.config.MaxRetries + 1,
		Err:      last,
	}
	s.logError("request failed", "command", fmt.Sprintf("0x%02X", command), "error", err)
	return nil, err
}

// exchange performs a single write-then-read of one request/response pair.
// The response is read in two steps: the fixed frame prefix first, then the
// remainder implied by the declared payload length. Both reads share one
// deadline so a dribbling device cannot stretch a request past its timeout.
func (s *Session) exchange(frame []byte) (*protocol.Frame, error) {
	if _, err := s.conn.Write(frame); err != nil {
		return nil, fmt.Errorf("write command: %w", err)
	}
	s.setState(stateAwaitingResponse)

	deadline := time.Now().Add(s.config.Timeout)

	header := make([]byte, protocol.HeaderSize)
	if err := s.readFull(header, deadline); err != nil {
		return nil, err
	}

	total, err := s.codec.FrameSize(header)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, total)
	copy(buf, header)
	if err := s.readFull(buf[protocol.HeaderSize:], deadline); err != nil {
		return nil, err
	}

	return s.codec.Decode(buf)
}

// readFull reads len(p) bytes, tolerating partial reads, until the deadline
// passes. A serial read that returns (0, nil) hit the port timeout.
func (s *Session) readFull(p []byte, deadline time.Time) error {
	off := 0
	for off < len(p) {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return &TimeoutError{Timeout: s.config.Timeout}
		}
		if err := s.conn.SetReadTimeout(remaining); err != nil {
			return fmt.Errorf("set read timeout: %w", err)
		}

		n, err := s.conn.Read(p[off:])
		if err != nil {
			return fmt.Errorf("read response: %w", err)
		}
		if n == 0 {
			return &TimeoutError{Timeout: s.config.Timeout}
		}
		off += n
	}
	return nil
}

// retryable reports whether an exchange failure may be recovered by
// re-sending the request. Hard transport errors are not retried; the
// connection is gone and duplicating requests will not bring it back.
func retryable(err error) bool {
	var timeout *TimeoutError
	return protocol.IsRetryable(err) || errors.As(err, &timeout)
}

func (s *Session) enter() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != stateIdle {
		return ErrSessionBusy
	}
	s.state = stateAwaitingResponse
	return nil
}

func (s *Session) leave() {
	s.setState(stateIdle)
}

func (s *Session) setState(state sessionState) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// reportProgress calls the progress callback if configured.
func (s *Session) reportProgress(progress Progress) {
	if s.config.ProgressCallback != nil {
		s.config.ProgressCallback(progress)
	}
}

// logDebug logs a debug message if a logger is configured.
func (s *Session) logDebug(msg string, keysAndValues ...interface{}) {
	if s.config.Logger != nil {
		s.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (s *Session) logInfo(msg string, keysAndValues ...interface{}) {
	if s.config.Logger != nil {
		s.config.Logger.Info(msg, keysAndValues...)
	}
}

// logError logs an error message if a logger is configured.
func (s *Session) logError(msg string, keysAndValues ...interface{}) {
	if s.config.Logger != nil {
		s.config.Logger.Error(msg, keysAndValues...)
	}
}
