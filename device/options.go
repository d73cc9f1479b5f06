package device

import (
	"time"

	"github.com/trackward/go-sq100/protocol"
)

// Config holds the session configuration.
type Config struct {
	// Timeout is the per-request response timeout
	Timeout time.Duration

	// MaxRetries is the number of times a request is re-sent after a
	// timeout or a corrupted response frame
	MaxRetries int

	// ChunkSize is the memory range requested per Read Memory command
	ChunkSize int

	// Profile selects the frame-level protocol constants
	Profile protocol.Profile

	// Logger is used for logging operations (optional)
	Logger Logger

	// ProgressCallback is called during downloads to report progress
	// (optional)
	ProgressCallback ProgressCallback
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Timeout:    5 * time.Second,
		MaxRetries: 3,
		ChunkSize:  protocol.DefaultChunkSize,
		Profile:    protocol.DefaultProfile,
	}
}

// Option is a functional option for configuring a Session.
type Option func(*Config)

// WithTimeout sets the per-request response timeout. The timeout applies to
// each request individually, not to a whole download.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		if timeout > 0 {
			c.Timeout = timeout
		}
	}
}

// WithMaxRetries sets how many times a request is re-sent after a timeout
// or corrupted response before the operation fails.
func WithMaxRetries(retries int) Option {
	return func(c *Config) {
		if retries >= 0 {
			c.MaxRetries = retries
		}
	}
}

// WithChunkSize sets the memory range requested per Read Memory command.
// Values outside 1..protocol.MaxChunkSize are ignored.
func WithChunkSize(size int) Option {
	return func(c *Config) {
		if size > 0 && size <= protocol.MaxChunkSize {
			c.ChunkSize = size
		}
	}
}

// WithProfile sets the protocol profile for firmware variants whose framing
// differs from the stock SQ100.
func WithProfile(p protocol.Profile) Option {
	return func(c *Config) {
		c.Profile = p
	}
}

// WithLogger sets a logger for session operations.
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithProgressCallback sets a callback to track catalog and download
// progress.
//
// Example:
//
//	session := device.NewSession(port,
//	    device.WithProgressCallback(func(p device.Progress) {
//	        fmt.Printf("%.1f%% complete\n", p.Percentage)
//	    }),
//	)
func WithProgressCallback(callback ProgressCallback) Option {
	return func(c *Config) {
		c.ProgressCallback = callback
	}
}
