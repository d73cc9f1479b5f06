package device

import "time"

// Phases reported through ProgressCallback.
const (
	// PhaseCatalog - reading the on-device track catalog
	PhaseCatalog = "catalog"

	// PhaseDownloading - transferring track storage chunks
	PhaseDownloading = "downloading"

	// PhaseParsing - decoding a downloaded payload
	PhaseParsing = "parsing"

	// PhaseComplete - operation finished successfully
	PhaseComplete = "complete"
)

// Progress contains information about an in-flight catalog read or track
// download. Passed to ProgressCallback.
type Progress struct {
	// Phase is one of the Phase* constants
	Phase string

	// CurrentTrack is the 1-based index of the track being fetched
	// (multi-track operations only)
	CurrentTrack int

	// TotalTracks is the number of tracks being fetched
	TotalTracks int

	// CurrentChunk is the 1-based index of the chunk just transferred
	CurrentChunk int

	// TotalChunks is the number of chunks in the current download
	TotalChunks int

	// BytesRead is the number of payload bytes assembled so far for the
	// current track
	BytesRead int

	// Percentage is the completion percentage of the current operation
	// (0.0 to 100.0)
	Percentage float64

	// ElapsedTime is the time since the operation started
	ElapsedTime time.Duration
}

// ProgressCallback is called between chunk transfers to report progress.
// Implementations should return quickly; the serial link is idle while the
// callback runs.
type ProgressCallback func(Progress)

// Logger is an optional logging interface that can be provided to the
// session. This allows integration with any logging framework.
//
// Example with standard log package:
//
//	type StdLogger struct{}
//	func (l *StdLogger) Debug(msg string, kv ...interface{}) { log.Println(msg, kv) }
//	func (l *StdLogger) Info(msg string, kv ...interface{})  { log.Println(msg, kv) }
//	func (l *StdLogger) Error(msg string, kv ...interface{}) { log.Println(msg, kv) }
//
//	session := device.NewSession(port, device.WithLogger(&StdLogger{}))
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
