package track

import "time"

// Summary describes one recorded track as enumerated by the device catalog.
type Summary struct {
	// ID is the track identifier assigned by the watch
	ID uint16

	// StartTime is the recording start time (device clock, UTC assumed)
	StartTime time.Time

	// Duration is the total recording duration
	Duration time.Duration

	// PointCount is the number of waypoint records in the track
	PointCount int

	// Distance is the recorded distance in metres
	Distance int

	// LapCount is the number of laps the watch recorded
	LapCount int

	// StorageAddress is the track's start address in device memory
	StorageAddress uint32

	// StorageSize is the track's size in device memory, in bytes
	StorageSize uint32
}

// RawPayload is the reassembled, verified byte content of one track's
// storage. Produced by the downloader; consumed by Parse.
type RawPayload struct {
	// TrackID identifies the track the bytes belong to
	TrackID uint16

	// Data is the raw track storage, header included
	Data []byte

	// ExpectedSize is the byte count the catalog declared for this track.
	// Data is only handed out once len(Data) == ExpectedSize.
	ExpectedSize int
}

// SampleMask records which fields of a Waypoint carry real sensor data.
type SampleMask uint8

const (
	// SamplePosition marks a valid latitude/longitude fix
	SamplePosition SampleMask = 1 << iota

	// SampleAltitude marks a valid altitude
	SampleAltitude

	// SampleHeartRate marks a valid heart-rate reading
	SampleHeartRate

	// SampleSpeed marks a valid speed reading
	SampleSpeed
)

// Has reports whether every sample in m is present.
func (s SampleMask) Has(m SampleMask) bool {
	return s&m == m
}

// Waypoint is one decoded recording interval.
// Fields not flagged in Samples hold zero values and must not be trusted.
type Waypoint struct {
	// Timestamp is the absolute sample time, reconstructed from the
	// track start time and the cumulative record intervals
	Timestamp time.Time

	// Latitude in degrees, positive north
	Latitude float64

	// Longitude in degrees, positive east
	Longitude float64

	// Altitude in metres
	Altitude float64

	// Speed in metres per second
	Speed float64

	// HeartRate in beats per minute
	HeartRate uint8

	// Samples flags which of the fields above are valid
	Samples SampleMask
}

// Track is one fully decoded track.
type Track struct {
	// Summary is the catalog entry the track was downloaded from
	Summary Summary

	// Waypoints is the time-ascending sequence of decoded records
	Waypoints []Waypoint

	// Laps holds the waypoint indices at which a lap boundary was marked
	Laps []int
}
