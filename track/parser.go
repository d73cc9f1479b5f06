package track

import (
	"encoding/binary"
	"time"
)

// Layout constants for the stock track storage format.
const (
	// FormatVersion is the storage format version this package decodes
	FormatVersion = 0x01

	// HeaderSize is the size of the track payload header in bytes
	HeaderSize = 24

	// RecordSize is the fixed size of one waypoint record in bytes
	RecordSize = 16

	// SummarySize is the size of one catalog entry in bytes
	SummarySize = 30

	// flagLapMarker is the record flag bit marking a lap boundary
	flagLapMarker = 0x01
)

// Device-defined validity bounds. Values outside these ranges are sensor
// dropouts and decode as missing samples.
const (
	// maxLatitude / maxLongitude in 1e-6 degree units
	maxLatitude  = 90_000_000
	maxLongitude = 180_000_000

	// altitudeSentinel is written by the firmware when no barometric or
	// GPS altitude was available
	altitudeSentinel = -32768

	minAltitude = -1000
	maxAltitude = 10000

	// heart rate 0 means no strap signal; the firmware caps at 240
	maxHeartRate = 240

	// speedSentinel is written when no speed could be derived
	speedSentinel = 0xFFFF
)

// Layout describes one firmware variant's record layout. Field offsets
// inside header and record are fixed across known variants; sizes and the
// version byte are not.
type Layout struct {
	// Version is the header format version this layout decodes
	Version byte

	// HeaderSize is the track payload header size in bytes
	HeaderSize int

	// RecordSize is the waypoint record size in bytes
	RecordSize int
}

// DefaultLayout is the stock SQ100/GH-625 track storage layout.
var DefaultLayout = Layout{
	Version:    FormatVersion,
	HeaderSize: HeaderSize,
	RecordSize: RecordSize,
}

// Parse decodes a reassembled track payload using DefaultLayout.
func Parse(p *RawPayload) (*Track, error) {
	return DefaultLayout.Parse(p)
}

// Parse decodes a reassembled track payload into an ordered waypoint
// sequence and lap boundary indices.
//
// Returns *UnsupportedVersionError if the header declares a different
// format version, and *TruncatedRecordError if the payload is shorter than
// the header, does not divide evenly into records, or disagrees with the
// header's declared point count. No partial Track is ever returned.
func (l Layout) Parse(p *RawPayload) (*Track, error) {
	data := p.Data
	if len(data) < l.HeaderSize {
		return nil, &TruncatedRecordError{Got: len(data), Want: l.HeaderSize, RecordSize: l.RecordSize}
	}
	if data[0] != l.Version {
		return nil, &UnsupportedVersionError{Version: data[0], Supported: l.Version}
	}

	start := decodeTimestamp(data[2:8])
	declared := int(binary.BigEndian.Uint32(data[8:12]))
	duration := tenths(binary.BigEndian.Uint32(data[12:16]))
	distance := int(binary.BigEndian.Uint32(data[16:20]))
	lapCount := int(binary.BigEndian.Uint16(data[20:22]))

	body := data[l.HeaderSize:]
	if rem := len(body) % l.RecordSize; rem != 0 {
		return nil, &TruncatedRecordError{
			Got:        len(body),
			Want:       len(body) - rem + l.RecordSize,
			RecordSize: l.RecordSize,
		}
	}
	n := len(body) / l.RecordSize
	if n != declared {
		return nil, &TruncatedRecordError{
			Got:        len(body),
			Want:       declared * l.RecordSize,
			RecordSize: l.RecordSize,
		}
	}

	t := &Track{
		Summary: Summary{
			ID:         p.TrackID,
			StartTime:  start,
			Duration:   duration,
			PointCount: n,
			Distance:   distance,
			LapCount:   lapCount,
		},
		Waypoints: make([]Waypoint, 0, n),
	}

	elapsed := time.Duration(0)
	for i := 0; i < n; i++ {
		rec := body[i*l.RecordSize : (i+1)*l.RecordSize]

		elapsed += tenths(uint32(binary.BigEndian.Uint16(rec[0:2])))
		wp := Waypoint{Timestamp: start.Add(elapsed)}

		lat := int32(binary.BigEndian.Uint32(rec[2:6]))
		lon := int32(binary.BigEndian.Uint32(rec[6:10]))
		if lat >= -maxLatitude && lat <= maxLatitude &&
			lon >= -maxLongitude && lon <= maxLongitude {
			wp.Latitude = float64(lat) * 1e-6
			wp.Longitude = float64(lon) * 1e-6
			wp.Samples |= SamplePosition
		}

		alt := int16(binary.BigEndian.Uint16(rec[10:12]))
		if alt != altitudeSentinel && alt >= minAltitude && alt <= maxAltitude {
			wp.Altitude = float64(alt)
			wp.Samples |= SampleAltitude
		}

		if hr := rec[12]; hr > 0 && hr <= maxHeartRate {
			wp.HeartRate = hr
			wp.Samples |= SampleHeartRate
		}

		if speed := binary.BigEndian.Uint16(rec[14:16]); speed != speedSentinel {
			wp.Speed = float64(speed) * 1e-2
			wp.Samples |= SampleSpeed
		}

		if rec[13]&flagLapMarker != 0 {
			t.Laps = append(t.Laps, i)
		}

		t.Waypoints = append(t.Waypoints, wp)
	}

	return t, nil
}

// ParseSummary decodes one 30-byte catalog entry.
//
// Entry structure:
//
//	[YY MM DD HH MM SS][POINTS(4)][DURATION(4)][DISTANCE(4)][LAPS(2)]
//	[ID(2)][ADDR(4)][SIZE(4)]
func ParseSummary(data []byte) (Summary, error) {
	if len(data) != SummarySize {
		return Summary{}, &TruncatedRecordError{Got: len(data), Want: SummarySize, RecordSize: SummarySize}
	}

	return Summary{
		StartTime:      decodeTimestamp(data[0:6]),
		PointCount:     int(binary.BigEndian.Uint32(data[6:10])),
		Duration:       tenths(binary.BigEndian.Uint32(data[10:14])),
		Distance:       int(binary.BigEndian.Uint32(data[14:18])),
		LapCount:       int(binary.BigEndian.Uint16(data[18:20])),
		ID:             binary.BigEndian.Uint16(data[20:22]),
		StorageAddress: binary.BigEndian.Uint32(data[22:26]),
		StorageSize:    binary.BigEndian.Uint32(data[26:30]),
	}, nil
}

// decodeTimestamp decodes the device's 6-byte [YY MM DD HH MM SS] time.
// Years count from 2000.
func decodeTimestamp(b []byte) time.Time {
	return time.Date(2000+int(b[0]), time.Month(b[1]), int(b[2]),
		int(b[3]), int(b[4]), int(b[5]), 0, time.UTC)
}

// tenths converts the device's tenth-of-a-second counters to a Duration.
func tenths(v uint32) time.Duration {
	return time.Duration(v) * 100 * time.Millisecond
}
