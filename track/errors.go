package track

import "fmt"

// TruncatedRecordError indicates that a track payload's byte count is
// inconsistent with its fixed-size record layout.
type TruncatedRecordError struct {
	// Got is the number of waypoint bytes present after the header
	Got int

	// Want is the byte count the layout requires
	Want int

	// RecordSize is the fixed record size of the layout
	RecordSize int
}

func (e *TruncatedRecordError) Error() string {
	return fmt.Sprintf("truncated track data: %d waypoint bytes, need %d (%d-byte records)",
		e.Got, e.Want, e.RecordSize)
}

// UnsupportedVersionError indicates that the payload header declares a
// format version this layout does not handle.
type UnsupportedVersionError struct {
	// Version is the format version found in the header
	Version byte

	// Supported is the version the layout handles
	Supported byte
}

func (e *UnsupportedVersionError) Error() string {
	return fmt.Sprintf("unsupported track format version 0x%02X (supported: 0x%02X)",
		e.Version, e.Supported)
}
