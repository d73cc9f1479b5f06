// Package track defines the track data model and decodes the watch's binary
// track storage format.
//
// # Data Model
//
// A Summary describes one recorded track as listed in the device catalog.
// A Track is the fully decoded result: its Summary, a time-ascending
// sequence of Waypoints (one per recording interval), and the indices of
// lap boundaries.
//
// # Binary Format
//
// Track storage is a 24-byte header followed by fixed-size 16-byte waypoint
// records, all big-endian:
//
//	header: [VERSION][RSVD][YY MM DD HH MM SS][POINTS(4)][DURATION(4)]
//	        [DISTANCE(4)][LAPS(2)][RSVD(4)]
//	record: [INTERVAL(2)][LAT(4)][LON(4)][ALT(2)][HR(1)][FLAGS(1)][SPEED(2)]
//
// Timestamps are delta-encoded: each record carries the interval since the
// previous one in tenths of a second. Latitude and longitude are signed
// integers scaled by 1e-6 degrees.
//
// Records whose position, altitude or heart-rate value falls outside the
// device's valid range are kept as missing samples rather than dropped, so
// the one-record-per-interval time base survives sensor dropouts. Check
// Waypoint.Samples before trusting a field.
//
// # Usage
//
//	t, err := track.Parse(payload)
//	if err != nil {
//	    // *TruncatedRecordError or *UnsupportedVersionError
//	}
//	for _, wp := range t.Waypoints {
//	    if wp.Samples.Has(track.SamplePosition) {
//	        // wp.Latitude / wp.Longitude are real fixes
//	    }
//	}
package track
