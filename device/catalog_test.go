package device

import (
	"context"
	"encoding/binary"
	"errors"
	"testing"
	"time"

	"github.com/trackward/go-sq100/protocol"
)

// summaryBytes builds one 30-byte catalog entry.
func summaryBytes(id uint16, start time.Time, points, durationTenths, distance, laps int, addr, size uint32) []byte {
	var b []byte
	b = append(b,
		byte(start.Year()-2000), byte(start.Month()), byte(start.Day()),
		byte(start.Hour()), byte(start.Minute()), byte(start.Second()))
	b = binary.BigEndian.AppendUint32(b, uint32(points))
	b = binary.BigEndian.AppendUint32(b, uint32(durationTenths))
	b = binary.BigEndian.AppendUint32(b, uint32(distance))
	b = binary.BigEndian.AppendUint16(b, uint16(laps))
	b = binary.BigEndian.AppendUint16(b, id)
	b = binary.BigEndian.AppendUint32(b, addr)
	b = binary.BigEndian.AppendUint32(b, size)
	return b
}

func countResponse(n uint16) fakeReply {
	var data [2]byte
	binary.BigEndian.PutUint16(data[:], n)
	return reply(protocol.Encode(protocol.CmdGetTrackCount, data[:]))
}

func TestListTracks(t *testing.T) {
	start1 := time.Date(2017, time.June, 3, 9, 15, 0, 0, time.UTC)
	start2 := time.Date(2017, time.June, 4, 18, 30, 0, 0, time.UTC)

	conn := &fakeConn{script: []fakeReply{
		countResponse(2),
		reply(protocol.Encode(protocol.CmdGetTrackInfo,
			summaryBytes(10, start1, 30, 300, 1200, 1, 0x1000, 504))),
		reply(protocol.Encode(protocol.CmdGetTrackInfo,
			summaryBytes(11, start2, 61, 610, 2500, 2, 0x2000, 1000))),
	}}
	s := testSession(conn)

	summaries, err := s.ListTracks(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(summaries) != 2 {
		t.Fatalf("summaries = %d, want 2", len(summaries))
	}

	// Device enumeration order is preserved.
	if summaries[0].ID != 10 || summaries[1].ID != 11 {
		t.Errorf("ids = %d,%d, want 10,11", summaries[0].ID, summaries[1].ID)
	}
	if summaries[0].PointCount != 30 {
		t.Errorf("point count = %d, want 30", summaries[0].PointCount)
	}
	if summaries[1].StorageAddress != 0x2000 || summaries[1].StorageSize != 1000 {
		t.Errorf("storage = 0x%X/%d, want 0x2000/1000",
			summaries[1].StorageAddress, summaries[1].StorageSize)
	}
	if !summaries[1].StartTime.Equal(start2) {
		t.Errorf("start time = %v, want %v", summaries[1].StartTime, start2)
	}
}

func TestListTracksEmptyCatalog(t *testing.T) {
	conn := &fakeConn{script: []fakeReply{countResponse(0)}}
	s := testSession(conn)

	summaries, err := s.ListTracks(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(summaries) != 0 {
		t.Errorf("summaries = %d, want 0", len(summaries))
	}
}

func TestListTracksAllOrNothing(t *testing.T) {
	// The second metadata query dies. A short catalog must not be
	// returned: it would be indistinguishable from a complete one.
	start := time.Date(2017, time.June, 3, 9, 15, 0, 0, time.UTC)
	conn := &fakeConn{script: []fakeReply{
		countResponse(2),
		reply(protocol.Encode(protocol.CmdGetTrackInfo,
			summaryBytes(10, start, 30, 300, 1200, 1, 0x1000, 504))),
		timeoutReply(),
		timeoutReply(),
	}}
	s := testSession(conn, WithMaxRetries(1), WithTimeout(time.Millisecond))

	summaries, err := s.ListTracks(context.Background())
	if summaries != nil {
		t.Fatal("expected no summaries on a failed catalog read")
	}

	var lerr *LinkExhaustedError
	if !errors.As(err, &lerr) {
		t.Fatalf("error = %v, want *LinkExhaustedError", err)
	}
	if lerr.Command != protocol.CmdGetTrackInfo {
		t.Errorf("failed command = 0x%02X, want 0x%02X", lerr.Command, protocol.CmdGetTrackInfo)
	}
}

func TestListTracksUnexpectedResponse(t *testing.T) {
	conn := &fakeConn{script: []fakeReply{
		reply(protocol.Encode(protocol.CmdReadMemory, []byte{0x00, 0x02})),
	}}
	s := testSession(conn)

	_, err := s.ListTracks(context.Background())
	var uerr *UnexpectedResponseError
	if !errors.As(err, &uerr) {
		t.Fatalf("error = %v, want *UnexpectedResponseError", err)
	}
	if uerr.Got != protocol.CmdReadMemory || uerr.Want != protocol.CmdGetTrackCount {
		t.Errorf("got/want = 0x%02X/0x%02X", uerr.Got, uerr.Want)
	}
}

func TestListTracksBadCountLength(t *testing.T) {
	conn := &fakeConn{script: []fakeReply{
		reply(protocol.Encode(protocol.CmdGetTrackCount, []byte{0x02})),
	}}
	s := testSession(conn)

	if _, err := s.ListTracks(context.Background()); err == nil {
		t.Fatal("expected error, got nil")
	}
}
