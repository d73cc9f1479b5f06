package device

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/trackward/go-sq100/protocol"
	"github.com/trackward/go-sq100/track"
)

// ListTracks reads the complete track catalog from the watch: one track
// count query followed by one metadata query per catalog index. Summaries
// are returned in device enumeration order.
//
// The catalog is all-or-nothing: the first failed query aborts the read and
// no summaries are returned, since a short catalog is indistinguishable
// from a complete one.
func (s *Session) ListTracks(ctx context.Context) ([]track.Summary, error) {
	resp, err := s.sendReceive(ctx, s.codec.EncodeTrackCountCmd())
	if err != nil {
		return nil, fmt.Errorf("query track count: %w", err)
	}
	if resp.Command != protocol.CmdGetTrackCount {
		return nil, &UnexpectedResponseError{Got: resp.Command, Want: protocol.CmdGetTrackCount}
	}
	if len(resp.Data) != protocol.TrackCountResponseSize {
		return nil, fmt.Errorf("invalid track count response: got %d bytes, expected %d",
			len(resp.Data), protocol.TrackCountResponseSize)
	}

	count := binary.BigEndian.Uint16(resp.Data)
	s.logDebug("track count received", "count", count)

	summaries := make([]track.Summary, 0, count)
	for i := uint16(0); i < count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("cancelled: %w", err)
		}

		resp, err := s.sendReceive(ctx, s.codec.EncodeTrackInfoCmd(i))
		if err != nil {
			return nil, fmt.Errorf("query track metadata %d: %w", i, err)
		}
		if resp.Command != protocol.CmdGetTrackInfo {
			return nil, &UnexpectedResponseError{Got: resp.Command, Want: protocol.CmdGetTrackInfo}
		}

		summary, err := track.ParseSummary(resp.Data)
		if err != nil {
			return nil, fmt.Errorf("decode track metadata %d: %w", i, err)
		}
		summaries = append(summaries, summary)
	}

	s.logInfo("track catalog read", "tracks", len(summaries))
	return summaries, nil
}
