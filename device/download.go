package device

import (
	"context"
	"fmt"
	"time"

	"github.com/trackward/go-sq100/protocol"
	"github.com/trackward/go-sq100/track"
)

// DownloadTrack transfers one track's storage from the watch and returns
// the reassembled payload. The transfer is chunked: ceil(size/chunk) Read
// Memory requests in ascending offset order, each independently retried per
// the session's policy. Chunks carry no positional tag of their own, so
// issue order is reassembly order.
//
// A chunk that exhausts its retries aborts the download; no partial payload
// is ever returned. A reassembled payload whose size disagrees with the
// catalog fails with *IncompleteTransferError.
//
// Cancellation is checked between chunk requests, never mid-frame, so the
// watch is never abandoned halfway through a response.
func (s *Session) DownloadTrack(ctx context.Context, summary track.Summary) (*track.RawPayload, error) {
	size := int(summary.StorageSize)
	chunkSize := s.config.ChunkSize
	chunks := (size + chunkSize - 1) / chunkSize

	s.logDebug("starting track download",
		"track", summary.ID,
		"size", size,
		"chunks", chunks,
	)

	startTime := time.Now()
	buf := make([]byte, 0, size)

	for i := 0; i < chunks; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("cancelled: %w", err)
		}

		offset := i * chunkSize
		n := size - offset
		if n > chunkSize {
			n = chunkSize
		}

		cmd := s.codec.EncodeReadMemoryCmd(summary.StorageAddress+uint32(offset), uint16(n))
		resp, err := s.sendReceive(ctx, cmd)
		if err != nil {
			return nil, fmt.Errorf("read chunk %d/%d of track %d: %w", i+1, chunks, summary.ID, err)
		}
		if resp.Command != protocol.CmdReadMemory {
			return nil, &UnexpectedResponseError{Got: resp.Command, Want: protocol.CmdReadMemory}
		}

		buf = append(buf, resp.Data...)

		s.reportProgress(Progress{
			Phase:        PhaseDownloading,
			CurrentChunk: i + 1,
			TotalChunks:  chunks,
			BytesRead:    len(buf),
			Percentage:   float64(len(buf)) / float64(size) * 100,
			ElapsedTime:  time.Since(startTime),
		})
	}

	if len(buf) != size {
		return nil, &IncompleteTransferError{TrackID: summary.ID, Expected: size, Got: len(buf)}
	}

	s.logInfo("track downloaded",
		"track", summary.ID,
		"bytes", len(buf),
		"elapsed", time.Since(startTime).String(),
	)

	return &track.RawPayload{TrackID: summary.ID, Data: buf, ExpectedSize: size}, nil
}

// FetchTrack downloads and decodes one track. The decoded track's own
// header is checked against the catalog entry it was selected from; a
// disagreement fails with *TrackMismatchError rather than returning a track
// whose identity is in doubt.
func (s *Session) FetchTrack(ctx context.Context, summary track.Summary) (*track.Track, error) {
	payload, err := s.DownloadTrack(ctx, summary)
	if err != nil {
		return nil, err
	}

	s.reportProgress(Progress{Phase: PhaseParsing, BytesRead: len(payload.Data), Percentage: 100})

	t, err := track.Parse(payload)
	if err != nil {
		return nil, fmt.Errorf("parse track %d: %w", summary.ID, err)
	}

	if t.Summary.PointCount != summary.PointCount || !t.Summary.StartTime.Equal(summary.StartTime) {
		return nil, &TrackMismatchError{TrackID: summary.ID}
	}

	// The payload header carries no storage coordinates; keep the richer
	// catalog entry.
	t.Summary = summary
	return t, nil
}

// FetchTracks downloads and decodes the given tracks sequentially, in the
// order given. The serial link allows no concurrency; a failure on any
// track aborts the whole fetch, leaving tracks from earlier calls
// unaffected.
func (s *Session) FetchTracks(ctx context.Context, summaries []track.Summary) ([]*track.Track, error) {
	startTime := time.Now()
	tracks := make([]*track.Track, 0, len(summaries))

	for i, summary := range summaries {
		s.reportProgress(Progress{
			Phase:        PhaseDownloading,
			CurrentTrack: i + 1,
			TotalTracks:  len(summaries),
			Percentage:   float64(i) / float64(len(summaries)) * 100,
			ElapsedTime:  time.Since(startTime),
		})

		t, err := s.FetchTrack(ctx, summary)
		if err != nil {
			return nil, err
		}
		tracks = append(tracks, t)
	}

	s.reportProgress(Progress{
		Phase:        PhaseComplete,
		CurrentTrack: len(summaries),
		TotalTracks:  len(summaries),
		Percentage:   100,
		ElapsedTime:  time.Since(startTime),
	})

	s.logInfo("tracks fetched", "count", len(tracks), "elapsed", time.Since(startTime).String())
	return tracks, nil
}
