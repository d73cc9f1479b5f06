package protocol

// Frame structure constants.
const (
	// StartOfPacket is the frame start marker (0x02)
	StartOfPacket = 0x02

	// HeaderSize is the size of the frame prefix read first:
	// SOP(1) + LEN(2)
	HeaderSize = 3

	// ChecksumSize is the size of the trailing checksum field
	ChecksumSize = 1

	// MinFrameSize is the minimum frame size in bytes:
	// SOP(1) + LEN(2) + COMMAND(1) + CHECKSUM(1)
	MinFrameSize = 5

	// MaxPayloadSize bounds the declared payload length accepted by the
	// decoder. The watch never sends more than one memory chunk plus a
	// 29-byte section header per response.
	MaxPayloadSize = 4096
)

// Command codes understood by the watch. All commands used here are
// read-only: re-sending any of them is safe.
const (
	// CmdGetTrackCount queries the number of tracks stored on the watch
	CmdGetTrackCount = 0x78

	// CmdGetTrackInfo queries the catalog entry for one track index
	CmdGetTrackInfo = 0x79

	// CmdReadMemory reads a bounded range of track memory
	CmdReadMemory = 0x80
)

// Parameter and response sizes.
const (
	// TrackIndexParamSize is the parameter size for Get Track Info:
	// index(2)
	TrackIndexParamSize = 2

	// ReadMemoryParamSize is the parameter size for Read Memory:
	// address(4) + length(2)
	ReadMemoryParamSize = 6

	// TrackCountResponseSize is the response parameter size for
	// Get Track Count (2 bytes, big-endian count)
	TrackCountResponseSize = 2

	// MaxChunkSize is the largest memory range the watch transfers in a
	// single Read Memory response
	MaxChunkSize = 2048

	// DefaultChunkSize is the recommended Read Memory request length.
	// Small enough to keep a single response well under one second at
	// 115200 baud.
	DefaultChunkSize = 1024
)
