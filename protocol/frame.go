package protocol

import (
	"encoding/binary"
)

// Frame is one decoded protocol message. The command byte and parameter
// bytes are separated out of the wire payload; Data aliases the buffer
// passed to Decode and must not be modified afterwards.
type Frame struct {
	// Command is the command or response code
	Command byte

	// Data is the parameter bytes following the command
	Data []byte
}

// Codec encodes and decodes frames for one firmware profile.
// The zero value is not usable; construct with NewCodec.
type Codec struct {
	profile Profile
}

// NewCodec creates a Codec for the given profile.
func NewCodec(p Profile) *Codec {
	return &Codec{profile: p}
}

// Profile returns the profile the codec was constructed with.
func (c *Codec) Profile() Profile {
	return c.profile
}

// Encode builds a complete frame for the given command and parameter.
//
// Frame structure:
//
//	[SOP][LEN_H][LEN_L][COMMAND][PARAMETER...][CHECKSUM]
func (c *Codec) Encode(command byte, parameter []byte) []byte {
	payloadLen := 1 + len(parameter)
	frame := make([]byte, 0, HeaderSize+payloadLen+ChecksumSize)

	frame = append(frame, c.profile.StartMarker)
	frame = append(frame, byte(payloadLen>>8), byte(payloadLen))
	frame = append(frame, command)
	frame = append(frame, parameter...)
	frame = append(frame, c.profile.checksum(frame[HeaderSize:]))

	return frame
}

// Decode validates a complete frame and extracts its command and parameter.
//
// Returns *MalformedFrameError if the start marker is wrong or the declared
// payload is empty or oversized, *TruncatedFrameError if buf holds fewer
// bytes than the declared length requires, and *ChecksumMismatchError if the
// recomputed checksum differs from the trailing checksum byte.
func (c *Codec) Decode(buf []byte) (*Frame, error) {
	if len(buf) < MinFrameSize {
		return nil, &TruncatedFrameError{Declared: MinFrameSize, Got: len(buf)}
	}

	if buf[0] != c.profile.StartMarker {
		return nil, &MalformedFrameError{Got: buf[0], Want: c.profile.StartMarker}
	}

	payloadLen := int(binary.BigEndian.Uint16(buf[1:3]))
	if payloadLen < 1 || payloadLen > MaxPayloadSize {
		return nil, &MalformedFrameError{Got: buf[0], Want: c.profile.StartMarker}
	}

	total := HeaderSize + payloadLen + ChecksumSize
	if len(buf) < total {
		return nil, &TruncatedFrameError{Declared: total, Got: len(buf)}
	}

	payload := buf[HeaderSize : HeaderSize+payloadLen]
	want := buf[HeaderSize+payloadLen]
	if got := c.profile.checksum(payload); got != want {
		return nil, &ChecksumMismatchError{Want: want, Got: got}
	}

	return &Frame{Command: payload[0], Data: payload[1:]}, nil
}

// FrameSize returns the total frame size implied by a frame prefix of at
// least HeaderSize bytes, validating the start marker and length bounds.
// Link sessions use it to know how many bytes remain to read.
func (c *Codec) FrameSize(header []byte) (int, error) {
	if len(header) < HeaderSize {
		return 0, &TruncatedFrameError{Declared: HeaderSize, Got: len(header)}
	}
	if header[0] != c.profile.StartMarker {
		return 0, &MalformedFrameError{Got: header[0], Want: c.profile.StartMarker}
	}
	payloadLen := int(binary.BigEndian.Uint16(header[1:3]))
	if payloadLen < 1 || payloadLen > MaxPayloadSize {
		return 0, &MalformedFrameError{Got: header[0], Want: c.profile.StartMarker}
	}
	return HeaderSize + payloadLen + ChecksumSize, nil
}

// EncodeTrackCountCmd builds a Get Track Count command frame.
func (c *Codec) EncodeTrackCountCmd() []byte {
	return c.Encode(CmdGetTrackCount, nil)
}

// EncodeTrackInfoCmd builds a Get Track Info command frame for the given
// catalog index.
//
// Parameter structure:
//
//	[INDEX_H][INDEX_L]
func (c *Codec) EncodeTrackInfoCmd(index uint16) []byte {
	param := make([]byte, TrackIndexParamSize)
	binary.BigEndian.PutUint16(param, index)
	return c.Encode(CmdGetTrackInfo, param)
}

// EncodeReadMemoryCmd builds a Read Memory command frame for one chunk of
// track storage.
//
// Parameter structure:
//
//	[ADDR(4)][LENGTH(2)]
func (c *Codec) EncodeReadMemoryCmd(address uint32, length uint16) []byte {
	param := make([]byte, ReadMemoryParamSize)
	binary.BigEndian.PutUint32(param[0:4], address)
	binary.BigEndian.PutUint16(param[4:6], length)
	return c.Encode(CmdReadMemory, param)
}

// defaultCodec backs the package-level helpers.
var defaultCodec = NewCodec(DefaultProfile)

// Encode builds a frame using DefaultProfile.
func Encode(command byte, parameter []byte) []byte {
	return defaultCodec.Encode(command, parameter)
}

// Decode validates and decodes a frame using DefaultProfile.
func Decode(buf []byte) (*Frame, error) {
	return defaultCodec.Decode(buf)
}

// EncodeTrackCountCmd builds a Get Track Count frame using DefaultProfile.
func EncodeTrackCountCmd() []byte {
	return defaultCodec.EncodeTrackCountCmd()
}

// EncodeTrackInfoCmd builds a Get Track Info frame using DefaultProfile.
func EncodeTrackInfoCmd(index uint16) []byte {
	return defaultCodec.EncodeTrackInfoCmd(index)
}

// EncodeReadMemoryCmd builds a Read Memory frame using DefaultProfile.
func EncodeReadMemoryCmd(address uint32, length uint16) []byte {
	return defaultCodec.EncodeReadMemoryCmd(address, length)
}
