// Package protocol implements the SQ100/GH-625 serial communication protocol.
//
// This package provides the frame codec used for every request and response
// exchanged with the watch: frame construction, frame validation, and the
// checksum algorithms the firmware understands.
//
// # Frame Overview
//
// Every message on the wire, in both directions, uses the same structure:
//
//	[SOP][LEN_H][LEN_L][COMMAND][PARAMETER...][CHECKSUM]
//
// Where:
//   - SOP = Start of Packet (0x02)
//   - LEN = 16-bit payload length (big-endian); payload = command + parameter
//   - CHECKSUM = XOR of the two length bytes and every payload byte
//
// # Building Commands
//
// Use a Codec (or the package-level helpers bound to DefaultProfile) to
// construct command frames:
//
//	frame := protocol.EncodeTrackCountCmd()
//	frame := protocol.EncodeReadMemoryCmd(address, length)
//
// # Decoding Responses
//
// Decode validates structure and checksum and returns the inner payload:
//
//	f, err := protocol.Decode(buf)
//	if err != nil {
//	    // *MalformedFrameError, *TruncatedFrameError or *ChecksumMismatchError
//	}
//	data := f.Data
//
// # Firmware Variants
//
// Frame-level constants are collected in a Profile so firmware variants with
// a different start marker or checksum algorithm can be supported without
// touching the codec:
//
//	codec := protocol.NewCodec(protocol.Profile{
//	    StartMarker: 0x02,
//	    Checksum:    protocol.ChecksumSum8,
//	})
package protocol
