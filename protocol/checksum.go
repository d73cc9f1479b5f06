package protocol

// checksum computes the frame checksum for the given payload under the
// profile's algorithm. The two big-endian length bytes participate in the
// checksum exactly as they appear on the wire.
func (p Profile) checksum(payload []byte) byte {
	n := uint16(len(payload))
	lenHi, lenLo := byte(n>>8), byte(n)

	switch p.Checksum {
	case ChecksumSum8:
		sum := lenHi + lenLo
		for _, b := range payload {
			sum += b
		}
		return sum
	default:
		// XOR is order-insensitive, so variants that checksum the length
		// little-endian first produce the same byte.
		cs := lenHi ^ lenLo
		for _, b := range payload {
			cs ^= b
		}
		return cs
	}
}
