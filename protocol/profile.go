package protocol

// ChecksumAlgorithm selects the checksum function applied to frames.
type ChecksumAlgorithm byte

const (
	// ChecksumXOR XORs the length bytes and every payload byte.
	// This is what SQ100/GH-625 firmware ships with.
	ChecksumXOR ChecksumAlgorithm = iota

	// ChecksumSum8 sums the length bytes and every payload byte modulo 256.
	// Seen on some rebranded firmware variants.
	ChecksumSum8
)

// Profile collects the frame-level constants of one firmware variant.
// Substituting a Profile is the supported way to talk to a device whose
// framing differs from the stock SQ100.
type Profile struct {
	// StartMarker is the first byte of every frame
	StartMarker byte

	// Checksum selects the checksum algorithm
	Checksum ChecksumAlgorithm
}

// DefaultProfile is the stock SQ100/GH-625 framing.
var DefaultProfile = Profile{
	StartMarker: StartOfPacket,
	Checksum:    ChecksumXOR,
}
