package protocol

import "testing"

func TestChecksumXOR(t *testing.T) {
	p := Profile{StartMarker: StartOfPacket, Checksum: ChecksumXOR}

	tests := []struct {
		name     string
		payload  []byte
		expected byte
	}{
		{
			name:     "single command byte",
			payload:  []byte{0x78},
			expected: 0x01 ^ 0x78, // length 1 XOR payload
		},
		{
			name:     "command with parameter",
			payload:  []byte{0x80, 0x00, 0x00, 0x10, 0x00, 0x01, 0x00},
			expected: 0x07 ^ 0x80 ^ 0x10 ^ 0x01,
		},
		{
			name:     "length above 255 involves high byte",
			payload:  make([]byte, 0x0102), // all zeros: checksum is XOR of length bytes
			expected: 0x01 ^ 0x02,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.checksum(tt.payload); got != tt.expected {
				t.Errorf("checksum = 0x%02X, want 0x%02X", got, tt.expected)
			}
		})
	}
}

func TestChecksumSum8(t *testing.T) {
	p := Profile{StartMarker: StartOfPacket, Checksum: ChecksumSum8}

	tests := []struct {
		name     string
		payload  []byte
		expected byte
	}{
		{
			name:     "single command byte",
			payload:  []byte{0x78},
			expected: 0x01 + 0x78,
		},
		{
			name:     "sum wraps modulo 256",
			payload:  []byte{0xFF, 0xFF, 0x05},
			expected: byte((3 + 0xFF + 0xFF + 0x05) % 256),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.checksum(tt.payload); got != tt.expected {
				t.Errorf("checksum = 0x%02X, want 0x%02X", got, tt.expected)
			}
		})
	}
}
