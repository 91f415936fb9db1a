package pcmi

import "fmt"

// decodeRLI1 parses a 1-byte Record Length Indicator: two hex chars
// expressing an 8-bit word count, returning the payload byte count
// (words * 2).
func decodeRLI1(hex string) (int, error) {
	if len(hex) != 2 {
		return 0, fmt.Errorf("pcmi: decodeRLI1: want 2 hex chars, got %d", len(hex))
	}
	words, err := decodeHexByte(hex)
	if err != nil {
		return 0, fmt.Errorf("pcmi: decodeRLI1: %w", err)
	}
	return int(words) * 2, nil
}

// encodeRLI1 encodes a byte count as a 1-byte RLI. byteCount must be even
// and representable in one byte of words (0..510).
func encodeRLI1(byteCount int) (string, error) {
	if byteCount%2 != 0 {
		return "", fmt.Errorf("pcmi: encodeRLI1: odd byte count %d", byteCount)
	}
	words := byteCount / 2
	if words < 0 || words > 0xFF {
		return "", fmt.Errorf("pcmi: encodeRLI1: word count %d out of range", words)
	}
	return encodeHexByte(byte(words)), nil
}

// decodeRLI2 parses a 2-byte Record Length Indicator: four hex chars,
// low byte first then high byte (independent of payload endianness),
// expressing a 16-bit word count. Returns the payload byte count.
//
// Scenario from spec.md §8: decodeRLI2("B800") == 368 (0x00B8 words * 2).
func decodeRLI2(hex string) (int, error) {
	if len(hex) != 4 {
		return 0, fmt.Errorf("pcmi: decodeRLI2: want 4 hex chars, got %d", len(hex))
	}
	lo, err := decodeHexByte(hex[0:2])
	if err != nil {
		return 0, fmt.Errorf("pcmi: decodeRLI2: %w", err)
	}
	hi, err := decodeHexByte(hex[2:4])
	if err != nil {
		return 0, fmt.Errorf("pcmi: decodeRLI2: %w", err)
	}
	words := uint16(lo) | uint16(hi)<<8
	return int(words) * 2, nil
}

// encodeRLI2 encodes a byte count as a 2-byte RLI (low byte first, high
// byte second, in hex ASCII). byteCount must be even.
func encodeRLI2(byteCount int) (string, error) {
	if byteCount%2 != 0 {
		return "", fmt.Errorf("pcmi: encodeRLI2: odd byte count %d", byteCount)
	}
	words := byteCount / 2
	if words < 0 || words > 0xFFFF {
		return "", fmt.Errorf("pcmi: encodeRLI2: word count %d out of range", words)
	}
	lo := byte(words)
	hi := byte(words >> 8)
	return encodeHexByte(lo) + encodeHexByte(hi), nil
}

// vliHexWidth returns the number of hex characters a Variable Length
// Indicator occupies inside a payload, given the command byte of the
// enclosing frame (spec.md §4.1): 2 chars when cmd < 0xB0, else 4.
func vliHexWidth(cmd CommandCode) int {
	if cmd < 0xB0 {
		return 2
	}
	return 4
}
