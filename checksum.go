package pcmi

// checksum computes the 8-bit additive checksum (sum of all bytes, mod
// 256) over the checksummed region: command byte + any length indicator +
// payload. STX/ETX framing sentinels are excluded (spec.md §4.1).
func checksum(data []byte) byte {
	var sum byte
	for _, b := range data {
		sum += b
	}
	return sum
}

// appendChecksum appends the two-hex-char uppercase checksum of data to
// data itself, ready to be followed by the CR terminator.
func appendChecksum(data []byte) []byte {
	sum := checksum(data)
	out := make([]byte, 0, len(data)+2)
	out = append(out, data...)
	out = append(out, encodeHexByte(sum)...)
	return out
}

// verifyChecksum recomputes the checksum over data[:checksumOffset] and
// compares it against the two hex ASCII characters at
// data[checksumOffset:checksumOffset+2]. It reports ok=false (with the
// recomputed and received values) rather than a silent failure, so the
// caller can build a *ChecksumError with both values.
func verifyChecksum(data []byte, checksumOffset int) (expected, received byte, ok bool) {
	if checksumOffset < 0 || len(data) < checksumOffset+2 {
		return 0, 0, false
	}
	expected = checksum(data[:checksumOffset])
	got, err := decodeHexByte(string(data[checksumOffset : checksumOffset+2]))
	if err != nil {
		return expected, 0, false
	}
	return expected, got, expected == got
}
