package pcmi

// recordHeader is the common prefix shared by every record type (spec.md
// §3): a word count, a record id, a record type byte and a record format
// byte. record_format is the fifth byte of the header and selects the
// endian strategy for every multi-byte field in the record, including
// record_size_words itself — so the format byte is peeked ahead of the
// header read, and every field, header included, is decoded through the
// strategy it selects (spec.md §8: "every multi-byte field is decoded
// big-endian" for format<20, little-endian otherwise; record_size_words
// is named as a header field, not an exception).
type recordHeader struct {
	RecordSizeWords int
	ID              byte
	RecordType      byte
	RecordFormat    byte
	Strategy        EndianStrategy
}

// readRecordHeader reads the four common header fields from the front of
// cur, resolving the endian strategy from a peek at the record_format
// byte before reading anything multi-byte, and rebinds cur to that
// strategy so every subsequent read in the caller uses it too.
func readRecordHeader(cur *HexCursor) (*recordHeader, error) {
	recordFormat, err := cur.PeekByte(cur.Position() + 8)
	if err != nil {
		return nil, err
	}
	strategy := endianStrategyForFormat(recordFormat)
	cur.Rebind(strategy)

	sizeWords, err := cur.ReadUint16()
	if err != nil {
		return nil, err
	}
	id, err := cur.ReadByte()
	if err != nil {
		return nil, err
	}
	recordType, err := cur.ReadByte()
	if err != nil {
		return nil, err
	}
	if _, err := cur.ReadByte(); err != nil { // record_format, already resolved above
		return nil, err
	}

	return &recordHeader{
		RecordSizeWords: int(sizeWords),
		ID:              id,
		RecordType:      recordType,
		RecordFormat:    recordFormat,
		Strategy:        strategy,
	}, nil
}

// validateRecordSize checks spec.md §8's invariant that
// record_size_words * 2 equals the frame's declared payload byte
// length. recordType names the caller for the resulting error.
func validateRecordSize(recordType string, sizeWords int, payloadHex string) error {
	declaredBytes := sizeWords * 2
	actualBytes := len(payloadHex) / 2
	if declaredBytes != actualBytes {
		return newProtocolError("%s: header declares %d words (%d bytes) but payload carries %d bytes", recordType, sizeWords, declaredBytes, actualBytes)
	}
	return nil
}
