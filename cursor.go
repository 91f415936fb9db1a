package pcmi

// HexCursor is a stateful, position-tracked reader over an ASCII-hex
// payload string, where each logical byte is two hex characters. It is
// the sole way record decoders touch payload bytes, forcing every
// endian-sensitive read through its bound EndianStrategy (spec.md §4.3).
type HexCursor struct {
	hex      string
	pos      int // character offset, not byte offset
	strategy EndianStrategy
}

// NewHexCursor creates a cursor over hex, starting at position 0, using
// strategy for multi-byte reads.
func NewHexCursor(hex string, strategy EndianStrategy) *HexCursor {
	return &HexCursor{hex: hex, strategy: strategy}
}

// Strategy returns the cursor's bound endian strategy.
func (c *HexCursor) Strategy() EndianStrategy { return c.strategy }

// Rebind replaces the cursor's endian strategy without moving its
// position, used once a record's record_format byte has been read.
func (c *HexCursor) Rebind(strategy EndianStrategy) { c.strategy = strategy }

// Position returns the current offset in hex characters.
func (c *HexCursor) Position() int { return c.pos }

// Remaining returns the number of unread hex characters.
func (c *HexCursor) Remaining() int { return len(c.hex) - c.pos }

func (c *HexCursor) require(chars int) error {
	if chars < 0 || c.pos+chars > len(c.hex) {
		return newParseError("", c.pos, "bounded read past end of payload: need %d chars, have %d", chars, c.Remaining())
	}
	return nil
}

// Skip advances the cursor by n hex characters without reading them.
func (c *HexCursor) Skip(n int) error {
	if err := c.require(n); err != nil {
		return err
	}
	c.pos += n
	return nil
}

// SkipBytes advances the cursor by n logical bytes (2n hex characters).
func (c *HexCursor) SkipBytes(n int) error { return c.Skip(n * 2) }

// Seek moves the cursor to an absolute character offset.
func (c *HexCursor) Seek(pos int) error {
	if pos < 0 || pos > len(c.hex) {
		return newParseError("", c.pos, "seek out of range: %d (len=%d)", pos, len(c.hex))
	}
	c.pos = pos
	return nil
}

// bytesAt decodes n logical bytes starting at the given character offset
// without moving the cursor.
func (c *HexCursor) bytesAt(offset, n int) ([]byte, error) {
	chars := n * 2
	if offset < 0 || offset+chars > len(c.hex) {
		return nil, newParseError("", offset, "bounded read past end of payload: need %d bytes at char offset %d, have %d chars", n, offset, len(c.hex))
	}
	return decodeHex(c.hex[offset : offset+chars])
}

// ReadByte reads one unsigned byte (2 hex chars) and advances.
func (c *HexCursor) ReadByte() (byte, error) {
	b, err := c.bytesAt(c.pos, 1)
	if err != nil {
		return 0, err
	}
	c.pos += 2
	return b[0], nil
}

// ReadSByte reads one signed byte (2 hex chars) and advances.
func (c *HexCursor) ReadSByte() (int8, error) {
	b, err := c.ReadByte()
	return int8(b), err
}

// ReadUint16 reads an unsigned 16-bit value using the bound endian
// strategy and advances by 4 hex characters.
func (c *HexCursor) ReadUint16() (uint16, error) {
	b, err := c.bytesAt(c.pos, 2)
	if err != nil {
		return 0, err
	}
	c.pos += 4
	return c.strategy.Uint16(b, 0), nil
}

// ReadInt16 reads a signed 16-bit value.
func (c *HexCursor) ReadInt16() (int16, error) {
	b, err := c.bytesAt(c.pos, 2)
	if err != nil {
		return 0, err
	}
	c.pos += 4
	return c.strategy.Int16(b, 0), nil
}

// ReadUint32 reads an unsigned 32-bit value.
func (c *HexCursor) ReadUint32() (uint32, error) {
	b, err := c.bytesAt(c.pos, 4)
	if err != nil {
		return 0, err
	}
	c.pos += 8
	return c.strategy.Uint32(b, 0), nil
}

// ReadInt32 reads a signed 32-bit value.
func (c *HexCursor) ReadInt32() (int32, error) {
	b, err := c.bytesAt(c.pos, 4)
	if err != nil {
		return 0, err
	}
	c.pos += 8
	return c.strategy.Int32(b, 0), nil
}

// PeekByte returns the byte at an absolute character offset without
// advancing the cursor.
func (c *HexCursor) PeekByte(offset int) (byte, error) {
	b, err := c.bytesAt(offset, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Slice returns the next n logical bytes as a raw hex substring and
// advances past them, without decoding.
func (c *HexCursor) Slice(n int) (string, error) {
	chars := n * 2
	if err := c.require(chars); err != nil {
		return "", err
	}
	s := c.hex[c.pos : c.pos+chars]
	c.pos += chars
	return s, nil
}

// ReadBytes reads n logical bytes and advances past them.
func (c *HexCursor) ReadBytes(n int) ([]byte, error) {
	b, err := c.bytesAt(c.pos, n)
	if err != nil {
		return nil, err
	}
	c.pos += n * 2
	return b, nil
}
