package pcmi

import "testing"

func TestHexCursorReadByte(t *testing.T) {
	cur := NewHexCursor("FF00", Swap)
	b, err := cur.ReadByte()
	if err != nil {
		t.Fatalf("ReadByte: %v", err)
	}
	if b != 0xFF {
		t.Errorf("ReadByte = 0x%02X, want 0xFF", b)
	}
	b, err = cur.ReadByte()
	if err != nil {
		t.Fatalf("ReadByte: %v", err)
	}
	if b != 0x00 {
		t.Errorf("ReadByte = 0x%02X, want 0x00", b)
	}
	if _, err := cur.ReadByte(); err == nil {
		t.Error("ReadByte past end of payload should error")
	}
}

func TestHexCursorReadSByte(t *testing.T) {
	cur := NewHexCursor("FF", Swap)
	v, err := cur.ReadSByte()
	if err != nil {
		t.Fatalf("ReadSByte: %v", err)
	}
	if v != -1 {
		t.Errorf("ReadSByte(0xFF) = %d, want -1", v)
	}
}

func TestHexCursorReadUint16SwapVsNonSwap(t *testing.T) {
	swapCur := NewHexCursor("1234", Swap)
	got, err := swapCur.ReadUint16()
	if err != nil {
		t.Fatalf("ReadUint16: %v", err)
	}
	if got != 0x1234 {
		t.Errorf("Swap ReadUint16 = 0x%04X, want 0x1234", got)
	}

	nonSwapCur := NewHexCursor("1234", NonSwap)
	got, err = nonSwapCur.ReadUint16()
	if err != nil {
		t.Fatalf("ReadUint16: %v", err)
	}
	if got != 0x3412 {
		t.Errorf("NonSwap ReadUint16 = 0x%04X, want 0x3412", got)
	}
}

func TestHexCursorReadUint32(t *testing.T) {
	cur := NewHexCursor("12345678", Swap)
	got, err := cur.ReadUint32()
	if err != nil {
		t.Fatalf("ReadUint32: %v", err)
	}
	if got != 0x12345678 {
		t.Errorf("ReadUint32 = 0x%08X, want 0x12345678", got)
	}
}

func TestHexCursorPeekByteDoesNotAdvance(t *testing.T) {
	cur := NewHexCursor("AABB", Swap)
	b, err := cur.PeekByte(2)
	if err != nil {
		t.Fatalf("PeekByte: %v", err)
	}
	if b != 0xBB {
		t.Errorf("PeekByte(2) = 0x%02X, want 0xBB", b)
	}
	if cur.Position() != 0 {
		t.Errorf("PeekByte moved the cursor to %d, want 0", cur.Position())
	}
}

func TestHexCursorSkipAndSeek(t *testing.T) {
	cur := NewHexCursor("AABBCCDD", Swap)
	if err := cur.SkipBytes(1); err != nil {
		t.Fatalf("SkipBytes: %v", err)
	}
	b, err := cur.ReadByte()
	if err != nil {
		t.Fatalf("ReadByte: %v", err)
	}
	if b != 0xBB {
		t.Errorf("ReadByte after SkipBytes(1) = 0x%02X, want 0xBB", b)
	}

	if err := cur.Seek(0); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	if cur.Position() != 0 {
		t.Errorf("Position after Seek(0) = %d, want 0", cur.Position())
	}
	if err := cur.Seek(100); err == nil {
		t.Error("Seek past end of payload should error")
	}
}

func TestHexCursorRemaining(t *testing.T) {
	cur := NewHexCursor("AABB", Swap)
	if cur.Remaining() != 4 {
		t.Errorf("Remaining() = %d, want 4", cur.Remaining())
	}
	cur.ReadByte()
	if cur.Remaining() != 2 {
		t.Errorf("Remaining() after one ReadByte = %d, want 2", cur.Remaining())
	}
}

func TestHexCursorRebind(t *testing.T) {
	cur := NewHexCursor("1234", Swap)
	cur.Rebind(NonSwap)
	got, err := cur.ReadUint16()
	if err != nil {
		t.Fatalf("ReadUint16: %v", err)
	}
	if got != 0x3412 {
		t.Errorf("ReadUint16 after Rebind(NonSwap) = 0x%04X, want 0x3412", got)
	}
	if cur.Strategy().Name() != "NonSwap" {
		t.Errorf("Strategy() = %s, want NonSwap", cur.Strategy().Name())
	}
}

func TestHexCursorSliceAndReadBytes(t *testing.T) {
	cur := NewHexCursor("AABBCC", Swap)
	s, err := cur.Slice(2)
	if err != nil {
		t.Fatalf("Slice: %v", err)
	}
	if s != "AABB" {
		t.Errorf("Slice(2) = %q, want %q", s, "AABB")
	}

	cur2 := NewHexCursor("AABBCC", Swap)
	b, err := cur2.ReadBytes(3)
	if err != nil {
		t.Fatalf("ReadBytes: %v", err)
	}
	if string(b) != string([]byte{0xAA, 0xBB, 0xCC}) {
		t.Errorf("ReadBytes(3) = %x, want AABBCC", b)
	}
}
