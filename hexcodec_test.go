package pcmi

import "testing"

func TestEncodeDecodeHexByteRoundTrip(t *testing.T) {
	for b := 0; b < 256; b++ {
		s := encodeHexByte(byte(b))
		got, err := decodeHexByte(s)
		if err != nil {
			t.Fatalf("decodeHexByte(%q): %v", s, err)
		}
		if got != byte(b) {
			t.Errorf("round trip for %d: got %d", b, got)
		}
	}
}

func TestEncodeHex(t *testing.T) {
	if got := encodeHex([]byte{0x00, 0xAB, 0xFF}); got != "00ABFF" {
		t.Errorf("encodeHex = %q, want %q", got, "00ABFF")
	}
}

func TestDecodeHex(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    []byte
		wantErr bool
	}{
		{"empty", "", nil, false},
		{"upper", "00ABFF", []byte{0x00, 0xAB, 0xFF}, false},
		{"lower", "00abff", []byte{0x00, 0xAB, 0xFF}, false},
		{"odd length", "ABC", nil, true},
		{"invalid char", "ZZ", nil, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := decodeHex(c.in)
			if c.wantErr {
				if err == nil {
					t.Fatalf("decodeHex(%q) = %x, want error", c.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("decodeHex(%q): %v", c.in, err)
			}
			if string(got) != string(c.want) {
				t.Errorf("decodeHex(%q) = %x, want %x", c.in, got, c.want)
			}
		})
	}
}

func TestDecodeHexByteInvalidLength(t *testing.T) {
	if _, err := decodeHexByte("A"); err == nil {
		t.Error("decodeHexByte should reject a single-character input")
	}
	if _, err := decodeHexByte("ABC"); err == nil {
		t.Error("decodeHexByte should reject a three-character input")
	}
}

func TestEncodeHexU16BigEndian(t *testing.T) {
	if got := encodeHexU16BigEndian(0x00B8); got != "00B8" {
		t.Errorf("encodeHexU16BigEndian(0x00B8) = %q, want %q", got, "00B8")
	}
}

// decodeHex(encodeHex(b)) == b for all b (spec.md §8).
func TestHexRoundTripInvariant(t *testing.T) {
	in := []byte{0x00, 0x01, 0x7F, 0x80, 0xFF, 0x2A}
	got, err := decodeHex(encodeHex(in))
	if err != nil {
		t.Fatalf("decodeHex(encodeHex(%x)): %v", in, err)
	}
	if string(got) != string(in) {
		t.Errorf("round trip = %x, want %x", got, in)
	}
}
