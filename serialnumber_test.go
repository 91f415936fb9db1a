package pcmi

import "testing"

func TestParseSerialNumber(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"valid", "12345678", "12345678", false},
		{"rejects whitespace", "  12345678  ", "", true},
		{"too short", "1234567", "", true},
		{"too long", "123456789", "", true},
		{"non-digit", "1234567X", "", true},
		{"empty", "", "", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ParseSerialNumber(c.in)
			if c.wantErr {
				if err == nil {
					t.Fatalf("ParseSerialNumber(%q) = %q, want error", c.in, got.String())
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSerialNumber(%q): %v", c.in, err)
			}
			if got.String() != c.want {
				t.Errorf("ParseSerialNumber(%q).String() = %q, want %q", c.in, got.String(), c.want)
			}
		})
	}
}

func TestSerialNumberAsInt(t *testing.T) {
	sn, err := ParseSerialNumber("00012345")
	if err != nil {
		t.Fatalf("ParseSerialNumber: %v", err)
	}
	if got := sn.AsInt(); got != 12345 {
		t.Errorf("AsInt() = %d, want 12345", got)
	}
}
