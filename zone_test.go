package pcmi

import "testing"

// buildZoneParametersPayload assembles a minimal well-formed
// ZoneParameters hex payload: header (size_words, id, type, format),
// the temperature_control byte, seven signed 16-bit temperatures, the remaining
// fixed-width fields, all zero, and no optional long head-count tail
// (record_format < 3).
func buildZoneParametersPayload(zoneNumber byte) string {
	b := make([]byte, zoneParametersMinBytes)
	words := zoneParametersMinBytes / 2
	b[0], b[1] = byte(words>>8), byte(words) // size_words, big-endian (Swap)
	b[2] = zoneNumber
	b[3] = 0 // record_type
	b[4] = 1 // record_format < 3, Swap
	// b[5] is the temperature_control byte, read as TemperatureControl
	return encodeHex(b)
}

func TestParseZoneParameters(t *testing.T) {
	payload := buildZoneParametersPayload(3)
	zp, err := ParseZoneParameters(payload)
	if err != nil {
		t.Fatalf("ParseZoneParameters: %v", err)
	}
	if zp.ZoneNumber != 3 {
		t.Errorf("ZoneNumber = %d, want 3", zp.ZoneNumber)
	}
	if zp.UsesLongHeadCounts {
		t.Error("UsesLongHeadCounts should be false when record_format < 3")
	}
}

func TestParseZoneParametersRejectsZoneOutOfRange(t *testing.T) {
	payload := buildZoneParametersPayload(0)
	if _, err := ParseZoneParameters(payload); err == nil {
		t.Error("ParseZoneParameters should reject zone 0")
	}
	payload = buildZoneParametersPayload(10)
	if _, err := ParseZoneParameters(payload); err == nil {
		t.Error("ParseZoneParameters should reject zone 10")
	}
}

func TestParseZoneParametersTooShort(t *testing.T) {
	if _, err := ParseZoneParameters("0000"); err == nil {
		t.Error("ParseZoneParameters should reject a too-short payload")
	}
}

func TestParseZoneParametersRejectsSizeWordsMismatch(t *testing.T) {
	b := make([]byte, zoneParametersMinBytes)
	b[0], b[1] = 0, 1 // declares 1 word (2 bytes), payload actually carries 42
	b[2] = 3
	b[4] = 1
	payload := encodeHex(b)

	if _, err := ParseZoneParameters(payload); err == nil {
		t.Error("ParseZoneParameters should reject a record_size_words/payload-length mismatch")
	}
}

func TestParseZoneParametersLongHeadCounts(t *testing.T) {
	b := make([]byte, zoneParametersMinBytes+zoneLongHeadCountBytes)
	words := len(b) / 2
	b[0], b[1] = byte(words>>8), byte(words) // size_words, big-endian (Swap)
	b[2] = 4                                 // zone number
	b[4] = 3                                 // record_format >= 3 enables the long head-count tail
	payload := encodeHex(b)

	zp, err := ParseZoneParameters(payload)
	if err != nil {
		t.Fatalf("ParseZoneParameters: %v", err)
	}
	if !zp.UsesLongHeadCounts {
		t.Error("UsesLongHeadCounts should be true when record_format >= 3 and the tail is present")
	}
}

func buildZoneVariablesPayload(zoneNumber byte) string {
	b := make([]byte, zoneVariablesMinBytes)
	words := zoneVariablesMinBytes / 2
	b[0], b[1] = byte(words>>8), byte(words) // size_words, big-endian (Swap, record_format=0)
	b[2] = zoneNumber
	return encodeHex(b)
}

func TestParseZoneVariables(t *testing.T) {
	payload := buildZoneVariablesPayload(7)
	zv, err := ParseZoneVariables(payload)
	if err != nil {
		t.Fatalf("ParseZoneVariables: %v", err)
	}
	if zv.ZoneNumber != 7 {
		t.Errorf("ZoneNumber = %d, want 7", zv.ZoneNumber)
	}
}

func TestParseZoneVariablesRejectsZoneOutOfRange(t *testing.T) {
	payload := buildZoneVariablesPayload(0)
	if _, err := ParseZoneVariables(payload); err == nil {
		t.Error("ParseZoneVariables should reject zone 0")
	}
}

func TestParseZoneVariablesTooShort(t *testing.T) {
	if _, err := ParseZoneVariables("00"); err == nil {
		t.Error("ParseZoneVariables should reject a too-short payload")
	}
}

func TestParseZoneVariablesRejectsSizeWordsMismatch(t *testing.T) {
	b := make([]byte, zoneVariablesMinBytes)
	b[0], b[1] = 0, 1 // declares 1 word (2 bytes), payload actually carries 24
	b[2] = 7
	payload := encodeHex(b)

	if _, err := ParseZoneVariables(payload); err == nil {
		t.Error("ParseZoneVariables should reject a record_size_words/payload-length mismatch")
	}
}
