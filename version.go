package pcmi

import "strings"

// versionStringLen and dateCodeLen are the fixed-width ASCII fields
// carried in the version record's payload (spec.md §4.5, grounded on
// the "VVVVVVVVVVVVVVDDDDDDDD" layout: 14-char version + 8-char date).
const (
	versionStringLen = 14
	dateCodeLen      = 8
)

// VersionRecord carries the controller's firmware version and build
// date, returned in response to PCMI_SEND_VERSION. Unlike every other
// record type its payload is plain ASCII, not hex-ASCII.
type VersionRecord struct {
	VersionString string
	DateCode      string
	RawData       string
}

func (v VersionRecord) String() string {
	return v.VersionString + " (" + v.DateCode + ")"
}

// ParseVersionRecord decodes a version record from its raw ASCII
// payload (not hex-encoded, unlike the other record decoders).
func ParseVersionRecord(payload string) (*VersionRecord, error) {
	if len(payload) < versionStringLen {
		return nil, newParseError("VersionRecord", 0, "payload too short: %d chars, need at least %d", len(payload), versionStringLen)
	}

	versionString := strings.TrimSpace(payload[:versionStringLen])
	dateCode := ""
	if len(payload) >= versionStringLen+dateCodeLen {
		dateCode = strings.TrimSpace(payload[versionStringLen : versionStringLen+dateCodeLen])
	}

	return &VersionRecord{
		VersionString: versionString,
		DateCode:      dateCode,
		RawData:       payload,
	}, nil
}
