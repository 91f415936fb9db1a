package pcmi

// Protocol framing sentinels (spec.md GLOSSARY: STX / ETX).
const (
	stx byte = 0x20 // sentinel prefixing outgoing request frames
	etx byte = 0x0D // carriage return terminating framed responses
)

// CommandCode is an 8-bit PCMI command/response tag.
type CommandCode byte

// Session / connection management.
const (
	PCMIAttn    CommandCode = 0x81
	PCMIAtAck   CommandCode = 0x82
	PCMISerial  CommandCode = 0x85
	PCMISNAck   CommandCode = 0x86
	PCMIBreak   CommandCode = 0x87
	PCMIBreakAck CommandCode = 0x88
)

// Data request (client -> controller).
const (
	PCMISendDeviceParm CommandCode = 0x8F
	PCMISendDeviceVar  CommandCode = 0x91
	PCMISendHistory    CommandCode = 0x93
	PCMISendZoneParm   CommandCode = 0x95
	PCMISendZoneVar    CommandCode = 0x97
	PCMISendVersion    CommandCode = 0x9F
	PCMISendAlarm      CommandCode = 0xA4
	PCMISendInfo       CommandCode = 0xAC
)

// Data string (controller -> client), 1-byte-RLI / 2-byte-RLI pairs.
const (
	PCMIDPString1 CommandCode = 0x90 // device parameters, 1-byte RLI
	PCMIDVString1 CommandCode = 0x92 // device variables, 1-byte RLI
	PCMIZPString1 CommandCode = 0x96 // zone parameters, 1-byte RLI
	PCMIZVString1 CommandCode = 0x98 // zone variables, 1-byte RLI

	PCMIDPString2 CommandCode = 0xB7 // device parameters, 2-byte RLI (extended)
	PCMIZPString2 CommandCode = 0xB8 // zone parameters, 2-byte RLI (extended)
	PCMIDVString2 CommandCode = 0xB9 // device variables, 2-byte RLI (extended)
	PCMIZVString2 CommandCode = 0xBA // zone variables, 2-byte RLI (extended)

	PCMISVString CommandCode = 0xA0 // version string (ASCII, CR-delimited)

	PCMIHAString       CommandCode = 0x94 // history, Swap (big-endian)
	PCMIHANonSwapString CommandCode = 0xB5 // history, NonSwap (little-endian)

	PCMISAString       CommandCode = 0xA5 // alarm, Swap (big-endian)
	PCMISANonSwapString CommandCode = 0xB3 // alarm, NonSwap (little-endian)
)

// Flow control.
const (
	PCMIOkSendNext   CommandCode = 0x99
	PCMIEndOfRecord  CommandCode = 0x9B
	PCMIOkCCNext     CommandCode = 0xA3
	pcmiAckReserved  CommandCode = 0xA9 // reserved bare-ack code carried on the wire, never emitted by this client
	pcmiAckC0        CommandCode = 0xC0 // reserved bare-ack code immediately below the error range
)

// Controller-reported errors (0xC1..0xDB).
const (
	PCMIErGeneric       CommandCode = 0xC1
	PCMIErPassword      CommandCode = 0xC2
	PCMIErSerial        CommandCode = 0xC3
	PCMIErData          CommandCode = 0xC4
	PCMIErNoZone        CommandCode = 0xC8
	PCMIErTryAgain      CommandCode = 0xCA
	PCMIErHandsOff      CommandCode = 0xCB
	PCMIErResend        CommandCode = 0xCC
	PCMIErNoDevice      CommandCode = 0xCD
	PCMIErNoZoneUpload  CommandCode = 0xCE
	PCMIErChecksum      CommandCode = 0xD9
	PCMIErStartUp       CommandCode = 0xDA
	PCMIErLength        CommandCode = 0xDB
)

// ackCodes are bare, unframed single-byte acknowledgements: no length, no
// checksum, no CR terminator (spec.md §4.4 item 2).
var ackCodes = map[CommandCode]bool{
	PCMIAtAck:       true,
	PCMISNAck:       true,
	PCMIBreakAck:    true,
	PCMIEndOfRecord: true,
	PCMIOkCCNext:    true,
	pcmiAckReserved: true,
	pcmiAckC0:       true,
}

// rli1Commands carry a 1-byte (2 hex char) Record Length Indicator.
var rli1Commands = map[CommandCode]bool{
	PCMIDPString1: true,
	PCMIDVString1: true,
	PCMIZPString1: true,
	PCMIZVString1: true,
}

// rli2Commands carry a 2-byte (4 hex char), little-endian Record Length
// Indicator — the "extended" data-string variants (spec.md §3).
var rli2Commands = map[CommandCode]bool{
	PCMIDPString2: true,
	PCMIZPString2: true,
	PCMIDVString2: true,
	PCMIZVString2: true,
}

// vliCommands carry their length as a VLI inside the payload rather than
// an outer RLI; the frame itself is still CR-delimited (spec.md §4.4 item 4).
var vliCommands = map[CommandCode]bool{
	PCMIHAString:        true,
	PCMIHANonSwapString: true,
	PCMISAString:        true,
	PCMISANonSwapString: true,
}

// isErrorCode reports whether c falls in the controller-error range
// (0xC1..0xDB). 0xC0 itself is a reserved bare-ack code, not an error.
func isErrorCode(c CommandCode) bool {
	return c >= 0xC1 && c <= 0xDB
}

// transientErrorCodes are operational conditions the controller reports
// that the session machine does not retry but also does not want lumped
// in with an ordinary controller error: the controller is busy with
// another session, or still booting (spec.md §4.7 item 6).
var transientErrorCodes = map[CommandCode]bool{
	PCMIErHandsOff: true,
	PCMIErStartUp:  true,
}

func isTransientErrorCode(c CommandCode) bool {
	return transientErrorCodes[c]
}

// errorMessages maps known controller error codes to a human-readable
// message, grounded on the original ERROR_MESSAGES table.
var errorMessages = map[CommandCode]string{
	PCMIErGeneric:      "generic error",
	PCMIErPassword:     "invalid password",
	PCMIErSerial:       "invalid serial number",
	PCMIErData:         "string/data error",
	PCMIErNoZone:       "zone not found",
	PCMIErTryAgain:     "try again (temporary condition)",
	PCMIErHandsOff:     "controller in use (hands off mode)",
	PCMIErResend:       "resend upload record",
	PCMIErNoDevice:     "device not found",
	PCMIErNoZoneUpload: "zone not found during upload",
	PCMIErChecksum:     "checksum error",
	PCMIErStartUp:      "controller starting up",
	PCMIErLength:       "length mismatch error",
}

func errorMessage(c CommandCode) string {
	if msg, ok := errorMessages[c]; ok {
		return msg
	}
	return "unknown error"
}
