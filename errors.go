package pcmi

import (
	"fmt"

	"github.com/vklabs/pcmi/transport"
)

// TransportError reports an I/O failure at the transport boundary
// (open/close/read/write). Fatal to the current session.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("pcmi: transport %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// TimeoutError reports that a read exceeded its bound. Retryable per
// spec.md §5/§7.
type TimeoutError struct {
	Op      string
	Timeout float64 // seconds
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("pcmi: %s timed out after %.1fs", e.Op, e.Timeout)
}

// ChecksumError reports a frame whose checksum did not match. Retryable.
type ChecksumError struct {
	Expected byte
	Received byte
}

func (e *ChecksumError) Error() string {
	return fmt.Sprintf("pcmi: checksum mismatch (expected 0x%02X, got 0x%02X)", e.Expected, e.Received)
}

// ProtocolError reports an invalid frame structure: unknown command, an
// RLI/VLI that overruns the buffer, malformed hex ASCII, or a header/
// payload length mismatch. Fatal to the current download; the session
// may continue.
type ProtocolError struct {
	Msg string
}

func (e *ProtocolError) Error() string { return "pcmi: protocol error: " + e.Msg }

func newProtocolError(format string, args ...any) *ProtocolError {
	return &ProtocolError{Msg: fmt.Sprintf(format, args...)}
}

// ParseError reports a record-level invariant violation (zone number out
// of range, a cross-field mismatch, a bounded read past the end of the
// payload). Fatal to the current record; the session continues unless the
// caller aborts.
type ParseError struct {
	RecordType string
	Offset     int
	Msg        string
}

func (e *ParseError) Error() string {
	if e.RecordType == "" {
		return "pcmi: parse error: " + e.Msg
	}
	return fmt.Sprintf("pcmi: parse error: %s (record_type=%s offset=%d)", e.Msg, e.RecordType, e.Offset)
}

func newParseError(recordType string, offset int, format string, args ...any) *ParseError {
	return &ParseError{RecordType: recordType, Offset: offset, Msg: fmt.Sprintf(format, args...)}
}

// ControllerError reports a 0xC1-0xDB response frame from the controller.
// Transient marks a condition the session machine does not retry but that
// is expected to clear on its own (spec.md §4.7 item 6: HANDS_OFF,
// controller starting up), as opposed to an ordinary failure.
type ControllerError struct {
	Code      CommandCode
	Message   string
	Transient bool
}

func newControllerError(code CommandCode) *ControllerError {
	return &ControllerError{Code: code, Message: errorMessage(code), Transient: isTransientErrorCode(code)}
}

func (e *ControllerError) Error() string {
	if e.Transient {
		return fmt.Sprintf("pcmi: transient controller condition 0x%02X: %s", byte(e.Code), e.Message)
	}
	return fmt.Sprintf("pcmi: controller error 0x%02X: %s", byte(e.Code), e.Message)
}

// isRetryableReadError reports whether err is a class of failure the
// session machine retries by resending the previous outgoing frame: a
// timed-out read or a checksum mismatch (spec.md §4.7 item 5).
func isRetryableReadError(err error) bool {
	switch err.(type) {
	case *transport.TimeoutError, *TimeoutError, *ChecksumError:
		return true
	default:
		return false
	}
}

// ConnectionError reports that connect() failed to establish a session,
// or that an operation was attempted in the wrong client state.
type ConnectionError struct {
	Msg string
}

func (e *ConnectionError) Error() string { return "pcmi: connection error: " + e.Msg }

func newConnectionError(format string, args ...any) *ConnectionError {
	return &ConnectionError{Msg: fmt.Sprintf(format, args...)}
}
