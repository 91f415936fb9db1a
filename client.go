package pcmi

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vklabs/pcmi/transport"
)

// ClientState is a Client's position in the connect/download/disconnect
// state machine (spec.md §5).
type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateDownloading
	StateError
)

func (s ClientState) String() string {
	switch s {
	case StateDisconnected:
		return "DISCONNECTED"
	case StateConnecting:
		return "CONNECTING"
	case StateConnected:
		return "CONNECTED"
	case StateDownloading:
		return "DOWNLOADING"
	case StateError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Config holds a Client's tunables, with defaults matching the
// controller's documented behavior (spec.md §7, §9).
type Config struct {
	// Timeout bounds a single response read.
	Timeout time.Duration
	// MaxRetries is how many times the session machine resends the
	// previous frame after a timeout, checksum failure, or
	// PCMI_ER_TRY_AGAIN before giving up.
	MaxRetries int
	// TransportMaxRetries is reserved for a future transport-level
	// reconnect policy (e.g. reopening a dropped serial port). The
	// session machine does not consult it today; see DESIGN.md.
	TransportMaxRetries int
}

// DefaultConfig returns the documented defaults: 5s timeout, 3 session
// retries, 6 reserved transport retries.
func DefaultConfig() Config {
	return Config{
		Timeout:             5 * time.Second,
		MaxRetries:          3,
		TransportMaxRetries: 6,
	}
}

// Client drives a single controller connection over a Transport,
// following the protocol's connect -> download* -> disconnect lifecycle
// (spec.md §5).
type Client struct {
	transport transport.Transport
	cfg       Config
	state     ClientState
	serial    *SerialNumber
	frames    FrameReader
	log       log.FieldLogger
}

// NewClient builds a disconnected Client over t.
func NewClient(t transport.Transport, cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = DefaultConfig().MaxRetries
	}
	if cfg.TransportMaxRetries == 0 {
		cfg.TransportMaxRetries = DefaultConfig().TransportMaxRetries
	}
	return &Client{
		transport: t,
		cfg:       cfg,
		state:     StateDisconnected,
		log:       Logger,
	}
}

// State returns the client's current state.
func (c *Client) State() ClientState { return c.state }

// SerialNumber returns the connected controller's serial number, or nil
// if not connected.
func (c *Client) SerialNumber() *SerialNumber { return c.serial }

// IsConnected reports whether the client is ready for download
// operations.
func (c *Client) IsConnected() bool { return c.state == StateConnected }

// Connect opens the transport if needed and establishes a session with
// the controller at serialNumber, retrying up to cfg.MaxRetries times
// on timeout (spec.md §5, §7).
func (c *Client) Connect(serialNumber string) error {
	if c.state != StateDisconnected {
		return newConnectionError("cannot connect: client is in %s state", c.state)
	}

	sn, err := ParseSerialNumber(serialNumber)
	if err != nil {
		return err
	}

	if !c.transport.IsOpen() {
		c.log.Debug("opening transport for connection")
		if err := c.transport.Open(); err != nil {
			return err
		}
	}

	c.state = StateConnecting
	c.log, _ = newSessionLogger()
	c.log.WithField("serial", sn.String()).Info("connecting to controller")

	var lastErr error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			c.log.Debugf("connection attempt %d/%d", attempt+1, c.cfg.MaxRetries+1)
			c.transport.DiscardBuffers()
		}

		data := []byte(fmt.Sprintf("%02X%s", len(sn.String()), sn.String()))
		frame := buildFrame(PCMISerial, data)

		if err := c.transport.Write(frame); err != nil {
			c.state = StateDisconnected
			return err
		}

		resp, err := c.readResponse(0)
		if err != nil {
			if _, timedOut := err.(*transport.TimeoutError); timedOut {
				lastErr = err
				c.log.Warnf("connection timeout (attempt %d/%d)", attempt+1, c.cfg.MaxRetries+1)
				continue
			}
			c.state = StateDisconnected
			return err
		}

		if resp.Command == PCMISNAck {
			c.state = StateConnected
			c.serial = &sn
			c.log.WithField("serial", sn.String()).Info("connected to controller")
			return nil
		}
		if isErrorCode(resp.Command) {
			c.state = StateDisconnected
			return newControllerError(resp.Command)
		}
		c.state = StateDisconnected
		return newProtocolError("unexpected response to connect: 0x%02X", byte(resp.Command))
	}

	c.state = StateDisconnected
	c.log.Errorf("connection failed after %d attempts", c.cfg.MaxRetries+1)
	if lastErr != nil {
		return lastErr
	}
	return &TimeoutError{Op: "connect", Timeout: c.cfg.Timeout.Seconds()}
}

// Disconnect sends PCMI_BREAK and returns to the disconnected state. Safe
// to call even when not connected; the controller's acknowledgment is
// awaited on a best-effort basis.
func (c *Client) Disconnect() error {
	if c.state == StateDisconnected {
		return nil
	}
	c.log.WithField("serial", c.serialString()).Info("disconnecting from controller")

	frame := buildSimpleFrame(PCMIBreak)
	if err := c.transport.Write(frame); err == nil {
		if _, err := c.readResponse(1 * time.Second); err != nil {
			c.log.Debug("disconnect acknowledgment timed out (expected)")
		}
	}

	c.state = StateDisconnected
	c.serial = nil
	c.log.Debug("disconnected")
	return nil
}

func (c *Client) serialString() string {
	if c.serial == nil {
		return "<none>"
	}
	return c.serial.String()
}

func (c *Client) ensureConnected() error {
	if c.state != StateConnected {
		return newConnectionError("not connected (state: %s)", c.state)
	}
	return nil
}

// readResponse reads a single logical response: a bare ack byte, or a
// full CR-delimited frame. Every response path in the client — connect,
// disconnect, and every record inside the download loop — goes through
// this single fast path, unlike the original client's download loop
// (which read straight to CR and so could never observe a bare ack
// mid-download); see DESIGN.md.
func (c *Client) readResponse(timeout time.Duration) (*ParsedFrame, error) {
	if timeout == 0 {
		timeout = c.cfg.Timeout
	}

	b, err := c.transport.ReadByte(timeout)
	if err != nil {
		return nil, err
	}
	cmd := CommandCode(b)
	if ackCodes[cmd] || isErrorCode(cmd) {
		return &ParsedFrame{Command: cmd}, nil
	}

	rest, err := c.transport.ReadUntil(etx, timeout)
	if err != nil {
		return nil, err
	}
	full := append([]byte{b}, rest...)

	result, parsed, err := c.frames.Parse(full)
	if err != nil {
		return nil, err
	}
	if result != FrameSuccess {
		return nil, newProtocolError("invalid response frame: %s", result)
	}
	return parsed, nil
}
