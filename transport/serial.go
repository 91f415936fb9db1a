package transport

import (
	"bufio"
	"io"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/tarm/serial"
)

// SerialConfig configures a SerialTransport's physical link. Defaults
// match the PCMI RS-485 bus: 19200 baud, 8 data bits, mark parity, one
// stop bit.
type SerialConfig struct {
	Port           string
	Baud           int
	DefaultTimeout time.Duration
}

// DefaultSerialConfig returns the standard PCMI bus parameters for the
// named port.
func DefaultSerialConfig(port string) SerialConfig {
	return SerialConfig{Port: port, Baud: 19200, DefaultTimeout: DefaultTimeout}
}

// SerialTransport is the physical RS-485 transport, grounded on the
// teacher's vogo.Device: a mutex-guarded io.ReadWriteCloser fed through
// a bufio.Reader, opened via tarm/serial.
type SerialTransport struct {
	cfg SerialConfig

	mu   sync.Mutex
	conn io.ReadWriteCloser
	r    *bufio.Reader
	open bool
}

// NewSerialTransport builds a transport for cfg. The port is not opened
// until Open is called.
func NewSerialTransport(cfg SerialConfig) *SerialTransport {
	if cfg.Baud == 0 {
		cfg.Baud = 19200
	}
	if cfg.DefaultTimeout == 0 {
		cfg.DefaultTimeout = DefaultTimeout
	}
	return &SerialTransport{cfg: cfg}
}

func (t *SerialTransport) IsOpen() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.open
}

func (t *SerialTransport) PortName() string { return t.cfg.Port }

// Open opens the serial port at the configured baud rate (19200 by
// default) with 8 data bits, mark parity and 1 stop bit, the electrical
// configuration the bus protocol assumes (spec.md §2).
func (t *SerialTransport) Open() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.open {
		return &Error{Op: "open", Err: io.ErrClosedPipe}
	}

	conn, err := serial.OpenPort(&serial.Config{
		Name:        t.cfg.Port,
		Baud:        t.cfg.Baud,
		Size:        8,
		Parity:      serial.ParityMark,
		StopBits:    serial.Stop1,
		ReadTimeout: 50 * time.Millisecond,
	})
	if err != nil {
		return &Error{Op: "open", Err: err}
	}

	t.conn = conn
	t.r = bufio.NewReader(conn)
	t.open = true
	log.WithField("port", t.cfg.Port).Debug("serial transport opened")
	return nil
}

// Close closes the port. Safe to call more than once.
func (t *SerialTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.open {
		return nil
	}
	err := t.conn.Close()
	t.open = false
	return err
}

func (t *SerialTransport) Write(data []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.open {
		return &Error{Op: "write", Err: io.ErrClosedPipe}
	}
	n, err := t.conn.Write(data)
	log.WithField("bytes", n).Debugf("wrote %x", data)
	if err != nil {
		return &Error{Op: "write", Err: err}
	}
	return nil
}

// readByteDeadline reads one byte from the bufio.Reader, treating the
// port's short ReadTimeout as a poll interval and returning once
// deadline passes with nothing read.
func (t *SerialTransport) readByteDeadline(deadline time.Time) (byte, error) {
	for {
		b, err := t.r.ReadByte()
		if err == nil {
			return b, nil
		}
		if time.Now().After(deadline) {
			return 0, &TimeoutError{Op: "read", Timeout: time.Until(deadline)}
		}
	}
}

func (t *SerialTransport) ReadUntil(terminator byte, timeout time.Duration) ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.open {
		return nil, &Error{Op: "read_until", Err: io.ErrClosedPipe}
	}
	if timeout == 0 {
		timeout = t.cfg.DefaultTimeout
	}
	deadline := time.Now().Add(timeout)

	var buf []byte
	for {
		b, err := t.readByteDeadline(deadline)
		if err != nil {
			return nil, err
		}
		buf = append(buf, b)
		if b == terminator {
			log.Debugf("read_until: %x", buf)
			return buf, nil
		}
	}
}

func (t *SerialTransport) Read(n int, timeout time.Duration) ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.open {
		return nil, &Error{Op: "read", Err: io.ErrClosedPipe}
	}
	if timeout == 0 {
		timeout = t.cfg.DefaultTimeout
	}
	deadline := time.Now().Add(timeout)

	buf := make([]byte, 0, n)
	for len(buf) < n {
		b, err := t.readByteDeadline(deadline)
		if err != nil {
			return nil, err
		}
		buf = append(buf, b)
	}
	return buf, nil
}

func (t *SerialTransport) ReadByte(timeout time.Duration) (byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.open {
		return 0, &Error{Op: "read_byte", Err: io.ErrClosedPipe}
	}
	if timeout == 0 {
		timeout = t.cfg.DefaultTimeout
	}
	return t.readByteDeadline(time.Now().Add(timeout))
}

func (t *SerialTransport) DiscardBuffers() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.r != nil {
		t.r.Reset(t.conn)
	}
}

var _ Transport = (*SerialTransport)(nil)
