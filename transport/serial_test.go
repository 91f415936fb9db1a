package transport

import "testing"

func TestDefaultSerialConfig(t *testing.T) {
	cfg := DefaultSerialConfig("/dev/ttyUSB0")
	if cfg.Port != "/dev/ttyUSB0" {
		t.Errorf("Port = %q, want /dev/ttyUSB0", cfg.Port)
	}
	if cfg.Baud != 19200 {
		t.Errorf("Baud = %d, want 19200", cfg.Baud)
	}
	if cfg.DefaultTimeout != DefaultTimeout {
		t.Errorf("DefaultTimeout = %v, want %v", cfg.DefaultTimeout, DefaultTimeout)
	}
}

func TestNewSerialTransportNormalizesZeroValueConfig(t *testing.T) {
	tr := NewSerialTransport(SerialConfig{Port: "/dev/ttyUSB0"})
	if tr.cfg.Baud != 19200 {
		t.Errorf("Baud = %d, want 19200 default", tr.cfg.Baud)
	}
	if tr.cfg.DefaultTimeout != DefaultTimeout {
		t.Errorf("DefaultTimeout = %v, want %v default", tr.cfg.DefaultTimeout, DefaultTimeout)
	}
}

func TestNewSerialTransportKeepsExplicitConfig(t *testing.T) {
	cfg := SerialConfig{Port: "/dev/ttyUSB1", Baud: 9600, DefaultTimeout: 1}
	tr := NewSerialTransport(cfg)
	if tr.cfg.Baud != 9600 {
		t.Errorf("Baud = %d, want 9600", tr.cfg.Baud)
	}
	if tr.cfg.DefaultTimeout != 1 {
		t.Errorf("DefaultTimeout = %v, want 1", tr.cfg.DefaultTimeout)
	}
}

func TestSerialTransportPortNameAndIsOpenBeforeOpen(t *testing.T) {
	tr := NewSerialTransport(DefaultSerialConfig("/dev/ttyUSB0"))
	if tr.PortName() != "/dev/ttyUSB0" {
		t.Errorf("PortName() = %q, want /dev/ttyUSB0", tr.PortName())
	}
	if tr.IsOpen() {
		t.Error("IsOpen() should be false before Open is called")
	}
}

func TestSerialTransportCloseIsSafeWhenNeverOpened(t *testing.T) {
	tr := NewSerialTransport(DefaultSerialConfig("/dev/ttyUSB0"))
	if err := tr.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if tr.IsOpen() {
		t.Error("IsOpen() should remain false after Close on an unopened transport")
	}
}

func TestSerialTransportOperationsFailBeforeOpen(t *testing.T) {
	tr := NewSerialTransport(DefaultSerialConfig("/dev/ttyUSB0"))

	if err := tr.Write([]byte{0x01}); err == nil {
		t.Error("Write should fail before Open")
	}
	if _, err := tr.ReadByte(0); err == nil {
		t.Error("ReadByte should fail before Open")
	}
	if _, err := tr.Read(1, 0); err == nil {
		t.Error("Read should fail before Open")
	}
	if _, err := tr.ReadUntil(0x0D, 0); err == nil {
		t.Error("ReadUntil should fail before Open")
	}
}

func TestSerialTransportDiscardBuffersIsSafeBeforeOpen(t *testing.T) {
	tr := NewSerialTransport(DefaultSerialConfig("/dev/ttyUSB0"))
	tr.DiscardBuffers()
}
