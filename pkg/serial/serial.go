// Package serial opens the serial link to a controller.
package serial

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/tarm/serial"
)

// Config holds serial port configuration.
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3").
	Device string `json:"device"`
	// Baud rate; USB connected controllers ignore it.
	Baud int `json:"baud"`
	// ReadTimeout bounds each Read, zero blocks.
	ReadTimeout time.Duration `json:"read-timeout"`
}

// Defaults.
const (
	DefaultBaud        = 38400
	DefaultReadTimeout = 100 * time.Millisecond
)

// DefaultConfig returns the factory serial settings of the controller.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        DefaultBaud,
		ReadTimeout: DefaultReadTimeout,
	}
}

type flusher interface {
	Flush() error
}

type device interface {
	io.ReadWriteCloser
	flusher
}

// Port is an open serial port. A Read timing out without data returns
// (0, nil) instead of an error.
type Port struct {
	dev device
	cfg Config
}

// Open opens the port, 8N1.
func Open(cfg *Config) (*Port, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.Device == "" {
		return nil, errors.New("serial device not specified")
	}
	port, err := serial.OpenPort(&serial.Config{
		Name:        cfg.Device,
		Baud:        cfg.Baud,
		ReadTimeout: cfg.ReadTimeout,
		Size:        8,
		Parity:      serial.ParityNone,
		StopBits:    serial.Stop1,
	})
	if err != nil {
		return nil, fmt.Errorf("open serial port %s: %w", cfg.Device, err)
	}
	if err = port.Flush(); err != nil {
		port.Close()
		return nil, fmt.Errorf("flush serial port %s: %w", cfg.Device, err)
	}
	return &Port{dev: port, cfg: *cfg}, nil
}

// Config returns the configuration the port was opened with.
func (p *Port) Config() Config {
	return p.cfg
}

// Read implements io.Reader.
func (p *Port) Read(b []byte) (int, error) {
	n, err := p.dev.Read(b)
	// the posix driver reports an expired read timeout as EOF
	if n == 0 && err == io.EOF && p.cfg.ReadTimeout > 0 {
		return 0, nil
	}
	return n, err
}

// Write implements io.Writer.
func (p *Port) Write(b []byte) (int, error) {
	return p.dev.Write(b)
}

// Flush discards unread input and unsent output.
func (p *Port) Flush() error {
	return p.dev.Flush()
}

// Close closes the port.
func (p *Port) Close() error {
	return p.dev.Close()
}
