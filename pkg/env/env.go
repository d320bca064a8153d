// Package env provides the configuration of the roboclaw daemon.
package env

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/roboclaw/pkg/serial"
)

// Controller address range.
const (
	MinAddress = 0x80
	MaxAddress = 0x87
)

// Config provides common options to setup the daemon.
type Config struct {
	Serial serial.Config

	// Address of the controller on the link.
	Address uint
	// ID identifies the controller in published topics.
	ID string

	// Timeout is the reply timeout of the dispatcher.
	Timeout time.Duration
	// ReplyTrailer is the number of extra bytes after query replies.
	ReplyTrailer int
	// PollInterval is the telemetry period, zero disables telemetry.
	PollInterval time.Duration

	// MQTTBrokerURL specifies the MQTT broker to use, empty disables it.
	// e.g. mqtt://host:port/topic-prefix
	MQTTBrokerURL string

	// MetricsAddr is the listen address serving /metrics, empty disables it.
	MetricsAddr string
}

var defaultConfig = Config{
	Serial:       *serial.DefaultConfig("/dev/ttyACM0"),
	Address:      MinAddress,
	Timeout:      100 * time.Millisecond,
	PollInterval: time.Second,
}

func init() {
	loadEnv(&defaultConfig, os.Getenv)
	if defaultConfig.ID == "" {
		defaultConfig.ID = MachineID()
	}
}

func loadEnv(c *Config, getenv func(string) string) {
	if val := getenv("ROBOCLAW_DEVICE"); val != "" {
		c.Serial.Device = val
	}
	if val := getenv("ROBOCLAW_BAUD"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			c.Serial.Baud = n
		} else {
			glog.Warningf("invalid ROBOCLAW_BAUD %q: %v", val, err)
		}
	}
	if val := getenv("ROBOCLAW_ADDRESS"); val != "" {
		if n, err := strconv.ParseUint(val, 0, 8); err == nil {
			c.Address = uint(n)
		} else {
			glog.Warningf("invalid ROBOCLAW_ADDRESS %q: %v", val, err)
		}
	}
	if val, ok := lookup(getenv, "ROBOCLAW_MQTT_URL"); ok {
		c.MQTTBrokerURL = val
	}
	if val := getenv("ROBOCLAW_ID"); val != "" {
		c.ID = val
	}
	if val, ok := lookup(getenv, "ROBOCLAW_METRICS_ADDR"); ok {
		c.MetricsAddr = val
	}
}

// lookup treats "-" as an explicitly empty value.
func lookup(getenv func(string) string, key string) (string, bool) {
	switch val := getenv(key); val {
	case "":
		return "", false
	case "-":
		return "", true
	default:
		return val, true
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	defaultConfig.SetupFlags(flag.CommandLine)
}

// SetupFlags binds c to flags in fs.
func (c *Config) SetupFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Serial.Device, "device", c.Serial.Device, "Serial device")
	fs.IntVar(&c.Serial.Baud, "baud", c.Serial.Baud, "Serial baud rate")
	fs.DurationVar(&c.Serial.ReadTimeout, "read-timeout", c.Serial.ReadTimeout, "Serial read timeout")
	fs.UintVar(&c.Address, "address", c.Address, "Controller address")
	fs.StringVar(&c.ID, "id", c.ID, "Controller ID")
	fs.DurationVar(&c.Timeout, "timeout", c.Timeout, "Reply timeout")
	fs.IntVar(&c.ReplyTrailer, "reply-trailer", c.ReplyTrailer, "Extra bytes after query replies")
	fs.DurationVar(&c.PollInterval, "poll", c.PollInterval, "Telemetry interval, 0 disables")
	fs.StringVar(&c.MQTTBrokerURL, "mqtt", c.MQTTBrokerURL, "MQTT broker URL, empty disables")
	fs.StringVar(&c.MetricsAddr, "metrics", c.MetricsAddr, "Prometheus listen address, empty disables")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// ControllerAddress returns the validated address.
func (c *Config) ControllerAddress() (byte, error) {
	if c.Address < MinAddress || c.Address > MaxAddress {
		return 0, fmt.Errorf("controller address %#x out of range [%#x, %#x]", c.Address, MinAddress, MaxAddress)
	}
	return byte(c.Address), nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Serial.Device == "" {
		return fmt.Errorf("serial device must be specified")
	}
	if c.Serial.Baud <= 0 {
		return fmt.Errorf("invalid baud rate %d", c.Serial.Baud)
	}
	if _, err := c.ControllerAddress(); err != nil {
		return err
	}
	if c.ReplyTrailer < 0 {
		return fmt.Errorf("invalid reply trailer %d", c.ReplyTrailer)
	}
	if c.MQTTBrokerURL != "" && c.ID == "" {
		return fmt.Errorf("controller id must be specified")
	}
	return nil
}
