package env

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := NewConfig()
	require.NotSame(t, Default(), c)
	assert.Equal(t, 38400, c.Serial.Baud)
	assert.Equal(t, 100*time.Millisecond, c.Serial.ReadTimeout)
	assert.NotEmpty(t, c.ID)
	// MQTT is opt-in, the daemon must start without a broker.
	assert.Empty(t, c.MQTTBrokerURL)
}

func TestLoadEnv(t *testing.T) {
	vars := map[string]string{
		"ROBOCLAW_DEVICE":       "/dev/ttyUSB1",
		"ROBOCLAW_BAUD":         "115200",
		"ROBOCLAW_ADDRESS":      "0x81",
		"ROBOCLAW_MQTT_URL":     "-",
		"ROBOCLAW_ID":           "left",
		"ROBOCLAW_METRICS_ADDR": ":9100",
	}
	c := Config{MQTTBrokerURL: "mqtt://localhost"}
	loadEnv(&c, func(key string) string { return vars[key] })
	assert.Equal(t, "/dev/ttyUSB1", c.Serial.Device)
	assert.Equal(t, 115200, c.Serial.Baud)
	assert.Equal(t, uint(0x81), c.Address)
	assert.Empty(t, c.MQTTBrokerURL)
	assert.Equal(t, "left", c.ID)
	assert.Equal(t, ":9100", c.MetricsAddr)

	vars = map[string]string{"ROBOCLAW_BAUD": "fast", "ROBOCLAW_ADDRESS": "300"}
	loadEnv(&c, func(key string) string { return vars[key] })
	assert.Equal(t, 115200, c.Serial.Baud)
	assert.Equal(t, uint(0x81), c.Address)
}

func TestFlags(t *testing.T) {
	c := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c.SetupFlags(fs)
	require.NoError(t, fs.Parse([]string{"-device", "COM3", "-address", "130", "-poll", "250ms", "-mqtt", ""}))
	assert.Equal(t, "COM3", c.Serial.Device)
	addr, err := c.ControllerAddress()
	require.NoError(t, err)
	assert.Equal(t, byte(0x82), addr)
	assert.Equal(t, 250*time.Millisecond, c.PollInterval)
	assert.Empty(t, c.MQTTBrokerURL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		apply func(*Config)
		ok    bool
	}{
		{"default", func(*Config) {}, true},
		{"no-device", func(c *Config) { c.Serial.Device = "" }, false},
		{"bad-baud", func(c *Config) { c.Serial.Baud = 0 }, false},
		{"low-address", func(c *Config) { c.Address = 0x7f }, false},
		{"high-address", func(c *Config) { c.Address = 0x88 }, false},
		{"trailer", func(c *Config) { c.ReplyTrailer = -1 }, false},
		{"no-id", func(c *Config) { c.ID = "" }, false},
		{"no-id-no-mqtt", func(c *Config) { c.ID, c.MQTTBrokerURL = "", "" }, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			c := NewConfig()
			c.Serial.Device = "/dev/ttyACM0"
			c.Address = MinAddress
			c.MQTTBrokerURL = "mqtt://localhost/"
			c.ID = "id"
			test.apply(c)
			if test.ok {
				assert.NoError(t, c.Validate())
			} else {
				assert.Error(t, c.Validate())
			}
		})
	}
}
