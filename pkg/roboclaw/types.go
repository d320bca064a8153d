package roboclaw

import (
	"cmp"
	"fmt"
	"strings"
)

// Range is a closed interval.
type Range[T cmp.Ordered] struct {
	Min T `json:"min"`
	Max T `json:"max"`
}

// NewRange creates a Range and panics if min > max.
func NewRange[T cmp.Ordered](min, max T) Range[T] {
	if min > max {
		panic(&RangeError{Field: "range", Value: fmt.Sprintf("[%v, %v]", min, max)})
	}
	return Range[T]{Min: min, Max: max}
}

// Contains reports whether min <= x <= max.
func (r Range[T]) Contains(x T) bool {
	return r.Min <= x && x <= r.Max
}

// TwoChannelData pairs a value for each motor channel.
type TwoChannelData[T any] struct {
	Channel1 T `json:"channel1"`
	Channel2 T `json:"channel2"`
}

// Both builds a TwoChannelData.
func Both[T any](ch1, ch2 T) TwoChannelData[T] {
	return TwoChannelData[T]{Channel1: ch1, Channel2: ch2}
}

// Get returns the value for ch.
func (d TwoChannelData[T]) Get(ch Channel) T {
	if ch.mustValidate() == Channel2 {
		return d.Channel2
	}
	return d.Channel1
}

// Channel selects one of the two motor outputs.
type Channel int

// Channels
const (
	Channel1 Channel = 1
	Channel2 Channel = 2
)

// IsValid reports whether c names a channel.
func (c Channel) IsValid() bool {
	return c == Channel1 || c == Channel2
}

func (c Channel) mustValidate() Channel {
	if !c.IsValid() {
		panic(&RangeError{Field: "channel", Value: int(c)})
	}
	return c
}

// String implements fmt.Stringer.
func (c Channel) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("Channel(%d)", int(c))
	}
	return fmt.Sprintf("M%d", int(c))
}

// ControllerStatus is the 16-bit status word returned by ReadStatus.
type ControllerStatus uint16

// Status bits
const (
	StatusM1OverCurrentWarning   ControllerStatus = 0x0001
	StatusM2OverCurrentWarning   ControllerStatus = 0x0002
	StatusEStop                  ControllerStatus = 0x0004
	StatusTemperatureError       ControllerStatus = 0x0008
	StatusTemperature2Error      ControllerStatus = 0x0010
	StatusMainBatteryHighError   ControllerStatus = 0x0020
	StatusLogicBatteryHighError  ControllerStatus = 0x0040
	StatusLogicBatteryLowError   ControllerStatus = 0x0080
	StatusM1DriverFault          ControllerStatus = 0x0100
	StatusM2DriverFault          ControllerStatus = 0x0200
	StatusMainBatteryHighWarning ControllerStatus = 0x0400
	StatusMainBatteryLowWarning  ControllerStatus = 0x0800
	StatusTemperatureWarning     ControllerStatus = 0x1000
	StatusTemperature2Warning    ControllerStatus = 0x2000
	StatusM1Home                 ControllerStatus = 0x4000
	StatusM2Home                 ControllerStatus = 0x8000
)

var statusNames = []struct {
	bit  ControllerStatus
	name string
}{
	{StatusM1OverCurrentWarning, "m1-overcurrent-warning"},
	{StatusM2OverCurrentWarning, "m2-overcurrent-warning"},
	{StatusEStop, "e-stop"},
	{StatusTemperatureError, "temperature-error"},
	{StatusTemperature2Error, "temperature2-error"},
	{StatusMainBatteryHighError, "main-battery-high-error"},
	{StatusLogicBatteryHighError, "logic-battery-high-error"},
	{StatusLogicBatteryLowError, "logic-battery-low-error"},
	{StatusM1DriverFault, "m1-driver-fault"},
	{StatusM2DriverFault, "m2-driver-fault"},
	{StatusMainBatteryHighWarning, "main-battery-high-warning"},
	{StatusMainBatteryLowWarning, "main-battery-low-warning"},
	{StatusTemperatureWarning, "temperature-warning"},
	{StatusTemperature2Warning, "temperature2-warning"},
	{StatusM1Home, "m1-home"},
	{StatusM2Home, "m2-home"},
}

// Has reports whether every bit of flag is set.
func (s ControllerStatus) Has(flag ControllerStatus) bool {
	return s&flag == flag
}

// Normal is true only when no flag is set.
func (s ControllerStatus) Normal() bool { return s == 0 }

// M1OverCurrentWarning reports whether StatusM1OverCurrentWarning is set.
func (s ControllerStatus) M1OverCurrentWarning() bool { return s.Has(StatusM1OverCurrentWarning) }

// M2OverCurrentWarning reports whether StatusM2OverCurrentWarning is set.
func (s ControllerStatus) M2OverCurrentWarning() bool { return s.Has(StatusM2OverCurrentWarning) }

// EStop reports whether StatusEStop is set.
func (s ControllerStatus) EStop() bool { return s.Has(StatusEStop) }

// TemperatureError reports whether StatusTemperatureError is set.
func (s ControllerStatus) TemperatureError() bool { return s.Has(StatusTemperatureError) }

// Temperature2Error reports whether StatusTemperature2Error is set.
func (s ControllerStatus) Temperature2Error() bool { return s.Has(StatusTemperature2Error) }

// MainBatteryHighError reports whether StatusMainBatteryHighError is set.
func (s ControllerStatus) MainBatteryHighError() bool { return s.Has(StatusMainBatteryHighError) }

// LogicBatteryHighError reports whether StatusLogicBatteryHighError is set.
func (s ControllerStatus) LogicBatteryHighError() bool { return s.Has(StatusLogicBatteryHighError) }

// LogicBatteryLowError reports whether StatusLogicBatteryLowError is set.
func (s ControllerStatus) LogicBatteryLowError() bool { return s.Has(StatusLogicBatteryLowError) }

// M1DriverFault reports whether StatusM1DriverFault is set.
func (s ControllerStatus) M1DriverFault() bool { return s.Has(StatusM1DriverFault) }

// M2DriverFault reports whether StatusM2DriverFault is set.
func (s ControllerStatus) M2DriverFault() bool { return s.Has(StatusM2DriverFault) }

// MainBatteryHighWarning reports whether StatusMainBatteryHighWarning is set.
func (s ControllerStatus) MainBatteryHighWarning() bool { return s.Has(StatusMainBatteryHighWarning) }

// MainBatteryLowWarning reports whether StatusMainBatteryLowWarning is set.
func (s ControllerStatus) MainBatteryLowWarning() bool { return s.Has(StatusMainBatteryLowWarning) }

// TemperatureWarning reports whether StatusTemperatureWarning is set.
func (s ControllerStatus) TemperatureWarning() bool { return s.Has(StatusTemperatureWarning) }

// Temperature2Warning reports whether StatusTemperature2Warning is set.
func (s ControllerStatus) Temperature2Warning() bool { return s.Has(StatusTemperature2Warning) }

// M1Home reports whether StatusM1Home is set.
func (s ControllerStatus) M1Home() bool { return s.Has(StatusM1Home) }

// M2Home reports whether StatusM2Home is set.
func (s ControllerStatus) M2Home() bool { return s.Has(StatusM2Home) }

// Flags lists the names of the flags set.
func (s ControllerStatus) Flags() []string {
	var names []string
	for _, n := range statusNames {
		if s.Has(n.bit) {
			names = append(names, n.name)
		}
	}
	return names
}

// String implements fmt.Stringer.
func (s ControllerStatus) String() string {
	if s.Normal() {
		return "normal"
	}
	return strings.Join(s.Flags(), "|")
}

// EncoderStatus is the status byte that follows an encoder count.
type EncoderStatus byte

// Underflow reports the counter wrapped below zero.
func (s EncoderStatus) Underflow() bool { return s&0x01 != 0 }

// Forward reports the direction bit.
func (s EncoderStatus) Forward() bool { return s&0x02 != 0 }

// Overflow reports the counter wrapped past its maximum.
func (s EncoderStatus) Overflow() bool { return s&0x04 != 0 }

// EncoderMode selects how a channel's encoder input is interpreted.
type EncoderMode byte

const (
	encoderModeAbsolute EncoderMode = 0x01
	encoderModeRCAnalog EncoderMode = 0x80
)

// Encoder modes
const (
	EncoderQuadrature EncoderMode = 0
	EncoderAbsolute   EncoderMode = encoderModeAbsolute
)

// WithRCAnalog returns m with RC/analog encoder support enabled.
func (m EncoderMode) WithRCAnalog() EncoderMode { return m | encoderModeRCAnalog }

// Absolute reports absolute encoder mode.
func (m EncoderMode) Absolute() bool { return m&encoderModeAbsolute != 0 }

// Quadrature reports quadrature encoder mode.
func (m EncoderMode) Quadrature() bool { return !m.Absolute() }

// RCAnalog reports whether encoder feedback is used in RC/analog modes.
func (m EncoderMode) RCAnalog() bool { return m&encoderModeRCAnalog != 0 }

// EncoderReading is the result of reading one encoder.
type EncoderReading struct {
	Count  uint32        `json:"count"`
	Status EncoderStatus `json:"status"`
}

// PidGains are the velocity loop constants of one channel.
type PidGains struct {
	P    float64   `json:"p"`
	I    float64   `json:"i"`
	D    float64   `json:"d"`
	QPPS Frequency `json:"qpps"`
}

// PositionPidSettings are the position loop constants of one channel.
type PositionPidSettings struct {
	P        float64       `json:"p"`
	I        float64       `json:"i"`
	D        float64       `json:"d"`
	MaxI     uint32        `json:"max_i"`
	Deadzone uint32        `json:"deadzone"`
	Limits   Range[uint32] `json:"limits"`
}

// Motion is a buffered speed move of a fixed distance.
type Motion struct {
	Speed    Frequency `json:"speed"`
	Distance uint32    `json:"distance"`
}

// PositionMove drives to an absolute position with a trapezoid profile.
type PositionMove struct {
	Accel    FrequencyRate `json:"accel"`
	Speed    Frequency     `json:"speed"`
	Deccel   FrequencyRate `json:"deccel"`
	Position uint32        `json:"position"`
}

// Buffering controls whether a move is queued behind the running one.
type Buffering byte

// Buffering values
const (
	Buffered  Buffering = 0
	Immediate Buffering = 1
)

// BufferLength is a channel's command buffer depth.
type BufferLength byte

// Empty reports the buffer is empty and the last command finished.
func (b BufferLength) Empty() bool { return b == 0x80 }

// Executing reports the last buffered command is running.
func (b BufferLength) Executing() bool { return b == 0 }

// Pending returns the number of queued commands.
func (b BufferLength) Pending() int {
	if b.Empty() {
		return 0
	}
	return int(b)
}

// PinFunctions configures the S3, S4 and S5 inputs.
type PinFunctions struct {
	S3 byte `json:"s3"`
	S4 byte `json:"s4"`
	S5 byte `json:"s5"`
}

// PwmMode selects the output bridge drive.
type PwmMode byte

// PWM modes
const (
	PwmLockedAntiphase PwmMode = 0
	PwmSignMagnitude   PwmMode = 1
)
