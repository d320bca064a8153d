package roboclaw

import (
	"math"
	"strconv"
)

// Voltage is an electric potential with millivolt resolution.
type Voltage int64

// Voltage units
const (
	Millivolt Voltage = 1
	Volt              = 1000 * Millivolt
)

// Volts converts a float number of volts, rounding to the nearest millivolt.
func Volts(v float64) Voltage {
	return Voltage(math.Round(v * float64(Volt)))
}

// Volts returns v as a float number of volts.
func (v Voltage) Volts() float64 { return float64(v) / float64(Volt) }

func (v Voltage) String() string { return formatUnit(v.Volts(), "V") }

// Current is an electric current with milliamp resolution.
type Current int64

// Current units
const (
	Milliamp Current = 1
	Amp              = 1000 * Milliamp
)

// Amps converts a float number of amps, rounding to the nearest milliamp.
func Amps(a float64) Current {
	return Current(math.Round(a * float64(Amp)))
}

// Amps returns c as a float number of amps.
func (c Current) Amps() float64 { return float64(c) / float64(Amp) }

func (c Current) String() string { return formatUnit(c.Amps(), "A") }

// Temperature is a temperature in thousandths of a degree Celsius.
type Temperature int64

// Temperature units
const (
	MilliCelsius Temperature = 1
	Celsius                  = 1000 * MilliCelsius
)

// DegreesCelsius converts a float temperature in degrees Celsius.
func DegreesCelsius(c float64) Temperature {
	return Temperature(math.Round(c * float64(Celsius)))
}

// Celsius returns t as float degrees Celsius.
func (t Temperature) Celsius() float64 { return float64(t) / float64(Celsius) }

func (t Temperature) String() string { return formatUnit(t.Celsius(), "°C") }

// Frequency counts encoder pulses per second. Speeds and QPPS use it.
type Frequency int64

// Hertz is the unit of Frequency.
const Hertz Frequency = 1

func (f Frequency) String() string { return strconv.FormatInt(int64(f), 10) + "Hz" }

// FrequencyRate is the change of a Frequency per second (pulses/s²).
type FrequencyRate int64

// HertzPerSecond is the unit of FrequencyRate.
const HertzPerSecond FrequencyRate = 1

func (r FrequencyRate) String() string { return strconv.FormatInt(int64(r), 10) + "Hz/s" }

// Duty is a PWM duty cycle as a fraction of full scale, -1 to 1.
// Negative values drive backwards.
type Duty float64

const dutyFullScale = 32767

// Percent returns d in percent.
func (d Duty) Percent() float64 { return float64(d) * 100 }

func (d Duty) String() string { return formatUnit(d.Percent(), "%") }

func formatUnit(v float64, unit string) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + unit
}
