package roboclaw

import (
	"encoding/binary"
	"math"
)

// payload builds the big-endian fields of a write command.
type payload []byte

func (p payload) u8(v byte) payload    { return append(p, v) }
func (p payload) u16(v uint16) payload { return binary.BigEndian.AppendUint16(p, v) }
func (p payload) i16(v int16) payload  { return p.u16(uint16(v)) }
func (p payload) u32(v uint32) payload { return binary.BigEndian.AppendUint32(p, v) }
func (p payload) i32(v int32) payload  { return p.u32(uint32(v)) }

func (p payload) frequency(field string, f Frequency) payload {
	return p.i32(checkedI32(field, int64(f)))
}

func (p payload) rate(field string, r FrequencyRate) payload {
	return p.u32(checkedU32(field, int64(r)))
}

func (p payload) duty(field string, d Duty) payload {
	return p.i16(dutyRaw(field, d))
}

func (p payload) motion(field string, m Motion) payload {
	return p.frequency(field+".speed", m.Speed).u32(m.Distance)
}

func (p payload) move(field string, m PositionMove) payload {
	return p.rate(field+".accel", m.Accel).
		u32(checkedU32(field+".speed", int64(m.Speed))).
		rate(field+".deccel", m.Deccel).
		u32(m.Position)
}

func u16At(b []byte, off int) uint16 { return binary.BigEndian.Uint16(b[off:]) }
func i16At(b []byte, off int) int16  { return int16(u16At(b, off)) }
func u32At(b []byte, off int) uint32 { return binary.BigEndian.Uint32(b[off:]) }
func i32At(b []byte, off int) int32  { return int32(u32At(b, off)) }

// encoderOffset widens the controller's signed 32-bit encoder count into
// the unsigned position domain.
const encoderOffset = -int64(math.MinInt32)

// widenEncoderCount is unverified against hardware: the raw count is read
// as signed and shifted by 2^31. Keep it in one place until confirmed.
func widenEncoderCount(raw int32) uint32 {
	return uint32(int64(raw) + encoderOffset)
}

func encoderCountAt(b []byte, off int) uint32 { return widenEncoderCount(i32At(b, off)) }

// speedAt decodes a speed field followed by its direction byte, where a
// non-zero direction means backwards.
func speedAt(b []byte, off int) Frequency {
	s := Frequency(i32At(b, off))
	if b[off+4] != 0 && s > 0 {
		s = -s
	}
	return s
}

func deciVoltsAt(b []byte, off int) Voltage {
	return Voltage(u16At(b, off)) * 100 * Millivolt
}

func deciVolts(field string, v Voltage) uint16 {
	return checkedU16(field, roundDiv(int64(v), int64(100*Millivolt)))
}

func centiAmps(field string, c Current) uint32 {
	return checkedU32(field, roundDiv(int64(c), int64(10*Milliamp)))
}

func centiAmpsAt(b []byte, off int) Current {
	return Current(i16At(b, off)) * 10 * Milliamp
}

func deciCelsiusAt(b []byte, off int) Temperature {
	return Temperature(u16At(b, off)) * 100 * MilliCelsius
}

// minVoltageByte encodes the (V-6)*5 scale of the minimum voltage settings.
func minVoltageByte(field string, v Voltage) byte {
	return checkedU8(field, int64(math.Round((v.Volts()-6)*5)))
}

// maxVoltageByte encodes the V*5.12 scale of the maximum voltage settings.
func maxVoltageByte(field string, v Voltage) byte {
	return checkedU8(field, int64(math.Round(v.Volts()*5.12)))
}

func dutyRaw(field string, d Duty) int16 {
	if math.IsNaN(float64(d)) || d < -1 || d > 1 {
		panic(&RangeError{Field: field, Value: d})
	}
	return int16(math.Round(float64(d) * dutyFullScale))
}

func dutyAt(b []byte, off int) Duty {
	return Duty(float64(i16At(b, off)) / dutyFullScale)
}

// PID constants travel as unsigned 16.16 fixed point.
const pidScale = 65536

func pidRaw(field string, x float64) uint32 {
	if math.IsNaN(x) {
		panic(&RangeError{Field: field, Value: x})
	}
	return checkedU32(field, int64(math.Round(x*pidScale)))
}

func pidAt(b []byte, off int) float64 {
	return float64(u32At(b, off)) / pidScale
}

// roundDiv divides rounding half away from zero.
func roundDiv(v, step int64) int64 {
	if v < 0 {
		return -((-v + step/2) / step)
	}
	return (v + step/2) / step
}

func checkedU8(field string, v int64) byte {
	if v < 0 || v > math.MaxUint8 {
		panic(&RangeError{Field: field, Value: v})
	}
	return byte(v)
}

func checkedU16(field string, v int64) uint16 {
	if v < 0 || v > math.MaxUint16 {
		panic(&RangeError{Field: field, Value: v})
	}
	return uint16(v)
}

func checkedU32(field string, v int64) uint32 {
	if v < 0 || v > math.MaxUint32 {
		panic(&RangeError{Field: field, Value: v})
	}
	return uint32(v)
}

func checkedI32(field string, v int64) int32 {
	if v < math.MinInt32 || v > math.MaxInt32 {
		panic(&RangeError{Field: field, Value: v})
	}
	return int32(v)
}

func checked7Bit(field string, v byte) byte {
	if v > 127 {
		panic(&RangeError{Field: field, Value: v})
	}
	return v
}
