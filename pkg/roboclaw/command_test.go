package roboclaw

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAddr byte = 0x80

func withCRC(b ...byte) []byte {
	crc := CRC16(b)
	return append(b, byte(crc>>8), byte(crc))
}

func TestDriveForwardEncoding(t *testing.T) {
	cmd := DriveForwardM1(testAddr, 128)
	require.Equal(t, []byte{0x80, 0x00, 0x80, 0xaa, 0xd2}, cmd.Encode())
	require.Equal(t, ReplyAck, cmd.Reply().Kind)
	require.Equal(t, 1, cmd.Reply().Length)
	_, err := cmd.Decode([]byte{0xff})
	require.NoError(t, err)
}

func TestWriteEncoding(t *testing.T) {
	testCases := []struct {
		name   string
		cmd    Write
		expect []byte
	}{
		{"drive backwards m2", DriveBackwardsM2(testAddr, 10), withCRC(0x80, 5, 10)},
		{"drive 7bit", DriveM2(testAddr, 64), withCRC(0x80, 7, 64)},
		{"mixed forward", DriveForwardMixed(0x81, 20), withCRC(0x81, 8, 20)},
		{"reset encoders", ResetEncoders(testAddr), withCRC(0x80, 20)},
		{"set encoder", SetEncoderM1(testAddr, 0x01020304), withCRC(0x80, 22, 1, 2, 3, 4)},
		{"duty full", DriveDutyM1(testAddr, 1), []byte{0x80, 0x20, 0x7f, 0xff, 0x5d, 0x69}},
		{"duty reverse", DriveDutyM2(testAddr, -1), withCRC(0x80, 33, 0x80, 0x01)},
		{"duty mixed", DriveDutyMixed(testAddr, Both[Duty](0.5, 0)), withCRC(0x80, 34, 0x40, 0x00, 0, 0)},
		{"speed negative", DriveSpeedM1(testAddr, -2), withCRC(0x80, 35, 0xff, 0xff, 0xff, 0xfe)},
		{"speed accel", DriveSpeedAccelM2(testAddr, 0x100, 0x200), withCRC(0x80, 39, 0, 0, 1, 0, 0, 0, 2, 0)},
		{
			"speed distance",
			DriveSpeedDistanceM1(testAddr, Motion{Speed: 1, Distance: 2}, Immediate),
			withCRC(0x80, 41, 0, 0, 0, 1, 0, 0, 0, 2, 1),
		},
		{
			"duty accel mixed",
			DriveDutyAccelMixed(testAddr, Both[Duty](0, 0), Both[uint16](1, 2)),
			withCRC(0x80, 54, 0, 0, 0, 1, 0, 0, 0, 2),
		},
		{
			"position",
			DriveToPositionM2(testAddr, PositionMove{Accel: 1, Speed: 2, Deccel: 3, Position: 4}, Buffered),
			withCRC(0x80, 66, 0, 0, 0, 1, 0, 0, 0, 2, 0, 0, 0, 3, 0, 0, 0, 4, 0),
		},
		{"min main voltage", SetMinMainVoltage(testAddr, Volts(10)), withCRC(0x80, 2, 20)},
		{"max main voltage", SetMaxMainVoltage(testAddr, Volts(25)), withCRC(0x80, 3, 128)},
		{
			"battery voltages",
			SetMainBatteryVoltages(testAddr, NewRange(Volts(12.3), Volts(16.8))),
			withCRC(0x80, 57, 0, 123, 0, 168),
		},
		{"encoder mode", SetEncoderModeM2(testAddr, EncoderAbsolute.WithRCAnalog()), withCRC(0x80, 93, 0x81)},
		{"current limit", SetCurrentLimitM1(testAddr, Amps(3)), withCRC(0x80, 133, 0, 0, 0x01, 0x2c, 0, 0, 0, 0)},
		{"config", SetConfig(testAddr, 0x8001), withCRC(0x80, 98, 0x80, 0x01)},
		{"pins", SetPinFunctions(testAddr, PinFunctions{S3: 1, S4: 2, S5: 3}), withCRC(0x80, 74, 1, 2, 3)},
		{"pwm mode", SetPwmMode(testAddr, PwmSignMagnitude), withCRC(0x80, 148, 1)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.True(t, tc.cmd.HasCRC())
			require.Equal(t, tc.expect, tc.cmd.Encode())
		})
	}
}

func TestPidEncoding(t *testing.T) {
	gains := PidGains{P: 1, I: 0.5, D: 0.25, QPPS: 44000}
	expect := []byte{
		0, 0, 0x40, 0x00, // D
		0, 1, 0x00, 0x00, // P
		0, 0, 0x80, 0x00, // I
		0, 0, 0xab, 0xe0, // QPPS
	}
	require.Equal(t, expect, SetVelocityPidM1(testAddr, gains).Payload())

	read, err := ReadVelocityPidM1(testAddr).Decode([]byte{
		0, 1, 0x00, 0x00,
		0, 0, 0x80, 0x00,
		0, 0, 0x40, 0x00,
		0, 0, 0xab, 0xe0,
	})
	require.NoError(t, err)
	require.Equal(t, gains, read)
}

func TestPositionPidEncoding(t *testing.T) {
	settings := PositionPidSettings{
		P: 2, I: 0, D: 1,
		MaxI:     5,
		Deadzone: 6,
		Limits:   NewRange[uint32](7, 8),
	}
	require.Equal(t, []byte{
		0, 1, 0, 0,
		0, 2, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 5,
		0, 0, 0, 6,
		0, 0, 0, 7,
		0, 0, 0, 8,
	}, SetPositionPidM2(testAddr, settings).Payload())

	read, err := ReadPositionPidM2(testAddr).Decode([]byte{
		0, 2, 0, 0,
		0, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 0, 5,
		0, 0, 0, 6,
		0, 0, 0, 7,
		0, 0, 0, 8,
	})
	require.NoError(t, err)
	require.Equal(t, settings, read)
}

func TestAckDecoding(t *testing.T) {
	cmds := []Write{
		DriveForwardM1(testAddr, 1),
		DriveSpeedMixed(testAddr, Both[Frequency](1, 2)),
		SetVelocityPidM2(testAddr, PidGains{}),
		RestoreDefaults(testAddr),
		WriteSettings(testAddr),
		Unit(testAddr, 0x70),
	}
	for _, cmd := range cmds {
		t.Run(cmd.Opcode().String(), func(t *testing.T) {
			_, err := cmd.Decode([]byte{AckByte})
			require.NoError(t, err)
			for b := 0; b < 0xff; b++ {
				_, err := cmd.Decode([]byte{byte(b)})
				var ackErr *UnexpectedAckError
				require.True(t, errors.As(err, &ackErr), "byte 0x%02x", b)
				require.Equal(t, byte(b), ackErr.Got)
				require.Equal(t, cmd.Opcode(), ackErr.Opcode)
			}
			_, err = cmd.Decode(nil)
			var shortErr *ShortResponseError
			require.True(t, errors.As(err, &shortErr))
		})
	}
}

func TestAckTrailingBytes(t *testing.T) {
	cmd := DriveForwardM1(testAddr, 1)

	_, err := cmd.Decode([]byte{AckByte, 0x00})
	var ackErr *UnexpectedAckError
	require.True(t, errors.As(err, &ackErr))
	require.Equal(t, byte(0x00), ackErr.Got)

	_, err = cmd.Decode([]byte{0x12, AckByte})
	require.True(t, errors.As(err, &ackErr))
	require.Equal(t, byte(0x12), ackErr.Got)

	_, err = cmd.Decode([]byte{AckByte, AckByte})
	var longErr *LongResponseError
	require.True(t, errors.As(err, &longErr))
	require.Equal(t, 1, longErr.Want)
	require.Equal(t, 2, longErr.Got)
}

func TestUnitCommand(t *testing.T) {
	cmd := Unit(0x82, 0x55)
	require.False(t, cmd.HasCRC())
	require.Equal(t, []byte{0x82, 0x55}, cmd.Encode())
}

func TestCommandIsImmutable(t *testing.T) {
	cmd := SetEncoderM2(testAddr, 7)
	first := cmd.Encode()
	first[2] = 0xee
	cmd.Payload()[0] = 0xee
	require.Equal(t, withCRC(0x80, 23, 0, 0, 0, 7), cmd.Encode())
}

func TestQueryDecoding(t *testing.T) {
	t.Run("status", func(t *testing.T) {
		q := ReadStatus(testAddr)
		require.Equal(t, []byte{0x80, 90}, q.Encode())
		st, err := q.Decode([]byte{0x00, 0x05})
		require.NoError(t, err)
		assert.True(t, st.EStop())
		assert.True(t, st.M1OverCurrentWarning())
		assert.False(t, st.Normal())
		assert.False(t, st.M2OverCurrentWarning())
		assert.False(t, st.TemperatureError())
		assert.False(t, st.M2Home())
		assert.Equal(t, []string{"m1-overcurrent-warning", "e-stop"}, st.Flags())
	})
	t.Run("battery", func(t *testing.T) {
		v, err := ReadMainBatteryVoltage(testAddr).Decode([]byte{0, 123})
		require.NoError(t, err)
		require.Equal(t, Volts(12.3), v)
		require.Equal(t, 12.3, v.Volts())
	})
	t.Run("voltage limits", func(t *testing.T) {
		r, err := ReadLogicBatteryVoltageLimits(testAddr).Decode([]byte{0, 60, 0, 0x8c})
		require.NoError(t, err)
		require.Equal(t, Range[Voltage]{Min: 6 * Volt, Max: 14 * Volt}, r)
	})
	t.Run("currents", func(t *testing.T) {
		c, err := ReadMotorCurrents(testAddr).Decode([]byte{0x01, 0x2c, 0xff, 0x9c})
		require.NoError(t, err)
		require.Equal(t, Both(3*Amp, -1*Amp), c)
	})
	t.Run("temperature", func(t *testing.T) {
		temp, err := ReadTemperature2(testAddr).Decode([]byte{0x01, 0x01})
		require.NoError(t, err)
		require.Equal(t, 25.7, temp.Celsius())
	})
	t.Run("encoder", func(t *testing.T) {
		r, err := ReadEncoderM2(testAddr).Decode([]byte{0, 0, 0, 0, 0x06})
		require.NoError(t, err)
		require.Equal(t, uint32(1)<<31, r.Count)
		require.True(t, r.Status.Forward())
		require.True(t, r.Status.Overflow())
		require.False(t, r.Status.Underflow())
	})
	t.Run("encoder counts", func(t *testing.T) {
		r, err := ReadEncoderCounts(testAddr).Decode([]byte{0xff, 0xff, 0xff, 0xff, 0x80, 0, 0, 0})
		require.NoError(t, err)
		require.Equal(t, Both(uint32(1)<<31-1, uint32(0)), r)
	})
	t.Run("speed", func(t *testing.T) {
		q := ReadSpeedM1(testAddr)
		for _, tc := range []struct {
			resp   []byte
			expect Frequency
		}{
			{[]byte{0, 0, 0x03, 0xe8, 0}, 1000},
			{[]byte{0, 0, 0x03, 0xe8, 1}, -1000},
			{[]byte{0xff, 0xff, 0xfc, 0x18, 1}, -1000},
		} {
			s, err := q.Decode(tc.resp)
			require.NoError(t, err)
			require.Equal(t, tc.expect, s)
		}
	})
	t.Run("pwms", func(t *testing.T) {
		d, err := ReadMotorPwms(testAddr).Decode([]byte{0x7f, 0xff, 0x80, 0x01})
		require.NoError(t, err)
		require.Equal(t, Both[Duty](1, -1), d)
	})
	t.Run("current limit", func(t *testing.T) {
		r, err := ReadCurrentLimitM1(testAddr).Decode([]byte{0, 0, 0x03, 0xe8, 0, 0, 0, 0x32})
		require.NoError(t, err)
		require.Equal(t, NewRange(500*Milliamp, 10*Amp), r)
	})
	t.Run("encoder modes", func(t *testing.T) {
		m, err := ReadEncoderModes(testAddr).Decode([]byte{0x00, 0x81})
		require.NoError(t, err)
		require.True(t, m.Channel1.Quadrature())
		require.False(t, m.Channel1.RCAnalog())
		require.True(t, m.Channel2.Absolute())
		require.True(t, m.Channel2.RCAnalog())
	})
	t.Run("buffers", func(t *testing.T) {
		b, err := ReadBufferLengths(testAddr).Decode([]byte{0x80, 3})
		require.NoError(t, err)
		require.True(t, b.Channel1.Empty())
		require.Equal(t, 3, b.Channel2.Pending())
	})
	t.Run("trailing bytes ignored", func(t *testing.T) {
		v, err := ReadConfig(testAddr).Decode([]byte{0x12, 0x34, 0xaa, 0xbb})
		require.NoError(t, err)
		require.Equal(t, uint16(0x1234), v)
	})
	t.Run("raw", func(t *testing.T) {
		q := RawQuery(testAddr, 0x99, 3)
		b, err := q.Decode([]byte{1, 2, 3, 4})
		require.NoError(t, err)
		require.Equal(t, []byte{1, 2, 3}, b)
	})
}

func TestShortResponse(t *testing.T) {
	testCases := []struct {
		name   string
		decode func([]byte) error
		want   int
	}{
		{"status", func(b []byte) error { _, err := ReadStatus(testAddr).Decode(b); return err }, 2},
		{"encoder", func(b []byte) error { _, err := ReadEncoderM1(testAddr).Decode(b); return err }, 5},
		{"pid", func(b []byte) error { _, err := ReadVelocityPidM2(testAddr).Decode(b); return err }, 16},
		{"position pid", func(b []byte) error { _, err := ReadPositionPidM1(testAddr).Decode(b); return err }, 28},
		{"pwm mode", func(b []byte) error { _, err := ReadPwmMode(testAddr).Decode(b); return err }, 1},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for n := 0; n < tc.want; n++ {
				err := tc.decode(make([]byte, n))
				var shortErr *ShortResponseError
				require.True(t, errors.As(err, &shortErr))
				require.Equal(t, tc.want, shortErr.Want)
				require.Equal(t, n, shortErr.Got)
			}
			require.NoError(t, tc.decode(make([]byte, tc.want)))
		})
	}
}

func TestFirmwareVersion(t *testing.T) {
	q := ReadFirmwareVersion(testAddr)
	require.Equal(t, ReplyDelimited, q.Reply().Kind)
	require.Equal(t, []byte{0x0a, 0x00}, q.Reply().Delimiter)

	v, err := q.Decode(append([]byte("USB Roboclaw 2x7a v4.1.34"), 0x0a, 0x00, 0x12, 0x34))
	require.NoError(t, err)
	require.Equal(t, "USB Roboclaw 2x7a v4.1.34", v)

	v, err = q.Decode([]byte("a\nb\n\x00"))
	require.NoError(t, err)
	require.Equal(t, "a\nb", v)

	_, err = q.Decode([]byte("truncated\n"))
	var shortErr *ShortResponseError
	require.True(t, errors.As(err, &shortErr))
}

func TestConstructionPanics(t *testing.T) {
	testCases := []struct {
		name string
		fn   func()
	}{
		{"7bit speed", func() { DriveM1(testAddr, 128) }},
		{"7bit mixed", func() { TurnLeftRightMixed(testAddr, 200) }},
		{"duty", func() { DriveDutyM1(testAddr, 1.5) }},
		{"speed overflow", func() { DriveSpeedM2(testAddr, 1<<40) }},
		{"negative accel", func() { DriveSpeedAccelM1(testAddr, -1, 0) }},
		{"min voltage", func() { SetMinMainVoltage(testAddr, Volts(2)) }},
		{"battery range", func() { SetMainBatteryVoltages(testAddr, Range[Voltage]{Min: 2 * Volt, Max: Volt}) }},
		{"negative pid", func() { SetVelocityPidM1(testAddr, PidGains{P: -1}) }},
		{"current", func() { SetCurrentLimitM2(testAddr, -Amp) }},
		{"channel", func() { ForChannel(testAddr, Channel(3)) }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				r := recover()
				require.NotNil(t, r)
				_, ok := r.(*RangeError)
				require.True(t, ok, "panic value %v", r)
			}()
			tc.fn()
		})
	}
}

func TestOpcodeString(t *testing.T) {
	require.Equal(t, "ReadStatus", OpReadStatus.String())
	require.Equal(t, "DriveForwardM1", OpDriveForwardM1.String())
	require.Equal(t, "Opcode(200)", Opcode(200).String())
	cmd := DriveSpeedIndividualAccelDistanceMixed(testAddr,
		Both[FrequencyRate](1, 2), Both(Motion{}, Motion{}), Buffered)
	require.Equal(t, OpDriveSpeedIndividualAccelDistanceMixed, cmd.Opcode())
	require.Equal(t, "DriveSpeedIndividualAccelDistanceMixed", cmd.Opcode().String())
}
