package roboclaw

func readEncoder(addr byte, ch Channel) Query[EncoderReading] {
	return newQuery(addr, pick(ch, OpReadEncoderM1, OpReadEncoderM2), 5, func(b []byte) EncoderReading {
		return EncoderReading{Count: encoderCountAt(b, 0), Status: EncoderStatus(b[4])}
	})
}

func readSpeed(addr byte, ch Channel) Query[Frequency] {
	return newQuery(addr, pick(ch, OpReadSpeedM1, OpReadSpeedM2), 5, func(b []byte) Frequency {
		return speedAt(b, 0)
	})
}

func readRawSpeed(addr byte, ch Channel) Query[Frequency] {
	return newQuery(addr, pick(ch, OpReadRawSpeedM1, OpReadRawSpeedM2), 5, func(b []byte) Frequency {
		return speedAt(b, 0)
	})
}

func readVelocityPid(addr byte, ch Channel) Query[PidGains] {
	return newQuery(addr, pick(ch, OpReadVelocityPidM1, OpReadVelocityPidM2), 16, func(b []byte) PidGains {
		return PidGains{
			P:    pidAt(b, 0),
			I:    pidAt(b, 4),
			D:    pidAt(b, 8),
			QPPS: Frequency(u32At(b, 12)),
		}
	})
}

func readPositionPid(addr byte, ch Channel) Query[PositionPidSettings] {
	return newQuery(addr, pick(ch, OpReadPositionPidM1, OpReadPositionPidM2), 28, func(b []byte) PositionPidSettings {
		return PositionPidSettings{
			P:        pidAt(b, 0),
			I:        pidAt(b, 4),
			D:        pidAt(b, 8),
			MaxI:     u32At(b, 12),
			Deadzone: u32At(b, 16),
			Limits:   Range[uint32]{Min: u32At(b, 20), Max: u32At(b, 24)},
		}
	})
}

func readCurrentLimit(addr byte, ch Channel) Query[Range[Current]] {
	return newQuery(addr, pick(ch, OpReadCurrentLimitM1, OpReadCurrentLimitM2), 8, func(b []byte) Range[Current] {
		return Range[Current]{
			Min: Current(u32At(b, 4)) * 10 * Milliamp,
			Max: Current(u32At(b, 0)) * 10 * Milliamp,
		}
	})
}

func readVoltage(addr byte, op Opcode) Query[Voltage] {
	return newQuery(addr, op, 2, func(b []byte) Voltage { return deciVoltsAt(b, 0) })
}

func readVoltageLimits(addr byte, op Opcode) Query[Range[Voltage]] {
	return newQuery(addr, op, 4, func(b []byte) Range[Voltage] {
		return Range[Voltage]{Min: deciVoltsAt(b, 0), Max: deciVoltsAt(b, 2)}
	})
}

func readTemperature(addr byte, op Opcode) Query[Temperature] {
	return newQuery(addr, op, 2, func(b []byte) Temperature { return deciCelsiusAt(b, 0) })
}

// ReadEncoderM1 reads the M1 encoder count and status.
func ReadEncoderM1(addr byte) Query[EncoderReading] { return readEncoder(addr, Channel1) }

// ReadEncoderM2 reads the M2 encoder count and status.
func ReadEncoderM2(addr byte) Query[EncoderReading] { return readEncoder(addr, Channel2) }

// ReadSpeedM1 reads the M1 speed, negative when moving backwards.
func ReadSpeedM1(addr byte) Query[Frequency] { return readSpeed(addr, Channel1) }

// ReadSpeedM2 reads the M2 speed, negative when moving backwards.
func ReadSpeedM2(addr byte) Query[Frequency] { return readSpeed(addr, Channel2) }

// ReadFirmwareVersion reads the firmware version string.
func ReadFirmwareVersion(addr byte) Query[string] {
	return Query[string]{
		header: header{addr: addr, op: OpReadFirmwareVersion},
		reply:  Reply{Kind: ReplyDelimited, Length: maxVersionLength, Delimiter: versionDelimiter},
		decode: decodeVersion(OpReadFirmwareVersion),
	}
}

// ReadMainBatteryVoltage reads the main battery voltage.
func ReadMainBatteryVoltage(addr byte) Query[Voltage] {
	return readVoltage(addr, OpReadMainBatteryVoltage)
}

// ReadLogicBatteryVoltage reads the logic battery voltage.
func ReadLogicBatteryVoltage(addr byte) Query[Voltage] {
	return readVoltage(addr, OpReadLogicBatteryVoltage)
}

// ReadRawSpeedM1 reads the unfiltered M1 speed.
func ReadRawSpeedM1(addr byte) Query[Frequency] { return readRawSpeed(addr, Channel1) }

// ReadRawSpeedM2 reads the unfiltered M2 speed.
func ReadRawSpeedM2(addr byte) Query[Frequency] { return readRawSpeed(addr, Channel2) }

// ReadBufferLengths reads the command buffer depth of both channels.
func ReadBufferLengths(addr byte) Query[TwoChannelData[BufferLength]] {
	return newQuery(addr, OpReadBufferLengths, 2, func(b []byte) TwoChannelData[BufferLength] {
		return Both(BufferLength(b[0]), BufferLength(b[1]))
	})
}

// ReadMotorPwms reads the current duty cycle of both channels.
func ReadMotorPwms(addr byte) Query[TwoChannelData[Duty]] {
	return newQuery(addr, OpReadMotorPwms, 4, func(b []byte) TwoChannelData[Duty] {
		return Both(dutyAt(b, 0), dutyAt(b, 2))
	})
}

// ReadMotorCurrents reads the current draw of both channels.
func ReadMotorCurrents(addr byte) Query[TwoChannelData[Current]] {
	return newQuery(addr, OpReadMotorCurrents, 4, func(b []byte) TwoChannelData[Current] {
		return Both(centiAmpsAt(b, 0), centiAmpsAt(b, 2))
	})
}

// ReadVelocityPidM1 reads the M1 velocity PID gains.
func ReadVelocityPidM1(addr byte) Query[PidGains] { return readVelocityPid(addr, Channel1) }

// ReadVelocityPidM2 reads the M2 velocity PID gains.
func ReadVelocityPidM2(addr byte) Query[PidGains] { return readVelocityPid(addr, Channel2) }

// ReadMainBatteryVoltageLimits reads the main battery operating range.
func ReadMainBatteryVoltageLimits(addr byte) Query[Range[Voltage]] {
	return readVoltageLimits(addr, OpReadMainBatteryVoltageLimits)
}

// ReadLogicBatteryVoltageLimits reads the logic battery operating range.
func ReadLogicBatteryVoltageLimits(addr byte) Query[Range[Voltage]] {
	return readVoltageLimits(addr, OpReadLogicBatteryVoltageLimits)
}

// ReadPositionPidM1 reads the M1 position PID settings.
func ReadPositionPidM1(addr byte) Query[PositionPidSettings] { return readPositionPid(addr, Channel1) }

// ReadPositionPidM2 reads the M2 position PID settings.
func ReadPositionPidM2(addr byte) Query[PositionPidSettings] { return readPositionPid(addr, Channel2) }

// ReadPinFunctions reads the S3, S4 and S5 pin modes.
func ReadPinFunctions(addr byte) Query[PinFunctions] {
	return newQuery(addr, OpReadPinFunctions, 3, func(b []byte) PinFunctions {
		return PinFunctions{S3: b[0], S4: b[1], S5: b[2]}
	})
}

// ReadDeadband reads the RC/analog deadbands.
func ReadDeadband(addr byte) Query[Range[uint8]] {
	return newQuery(addr, OpReadDeadband, 2, func(b []byte) Range[uint8] {
		return Range[uint8]{Min: b[0], Max: b[1]}
	})
}

// ReadEncoderCounts reads both encoder counters.
func ReadEncoderCounts(addr byte) Query[TwoChannelData[uint32]] {
	return newQuery(addr, OpReadEncoderCounts, 8, func(b []byte) TwoChannelData[uint32] {
		return Both(encoderCountAt(b, 0), encoderCountAt(b, 4))
	})
}

// ReadRawSpeeds reads the unfiltered speed of both channels.
func ReadRawSpeeds(addr byte) Query[TwoChannelData[Frequency]] {
	return newQuery(addr, OpReadRawSpeeds, 8, func(b []byte) TwoChannelData[Frequency] {
		return Both(Frequency(i32At(b, 0)), Frequency(i32At(b, 4)))
	})
}

// ReadDefaultDutyAccels reads the default duty acceleration of both channels.
func ReadDefaultDutyAccels(addr byte) Query[TwoChannelData[uint32]] {
	return newQuery(addr, OpReadDefaultDutyAccels, 8, func(b []byte) TwoChannelData[uint32] {
		return Both(u32At(b, 0), u32At(b, 4))
	})
}

// ReadTemperature reads the board temperature.
func ReadTemperature(addr byte) Query[Temperature] {
	return readTemperature(addr, OpReadTemperature)
}

// ReadTemperature2 reads the second temperature sensor.
func ReadTemperature2(addr byte) Query[Temperature] {
	return readTemperature(addr, OpReadTemperature2)
}

// ReadStatus reads the controller status word.
func ReadStatus(addr byte) Query[ControllerStatus] {
	return newQuery(addr, OpReadStatus, 2, func(b []byte) ControllerStatus {
		return ControllerStatus(u16At(b, 0))
	})
}

// ReadEncoderModes reads the encoder mode of both channels.
func ReadEncoderModes(addr byte) Query[TwoChannelData[EncoderMode]] {
	return newQuery(addr, OpReadEncoderModes, 2, func(b []byte) TwoChannelData[EncoderMode] {
		return Both(EncoderMode(b[0]), EncoderMode(b[1]))
	})
}

// ReadConfig reads the standard config bit field.
func ReadConfig(addr byte) Query[uint16] {
	return newQuery(addr, OpReadConfig, 2, func(b []byte) uint16 { return u16At(b, 0) })
}

// ReadCurrentLimitM1 reads the M1 current limits.
func ReadCurrentLimitM1(addr byte) Query[Range[Current]] { return readCurrentLimit(addr, Channel1) }

// ReadCurrentLimitM2 reads the M2 current limits.
func ReadCurrentLimitM2(addr byte) Query[Range[Current]] { return readCurrentLimit(addr, Channel2) }

// ReadPwmMode reads the bridge drive mode.
func ReadPwmMode(addr byte) Query[PwmMode] {
	return newQuery(addr, OpReadPwmMode, 1, func(b []byte) PwmMode { return PwmMode(b[0]) })
}
