package roboclaw

func setEncoder(addr byte, ch Channel, value uint32) Write {
	return newWrite(addr, pick(ch, OpSetEncoderM1, OpSetEncoderM2), payload(nil).u32(value))
}

func setVelocityPid(addr byte, ch Channel, g PidGains) Write {
	p := payload(nil).
		u32(pidRaw("d", g.D)).
		u32(pidRaw("p", g.P)).
		u32(pidRaw("i", g.I)).
		u32(checkedU32("qpps", int64(g.QPPS)))
	return newWrite(addr, pick(ch, OpSetVelocityPidM1, OpSetVelocityPidM2), p)
}

func setPositionPid(addr byte, ch Channel, s PositionPidSettings) Write {
	if s.Limits.Min > s.Limits.Max {
		panic(&RangeError{Field: "limits", Value: s.Limits})
	}
	p := payload(nil).
		u32(pidRaw("d", s.D)).
		u32(pidRaw("p", s.P)).
		u32(pidRaw("i", s.I)).
		u32(s.MaxI).
		u32(s.Deadzone).
		u32(s.Limits.Min).
		u32(s.Limits.Max)
	return newWrite(addr, pick(ch, OpSetPositionPidM1, OpSetPositionPidM2), p)
}

func setDefaultDutyAccel(addr byte, ch Channel, accel uint32) Write {
	return newWrite(addr, pick(ch, OpSetDefaultDutyAccelM1, OpSetDefaultDutyAccelM2), payload(nil).u32(accel))
}

func setEncoderMode(addr byte, ch Channel, mode EncoderMode) Write {
	return newWrite(addr, pick(ch, OpSetEncoderModeM1, OpSetEncoderModeM2), payload{byte(mode)})
}

// The minimum current limit is sent as zero.
func setCurrentLimit(addr byte, ch Channel, max Current) Write {
	p := payload(nil).u32(centiAmps("max", max)).u32(0)
	return newWrite(addr, pick(ch, OpSetCurrentLimitM1, OpSetCurrentLimitM2), p)
}

func voltageLimits(addr byte, op Opcode, r Range[Voltage]) Write {
	if r.Min > r.Max {
		panic(&RangeError{Field: "voltages", Value: r})
	}
	p := payload(nil).u16(deciVolts("min", r.Min)).u16(deciVolts("max", r.Max))
	return newWrite(addr, op, p)
}

// SetMinMainVoltage sets the main battery cutoff, 6V to 34V.
func SetMinMainVoltage(addr byte, v Voltage) Write {
	return newWrite(addr, OpSetMinMainVoltage, payload{minVoltageByte("voltage", v)})
}

// SetMaxMainVoltage sets the main battery over-voltage limit.
func SetMaxMainVoltage(addr byte, v Voltage) Write {
	return newWrite(addr, OpSetMaxMainVoltage, payload{maxVoltageByte("voltage", v)})
}

// SetMinLogicVoltage sets the logic battery cutoff.
func SetMinLogicVoltage(addr byte, v Voltage) Write {
	return newWrite(addr, OpSetMinLogicVoltage, payload{minVoltageByte("voltage", v)})
}

// SetMaxLogicVoltage sets the logic battery over-voltage limit.
func SetMaxLogicVoltage(addr byte, v Voltage) Write {
	return newWrite(addr, OpSetMaxLogicVoltage, payload{maxVoltageByte("voltage", v)})
}

// ResetEncoders zeroes both encoder counters.
func ResetEncoders(addr byte) Write { return newWrite(addr, OpResetEncoders, nil) }

// SetEncoderM1 sets the M1 encoder counter. The value is sent unconverted.
func SetEncoderM1(addr byte, value uint32) Write { return setEncoder(addr, Channel1, value) }

// SetEncoderM2 sets the M2 encoder counter. The value is sent unconverted.
func SetEncoderM2(addr byte, value uint32) Write { return setEncoder(addr, Channel2, value) }

// SetVelocityPidM1 sets the M1 velocity PID gains.
func SetVelocityPidM1(addr byte, g PidGains) Write { return setVelocityPid(addr, Channel1, g) }

// SetVelocityPidM2 sets the M2 velocity PID gains.
func SetVelocityPidM2(addr byte, g PidGains) Write { return setVelocityPid(addr, Channel2, g) }

// SetMainBatteryVoltages sets the main battery operating range.
func SetMainBatteryVoltages(addr byte, r Range[Voltage]) Write {
	return voltageLimits(addr, OpSetMainBatteryVoltages, r)
}

// SetLogicBatteryVoltages sets the logic battery operating range.
func SetLogicBatteryVoltages(addr byte, r Range[Voltage]) Write {
	return voltageLimits(addr, OpSetLogicBatteryVoltages, r)
}

// SetPositionPidM1 sets the M1 position PID settings.
func SetPositionPidM1(addr byte, s PositionPidSettings) Write {
	return setPositionPid(addr, Channel1, s)
}

// SetPositionPidM2 sets the M2 position PID settings.
func SetPositionPidM2(addr byte, s PositionPidSettings) Write {
	return setPositionPid(addr, Channel2, s)
}

// SetDefaultDutyAccelM1 sets the duty acceleration used by duty commands
// without an explicit one.
func SetDefaultDutyAccelM1(addr byte, accel uint32) Write {
	return setDefaultDutyAccel(addr, Channel1, accel)
}

// SetDefaultDutyAccelM2 is SetDefaultDutyAccelM1 for M2.
func SetDefaultDutyAccelM2(addr byte, accel uint32) Write {
	return setDefaultDutyAccel(addr, Channel2, accel)
}

// SetPinFunctions configures the S3, S4 and S5 pins.
func SetPinFunctions(addr byte, f PinFunctions) Write {
	return newWrite(addr, OpSetPinFunctions, payload{f.S3, f.S4, f.S5})
}

// SetDeadband sets the RC/analog reverse and forward deadbands.
func SetDeadband(addr byte, r Range[uint8]) Write {
	return newWrite(addr, OpSetDeadband, payload{r.Min, r.Max})
}

// RestoreDefaults resets all settings to factory defaults.
func RestoreDefaults(addr byte) Write { return newWrite(addr, OpRestoreDefaults, nil) }

// SetEncoderModeM1 sets the M1 encoder mode.
func SetEncoderModeM1(addr byte, mode EncoderMode) Write { return setEncoderMode(addr, Channel1, mode) }

// SetEncoderModeM2 sets the M2 encoder mode.
func SetEncoderModeM2(addr byte, mode EncoderMode) Write { return setEncoderMode(addr, Channel2, mode) }

// WriteSettings stores the current settings in non-volatile memory.
func WriteSettings(addr byte) Write { return newWrite(addr, OpWriteSettings, nil) }

// SetConfig writes the standard config bit field.
func SetConfig(addr byte, config uint16) Write {
	return newWrite(addr, OpSetConfig, payload(nil).u16(config))
}

// SetCurrentLimitM1 sets the M1 maximum current.
func SetCurrentLimitM1(addr byte, max Current) Write { return setCurrentLimit(addr, Channel1, max) }

// SetCurrentLimitM2 sets the M2 maximum current.
func SetCurrentLimitM2(addr byte, max Current) Write { return setCurrentLimit(addr, Channel2, max) }

// SetPwmMode selects the bridge drive mode.
func SetPwmMode(addr byte, mode PwmMode) Write {
	return newWrite(addr, OpSetPwmMode, payload{byte(mode)})
}
