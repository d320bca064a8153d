package roboclaw

// ChannelCommands builds the channel specific variant of every per-motor
// command for one controller address.
type ChannelCommands struct {
	addr byte
	ch   Channel
}

// ForChannel creates ChannelCommands. It panics if ch is not Channel1 or
// Channel2.
func ForChannel(addr byte, ch Channel) ChannelCommands {
	return ChannelCommands{addr: addr, ch: ch.mustValidate()}
}

// Address returns the controller address.
func (c ChannelCommands) Address() byte { return c.addr }

// Channel returns the selected channel.
func (c ChannelCommands) Channel() Channel { return c.ch }

// DriveForward is DriveForwardM1 or DriveForwardM2 for the selected channel.
func (c ChannelCommands) DriveForward(speed uint8) Write {
	return driveForward(c.addr, c.ch, speed)
}

// DriveBackwards is DriveBackwardsM1 or DriveBackwardsM2 for the selected channel.
func (c ChannelCommands) DriveBackwards(speed uint8) Write {
	return driveBackwards(c.addr, c.ch, speed)
}

// Drive is the 7-bit drive command, see DriveM1.
func (c ChannelCommands) Drive(speed uint8) Write {
	return drive7Bit(c.addr, c.ch, speed)
}

// ReadEncoder is ReadEncoderM1 or ReadEncoderM2 for the selected channel.
func (c ChannelCommands) ReadEncoder() Query[EncoderReading] {
	return readEncoder(c.addr, c.ch)
}

// ReadSpeed is ReadSpeedM1 or ReadSpeedM2 for the selected channel.
func (c ChannelCommands) ReadSpeed() Query[Frequency] {
	return readSpeed(c.addr, c.ch)
}

// SetEncoder is SetEncoderM1 or SetEncoderM2 for the selected channel.
func (c ChannelCommands) SetEncoder(value uint32) Write {
	return setEncoder(c.addr, c.ch, value)
}

// SetVelocityPid is SetVelocityPidM1 or SetVelocityPidM2 for the selected channel.
func (c ChannelCommands) SetVelocityPid(g PidGains) Write {
	return setVelocityPid(c.addr, c.ch, g)
}

// ReadRawSpeed is ReadRawSpeedM1 or ReadRawSpeedM2 for the selected channel.
func (c ChannelCommands) ReadRawSpeed() Query[Frequency] {
	return readRawSpeed(c.addr, c.ch)
}

// DriveDuty is DriveDutyM1 or DriveDutyM2 for the selected channel.
func (c ChannelCommands) DriveDuty(duty Duty) Write {
	return driveDuty(c.addr, c.ch, duty)
}

// DriveSpeed is DriveSpeedM1 or DriveSpeedM2 for the selected channel.
func (c ChannelCommands) DriveSpeed(speed Frequency) Write {
	return driveSpeed(c.addr, c.ch, speed)
}

// DriveSpeedAccel is DriveSpeedAccelM1 or DriveSpeedAccelM2 for the selected channel.
func (c ChannelCommands) DriveSpeedAccel(accel FrequencyRate, speed Frequency) Write {
	return driveSpeedAccel(c.addr, c.ch, accel, speed)
}

// DriveSpeedDistance is DriveSpeedDistanceM1 or DriveSpeedDistanceM2 for the selected channel.
func (c ChannelCommands) DriveSpeedDistance(m Motion, buf Buffering) Write {
	return driveSpeedDistance(c.addr, c.ch, m, buf)
}

// DriveSpeedAccelDistance is DriveSpeedAccelDistanceM1 or DriveSpeedAccelDistanceM2 for the selected channel.
func (c ChannelCommands) DriveSpeedAccelDistance(accel FrequencyRate, m Motion, buf Buffering) Write {
	return driveSpeedAccelDistance(c.addr, c.ch, accel, m, buf)
}

// DriveDutyAccel is DriveDutyAccelM1 or DriveDutyAccelM2 for the selected channel.
func (c ChannelCommands) DriveDutyAccel(duty Duty, accel uint16) Write {
	return driveDutyAccel(c.addr, c.ch, duty, accel)
}

// ReadVelocityPid is ReadVelocityPidM1 or ReadVelocityPidM2 for the selected channel.
func (c ChannelCommands) ReadVelocityPid() Query[PidGains] {
	return readVelocityPid(c.addr, c.ch)
}

// SetPositionPid is SetPositionPidM1 or SetPositionPidM2 for the selected channel.
func (c ChannelCommands) SetPositionPid(s PositionPidSettings) Write {
	return setPositionPid(c.addr, c.ch, s)
}

// ReadPositionPid is ReadPositionPidM1 or ReadPositionPidM2 for the selected channel.
func (c ChannelCommands) ReadPositionPid() Query[PositionPidSettings] {
	return readPositionPid(c.addr, c.ch)
}

// DriveToPosition is DriveToPositionM1 or DriveToPositionM2 for the selected channel.
func (c ChannelCommands) DriveToPosition(m PositionMove, buf Buffering) Write {
	return driveToPosition(c.addr, c.ch, m, buf)
}

// SetDefaultDutyAccel is SetDefaultDutyAccelM1 or SetDefaultDutyAccelM2 for the selected channel.
func (c ChannelCommands) SetDefaultDutyAccel(accel uint32) Write {
	return setDefaultDutyAccel(c.addr, c.ch, accel)
}

// SetEncoderMode is SetEncoderModeM1 or SetEncoderModeM2 for the selected channel.
func (c ChannelCommands) SetEncoderMode(mode EncoderMode) Write {
	return setEncoderMode(c.addr, c.ch, mode)
}

// SetCurrentLimit is SetCurrentLimitM1 or SetCurrentLimitM2 for the selected channel.
func (c ChannelCommands) SetCurrentLimit(max Current) Write {
	return setCurrentLimit(c.addr, c.ch, max)
}

// ReadCurrentLimit is ReadCurrentLimitM1 or ReadCurrentLimitM2 for the selected channel.
func (c ChannelCommands) ReadCurrentLimit() Query[Range[Current]] {
	return readCurrentLimit(c.addr, c.ch)
}
