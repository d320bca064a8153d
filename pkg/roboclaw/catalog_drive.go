package roboclaw

// Drive commands. Each channel pair is built by one function taking the
// Channel, and exposed as M1/M2 constructors and through ForChannel.

func driveForward(addr byte, ch Channel, speed uint8) Write {
	return newWrite(addr, pick(ch, OpDriveForwardM1, OpDriveForwardM2), payload{speed})
}

func driveBackwards(addr byte, ch Channel, speed uint8) Write {
	return newWrite(addr, pick(ch, OpDriveBackwardsM1, OpDriveBackwardsM2), payload{speed})
}

func drive7Bit(addr byte, ch Channel, speed uint8) Write {
	return newWrite(addr, pick(ch, OpDriveM1, OpDriveM2), payload{checked7Bit("speed", speed)})
}

func driveDuty(addr byte, ch Channel, duty Duty) Write {
	return newWrite(addr, pick(ch, OpDriveDutyM1, OpDriveDutyM2), payload(nil).duty("duty", duty))
}

func driveSpeed(addr byte, ch Channel, speed Frequency) Write {
	return newWrite(addr, pick(ch, OpDriveSpeedM1, OpDriveSpeedM2), payload(nil).frequency("speed", speed))
}

func driveSpeedAccel(addr byte, ch Channel, accel FrequencyRate, speed Frequency) Write {
	p := payload(nil).rate("accel", accel).frequency("speed", speed)
	return newWrite(addr, pick(ch, OpDriveSpeedAccelM1, OpDriveSpeedAccelM2), p)
}

func driveSpeedDistance(addr byte, ch Channel, m Motion, buf Buffering) Write {
	p := payload(nil).motion("motion", m).u8(byte(buf))
	return newWrite(addr, pick(ch, OpDriveSpeedDistanceM1, OpDriveSpeedDistanceM2), p)
}

func driveSpeedAccelDistance(addr byte, ch Channel, accel FrequencyRate, m Motion, buf Buffering) Write {
	p := payload(nil).rate("accel", accel).motion("motion", m).u8(byte(buf))
	return newWrite(addr, pick(ch, OpDriveSpeedAccelDistanceM1, OpDriveSpeedAccelDistanceM2), p)
}

func driveDutyAccel(addr byte, ch Channel, duty Duty, accel uint16) Write {
	p := payload(nil).duty("duty", duty).u16(accel)
	return newWrite(addr, pick(ch, OpDriveDutyAccelM1, OpDriveDutyAccelM2), p)
}

func driveToPosition(addr byte, ch Channel, m PositionMove, buf Buffering) Write {
	p := payload(nil).move("move", m).u8(byte(buf))
	return newWrite(addr, pick(ch, OpDriveToPositionM1, OpDriveToPositionM2), p)
}

// DriveForwardM1 drives M1 forward, speed 0 stops.
func DriveForwardM1(addr byte, speed uint8) Write { return driveForward(addr, Channel1, speed) }

// DriveForwardM2 drives M2 forward, speed 0 stops.
func DriveForwardM2(addr byte, speed uint8) Write { return driveForward(addr, Channel2, speed) }

// DriveBackwardsM1 drives M1 backwards.
func DriveBackwardsM1(addr byte, speed uint8) Write { return driveBackwards(addr, Channel1, speed) }

// DriveBackwardsM2 drives M2 backwards.
func DriveBackwardsM2(addr byte, speed uint8) Write { return driveBackwards(addr, Channel2, speed) }

// DriveM1 drives M1 with a 7-bit speed: 0 full reverse, 64 stop, 127 full
// forward. Panics if speed > 127.
func DriveM1(addr byte, speed uint8) Write { return drive7Bit(addr, Channel1, speed) }

// DriveM2 is DriveM1 for M2.
func DriveM2(addr byte, speed uint8) Write { return drive7Bit(addr, Channel2, speed) }

// DriveForwardMixed drives both motors forward in mixed mode.
func DriveForwardMixed(addr byte, speed uint8) Write {
	return newWrite(addr, OpDriveForwardMixed, payload{speed})
}

// DriveBackwardsMixed drives both motors backwards in mixed mode.
func DriveBackwardsMixed(addr byte, speed uint8) Write {
	return newWrite(addr, OpDriveBackwardsMixed, payload{speed})
}

// TurnRightMixed turns right in mixed mode.
func TurnRightMixed(addr byte, speed uint8) Write {
	return newWrite(addr, OpTurnRightMixed, payload{speed})
}

// TurnLeftMixed turns left in mixed mode.
func TurnLeftMixed(addr byte, speed uint8) Write {
	return newWrite(addr, OpTurnLeftMixed, payload{speed})
}

// DriveForwardBackwardMixed drives in mixed mode with a 7-bit speed, 64 stops.
func DriveForwardBackwardMixed(addr byte, speed uint8) Write {
	return newWrite(addr, OpDriveForwardBackwardMixed, payload{checked7Bit("speed", speed)})
}

// TurnLeftRightMixed turns in mixed mode with a 7-bit value, 64 stops turning.
func TurnLeftRightMixed(addr byte, speed uint8) Write {
	return newWrite(addr, OpTurnLeftRightMixed, payload{checked7Bit("speed", speed)})
}

// DriveDutyM1 drives M1 with a signed duty cycle.
func DriveDutyM1(addr byte, duty Duty) Write { return driveDuty(addr, Channel1, duty) }

// DriveDutyM2 drives M2 with a signed duty cycle.
func DriveDutyM2(addr byte, duty Duty) Write { return driveDuty(addr, Channel2, duty) }

// DriveDutyMixed drives both motors with signed duty cycles.
func DriveDutyMixed(addr byte, duty TwoChannelData[Duty]) Write {
	p := payload(nil).duty("duty1", duty.Channel1).duty("duty2", duty.Channel2)
	return newWrite(addr, OpDriveDutyMixed, p)
}

// DriveSpeedM1 drives M1 at a signed speed using the velocity PID.
func DriveSpeedM1(addr byte, speed Frequency) Write { return driveSpeed(addr, Channel1, speed) }

// DriveSpeedM2 drives M2 at a signed speed using the velocity PID.
func DriveSpeedM2(addr byte, speed Frequency) Write { return driveSpeed(addr, Channel2, speed) }

// DriveSpeedMixed drives both motors at signed speeds.
func DriveSpeedMixed(addr byte, speed TwoChannelData[Frequency]) Write {
	p := payload(nil).frequency("speed1", speed.Channel1).frequency("speed2", speed.Channel2)
	return newWrite(addr, OpDriveSpeedMixed, p)
}

// DriveSpeedAccelM1 ramps M1 to speed with accel.
func DriveSpeedAccelM1(addr byte, accel FrequencyRate, speed Frequency) Write {
	return driveSpeedAccel(addr, Channel1, accel, speed)
}

// DriveSpeedAccelM2 ramps M2 to speed with accel.
func DriveSpeedAccelM2(addr byte, accel FrequencyRate, speed Frequency) Write {
	return driveSpeedAccel(addr, Channel2, accel, speed)
}

// DriveSpeedAccelMixed ramps both motors with a shared accel.
func DriveSpeedAccelMixed(addr byte, accel FrequencyRate, speed TwoChannelData[Frequency]) Write {
	p := payload(nil).rate("accel", accel).
		frequency("speed1", speed.Channel1).
		frequency("speed2", speed.Channel2)
	return newWrite(addr, OpDriveSpeedAccelMixed, p)
}

// DriveSpeedDistanceM1 moves M1 a distance at speed.
func DriveSpeedDistanceM1(addr byte, m Motion, buf Buffering) Write {
	return driveSpeedDistance(addr, Channel1, m, buf)
}

// DriveSpeedDistanceM2 moves M2 a distance at speed.
func DriveSpeedDistanceM2(addr byte, m Motion, buf Buffering) Write {
	return driveSpeedDistance(addr, Channel2, m, buf)
}

// DriveSpeedDistanceMixed moves both motors.
func DriveSpeedDistanceMixed(addr byte, m TwoChannelData[Motion], buf Buffering) Write {
	p := payload(nil).motion("motion1", m.Channel1).motion("motion2", m.Channel2).u8(byte(buf))
	return newWrite(addr, OpDriveSpeedDistanceMixed, p)
}

// DriveSpeedAccelDistanceM1 moves M1 a distance with acceleration.
func DriveSpeedAccelDistanceM1(addr byte, accel FrequencyRate, m Motion, buf Buffering) Write {
	return driveSpeedAccelDistance(addr, Channel1, accel, m, buf)
}

// DriveSpeedAccelDistanceM2 moves M2 a distance with acceleration.
func DriveSpeedAccelDistanceM2(addr byte, accel FrequencyRate, m Motion, buf Buffering) Write {
	return driveSpeedAccelDistance(addr, Channel2, accel, m, buf)
}

// DriveSpeedAccelDistanceMixed moves both motors with a shared accel.
func DriveSpeedAccelDistanceMixed(addr byte, accel FrequencyRate, m TwoChannelData[Motion], buf Buffering) Write {
	p := payload(nil).rate("accel", accel).
		motion("motion1", m.Channel1).
		motion("motion2", m.Channel2).
		u8(byte(buf))
	return newWrite(addr, OpDriveSpeedAccelDistanceMixed, p)
}

// DriveSpeedIndividualAccelMixed ramps each motor with its own accel.
func DriveSpeedIndividualAccelMixed(addr byte, accel TwoChannelData[FrequencyRate], speed TwoChannelData[Frequency]) Write {
	p := payload(nil).
		rate("accel1", accel.Channel1).frequency("speed1", speed.Channel1).
		rate("accel2", accel.Channel2).frequency("speed2", speed.Channel2)
	return newWrite(addr, OpDriveSpeedIndividualAccelMixed, p)
}

// DriveSpeedIndividualAccelDistanceMixed moves each motor a distance with
// its own accel.
func DriveSpeedIndividualAccelDistanceMixed(addr byte, accel TwoChannelData[FrequencyRate], m TwoChannelData[Motion], buf Buffering) Write {
	p := payload(nil).
		rate("accel1", accel.Channel1).motion("motion1", m.Channel1).
		rate("accel2", accel.Channel2).motion("motion2", m.Channel2).
		u8(byte(buf))
	return newWrite(addr, OpDriveSpeedIndividualAccelDistanceMixed, p)
}

// DriveDutyAccelM1 ramps M1 to a duty cycle.
func DriveDutyAccelM1(addr byte, duty Duty, accel uint16) Write {
	return driveDutyAccel(addr, Channel1, duty, accel)
}

// DriveDutyAccelM2 ramps M2 to a duty cycle.
func DriveDutyAccelM2(addr byte, duty Duty, accel uint16) Write {
	return driveDutyAccel(addr, Channel2, duty, accel)
}

// DriveDutyAccelMixed ramps both motors to duty cycles.
func DriveDutyAccelMixed(addr byte, duty TwoChannelData[Duty], accel TwoChannelData[uint16]) Write {
	p := payload(nil).
		duty("duty1", duty.Channel1).u16(accel.Channel1).
		duty("duty2", duty.Channel2).u16(accel.Channel2)
	return newWrite(addr, OpDriveDutyAccelMixed, p)
}

// DriveToPositionM1 moves M1 to an absolute position.
func DriveToPositionM1(addr byte, m PositionMove, buf Buffering) Write {
	return driveToPosition(addr, Channel1, m, buf)
}

// DriveToPositionM2 moves M2 to an absolute position.
func DriveToPositionM2(addr byte, m PositionMove, buf Buffering) Write {
	return driveToPosition(addr, Channel2, m, buf)
}

// DriveToPositionMixed moves both motors to absolute positions.
func DriveToPositionMixed(addr byte, m TwoChannelData[PositionMove], buf Buffering) Write {
	p := payload(nil).move("move1", m.Channel1).move("move2", m.Channel2).u8(byte(buf))
	return newWrite(addr, OpDriveToPositionMixed, p)
}
