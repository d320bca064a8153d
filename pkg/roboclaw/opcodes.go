package roboclaw

import "fmt"

// Opcode is the one byte command code.
type Opcode byte

// Opcodes
const (
	OpDriveForwardM1                         Opcode = 0
	OpDriveBackwardsM1                       Opcode = 1
	OpSetMinMainVoltage                      Opcode = 2
	OpSetMaxMainVoltage                      Opcode = 3
	OpDriveForwardM2                         Opcode = 4
	OpDriveBackwardsM2                       Opcode = 5
	OpDriveM1                                Opcode = 6
	OpDriveM2                                Opcode = 7
	OpDriveForwardMixed                      Opcode = 8
	OpDriveBackwardsMixed                    Opcode = 9
	OpTurnRightMixed                         Opcode = 10
	OpTurnLeftMixed                          Opcode = 11
	OpDriveForwardBackwardMixed              Opcode = 12
	OpTurnLeftRightMixed                     Opcode = 13
	OpReadEncoderM1                          Opcode = 16
	OpReadEncoderM2                          Opcode = 17
	OpReadSpeedM1                            Opcode = 18
	OpReadSpeedM2                            Opcode = 19
	OpResetEncoders                          Opcode = 20
	OpReadFirmwareVersion                    Opcode = 21
	OpSetEncoderM1                           Opcode = 22
	OpSetEncoderM2                           Opcode = 23
	OpReadMainBatteryVoltage                 Opcode = 24
	OpReadLogicBatteryVoltage                Opcode = 25
	OpSetMinLogicVoltage                     Opcode = 26
	OpSetMaxLogicVoltage                     Opcode = 27
	OpSetVelocityPidM1                       Opcode = 28
	OpSetVelocityPidM2                       Opcode = 29
	OpReadRawSpeedM1                         Opcode = 30
	OpReadRawSpeedM2                         Opcode = 31
	OpDriveDutyM1                            Opcode = 32
	OpDriveDutyM2                            Opcode = 33
	OpDriveDutyMixed                         Opcode = 34
	OpDriveSpeedM1                           Opcode = 35
	OpDriveSpeedM2                           Opcode = 36
	OpDriveSpeedMixed                        Opcode = 37
	OpDriveSpeedAccelM1                      Opcode = 38
	OpDriveSpeedAccelM2                      Opcode = 39
	OpDriveSpeedAccelMixed                   Opcode = 40
	OpDriveSpeedDistanceM1                   Opcode = 41
	OpDriveSpeedDistanceM2                   Opcode = 42
	OpDriveSpeedDistanceMixed                Opcode = 43
	OpDriveSpeedAccelDistanceM1              Opcode = 44
	OpDriveSpeedAccelDistanceM2              Opcode = 45
	OpDriveSpeedAccelDistanceMixed           Opcode = 46
	OpReadBufferLengths                      Opcode = 47
	OpReadMotorPwms                          Opcode = 48
	OpReadMotorCurrents                      Opcode = 49
	OpDriveSpeedIndividualAccelMixed         Opcode = 50
	OpDriveSpeedIndividualAccelDistanceMixed Opcode = 51
	OpDriveDutyAccelM1                       Opcode = 52
	OpDriveDutyAccelM2                       Opcode = 53
	OpDriveDutyAccelMixed                    Opcode = 54
	OpReadVelocityPidM1                      Opcode = 55
	OpReadVelocityPidM2                      Opcode = 56
	OpSetMainBatteryVoltages                 Opcode = 57
	OpSetLogicBatteryVoltages                Opcode = 58
	OpReadMainBatteryVoltageLimits           Opcode = 59
	OpReadLogicBatteryVoltageLimits          Opcode = 60
	OpSetPositionPidM1                       Opcode = 61
	OpSetPositionPidM2                       Opcode = 62
	OpReadPositionPidM1                      Opcode = 63
	OpReadPositionPidM2                      Opcode = 64
	OpDriveToPositionM1                      Opcode = 65
	OpDriveToPositionM2                      Opcode = 66
	OpDriveToPositionMixed                   Opcode = 67
	OpSetDefaultDutyAccelM1                  Opcode = 68
	OpSetDefaultDutyAccelM2                  Opcode = 69
	OpSetPinFunctions                        Opcode = 74
	OpReadPinFunctions                       Opcode = 75
	OpSetDeadband                            Opcode = 76
	OpReadDeadband                           Opcode = 77
	OpReadEncoderCounts                      Opcode = 78
	OpReadRawSpeeds                          Opcode = 79
	OpRestoreDefaults                        Opcode = 80
	OpReadDefaultDutyAccels                  Opcode = 81
	OpReadTemperature                        Opcode = 82
	OpReadTemperature2                       Opcode = 83
	OpReadStatus                             Opcode = 90
	OpReadEncoderModes                       Opcode = 91
	OpSetEncoderModeM1                       Opcode = 92
	OpSetEncoderModeM2                       Opcode = 93
	OpWriteSettings                          Opcode = 94
	OpSetConfig                              Opcode = 98
	OpReadConfig                             Opcode = 99
	OpSetCurrentLimitM1                      Opcode = 133
	OpSetCurrentLimitM2                      Opcode = 134
	OpReadCurrentLimitM1                     Opcode = 135
	OpReadCurrentLimitM2                     Opcode = 136
	OpSetPwmMode                             Opcode = 148
	OpReadPwmMode                            Opcode = 149
)

var opcodeNames = map[Opcode]string{
	OpDriveForwardM1:                         "DriveForwardM1",
	OpDriveBackwardsM1:                       "DriveBackwardsM1",
	OpSetMinMainVoltage:                      "SetMinMainVoltage",
	OpSetMaxMainVoltage:                      "SetMaxMainVoltage",
	OpDriveForwardM2:                         "DriveForwardM2",
	OpDriveBackwardsM2:                       "DriveBackwardsM2",
	OpDriveM1:                                "DriveM1",
	OpDriveM2:                                "DriveM2",
	OpDriveForwardMixed:                      "DriveForwardMixed",
	OpDriveBackwardsMixed:                    "DriveBackwardsMixed",
	OpTurnRightMixed:                         "TurnRightMixed",
	OpTurnLeftMixed:                          "TurnLeftMixed",
	OpDriveForwardBackwardMixed:              "DriveForwardBackwardMixed",
	OpTurnLeftRightMixed:                     "TurnLeftRightMixed",
	OpReadEncoderM1:                          "ReadEncoderM1",
	OpReadEncoderM2:                          "ReadEncoderM2",
	OpReadSpeedM1:                            "ReadSpeedM1",
	OpReadSpeedM2:                            "ReadSpeedM2",
	OpResetEncoders:                          "ResetEncoders",
	OpReadFirmwareVersion:                    "ReadFirmwareVersion",
	OpSetEncoderM1:                           "SetEncoderM1",
	OpSetEncoderM2:                           "SetEncoderM2",
	OpReadMainBatteryVoltage:                 "ReadMainBatteryVoltage",
	OpReadLogicBatteryVoltage:                "ReadLogicBatteryVoltage",
	OpSetMinLogicVoltage:                     "SetMinLogicVoltage",
	OpSetMaxLogicVoltage:                     "SetMaxLogicVoltage",
	OpSetVelocityPidM1:                       "SetVelocityPidM1",
	OpSetVelocityPidM2:                       "SetVelocityPidM2",
	OpReadRawSpeedM1:                         "ReadRawSpeedM1",
	OpReadRawSpeedM2:                         "ReadRawSpeedM2",
	OpDriveDutyM1:                            "DriveDutyM1",
	OpDriveDutyM2:                            "DriveDutyM2",
	OpDriveDutyMixed:                         "DriveDutyMixed",
	OpDriveSpeedM1:                           "DriveSpeedM1",
	OpDriveSpeedM2:                           "DriveSpeedM2",
	OpDriveSpeedMixed:                        "DriveSpeedMixed",
	OpDriveSpeedAccelM1:                      "DriveSpeedAccelM1",
	OpDriveSpeedAccelM2:                      "DriveSpeedAccelM2",
	OpDriveSpeedAccelMixed:                   "DriveSpeedAccelMixed",
	OpDriveSpeedDistanceM1:                   "DriveSpeedDistanceM1",
	OpDriveSpeedDistanceM2:                   "DriveSpeedDistanceM2",
	OpDriveSpeedDistanceMixed:                "DriveSpeedDistanceMixed",
	OpDriveSpeedAccelDistanceM1:              "DriveSpeedAccelDistanceM1",
	OpDriveSpeedAccelDistanceM2:              "DriveSpeedAccelDistanceM2",
	OpDriveSpeedAccelDistanceMixed:           "DriveSpeedAccelDistanceMixed",
	OpReadBufferLengths:                      "ReadBufferLengths",
	OpReadMotorPwms:                          "ReadMotorPwms",
	OpReadMotorCurrents:                      "ReadMotorCurrents",
	OpDriveSpeedIndividualAccelMixed:         "DriveSpeedIndividualAccelMixed",
	OpDriveSpeedIndividualAccelDistanceMixed: "DriveSpeedIndividualAccelDistanceMixed",
	OpDriveDutyAccelM1:                       "DriveDutyAccelM1",
	OpDriveDutyAccelM2:                       "DriveDutyAccelM2",
	OpDriveDutyAccelMixed:                    "DriveDutyAccelMixed",
	OpReadVelocityPidM1:                      "ReadVelocityPidM1",
	OpReadVelocityPidM2:                      "ReadVelocityPidM2",
	OpSetMainBatteryVoltages:                 "SetMainBatteryVoltages",
	OpSetLogicBatteryVoltages:                "SetLogicBatteryVoltages",
	OpReadMainBatteryVoltageLimits:           "ReadMainBatteryVoltageLimits",
	OpReadLogicBatteryVoltageLimits:          "ReadLogicBatteryVoltageLimits",
	OpSetPositionPidM1:                       "SetPositionPidM1",
	OpSetPositionPidM2:                       "SetPositionPidM2",
	OpReadPositionPidM1:                      "ReadPositionPidM1",
	OpReadPositionPidM2:                      "ReadPositionPidM2",
	OpDriveToPositionM1:                      "DriveToPositionM1",
	OpDriveToPositionM2:                      "DriveToPositionM2",
	OpDriveToPositionMixed:                   "DriveToPositionMixed",
	OpSetDefaultDutyAccelM1:                  "SetDefaultDutyAccelM1",
	OpSetDefaultDutyAccelM2:                  "SetDefaultDutyAccelM2",
	OpSetPinFunctions:                        "SetPinFunctions",
	OpReadPinFunctions:                       "ReadPinFunctions",
	OpSetDeadband:                            "SetDeadband",
	OpReadDeadband:                           "ReadDeadband",
	OpReadEncoderCounts:                      "ReadEncoderCounts",
	OpReadRawSpeeds:                          "ReadRawSpeeds",
	OpRestoreDefaults:                        "RestoreDefaults",
	OpReadDefaultDutyAccels:                  "ReadDefaultDutyAccels",
	OpReadTemperature:                        "ReadTemperature",
	OpReadTemperature2:                       "ReadTemperature2",
	OpReadStatus:                             "ReadStatus",
	OpReadEncoderModes:                       "ReadEncoderModes",
	OpSetEncoderModeM1:                       "SetEncoderModeM1",
	OpSetEncoderModeM2:                       "SetEncoderModeM2",
	OpWriteSettings:                          "WriteSettings",
	OpSetConfig:                              "SetConfig",
	OpReadConfig:                             "ReadConfig",
	OpSetCurrentLimitM1:                      "SetCurrentLimitM1",
	OpSetCurrentLimitM2:                      "SetCurrentLimitM2",
	OpReadCurrentLimitM1:                     "ReadCurrentLimitM1",
	OpReadCurrentLimitM2:                     "ReadCurrentLimitM2",
	OpSetPwmMode:                             "SetPwmMode",
	OpReadPwmMode:                            "ReadPwmMode",
}

// String implements fmt.Stringer.
func (o Opcode) String() string {
	if name, ok := opcodeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Opcode(%d)", byte(o))
}

// pick returns the channel 1 or channel 2 variant of an opcode pair.
func pick(ch Channel, m1, m2 Opcode) Opcode {
	if ch.mustValidate() == Channel2 {
		return m2
	}
	return m1
}
