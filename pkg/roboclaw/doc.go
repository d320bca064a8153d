// Package roboclaw implements the command catalog of a dual-channel
// motor controller spoken over a half-duplex serial link.
package roboclaw

// A request is the controller address, a one byte opcode, an optional
// payload and, for write commands, a big-endian CRC-16 over everything
// before it:
//
//	[address][opcode]                              query or unit
//	[address][opcode][payload...][crc_hi][crc_lo]  write
//
// Writes are acknowledged by a single 0xFF byte. Queries reply with a
// fixed per-opcode layout of big-endian fields, except the firmware
// version which is a string terminated by 0x0A 0x00.
//
// Commands carry no state: encoding is pure and the same value can be
// submitted any number of times. Correlating replies is the job of the
// comm package.
