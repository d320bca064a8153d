package roboclaw

import "fmt"

// AckByte is the reply to a successful write command.
const AckByte byte = 0xFF

// UnexpectedAckError is returned when a write command is answered with
// something other than AckByte.
type UnexpectedAckError struct {
	Opcode Opcode
	Got    byte
}

// Error implements error.
func (e *UnexpectedAckError) Error() string {
	return fmt.Sprintf("%v: unexpected acknowledgement 0x%02x", e.Opcode, e.Got)
}

// ShortResponseError is returned when a reply is shorter than its layout.
type ShortResponseError struct {
	Opcode Opcode
	Want   int
	Got    int
}

// Error implements error.
func (e *ShortResponseError) Error() string {
	return fmt.Sprintf("%v: short response, want %d bytes, got %d", e.Opcode, e.Want, e.Got)
}

// LongResponseError is returned when an acknowledgement is followed by
// extra bytes.
type LongResponseError struct {
	Opcode Opcode
	Want   int
	Got    int
}

// Error implements error.
func (e *LongResponseError) Error() string {
	return fmt.Sprintf("%v: long response, want %d bytes, got %d", e.Opcode, e.Want, e.Got)
}

// RangeError is the panic value of a command built with a value its
// wire field cannot represent.
type RangeError struct {
	Field string
	Value interface{}
}

// Error implements error.
func (e *RangeError) Error() string {
	return fmt.Sprintf("roboclaw: %s out of range: %v", e.Field, e.Value)
}
