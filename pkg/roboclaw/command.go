package roboclaw

import (
	"bytes"
	"encoding/binary"
)

// ReplyKind tells the transport how a reply is terminated.
type ReplyKind int

const (
	// ReplyAck is the single acknowledgement byte of write commands.
	ReplyAck ReplyKind = iota
	// ReplyFixed is a query reply of exactly Reply.Length bytes.
	ReplyFixed
	// ReplyDelimited ends with Reply.Delimiter and spans at most
	// Reply.Length bytes.
	ReplyDelimited
)

// Reply describes the reply a command expects.
type Reply struct {
	Kind      ReplyKind
	Length    int
	Delimiter []byte
}

// Request is the untyped part of a command, enough to put it on the wire.
type Request interface {
	Address() byte
	Opcode() Opcode
	// Encode returns the exact bytes to write.
	Encode() []byte
	// Reply describes the reply to read back.
	Reply() Reply
}

// Command is a Request with a typed reply decoder.
type Command[T any] interface {
	Request
	Decode(resp []byte) (T, error)
}

// Ack is the result of write commands.
type Ack struct{}

type header struct {
	addr byte
	op   Opcode
}

// Address returns the controller address.
func (h header) Address() byte { return h.addr }

// Opcode returns the command code.
func (h header) Opcode() Opcode { return h.op }

// Write is a command answered by the acknowledgement byte. Unless built
// with Unit, its payload is followed by a CRC-16.
type Write struct {
	header
	payload payload
	crc     bool
}

var ackReply = Reply{Kind: ReplyAck, Length: 1}

func newWrite(addr byte, op Opcode, p payload) Write {
	return Write{header: header{addr: addr, op: op}, payload: p, crc: true}
}

// Unit creates a write command of a bare opcode without payload or
// checksum, for opcodes the catalog doesn't cover.
func Unit(addr byte, op Opcode) Write {
	return Write{header: header{addr: addr, op: op}}
}

// HasCRC reports whether Encode appends a checksum.
func (c Write) HasCRC() bool { return c.crc }

// Payload returns a copy of the payload fields.
func (c Write) Payload() []byte {
	return append([]byte(nil), c.payload...)
}

// Encode implements Request.
func (c Write) Encode() []byte {
	b := make([]byte, 0, len(c.payload)+4)
	b = append(b, c.addr, byte(c.op))
	b = append(b, c.payload...)
	if c.crc {
		b = binary.BigEndian.AppendUint16(b, CRC16(b))
	}
	return b
}

// Reply implements Request.
func (c Write) Reply() Reply { return ackReply }

// Decode implements Command.
func (c Write) Decode(resp []byte) (Ack, error) {
	if len(resp) == 0 {
		return Ack{}, &ShortResponseError{Opcode: c.op, Want: 1}
	}
	for _, b := range resp {
		if b != AckByte {
			return Ack{}, &UnexpectedAckError{Opcode: c.op, Got: b}
		}
	}
	if len(resp) > 1 {
		return Ack{}, &LongResponseError{Opcode: c.op, Want: 1, Got: len(resp)}
	}
	return Ack{}, nil
}

// Query is a command answered with data.
type Query[T any] struct {
	header
	reply  Reply
	decode func([]byte) (T, error)
}

func newQuery[T any](addr byte, op Opcode, n int, decode func(b []byte) T) Query[T] {
	return Query[T]{
		header: header{addr: addr, op: op},
		reply:  Reply{Kind: ReplyFixed, Length: n},
		decode: func(b []byte) (T, error) { return decode(b), nil },
	}
}

// RawQuery creates a query returning n undecoded bytes.
func RawQuery(addr byte, op Opcode, n int) Query[[]byte] {
	return newQuery(addr, op, n, func(b []byte) []byte {
		return append([]byte(nil), b[:n]...)
	})
}

// Encode implements Request.
func (q Query[T]) Encode() []byte { return []byte{q.addr, byte(q.op)} }

// Reply implements Request.
func (q Query[T]) Reply() Reply { return q.reply }

// Decode implements Command. Bytes past the layout are ignored.
func (q Query[T]) Decode(resp []byte) (T, error) {
	if q.reply.Kind == ReplyFixed && len(resp) < q.reply.Length {
		var zero T
		return zero, &ShortResponseError{Opcode: q.op, Want: q.reply.Length, Got: len(resp)}
	}
	return q.decode(resp)
}

var versionDelimiter = []byte{0x0a, 0x00}

const maxVersionLength = 48

func decodeVersion(op Opcode) func([]byte) (string, error) {
	return func(b []byte) (string, error) {
		n := bytes.Index(b, versionDelimiter)
		if n < 0 {
			return "", &ShortResponseError{Opcode: op, Want: len(b) + len(versionDelimiter), Got: len(b)}
		}
		return string(b[:n]), nil
	}
}

var (
	_ Command[Ack]    = Write{}
	_ Command[string] = Query[string]{}
)
