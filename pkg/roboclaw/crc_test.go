package roboclaw

import (
	"math/rand"
	"testing"

	"github.com/sigurn/crc16"
	"github.com/stretchr/testify/require"
)

func TestCRC16(t *testing.T) {
	testCases := []struct {
		name   string
		data   []byte
		expect uint16
	}{
		{"empty", nil, 0},
		{"check string", []byte("123456789"), 0x31c3},
		{"drive forward", []byte{0x80, 0x00, 0x80}, 0xaad2},
		{"drive duty", []byte{0x80, 0x20, 0x7f, 0xff}, 0x5d69},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, CRC16(tc.data))
		})
	}
}

func TestCRC16MatchesReference(t *testing.T) {
	table := crc16.MakeTable(crc16.CRC16_XMODEM)
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		data := make([]byte, rnd.Intn(64))
		rnd.Read(data)
		require.Equalf(t, crc16.Checksum(data, table), CRC16(data), "data %x", data)
		require.Equal(t, CRC16(data), CRC16(data))
	}
}
