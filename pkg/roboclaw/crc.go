package roboclaw

const crcPolynomial uint16 = 0x1021

// CRC16 computes the CRC-16/XMODEM checksum the controller expects on
// write commands. The controller computes it bit by bit and so does this.
func CRC16(data []byte) uint16 {
	var crc uint16
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ crcPolynomial
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
