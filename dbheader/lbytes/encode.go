package lbytes

import (
	"encoding/binary"
)

func EncodeUint16(value uint16) []byte {
	bs := make([]byte, 2)
	binary.BigEndian.PutUint16(bs, value)
	return bs
}

func EncodeUint32(value uint32) []byte {
	bs := make([]byte, 4)
	binary.BigEndian.PutUint32(bs, value)
	return bs
}

// EncodeFixed returns exactly n bytes of bs, zero padded or truncated.
func EncodeFixed(bs []byte, n int) []byte {
	result := make([]byte, n)
	copy(result, bs)
	return result
}
