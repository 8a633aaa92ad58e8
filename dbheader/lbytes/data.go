package lbytes

import (
	"bytes"
)

type (
	// Reader reads fixed-width fields front to back.
	Reader struct {
		bytes.Reader
	}
	// Instruction binds a field key to the read that produces its value.
	Instruction struct {
		Key          string
		ReadFunction ReadFunction
	}
	ReadFunction func() (any, error)
)

// Offset is the position of the next unread byte.
func (b *Reader) Offset() int {
	return int(b.Size()) - b.Len()
}
