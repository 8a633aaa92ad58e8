package lbytes

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

func NewBytesReader(bs []byte) *Reader {
	return &Reader{
		Reader: *bytes.NewReader(bs),
	}
}

func (b *Reader) ReadUint8() (uint8, error) {
	offset := b.Offset()
	result, err := b.ReadByte()
	if err != nil {
		return 0, errors.Wrapf(err, "ReadUint8 error at offset %d", offset)
	}
	return result, nil
}

func (b *Reader) ReadUint16() (uint16, error) {
	bs, err := b.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(bs), nil
}

func (b *Reader) ReadUint32() (uint32, error) {
	bs, err := b.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(bs), nil
}

// ReadBytes returns a fresh copy of the next n bytes. A short read is an
// error, unlike bytes.Reader.Read.
func (b *Reader) ReadBytes(n int) ([]byte, error) {
	bs := make([]byte, n)
	if n == 0 {
		return bs, nil
	}
	offset := b.Offset()
	_, err := io.ReadFull(b, bs)
	if err != nil {
		return nil, errors.Wrapf(err, "ReadBytes error reading %d bytes at offset %d", n, offset)
	}
	return bs, nil
}
