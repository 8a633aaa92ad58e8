// Package dbfile reads database headers from disk and hands them to dbheader.
package dbfile

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"sqlite-header/dbheader"
)

var (
	ErrFileNotFound = errors.New("file not found")
	ErrFileTooShort = errors.New("file too short")
	ErrIO           = errors.New("io error")
)

type (
	FileTooShortError struct {
		Path   string
		Length int
	}
	notFoundError struct {
		path string
		err  error
	}
	ioError struct {
		op   string
		path string
		err  error
	}
)

func (r FileTooShortError) Error() string {
	return fmt.Sprintf(
		"%s: file too short: a database header needs %d bytes, got %d",
		r.Path, dbheader.HeaderSize, r.Length,
	)
}

func (r FileTooShortError) Is(target error) bool {
	return target == ErrFileTooShort
}

func (r notFoundError) Error() string {
	return fmt.Sprintf("%s: %v", ErrFileNotFound, r.err)
}

func (r notFoundError) Is(target error) bool {
	return target == ErrFileNotFound
}

func (r notFoundError) Unwrap() error {
	return r.err
}

func (r ioError) Error() string {
	return fmt.Sprintf("%s: %s %q: %v", ErrIO, r.op, r.path, r.err)
}

func (r ioError) Is(target error) bool {
	return target == ErrIO
}

func (r ioError) Unwrap() error {
	return r.err
}

// ReadHeader returns the first dbheader.HeaderSize bytes of the file at path.
func ReadHeader(path string) ([]byte, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, notFoundError{path: path, err: err}
	}
	if err != nil {
		return nil, ioError{op: "opening", path: path, err: err}
	}
	defer f.Close()

	bs := make([]byte, dbheader.HeaderSize)
	n, err := io.ReadFull(f, bs)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, &FileTooShortError{Path: path, Length: n}
	}
	if err != nil {
		return nil, ioError{op: "reading", path: path, err: err}
	}
	return bs, nil
}

// DecodeFile reads and decodes the header of the file at path. With strict
// set, advisory anomalies are fatal too.
func DecodeFile(path string, strict bool) (*dbheader.Header, error) {
	bs, err := ReadHeader(path)
	if err != nil {
		return nil, err
	}
	decode := dbheader.Decode
	if strict {
		decode = dbheader.DecodeStrict
	}
	header, err := decode(bs)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return header, nil
}
