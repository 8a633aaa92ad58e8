package dbfile

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqlite-header/dbheader"
)

func writeFile(t *testing.T, bs []byte) string {
	path := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, os.WriteFile(path, bs, 0644))
	return path
}

func TestReadHeader(t *testing.T) {
	bs := append(dbheader.Encode(dbheader.Default()), make([]byte, 4096)...)
	path := writeFile(t, bs)

	headerBytes, err := ReadHeader(path)
	require.NoError(t, err)
	assert.Equal(t, bs[:dbheader.HeaderSize], headerBytes)
}

func TestReadHeader_NotFound(t *testing.T) {
	_, err := ReadHeader(filepath.Join(t.TempDir(), "missing.db"))
	assert.ErrorIs(t, err, ErrFileNotFound)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NotErrorIs(t, err, ErrIO)
}

func TestReadHeader_TooShort(t *testing.T) {
	for _, n := range []int{0, 1, dbheader.HeaderSize - 1} {
		path := writeFile(t, dbheader.Encode(dbheader.Default())[:n])

		_, err := ReadHeader(path)
		assert.ErrorIs(t, err, ErrFileTooShort)

		var target *FileTooShortError
		require.True(t, errors.As(err, &target))
		assert.Equal(t, n, target.Length)
		assert.Equal(t, path, target.Path)
	}
}

func TestReadHeader_Directory(t *testing.T) {
	dir := t.TempDir()
	_, err := ReadHeader(dir)
	assert.ErrorIs(t, err, ErrIO)
	assert.NotErrorIs(t, err, ErrFileTooShort)

	// the os error stays reachable behind ErrIO
	var pathErr *fs.PathError
	require.True(t, errors.As(err, &pathErr))
	assert.Equal(t, dir, pathErr.Path)
	assert.Contains(t, err.Error(), "io error: reading")
}

func TestDecodeFile(t *testing.T) {
	header := dbheader.Default()
	header.PageSize = 3000
	path := writeFile(t, dbheader.Encode(header))

	decoded, err := DecodeFile(path, false)
	require.NoError(t, err)
	assert.Equal(t, header, *decoded)

	_, err = DecodeFile(path, true)
	var target *dbheader.InvalidPageSizeError
	assert.True(t, errors.As(err, &target))
	assert.Contains(t, err.Error(), path)
}

func TestDecodeFile_InvalidMagic(t *testing.T) {
	bs := dbheader.Encode(dbheader.Default())
	copy(bs, "Not a database!!")
	path := writeFile(t, bs)

	header, err := DecodeFile(path, false)
	assert.Nil(t, header)
	var target *dbheader.InvalidMagicError
	assert.True(t, errors.As(err, &target))
}
