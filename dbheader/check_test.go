package dbheader

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidPageSize(t *testing.T) {
	expectedValues := map[uint16]bool{
		0:     false,
		1:     true,
		2:     false,
		256:   false,
		512:   true,
		1024:  true,
		4096:  true,
		6144:  false,
		32768: true,
		65535: false,
	}
	for v, expected := range expectedValues {
		assert.Equalf(t, expected, IsValidPageSize(v), "page size %d", v)
	}
}

func TestCheck(t *testing.T) {
	assert.Empty(t, Check(Default()))

	header := Default()
	header.PageSize = 100
	header.SchemaFormat = 5
	header.TextEncoding = 0

	anomalies := Check(header)
	require.Len(t, anomalies, 3)

	var pageSizeErr *InvalidPageSizeError
	assert.True(t, errors.As(anomalies[0], &pageSizeErr))
	assert.Equal(t, uint16(100), pageSizeErr.Value)

	var schemaErr *UnexpectedValueError
	require.True(t, errors.As(anomalies[1], &schemaErr))
	assert.Equal(t, FieldNameSchemaFormat, schemaErr.Field)
	assert.Equal(t, uint32(5), schemaErr.Value)

	var encodingErr *UnexpectedValueError
	require.True(t, errors.As(anomalies[2], &encodingErr))
	assert.Equal(t, FieldNameTextEncoding, encodingErr.Field)
}

func TestHeader_Accessors(t *testing.T) {
	header := Default()
	assert.Equal(t, 4096, header.PageSizeBytes())
	assert.Equal(t, "UTF-8", header.TextEncodingName())
	assert.Equal(t, "legacy", header.JournalMode())
	assert.False(t, header.IsIncrementalVacuum())

	header.PageSize = 1
	header.WriteVersion, header.ReadVersion = 2, 2
	header.TextEncoding = TextEncodingUTF16LE
	header.IncrementalVacuum = 1
	header.SQLiteVersionNumber = 3045001
	assert.Equal(t, 65536, header.PageSizeBytes())
	assert.Equal(t, "WAL", header.JournalMode())
	assert.Equal(t, "UTF-16le", header.TextEncodingName())
	assert.True(t, header.IsIncrementalVacuum())
	assert.Equal(t, "3.45.1", header.SQLiteVersion())

	header.TextEncoding = 9
	header.WriteVersion = 1
	assert.Equal(t, "unknown", header.TextEncodingName())
	assert.Equal(t, "unknown", header.JournalMode())
}

func TestToLinkedHashMap(t *testing.T) {
	header := Default()
	header.ApplicationID = 7

	lhm := ToLinkedHashMap(header)
	keys := lhm.Keys()
	require.Len(t, keys, len(Fields))
	for i, field := range Fields {
		assert.Equal(t, field.Key, keys[i])
	}

	magic, _ := lhm.Get(FieldNameMagic)
	assert.Equal(t, "SQLite format 3", magic)
	reserved, _ := lhm.Get(FieldNameReservedExpansion)
	assert.Equal(t, "0000000000000000000000000000000000000000", reserved)

	bs, err := lhm.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(bs), `"page_size":4096,"write_version":1`)
	assert.Contains(t, string(bs), `"application_id":7`)
}
