package dbheader

import (
	"github.com/samber/lo"

	"sqlite-header/ds"
)

var (
	knownSchemaFormats = []uint32{1, 2, 3, 4}
	knownTextEncodings = []uint32{TextEncodingUTF8, TextEncodingUTF16LE, TextEncodingUTF16BE}
)

// IsValidPageSize reports whether v is a power of two between MinPageSize and
// MaxPageSize, or the value 1.
func IsValidPageSize(v uint16) bool {
	if v == 1 {
		return true
	}
	return v >= MinPageSize && v <= MaxPageSize && ds.IsPowerOfTwo(v)
}

// Check returns the anomalies Decode tolerates, in offset order.
func Check(header Header) []error {
	anomalies := make([]error, 0)
	if !IsValidPageSize(header.PageSize) {
		anomalies = append(anomalies, &InvalidPageSizeError{Value: header.PageSize})
	}
	if !lo.Contains(knownSchemaFormats, header.SchemaFormat) {
		anomalies = append(anomalies, &UnexpectedValueError{
			Field:    FieldNameSchemaFormat,
			Value:    header.SchemaFormat,
			Expected: knownSchemaFormats,
		})
	}
	if !lo.Contains(knownTextEncodings, header.TextEncoding) {
		anomalies = append(anomalies, &UnexpectedValueError{
			Field:    FieldNameTextEncoding,
			Value:    header.TextEncoding,
			Expected: knownTextEncodings,
		})
	}
	return anomalies
}
