package dbheader

import (
	"fmt"
)

type (
	HeaderTooShortError struct {
		Length int
	}
	InvalidMagicError struct {
		Actual []byte
	}
	InvalidPageSizeError struct {
		Value uint16
	}
	InvalidPayloadFractionError struct {
		Field    string
		Expected uint8
		Actual   uint8
	}
	NonZeroReservedRegionError struct {
		Region []byte
	}
	// UnexpectedValueError reports a field holding a value outside the set the
	// format documents, without making the header unreadable.
	UnexpectedValueError struct {
		Field    string
		Value    uint32
		Expected []uint32
	}
)

func (r HeaderTooShortError) Error() string {
	return fmt.Sprintf("header too short: expected at least %d bytes, got %d", HeaderSize, r.Length)
}

func (r InvalidMagicError) Error() string {
	return fmt.Sprintf(`invalid magic: expected %q, got %q`, MagicBytes, r.Actual)
}

func (r InvalidPageSizeError) Error() string {
	return fmt.Sprintf(
		"invalid page size %d: must be a power of two between %d and %d, or 1",
		r.Value, MinPageSize, MaxPageSize,
	)
}

func (r InvalidPayloadFractionError) Error() string {
	return fmt.Sprintf("invalid %s: expected %d, got %d", r.Field, r.Expected, r.Actual)
}

func (r NonZeroReservedRegionError) Error() string {
	return fmt.Sprintf("reserved expansion region must be zero, got % x", r.Region)
}

func (r UnexpectedValueError) Error() string {
	return fmt.Sprintf("unexpected %s %d: expected one of %v", r.Field, r.Value, r.Expected)
}
