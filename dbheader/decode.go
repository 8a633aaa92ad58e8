package dbheader

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"sqlite-header/dbheader/lbytes"
)

func checkMagic(value any) error {
	actual := value.([]byte)
	if !bytes.Equal(actual, MagicBytes) {
		return &InvalidMagicError{Actual: actual}
	}
	return nil
}

func createFractionCheck(field string, expected uint8) func(any) error {
	return func(value any) error {
		actual := value.(uint8)
		if actual != expected {
			return &InvalidPayloadFractionError{
				Field:    field,
				Expected: expected,
				Actual:   actual,
			}
		}
		return nil
	}
}

func checkReservedExpansion(value any) error {
	region := value.([]byte)
	isZero := lo.EveryBy(
		region,
		func(b byte) bool {
			return b == 0
		},
	)
	if !isZero {
		return &NonZeroReservedRegionError{Region: region}
	}
	return nil
}

var checkByKey = map[string]func(any) error{
	FieldNameMagic:               checkMagic,
	FieldNameMaxPayloadFraction:  createFractionCheck(FieldNameMaxPayloadFraction, MaxPayloadFraction),
	FieldNameMinPayloadFraction:  createFractionCheck(FieldNameMinPayloadFraction, MinPayloadFraction),
	FieldNameLeafPayloadFraction: createFractionCheck(FieldNameLeafPayloadFraction, LeafPayloadFraction),
	FieldNameReservedExpansion:   checkReservedExpansion,
}

func createInstructions(reader *lbytes.Reader) []lbytes.Instruction {
	return lo.Map(
		Fields,
		func(field Field, _ int) lbytes.Instruction {
			read := lbytes.CreateSizedReadFunction(reader, field.Size)
			if check, ok := checkByKey[field.Key]; ok {
				read = lbytes.CreateCheckedReadFunction(read, check)
			}
			return lbytes.Instruction{
				Key:          field.Key,
				ReadFunction: read,
			}
		},
	)
}

// Decode reads the first HeaderSize bytes of bs into a Header. Fields are read
// in offset order and the first violated constraint aborts decoding, so the
// magic is reported before the payload fractions, and those before the
// reserved region. The page size is not enforced here; see Check.
func Decode(bs []byte) (*Header, error) {
	if len(bs) < HeaderSize {
		return nil, &HeaderTooShortError{Length: len(bs)}
	}

	reader := lbytes.NewBytesReader(bs[:HeaderSize])
	header, err := lbytes.ExecuteInstructions[Header](createInstructions(reader))
	if err != nil {
		return nil, errors.Wrap(err, "Decode error")
	}

	return header, nil
}

// DecodeStrict is Decode with every advisory anomaly treated as fatal.
func DecodeStrict(bs []byte) (*Header, error) {
	header, err := Decode(bs)
	if err != nil {
		return nil, err
	}
	if anomalies := Check(*header); len(anomalies) > 0 {
		return nil, errors.Wrap(anomalies[0], "DecodeStrict error")
	}
	return header, nil
}
