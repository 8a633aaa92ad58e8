package lbytes

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// ExecuteInstructions create the final value t with type T by
//
//   - Reading the instruction into a map, then
//   - Create JSON bytes from the map, and finally
//   - Read the JSON bytes into t
//
// In order to lessen the burden of manual mapping. Instructions run in
// order and the first failing one stops the execution.
func ExecuteInstructions[T any](instructions []Instruction) (*T, error) {
	tMap := map[string]any{}
	for _, instruction := range instructions {
		value, err := instruction.ReadFunction()
		if err != nil {
			err := errors.Wrapf(err, `ExecuteInstructions error reading key "%v"`, instruction.Key)
			return nil, err
		}
		tMap[instruction.Key] = value
	}
	tBytes, err := json.Marshal(tMap)
	if err != nil {
		err := errors.Wrapf(err, `ExecuteInstructions error marshalling map "%v" to JSON`, tMap)
		return nil, err
	}

	var t T
	if err := json.Unmarshal(tBytes, &t); err != nil {
		err := errors.Wrapf(
			err, `ExecuteInstructions error unmarshalling bytes "%s" to type "%T"`,
			string(tBytes), t,
		)
		return nil, err
	}

	return &t, nil
}

func CreateNBytesReadFunction(reader *Reader, n int) ReadFunction {
	return func() (any, error) {
		return reader.ReadBytes(n)
	}
}

func CreateUint8ReadFunction(reader *Reader) ReadFunction {
	return func() (any, error) {
		return reader.ReadUint8()
	}
}

func CreateUint16ReadFunction(reader *Reader) ReadFunction {
	return func() (any, error) {
		return reader.ReadUint16()
	}
}

func CreateUint32ReadFunction(reader *Reader) ReadFunction {
	return func() (any, error) {
		return reader.ReadUint32()
	}
}

// CreateSizedReadFunction picks the integer reader matching size, falling
// back to raw bytes for every other width.
func CreateSizedReadFunction(reader *Reader, size int) ReadFunction {
	switch size {
	case 1:
		return CreateUint8ReadFunction(reader)
	case 2:
		return CreateUint16ReadFunction(reader)
	case 4:
		return CreateUint32ReadFunction(reader)
	default:
		return CreateNBytesReadFunction(reader, size)
	}
}

// CreateCheckedReadFunction runs check over the value produced by read and
// fails with the check's error.
func CreateCheckedReadFunction(read ReadFunction, check func(any) error) ReadFunction {
	return func() (any, error) {
		value, err := read()
		if err != nil {
			return nil, err
		}
		if err := check(value); err != nil {
			return nil, err
		}
		return value, nil
	}
}
