package lbytes

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pair struct {
	First  uint16 `json:"first"`
	Second []byte `json:"second"`
}

func TestExecuteInstructions(t *testing.T) {
	reader := NewBytesReader([]byte{0x01, 0x02, 0xAA, 0xBB})
	instructions := []Instruction{
		{"first", CreateSizedReadFunction(reader, 2)},
		{"second", CreateNBytesReadFunction(reader, 2)},
	}

	result, err := ExecuteInstructions[pair](instructions)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0102), result.First)
	assert.Equal(t, []byte{0xAA, 0xBB}, result.Second)
}

func TestExecuteInstructions_StopsAtFirstError(t *testing.T) {
	errBoom := errors.New("boom")
	called := false
	reader := NewBytesReader([]byte{0x01, 0x02})
	instructions := []Instruction{
		{
			"first",
			CreateCheckedReadFunction(
				CreateUint16ReadFunction(reader),
				func(any) error { return errBoom },
			),
		},
		{
			"second",
			func() (any, error) {
				called = true
				return nil, nil
			},
		},
	}

	result, err := ExecuteInstructions[pair](instructions)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), `reading key "first"`)
	assert.False(t, called)
}
