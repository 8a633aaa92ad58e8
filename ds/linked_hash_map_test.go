package ds

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkedHashMap_Keys(t *testing.T) {
	lhm := NewLinkedHashMap[string, int]()

	assert.True(t, len(lhm.Keys()) == 0)

	lhm.Put("a", 1)
	lhm.Put("b", 2)
	lhm.Put("a", 1)

	assert.Equal(t, []string{"a", "b"}, lhm.Keys())
}

func TestLinkedHashMap_Put(t *testing.T) {
	lhm := NewLinkedHashMap[string, any]()
	lhm.Put("abc", 1)
	lhm.Put("abc", 2)

	assert.Equal(t, map[string]any{"abc": 2}, lhm.hashMap)
	assert.Equal(t, 1, lhm.Len())
	value, ok := lhm.Get("abc")
	assert.True(t, ok)
	assert.Equal(t, 2, value)
}

func TestLinkedHashMap_MarshalJSON(t *testing.T) {
	lhm := NewLinkedHashMap[string, any]()
	lhm.Put("def", 2)
	lhm.Put("abc", 1)

	bs, err := lhm.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"def":2,"abc":1}`, string(bs))

	// json.MarshalIndent goes through MarshalJSON for both values and pointers
	bs, err = json.Marshal(lhm)
	require.NoError(t, err)
	assert.Equal(t, `{"def":2,"abc":1}`, string(bs))
}
