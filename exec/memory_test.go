package exec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryAccess(t *testing.T) {
	mem := NewMemory(1, 4)
	require.Equal(t, uint32(1), mem.Size())

	mem.PutUint32(0xdeadbeef, 16)
	assert.Equal(t, uint32(0xdeadbeef), mem.Uint32(16))
	assert.Equal(t, byte(0xef), mem.Byte(16))
	assert.Equal(t, byte(0xde), mem.Byte(19))
	assert.Equal(t, uint16(0xbeef), mem.Uint16(16))

	mem.PutUint64(0x0102030405060708, 32)
	assert.Equal(t, uint64(0x0102030405060708), mem.Uint64(32))
	assert.Equal(t, []byte{8, 7, 6, 5}, mem.Bytes(32, 4))

	mem.PutBytes([]byte("hello"), 64)
	assert.Equal(t, []byte("hello"), mem.Bytes(64, 5))
}

func TestMemoryBounds(t *testing.T) {
	mem := NewMemory(1, 4)

	assert.NotPanics(t, func() { mem.PutByte(0, PageSize-1) })
	assert.PanicsWithValue(t, TrapOutOfBoundsMemoryAccess, func() { mem.Byte(PageSize) })
	assert.PanicsWithValue(t, TrapOutOfBoundsMemoryAccess, func() { mem.Uint32(PageSize - 3) })
	assert.PanicsWithValue(t, TrapOutOfBoundsMemoryAccess, func() { mem.PutUint64(0, PageSize-7) })
	assert.PanicsWithValue(t, TrapOutOfBoundsMemoryAccess, func() { mem.Bytes(PageSize-1, 2) })
	assert.PanicsWithValue(t, TrapOutOfBoundsMemoryAccess, func() { mem.PutBytes([]byte{1, 2}, PageSize-1) })

	// The check must not wrap at the 32-bit boundary.
	assert.PanicsWithValue(t, TrapOutOfBoundsMemoryAccess, func() { mem.Uint32(0xfffffffd) })
}

func TestMemoryGrow(t *testing.T) {
	mem := NewMemory(1, 2)

	old, err := mem.Grow(1)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), old)
	assert.Equal(t, uint32(2), mem.Size())

	_, err = mem.Grow(1)
	assert.ErrorIs(t, err, ErrLimitExceeded)
	assert.Equal(t, uint32(2), mem.Size())
}
