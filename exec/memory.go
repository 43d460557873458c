package exec

import (
	"encoding/binary"
	"errors"
)

// PageSize is the size of a linear memory page in bytes.
const PageSize = 65536

var ErrLimitExceeded = errors.New("memory limit exceeded")

// Memory is a WASM linear memory. All accessors take guest-relative byte
// offsets and are bounds-checked; a violation panics with
// TrapOutOfBoundsMemoryAccess. Multi-byte values are little-endian, matching
// the guest's word order.
type Memory struct {
	min, max uint32
	bytes    []byte
}

// NewMemory creates a new linear memory with the given limits in pages.
func NewMemory(min, max uint32) Memory {
	return Memory{
		min:   min,
		max:   max,
		bytes: make([]byte, min*PageSize),
	}
}

// Limits returns the minimum and maximum size of the memory in pages.
func (m *Memory) Limits() (min, max uint32) {
	return m.min, m.max
}

// Size returns the current size of the memory in pages.
func (m *Memory) Size() uint32 {
	return uint32(len(m.bytes) / PageSize)
}

// Grow grows the memory by the given number of pages. It returns the old size
// of the memory in pages and an error if growing the memory by the requested
// amount would exceed the memory's maximum size.
func (m *Memory) Grow(pages uint32) (uint32, error) {
	currentSize := m.Size()
	newSize := currentSize + pages
	if newSize > m.max || newSize > 65536 {
		return currentSize, ErrLimitExceeded
	}
	newBytes := make([]byte, int(newSize)*PageSize)
	copy(newBytes, m.bytes)
	m.bytes = newBytes
	return currentSize, nil
}

func (m *Memory) check(addr, size uint32) {
	if uint64(addr)+uint64(size) > uint64(len(m.bytes)) {
		panic(TrapOutOfBoundsMemoryAccess)
	}
}

// Byte returns the byte stored at the given address.
func (m *Memory) Byte(addr uint32) byte {
	m.check(addr, 1)
	return m.bytes[addr]
}

// PutByte writes the given byte to the given address.
func (m *Memory) PutByte(v byte, addr uint32) {
	m.check(addr, 1)
	m.bytes[addr] = v
}

// Uint16 returns the uint16 stored at the given address.
func (m *Memory) Uint16(addr uint32) uint16 {
	m.check(addr, 2)
	return binary.LittleEndian.Uint16(m.bytes[addr:])
}

// PutUint16 writes the given uint16 to the given address.
func (m *Memory) PutUint16(v uint16, addr uint32) {
	m.check(addr, 2)
	binary.LittleEndian.PutUint16(m.bytes[addr:], v)
}

// Uint32 returns the uint32 stored at the given address.
func (m *Memory) Uint32(addr uint32) uint32 {
	m.check(addr, 4)
	return binary.LittleEndian.Uint32(m.bytes[addr:])
}

// PutUint32 writes the given uint32 to the given address.
func (m *Memory) PutUint32(v uint32, addr uint32) {
	m.check(addr, 4)
	binary.LittleEndian.PutUint32(m.bytes[addr:], v)
}

// Uint64 returns the uint64 stored at the given address.
func (m *Memory) Uint64(addr uint32) uint64 {
	m.check(addr, 8)
	return binary.LittleEndian.Uint64(m.bytes[addr:])
}

// PutUint64 writes the given uint64 to the given address.
func (m *Memory) PutUint64(v uint64, addr uint32) {
	m.check(addr, 8)
	binary.LittleEndian.PutUint64(m.bytes[addr:], v)
}

// Bytes returns the size bytes of memory starting at addr. The returned slice
// aliases the memory's storage and is invalidated by Grow.
func (m *Memory) Bytes(addr, size uint32) []byte {
	m.check(addr, size)
	return m.bytes[addr : addr+size]
}

// PutBytes copies b into memory starting at addr.
func (m *Memory) PutBytes(b []byte, addr uint32) {
	m.check(addr, uint32(len(b)))
	copy(m.bytes[addr:], b)
}
