package wasi

import "github.com/keelvm/keel/exec"

// A Ptr is a guest-relative byte offset into an instance's linear memory.
// Arithmetic on a Ptr never dereferences host memory; all reads and writes
// route through the memory accessor.
type Ptr uint32

// Elem returns the address of element i of an array of elements of the
// given size starting at p.
func (p Ptr) Elem(i, size uint32) Ptr {
	return p + Ptr(i*size)
}

// Timestamp is a time value in nanoseconds.
type Timestamp = uint64

// Size is a buffer or object size in bytes.
type Size = uint32

// ClockID identifies one of the host's clocks.
type ClockID uint32

const (
	// The clock measuring real time. Time value zero corresponds with
	// 1970-01-01T00:00:00Z.
	ClockRealtime ClockID = iota
	// The store-wide monotonic clock. The epoch of this clock is undefined;
	// its absolute value has no meaning.
	ClockMonotonic
	// The CPU-time clock associated with the current process.
	ClockProcessCputime
	// The CPU-time clock associated with the current thread.
	ClockThreadCputime
)

func (id ClockID) valid() bool {
	return id <= ClockThreadCputime
}

// FD is a guest file descriptor. Only the three standard handles have
// defined semantics in this host; there is no open/close model.
type FD uint32

const (
	FdStdin  FD = 0
	FdStdout FD = 1
	FdStderr FD = 2
)

// An Iovec describes a region of guest memory for scatter/gather I/O.
// Wire layout: {buf: u32, len: u32}, little-endian.
type Iovec struct {
	Buf Ptr
	Len Size
}

const iovecSize = 8

func (v *Iovec) load(mem *exec.Memory, addr uint32) {
	v.Buf = Ptr(mem.Uint32(addr))
	v.Len = mem.Uint32(addr + 4)
}

func (v *Iovec) store(mem *exec.Memory, addr uint32) {
	mem.PutUint32(uint32(v.Buf), addr)
	mem.PutUint32(v.Len, addr+4)
}
