package wasi

import (
	"errors"
	"syscall"

	"go.uber.org/zap"

	"github.com/keelvm/keel/exec"
)

// errUnsupportedClock is reported by a Clock for an id the host cannot
// service; it maps to ErrnoInval.
var errUnsupportedClock = errors.New("unsupported clock")

// A Clock provides the host's clock sources. Readings are split into whole
// seconds and nanoseconds; handlers combine them into a single nanosecond
// count before writing them to the guest.
type Clock interface {
	// Res returns the resolution of the given clock.
	Res(id ClockID) (sec, nsec int64, err error)
	// Time returns the current value of the given clock.
	Time(id ClockID) (sec, nsec int64, err error)
}

// ClockResGet writes the resolution of the selected clock, in nanoseconds,
// to resolution. An unrecognized id yields ErrnoInval before any host clock
// is queried.
func (h *Host) ClockResGet(mem *exec.Memory, id ClockID, resolution Ptr) Errno {
	if !id.valid() {
		return ErrnoInval
	}
	sec, nsec, err := h.clock.Res(id)
	if err != nil {
		return clockErrno(err)
	}
	mem.PutUint64(uint64(sec)*1e9+uint64(nsec), uint32(resolution))
	return ErrnoSuccess
}

// ClockTimeGet writes the current value of the selected clock, in
// nanoseconds, to timestamp. The precision argument is part of the ABI shape
// but does not alter behavior.
func (h *Host) ClockTimeGet(mem *exec.Memory, id ClockID, precision Timestamp, timestamp Ptr) Errno {
	if !id.valid() {
		return ErrnoInval
	}
	sec, nsec, err := h.clock.Time(id)
	if err != nil {
		return clockErrno(err)
	}
	mem.PutUint64(uint64(sec)*1e9+uint64(nsec), uint32(timestamp))
	return ErrnoSuccess
}

func clockErrno(err error) Errno {
	if errors.Is(err, errUnsupportedClock) {
		return ErrnoInval
	}
	var errno syscall.Errno
	if errors.As(err, &errno) && (errno == syscall.EINVAL || errno == syscall.ENOTSUP) {
		return ErrnoInval
	}
	Logger().Debug("unmapped host clock error", zap.Error(err))
	return ErrnoUnexpected
}
