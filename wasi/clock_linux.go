//go:build linux
// +build linux

package wasi

import "golang.org/x/sys/unix"

// systemClock serves clock queries from the kernel's posix clocks.
type systemClock struct{}

func clockid(id ClockID) int32 {
	switch id {
	case ClockRealtime:
		return unix.CLOCK_REALTIME
	case ClockMonotonic:
		return unix.CLOCK_MONOTONIC
	case ClockProcessCputime:
		return unix.CLOCK_PROCESS_CPUTIME_ID
	default:
		return unix.CLOCK_THREAD_CPUTIME_ID
	}
}

func (systemClock) Res(id ClockID) (sec, nsec int64, err error) {
	var ts unix.Timespec
	if err := unix.ClockGetres(clockid(id), &ts); err != nil {
		return 0, 0, err
	}
	sec, nsec = ts.Unix()
	return sec, nsec, nil
}

func (systemClock) Time(id ClockID) (sec, nsec int64, err error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(clockid(id), &ts); err != nil {
		return 0, 0, err
	}
	sec, nsec = ts.Unix()
	return sec, nsec, nil
}
