//go:build !linux
// +build !linux

package wasi

import "time"

var processStart = time.Now()

// systemClock serves clock queries from the time package on hosts without
// posix clock syscalls. CPU-time clocks are not available here.
type systemClock struct{}

func (systemClock) Res(id ClockID) (sec, nsec int64, err error) {
	switch id {
	case ClockRealtime:
		// Guess at milliseconds.
		return 0, int64(time.Millisecond), nil
	case ClockMonotonic:
		return 0, 1, nil
	default:
		return 0, 0, errUnsupportedClock
	}
}

func (systemClock) Time(id ClockID) (sec, nsec int64, err error) {
	switch id {
	case ClockRealtime:
		now := time.Now()
		return now.Unix(), int64(now.Nanosecond()), nil
	case ClockMonotonic:
		d := time.Since(processStart)
		return int64(d / time.Second), int64(d % time.Second), nil
	default:
		return 0, 0, errUnsupportedClock
	}
}
