//go:build linux

package sched

import (
	"golang.org/x/sys/unix"

	"github.com/ShellShoccar-jpn/tscat/internal/domain"
)

// sleepUntil blocks with clock_nanosleep against an absolute CLOCK_REALTIME
// deadline. Absolute mode means a retry after EINTR needs no remaining-time
// bookkeeping: the kernel re-targets the same instant.
func sleepUntil(target domain.Stamp) (bool, error) {
	ts := unix.Timespec{Sec: target.Sec, Nsec: int64(target.Nsec)}
	err := unix.ClockNanosleep(unix.CLOCK_REALTIME, unix.TIMER_ABSTIME, &ts, nil)
	switch err {
	case nil:
		return false, nil
	case unix.EINTR:
		return true, nil
	default:
		return false, err
	}
}
