//go:build linux

package rtprio

import (
	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"
)

// SCHED_FIFO static priority bounds on Linux.
const (
	fifoMinPriority = 1
	fifoMaxPriority = 99
)

func newPlatform(log zerolog.Logger) *Elevator {
	return &Elevator{
		set:      setFIFO,
		priority: fifoPriority,
		log:      log,
	}
}

// setFIFO installs SCHED_FIFO at the given static priority for the calling
// process.
func setFIFO(priority int) error {
	attr := unix.SchedAttr{
		Policy:   unix.SCHED_FIFO,
		Priority: uint32(priority),
	}
	return unix.SchedSetAttr(0, &attr, 0)
}

// fifoPriority maps an elevation level onto a SCHED_FIFO static priority.
// Returns 0 when the level has no attainable priority (e.g. RLIMIT_RTPRIO
// forbids realtime scheduling entirely for LevelUser).
func fifoPriority(l Level) int {
	switch l {
	case LevelMax:
		return fifoMaxPriority
	case LevelUser:
		var rl unix.Rlimit
		if err := unix.Getrlimit(unix.RLIMIT_RTPRIO, &rl); err != nil {
			return 0
		}
		if rl.Cur > fifoMaxPriority {
			return fifoMaxPriority
		}
		return int(rl.Cur)
	case LevelMin:
		return fifoMinPriority
	default:
		return 0
	}
}
