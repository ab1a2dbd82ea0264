//go:build !linux

package sched

import (
	"math"
	"time"

	"github.com/ShellShoccar-jpn/tscat/internal/domain"
)

// sleepUntil approximates an absolute-deadline sleep with time.Sleep on
// platforms without clock_nanosleep. Go's sleeper resumes transparently
// after signals, so interruption is never reported here.
func sleepUntil(target domain.Stamp) (bool, error) {
	now := time.Now()
	delta := target.Sub(domain.Stamp{Sec: now.Unix(), Nsec: int32(now.Nanosecond())})
	if delta.Negative() {
		return false, nil
	}
	if delta.Sec > math.MaxInt64/int64(time.Second)-1 {
		// Deltas beyond the duration range: sleep in maximal slices.
		time.Sleep(math.MaxInt64)
		return true, nil
	}
	time.Sleep(time.Duration(delta.Sec)*time.Second + time.Duration(delta.Nsec))
	return false, nil
}
