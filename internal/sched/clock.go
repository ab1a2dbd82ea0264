package sched

import (
	"time"

	"github.com/ShellShoccar-jpn/tscat/internal/domain"
)

// Clock supplies the wall-clock reads the scheduler depends on.
// Implementations other than SystemClock exist only for tests.
type Clock interface {
	// Now returns the current wall-clock instant.
	Now() domain.Stamp
}

// SystemClock reads the host's wall clock. It holds no state and is safe
// for concurrent use.
type SystemClock struct{}

// Now implements Clock via time.Now.
func (SystemClock) Now() domain.Stamp {
	t := time.Now()
	return domain.Stamp{Sec: t.Unix(), Nsec: int32(t.Nanosecond())}
}
