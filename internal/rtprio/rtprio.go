// Package rtprio elevates the process into a realtime scheduling class so
// timed waits are not degraded by scheduler jitter. Elevation is strictly
// best effort: a failed request falls through to the next weaker level and
// the run continues either way.
package rtprio

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Level selects how hard to push for realtime scheduling.
type Level int

const (
	// LevelNone requests no elevation and always succeeds.
	LevelNone Level = iota

	// LevelMin requests the weakest realtime priority.
	LevelMin

	// LevelUser requests the strongest priority available without
	// privileges, where the platform distinguishes this.
	LevelUser

	// LevelMax requests the strongest priority the host offers.
	LevelMax
)

// ParseLevel validates a numeric flag value.
func ParseLevel(n int) (Level, error) {
	if n < 0 || n > 3 {
		return 0, fmt.Errorf("priority level must be 0..3, got %d", n)
	}
	return Level(n), nil
}

// Elevator installs a realtime scheduling class for the current process.
// The zero value is unusable; construct with New.
type Elevator struct {
	set      func(priority int) error
	priority func(l Level) int
	log      zerolog.Logger
}

// New returns an elevator wired to the platform's scheduling API, or a
// no-op on platforms without one.
func New(log zerolog.Logger) *Elevator {
	return newPlatform(log)
}

// Elevate attempts the requested level, falling through the weaker levels
// on failure, down to and including no elevation. It returns the level
// actually achieved. Failure is reported only through the warning channel
// and is never fatal.
func (e *Elevator) Elevate(l Level) Level {
	for lv := l; lv > LevelNone; lv-- {
		if e.set == nil {
			// No realtime scheduling on this platform: every
			// request trivially succeeds.
			return lv
		}
		prio := e.priority(lv)
		if prio < 1 {
			continue
		}
		if err := e.set(prio); err != nil {
			e.log.Warn().
				Err(err).
				Int("level", int(lv)).
				Int("priority", prio).
				Msg("realtime elevation refused, trying weaker level")
			continue
		}
		e.log.Debug().
			Int("level", int(lv)).
			Int("priority", prio).
			Msg("realtime scheduling installed")
		return lv
	}
	return LevelNone
}
