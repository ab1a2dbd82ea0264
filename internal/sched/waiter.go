package sched

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ShellShoccar-jpn/tscat/internal/domain"
)

// Policy selects how the waiter treats a sleep cut short by a signal.
type Policy int

const (
	// PolicyStrict retries the sleep with the same absolute target until
	// it completes or the target is genuinely past due.
	PolicyStrict Policy = iota

	// PolicyLenient treats an interrupted wait as elapsed if re-reading
	// the clock shows the target has passed, and retries otherwise.
	PolicyLenient
)

// SleepFunc blocks until the wall clock reaches the absolute target. It
// reports interrupted=true when a signal cut the wait short; any other
// failure comes back as err and is fatal to the run.
type SleepFunc func(target domain.Stamp) (interrupted bool, err error)

// Waiter converts parsed timestamps into real waits.
type Waiter struct {
	Clock  Clock
	Policy Policy
	Sleep  SleepFunc
	Log    zerolog.Logger
}

// NewWaiter builds a waiter on the system clock and the platform's
// absolute sleep primitive.
func NewWaiter(policy Policy, log zerolog.Logger) *Waiter {
	return &Waiter{
		Clock:  SystemClock{},
		Policy: policy,
		Sleep:  sleepUntil,
		Log:    log,
	}
}

// WaitUntil blocks the calling thread until the wall clock reaches target.
// A target already in the past returns immediately; that is not an error
// and is only visible at debug verbosity. Sleep-primitive failures other
// than interruption surface as a fatal clock error.
func (w *Waiter) WaitUntil(target domain.Stamp) error {
	for {
		delta := target.Sub(w.Clock.Now())
		if delta.Negative() {
			w.Log.Debug().
				Int64("late_sec", -delta.Sec).
				Msg("target already passed")
			return nil
		}

		interrupted, err := w.Sleep(target)
		if err != nil {
			return &domain.StreamError{
				Kind: domain.KindClock,
				Err:  fmt.Errorf("sleep until target: %w", err),
			}
		}
		if !interrupted {
			return nil
		}
		if w.Policy == PolicyLenient && target.Sub(w.Clock.Now()).Negative() {
			return nil
		}
		// Interrupted with time still to go: sleep again toward the
		// same absolute target.
	}
}
