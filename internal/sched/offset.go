package sched

import "github.com/ShellShoccar-jpn/tscat/internal/domain"

// Offset derives the alignment correction that maps a recorded timestamp
// onto the zero point: adding the returned delta to the recorded stamp
// yields the zero point exactly. The zero point is the instant the first
// byte of the triggering line arrived, not the instant parsing finished.
//
// The difference goes through Stamp.Sub so the borrow rule is the same one
// used for sleep deltas.
func Offset(zeroPoint, recorded domain.Stamp) domain.Stamp {
	return zeroPoint.Sub(recorded)
}
