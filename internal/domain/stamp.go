package domain

import "math"

// nanosPerSec is the nanosecond normalization bound for Stamp.
const nanosPerSec = 1_000_000_000

// Stamp is a wall-clock instant, or a signed delta between two instants,
// expressed as whole seconds plus a nanosecond remainder.
//
// Nsec is always normalized into [0, 1e9). A negative delta is represented
// with a negative Sec and a non-negative Nsec remainder, e.g. -0.5s is
// {Sec: -1, Nsec: 500000000}. This matches the borrow rule used by Sub.
type Stamp struct {
	Sec  int64
	Nsec int32
}

// MaxStamp is the saturation value for timestamps that exceed the
// representable range. Arithmetic clamps here instead of wrapping.
var MaxStamp = Stamp{Sec: math.MaxInt64, Nsec: nanosPerSec - 1}

// Add returns s + o, saturating at MaxStamp (or its negative counterpart)
// instead of overflowing.
func (s Stamp) Add(o Stamp) Stamp {
	nsec := int64(s.Nsec) + int64(o.Nsec)
	carry := int64(0)
	if nsec >= nanosPerSec {
		nsec -= nanosPerSec
		carry = 1
	}
	sec, ok := addInt64(s.Sec, o.Sec)
	if ok {
		sec, ok = addInt64(sec, carry)
	}
	if !ok {
		if s.Sec < 0 {
			return Stamp{Sec: math.MinInt64, Nsec: 0}
		}
		return MaxStamp
	}
	return Stamp{Sec: sec, Nsec: int32(nsec)}
}

// Sub returns s - o as a signed delta.
//
// When the nanosecond subtraction would go negative, one second is borrowed:
// Nsec gains 1e9 and Sec loses one before the seconds are differenced. Every
// place timestamps are differenced uses this method so the borrow rule is
// applied uniformly.
func (s Stamp) Sub(o Stamp) Stamp {
	sec := s.Sec
	nsec := int64(s.Nsec) - int64(o.Nsec)
	if nsec < 0 {
		nsec += nanosPerSec
		sec--
	}
	diff, ok := subInt64(sec, o.Sec)
	if !ok {
		if sec < 0 {
			return Stamp{Sec: math.MinInt64, Nsec: 0}
		}
		return MaxStamp
	}
	return Stamp{Sec: diff, Nsec: int32(nsec)}
}

// Negative reports whether the stamp, read as a signed delta, lies before
// zero.
func (s Stamp) Negative() bool {
	return s.Sec < 0
}

// IsZero reports whether the stamp is exactly the zero instant.
func (s Stamp) IsZero() bool {
	return s.Sec == 0 && s.Nsec == 0
}

func addInt64(a, b int64) (int64, bool) {
	if b > 0 && a > math.MaxInt64-b {
		return 0, false
	}
	if b < 0 && a < math.MinInt64-b {
		return 0, false
	}
	return a + b, true
}

func subInt64(a, b int64) (int64, bool) {
	if b < 0 && a > math.MaxInt64+b {
		return 0, false
	}
	if b > 0 && a < math.MinInt64+b {
		return 0, false
	}
	return a - b, true
}
