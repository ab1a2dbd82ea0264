// Package parse decodes the leading timestamp field of a line into a
// domain.Stamp under one of two grammars: calendar (YYYY...MMDDhhmmss in a
// given timezone) or epoch (decimal seconds since 1970-01-01T00:00:00Z).
// Elapsed-mode fields use the epoch grammar; the caller rebases them.
package parse

import (
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/ShellShoccar-jpn/tscat/internal/domain"
)

// Parse errors, checked with errors.Is. The caller treats every one of them
// as a malformed line.
var (
	// ErrUnexpectedChar is returned for any byte outside [0-9] and a
	// single fraction separator.
	ErrUnexpectedChar = errors.New("tscat: unexpected character in timestamp field")

	// ErrFieldTooLong is returned when the integer run exceeds the
	// 32-byte effective field representation.
	ErrFieldTooLong = errors.New("tscat: timestamp field too long")

	// ErrNotCalendar is returned when a field cannot be decomposed as a
	// calendar timestamp.
	ErrNotCalendar = errors.New("tscat: field is not a calendar timestamp")
)

const (
	// maxIntDigits bounds the integer run: one 32-byte field buffer,
	// minus room for the terminator. Longer runs are a parse error;
	// runs within the bound that overflow the time type saturate.
	maxIntDigits = 31

	// maxFracDigits is nanosecond precision; extra digits are dropped,
	// never rounded.
	maxFracDigits = 9

	// maxEpochYear bounds the years whose civil conversion fits in int64
	// seconds for every month. Calendar fields at or beyond it saturate.
	maxEpochYear = 292277026595
)

// Field decodes a whitespace-free timestamp token. The format chooses the
// grammar; loc is the timezone for calendar conversion (ignored by the
// other formats).
func Field(field string, format domain.Format, loc *time.Location) (domain.Stamp, error) {
	intRun, frac, err := split(field)
	if err != nil {
		return domain.Stamp{}, err
	}

	nsec, err := fracNanos(frac)
	if err != nil {
		return domain.Stamp{}, err
	}

	var sec int64
	switch format {
	case domain.FormatCalendar:
		sec, err = calendarSeconds(intRun, loc)
	default:
		sec, err = epochSeconds(intRun)
	}
	if err != nil {
		return domain.Stamp{}, err
	}
	if sec == math.MaxInt64 {
		// Saturated: the nanosecond part cannot push it further.
		return domain.MaxStamp, nil
	}
	return domain.Stamp{Sec: sec, Nsec: nsec}, nil
}

// split separates the integer run from the optional fraction run and
// validates that nothing but digits and a single '.' appears.
func split(field string) (intRun, frac string, err error) {
	if field == "" {
		return "", "", ErrUnexpectedChar
	}
	dot := -1
	for i := 0; i < len(field); i++ {
		c := field[i]
		if c >= '0' && c <= '9' {
			continue
		}
		if c == '.' && dot < 0 {
			dot = i
			continue
		}
		return "", "", ErrUnexpectedChar
	}
	if dot < 0 {
		intRun = field
	} else {
		intRun, frac = field[:dot], field[dot+1:]
	}
	if intRun == "" {
		return "", "", ErrUnexpectedChar
	}
	if len(intRun) > maxIntDigits {
		return "", "", ErrFieldTooLong
	}
	return intRun, frac, nil
}

// fracNanos widens a fractional digit run to nanoseconds: short runs are
// right-padded with zeros, long runs truncated at nine digits.
func fracNanos(frac string) (int32, error) {
	if frac == "" {
		return 0, nil
	}
	if len(frac) > maxFracDigits {
		frac = frac[:maxFracDigits]
	}
	n, err := strconv.ParseInt(frac, 10, 32)
	if err != nil {
		return 0, ErrUnexpectedChar
	}
	for i := len(frac); i < maxFracDigits; i++ {
		n *= 10
	}
	return int32(n), nil
}

// epochSeconds decodes the integer run directly as seconds since the
// epoch. Values beyond int64 saturate rather than error.
func epochSeconds(intRun string) (int64, error) {
	v, err := strconv.ParseInt(intRun, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return math.MaxInt64, nil
		}
		return 0, ErrUnexpectedChar
	}
	return v, nil
}

// calendarSeconds decomposes an integer run of at least 11 digits as
// YYYY...MMDDhhmmss and converts the civil fields to epoch seconds in loc.
// Out-of-range day-of-month values normalize the way mktime does.
func calendarSeconds(intRun string, loc *time.Location) (int64, error) {
	if len(intRun) < 11 {
		return 0, ErrNotCalendar
	}
	yearRun := intRun[:len(intRun)-10]
	rest := intRun[len(intRun)-10:]

	year, err := strconv.ParseInt(yearRun, 10, 64)
	if err != nil || year >= maxEpochYear {
		if err == nil || errors.Is(err, strconv.ErrRange) {
			return math.MaxInt64, nil
		}
		return 0, ErrNotCalendar
	}

	month := twoDigits(rest, 0)
	day := twoDigits(rest, 2)
	hour := twoDigits(rest, 4)
	minute := twoDigits(rest, 6)
	second := twoDigits(rest, 8)

	if month < 1 || month > 12 || day < 1 || day > 31 ||
		hour > 23 || minute > 59 || second > 60 {
		return 0, ErrNotCalendar
	}

	t := time.Date(int(year), time.Month(month), day, hour, minute, second, 0, loc)
	return t.Unix(), nil
}

func twoDigits(s string, i int) int {
	return int(s[i]-'0')*10 + int(s[i+1]-'0')
}
