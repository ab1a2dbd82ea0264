package domain

import "fmt"

// Format selects how the leading timestamp field of each line is decoded.
type Format int

const (
	// FormatCalendar decodes YYYY...MMDDhhmmss civil timestamps.
	FormatCalendar Format = iota

	// FormatEpoch decodes decimal seconds since the UNIX epoch.
	FormatEpoch

	// FormatElapsed decodes decimal seconds relative to process start.
	// The field grammar is the same as FormatEpoch.
	FormatElapsed
)

// String returns the flag-level name of the format.
func (f Format) String() string {
	switch f {
	case FormatCalendar:
		return "calendar"
	case FormatEpoch:
		return "epoch"
	case FormatElapsed:
		return "elapsed"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat converts a flag or config value into a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "calendar":
		return FormatCalendar, nil
	case "epoch", "unix":
		return FormatEpoch, nil
	case "elapsed":
		return FormatElapsed, nil
	default:
		return 0, fmt.Errorf("unknown timestamp format %q (want calendar, epoch or elapsed)", s)
	}
}
