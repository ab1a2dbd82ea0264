package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the stream reader and checked with errors.Is.
var (
	// ErrNoTimestamp is returned when a line reaches its terminator (or
	// starts with the delimiter) before a timestamp field was seen.
	ErrNoTimestamp = errors.New("tscat: line has no timestamp field")

	// ErrTruncatedStream is returned when the input ends in the middle of
	// a timestamp field. Clean end of input is io.EOF, not this.
	ErrTruncatedStream = errors.New("tscat: input ended inside a timestamp field")

	// ErrStreamsFailed is returned by a run in which at least one input
	// path was skipped or abandoned. It maps to a non-zero exit status.
	ErrStreamsFailed = errors.New("tscat: one or more input streams failed")
)

// Kind classifies a replay failure by the recovery policy it triggers.
type Kind int

const (
	// KindOpen marks an input path that could not be opened. The path is
	// skipped and the run continues.
	KindOpen Kind = iota

	// KindMalformedLine marks a line whose timestamp field is absent or
	// unparseable. The current stream is abandoned.
	KindMalformedLine

	// KindTruncatedStream marks input that ended inside a timestamp
	// field. Same recovery as KindMalformedLine, distinct diagnostic.
	KindTruncatedStream

	// KindRead marks a read failure on the current stream.
	KindRead

	// KindOutput marks a failure writing to the output sink. Fatal to the
	// whole run; there is no recovery path for a broken output.
	KindOutput

	// KindClock marks a clock or sleep-primitive failure. Fatal.
	KindClock
)

// String returns the diagnostic label for the kind.
func (k Kind) String() string {
	switch k {
	case KindOpen:
		return "open"
	case KindMalformedLine:
		return "malformed line"
	case KindTruncatedStream:
		return "truncated stream"
	case KindRead:
		return "read"
	case KindOutput:
		return "output"
	case KindClock:
		return "clock"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// StreamError ties an underlying failure to the input it hit and to the
// recovery policy the replay loop applies to it.
type StreamError struct {
	Kind Kind
	Path string
	Err  error
}

// Error implements the error interface.
func (e *StreamError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

// Unwrap exposes the underlying error to errors.Is / errors.As.
func (e *StreamError) Unwrap() error {
	return e.Err
}

// Fatal reports whether the failure terminates the whole run rather than
// just the current stream.
func (e *StreamError) Fatal() bool {
	return e.Kind == KindOutput || e.Kind == KindClock
}
