package replay

import (
	"errors"
	"io"

	"github.com/ShellShoccar-jpn/tscat/internal/domain"
	"github.com/ShellShoccar-jpn/tscat/internal/parse"
	"github.com/ShellShoccar-jpn/tscat/internal/sched"
	"github.com/ShellShoccar-jpn/tscat/internal/stream"
)

// state enumerates the per-line phases of a stream's replay.
type state int

const (
	stateStartOfLine state = iota
	stateTimestampPending
	stateScheduled
	stateEmitting
	stateEndOfStream
	stateError
)

// playStream drives one input stream through the replay state machine.
// A nil return is a clean end of stream; a *domain.StreamError carries the
// recovery policy for everything else.
func (r *Runner) playStream(rd *stream.Reader, path string) error {
	offset := r.offset
	if r.opts.Realign {
		offset = nil
	}

	var (
		st      = stateStartOfLine
		arrival domain.Stamp
		field   string
		target  domain.Stamp
		fail    error
	)

	for {
		switch st {
		case stateStartOfLine:
			var err error
			arrival, err = rd.AwaitLine()
			if err != nil {
				if errors.Is(err, io.EOF) {
					st = stateEndOfStream
					break
				}
				fail = &domain.StreamError{Kind: domain.KindRead, Path: path, Err: err}
				st = stateError
				break
			}
			field, err = rd.ReadField()
			if err != nil {
				fail = r.classifyField(err, path, offset)
				st = stateError
				break
			}
			st = stateTimestampPending

		case stateTimestampPending:
			ts, err := parse.Field(field, r.opts.Format, r.opts.Location)
			if err != nil {
				fail = r.classifyField(err, path, offset)
				st = stateError
				break
			}
			target = r.resolveTarget(ts, arrival, &offset)
			st = stateScheduled

		case stateScheduled:
			if err := r.waiter.WaitUntil(target); err != nil {
				// Clock failures are fatal to the run.
				return err
			}
			st = stateEmitting

		case stateEmitting:
			err := rd.CopyBody(r.out)
			switch {
			case err == nil:
				st = stateStartOfLine
			case errors.Is(err, io.EOF):
				st = stateEndOfStream
			default:
				var se *domain.StreamError
				if errors.As(err, &se) && se.Fatal() {
					// Output failures are unrecoverable.
					return err
				}
				fail = &domain.StreamError{Kind: domain.KindRead, Path: path, Err: err}
				st = stateError
			}

		case stateEndOfStream:
			return nil

		case stateError:
			return fail
		}
	}
}

// resolveTarget turns a parsed stamp into the absolute wake instant,
// fixing the zero-point offset at the first qualifying line when
// alignment is on.
func (r *Runner) resolveTarget(ts, arrival domain.Stamp, offset **domain.Stamp) domain.Stamp {
	abs := ts
	if r.opts.Format == domain.FormatElapsed {
		abs = r.start.Add(ts)
	}
	if !r.opts.Align {
		return abs
	}
	if *offset == nil {
		off := sched.Offset(arrival, abs)
		*offset = &off
		if !r.opts.Realign {
			r.offset = &off
		}
		r.opts.Log.Debug().
			Int64("offset_sec", off.Sec).
			Msg("zero point fixed")
	}
	return abs.Add(**offset)
}

// classifyField maps a field-stage failure onto the error taxonomy. A
// malformed line hit before alignment produced an offset gets a distinct
// diagnostic, since the whole aligned run may silently lack a zero point.
func (r *Runner) classifyField(err error, path string, offset *domain.Stamp) error {
	kind := domain.KindMalformedLine
	if errors.Is(err, domain.ErrTruncatedStream) {
		kind = domain.KindTruncatedStream
	} else if !errors.Is(err, domain.ErrNoTimestamp) &&
		!errors.Is(err, parse.ErrUnexpectedChar) &&
		!errors.Is(err, parse.ErrFieldTooLong) &&
		!errors.Is(err, parse.ErrNotCalendar) {
		kind = domain.KindRead
	}
	if kind == domain.KindMalformedLine && r.opts.Align && offset == nil && r.offset == nil {
		r.opts.Log.Warn().
			Str("input", path).
			Msg("stream abandoned before the zero point was established")
	}
	return &domain.StreamError{Kind: kind, Path: path, Err: err}
}
