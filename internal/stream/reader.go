// Package stream is the byte-level I/O collaborator of the replay loop: it
// splits a timestamp field off the head of each line, exposes the instant
// the line's first byte arrived, and emits line bodies verbatim.
package stream

import (
	"bufio"
	"io"

	"github.com/ShellShoccar-jpn/tscat/internal/domain"
	"github.com/ShellShoccar-jpn/tscat/internal/sched"
)

// maxFieldRead bounds how many bytes ReadField accumulates. Anything this
// long is already over the parser's limit, so the overlong prefix is
// returned as-is and rejected downstream.
const maxFieldRead = 64

// Reader scans timestamp-prefixed lines from one input stream. The peeked
// byte that AwaitLine leaves behind lives in the buffered reader, so a
// Reader is safe to hand from call to call but not across goroutines.
type Reader struct {
	br    *bufio.Reader
	clock sched.Clock
}

// NewReader wraps src. The clock supplies arrival instants for AwaitLine.
func NewReader(src io.Reader, clock sched.Clock) *Reader {
	return &Reader{br: bufio.NewReader(src), clock: clock}
}

// AwaitLine blocks until the first byte of the next line is available and
// returns the instant it arrived. The byte is left unconsumed. Returns
// io.EOF when the stream ended cleanly before the line started.
func (r *Reader) AwaitLine() (domain.Stamp, error) {
	if _, err := r.br.ReadByte(); err != nil {
		return domain.Stamp{}, err
	}
	arrival := r.clock.Now()
	// Cannot fail: a byte was just read.
	_ = r.br.UnreadByte()
	return arrival, nil
}

// ReadField consumes the leading timestamp field and its delimiter (the
// first space or tab on the line).
//
// Failure modes:
//   - domain.ErrNoTimestamp: the line terminator (or a leading delimiter)
//     appeared before any field
//   - domain.ErrTruncatedStream: input ended inside the field
//   - io.EOF: input ended cleanly before the line started
func (r *Reader) ReadField() (string, error) {
	var buf []byte
	for {
		b, err := r.br.ReadByte()
		if err != nil {
			if err == io.EOF {
				if len(buf) == 0 {
					return "", io.EOF
				}
				return "", domain.ErrTruncatedStream
			}
			return "", err
		}
		switch b {
		case ' ', '\t':
			if len(buf) == 0 {
				return "", domain.ErrNoTimestamp
			}
			return string(buf), nil
		case '\n':
			return "", domain.ErrNoTimestamp
		default:
			buf = append(buf, b)
			if len(buf) >= maxFieldRead {
				return string(buf), nil
			}
		}
	}
}

// CopyBody emits the remainder of the current line, through and including
// its terminator, byte for byte with no transformation.
//
// Returns nil once the terminator is written, io.EOF when input ended
// before a terminator (whatever was read has been written), a fatal
// domain.StreamError for sink failures, and the plain error for read
// failures.
func (r *Reader) CopyBody(w io.Writer) error {
	for {
		chunk, err := r.br.ReadSlice('\n')
		if len(chunk) > 0 {
			if _, werr := w.Write(chunk); werr != nil {
				return &domain.StreamError{Kind: domain.KindOutput, Err: werr}
			}
		}
		switch err {
		case nil:
			return nil
		case bufio.ErrBufferFull:
			continue
		case io.EOF:
			return io.EOF
		default:
			return err
		}
	}
}
