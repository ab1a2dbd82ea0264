// Package replay sequences parsing, offset alignment and scheduling per
// line, across one or more input streams. The whole run is one logical
// thread: the scheduler's wait is the only suspension point, so lines are
// emitted in exactly the order the input presents them.
package replay

import (
	"errors"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/ShellShoccar-jpn/tscat/internal/domain"
	"github.com/ShellShoccar-jpn/tscat/internal/sched"
	"github.com/ShellShoccar-jpn/tscat/internal/stream"
)

// Options fixes the operating mode for the whole run. Nothing here is
// mutated by the loop.
type Options struct {
	// Format selects the timestamp grammar.
	Format domain.Format

	// Align emits the first qualifying line immediately and delays every
	// later line relative to it.
	Align bool

	// Realign recomputes the zero point for each input stream instead of
	// holding the one fixed at the very first line of the run.
	Realign bool

	// Location is the timezone for calendar conversion. Defaults to the
	// process-local zone.
	Location *time.Location

	// Follow keeps regular-file inputs open at EOF and waits for
	// appended data instead of advancing to the next path.
	Follow bool

	// Log receives diagnostics. Verbosity never changes control flow.
	Log zerolog.Logger
}

// Runner replays timestamp-prefixed streams onto an output sink.
type Runner struct {
	opts   Options
	clock  sched.Clock
	waiter *sched.Waiter
	out    io.Writer
	stdin  io.Reader

	// start anchors elapsed-mode fields.
	start domain.Stamp

	// offset is the run-wide zero-point correction: written once at the
	// first qualifying line, immutable afterwards. Per-stream when
	// Realign is set (then this stays nil).
	offset *domain.Stamp
}

// New builds a runner on the system clock, writing to out.
func New(opts Options, out io.Writer) *Runner {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	policy := sched.PolicyStrict
	if opts.Format == domain.FormatElapsed {
		policy = sched.PolicyLenient
	}
	clock := sched.SystemClock{}
	return &Runner{
		opts:   opts,
		clock:  clock,
		waiter: sched.NewWaiter(policy, opts.Log),
		out:    out,
		stdin:  os.Stdin,
		start:  clock.Now(),
	}
}

// Run replays every configured input path in order. Per-stream failures
// abandon only that stream; the remaining paths are still attempted and
// the run reports domain.ErrStreamsFailed at the end. Output and clock
// failures return immediately.
func (r *Runner) Run(paths []string) error {
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	failed := false
	for _, p := range paths {
		err := r.playPath(p)
		if err == nil {
			continue
		}
		var se *domain.StreamError
		if errors.As(err, &se) && se.Fatal() {
			return err
		}
		failed = true
		r.opts.Log.Error().Err(err).Str("input", p).Msg("input abandoned")
	}
	if failed {
		return domain.ErrStreamsFailed
	}
	return nil
}

func (r *Runner) playPath(path string) error {
	src, done, err := r.open(path)
	if err != nil {
		return &domain.StreamError{Kind: domain.KindOpen, Path: path, Err: err}
	}
	defer done()
	return r.playStream(stream.NewReader(src, r.clock), path)
}

// open resolves a configured path to a byte stream. The literal "-" and
// "stdin" both select standard input.
func (r *Runner) open(path string) (io.Reader, func(), error) {
	if path == "-" || path == "stdin" {
		return r.stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	if r.opts.Follow {
		if st, serr := f.Stat(); serr == nil && st.Mode().IsRegular() {
			tr, terr := stream.NewTailReader(f)
			if terr == nil {
				return tr, func() {
					tr.Close()
					f.Close()
				}, nil
			}
			r.opts.Log.Warn().Err(terr).Str("input", path).Msg("cannot follow, reading to EOF instead")
		}
	}
	return f, func() { f.Close() }, nil
}
