// Package tscat replays previously captured, timestamp-prefixed text
// streams with their original timing.
//
// Example usage:
//
//	cfg := tscat.DefaultConfig()
//	cfg.Format = "epoch"
//	cfg.Align = true
//	cfg.Inputs = []string{"capture.log"}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//	if err := tscat.Run(cfg, os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
package tscat

import (
	"io"

	"github.com/rs/zerolog"

	"github.com/ShellShoccar-jpn/tscat/internal/cliconfig"
	"github.com/ShellShoccar-jpn/tscat/internal/domain"
	"github.com/ShellShoccar-jpn/tscat/internal/replay"
	"github.com/ShellShoccar-jpn/tscat/internal/rtprio"
)

// Config holds the configuration for a replay run.
// Use DefaultConfig() to get a Config with sensible defaults.
type Config = cliconfig.Config

// ErrStreamsFailed is returned when at least one input path was skipped or
// abandoned; the run still attempted every remaining path.
var ErrStreamsFailed = domain.ErrStreamsFailed

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return cliconfig.DefaultConfig()
}

// Run elevates scheduling priority (best effort), then replays every
// configured input in order onto out. It blocks until the last line has
// been emitted or a fatal output/clock failure occurs.
func Run(cfg Config, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	log := cliconfig.Logger()

	level, _ := rtprio.ParseLevel(cfg.Priority)
	if got := rtprio.New(log).Elevate(level); got != level {
		log.Info().
			Int("requested", int(level)).
			Int("achieved", int(got)).
			Msg("realtime elevation fell back")
	}

	r := replay.New(replay.Options{
		Format:   cfg.ReplayFormat(),
		Align:    cfg.Align,
		Realign:  cfg.Realign,
		Location: cfg.Location(),
		Follow:   cfg.Follow,
		Log:      log,
	}, out)
	return r.Run(cfg.Inputs)
}

// Logger returns the package-level zerolog logger used by the tool.
func Logger() zerolog.Logger {
	return cliconfig.Logger()
}
