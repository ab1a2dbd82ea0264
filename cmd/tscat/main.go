package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/ShellShoccar-jpn/tscat"
	"github.com/ShellShoccar-jpn/tscat/internal/cliconfig"
)

const helpDescription = `
Replay a timestamp-prefixed text stream with its original timing.

Each input line must start with a timestamp field followed by a space or
tab; tscat strips the field, waits until the equivalent wall-clock moment,
and emits the rest of the line verbatim.

Formats:
  calendar  YYYY...MMDDhhmmss civil time (local zone, or UTC with --utc)
  epoch     seconds since the UNIX epoch
  elapsed   seconds since tscat started

With --align the first line is emitted immediately and all later lines are
delayed relative to it, however long ago the stream was captured.
`

var longHelp = strings.TrimSpace(helpDescription)

var exampleUsage = strings.TrimSpace(`
  tscat --format epoch --align capture.log
  cat typescript.time | tscat -f elapsed -
  tscat -f epoch -p 2 first.log second.log
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "tscat [file...]",
		Short:   "Replay a timestamp-prefixed text stream with its original timing",
		Long:    longHelp,
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default ~/.tscat/config.toml),
			// then env, then flag overrides.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				cliconfig.ApplyFileConfig(&cfg, fc, changed)
			}

			// Environment variables (TSCAT_*) override file config but
			// are overridden by flags (checked via changed map).
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if len(args) > 0 {
				cfg.Inputs = args
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			cliconfig.SetVerbosity(cfg.Verbosity)
			log = cliconfig.Logger()
			log.Debug().Interface("config", cfg).Msg("configuration")

			return tscat.Run(cfg, os.Stdout)
		},
		SilenceUsage: true,
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.tscat/config.toml)")
	root.Flags().StringVarP(&cfg.Format, "format", "f", cfg.Format, "timestamp format: calendar, epoch or elapsed")
	root.Flags().BoolVarP(&cfg.Align, "align", "a", cfg.Align, "emit the first line immediately, delay later lines relative to it")
	root.Flags().BoolVar(&cfg.Realign, "realign", cfg.Realign, "with --align, restart the zero point for each input file")
	root.Flags().IntVarP(&cfg.Priority, "priority", "p", cfg.Priority, "realtime scheduling level 0..3 (best effort)")
	root.Flags().BoolVarP(&cfg.UTC, "utc", "u", cfg.UTC, "interpret calendar timestamps as UTC")
	root.Flags().BoolVar(&cfg.Follow, "follow", cfg.Follow, "at EOF of a file input, wait for appended data")
	root.Flags().CountVarP(&cfg.Verbosity, "verbose", "v", "increase diagnostic output (repeatable)")

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("tscat")
		os.Exit(1)
	}
}
