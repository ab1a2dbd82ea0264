package cliconfig

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ShellShoccar-jpn/tscat/internal/domain"
	"github.com/ShellShoccar-jpn/tscat/internal/rtprio"
)

// Config holds CLI configuration for tscat.
type Config struct {
	// Format names the timestamp grammar: calendar, epoch or elapsed.
	Format string

	// Align emits the first line immediately and delays later lines
	// relative to it.
	Align bool

	// Realign recomputes the alignment zero point per input file rather
	// than once for the whole run.
	Realign bool

	// Priority is the realtime elevation level, 0..3.
	Priority int

	// UTC converts calendar timestamps in UTC instead of the local zone.
	UTC bool

	// Follow waits for regular-file inputs to grow at EOF.
	Follow bool

	// Verbosity raises diagnostic volume only, never control flow.
	Verbosity int

	// Inputs are the paths to replay in order; "-" or "stdin" selects
	// standard input.
	Inputs []string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Format:   "calendar",
		Priority: 0,
		Inputs:   []string{"-"},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if _, err := domain.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := rtprio.ParseLevel(c.Priority); err != nil {
		return err
	}
	if c.Realign && !c.Align {
		return fmt.Errorf("realign only makes sense together with align")
	}
	if len(c.Inputs) == 0 {
		c.Inputs = []string{"-"}
	}
	return nil
}

// ReplayFormat returns the parsed format. Call Validate first.
func (c *Config) ReplayFormat() domain.Format {
	f, err := domain.ParseFormat(c.Format)
	if err != nil {
		return domain.FormatCalendar
	}
	return f
}

// Location returns the timezone used for calendar conversion.
func (c *Config) Location() *time.Location {
	if c.UTC {
		return time.UTC
	}
	return time.Local
}

// configSetter helps apply configuration values while respecting flag
// precedence. It only applies values if the corresponding flag hasn't been
// explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value from a pointer if not nil and flag not changed.
func (s *configSetter) setInt(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination.
// Used for environment variables that come as strings. Range checks stay
// in Validate.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
