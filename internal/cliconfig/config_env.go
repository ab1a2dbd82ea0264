package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (TSCAT_*).
// It respects flags that have been explicitly set (changed map).
// Returns an error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("format", os.Getenv("TSCAT_FORMAT"), &cfg.Format)
	s.setBoolFromString("align", os.Getenv("TSCAT_ALIGN"), &cfg.Align)
	s.setBoolFromString("realign", os.Getenv("TSCAT_REALIGN"), &cfg.Realign)
	s.setBoolFromString("utc", os.Getenv("TSCAT_UTC"), &cfg.UTC)
	s.setBoolFromString("follow", os.Getenv("TSCAT_FOLLOW"), &cfg.Follow)

	if err := s.setIntFromString("priority", os.Getenv("TSCAT_PRIORITY"), &cfg.Priority); err != nil {
		return err
	}
	if err := s.setIntFromString("verbose", os.Getenv("TSCAT_VERBOSITY"), &cfg.Verbosity); err != nil {
		return err
	}
	return nil
}
