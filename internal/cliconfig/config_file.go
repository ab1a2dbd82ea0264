package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses pointers for scalars so an absent key
// is distinguishable from an explicit zero.
type FileConfig struct {
	Format    string `toml:"format"`
	Align     *bool  `toml:"align"`
	Realign   *bool  `toml:"realign"`
	Priority  *int   `toml:"priority"`
	UTC       *bool  `toml:"utc"`
	Follow    *bool  `toml:"follow"`
	Verbosity *int   `toml:"verbosity"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.tscat/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".tscat", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) {
	s := newConfigSetter(changed)

	s.setString("format", fc.Format, &cfg.Format)
	s.setBool("align", fc.Align, &cfg.Align)
	s.setBool("realign", fc.Realign, &cfg.Realign)
	s.setInt("priority", fc.Priority, &cfg.Priority)
	s.setBool("utc", fc.UTC, &cfg.UTC)
	s.setBool("follow", fc.Follow, &cfg.Follow)
	s.setInt("verbose", fc.Verbosity, &cfg.Verbosity)
}

// FileExists reports whether p exists and is a regular file.
func FileExists(p string) bool {
	st, err := os.Stat(p)
	return err == nil && st.Mode().IsRegular()
}
