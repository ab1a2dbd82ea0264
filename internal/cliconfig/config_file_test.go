package cliconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFileConfig(t *testing.T) {
	path := writeConfig(t, `
format = "epoch"
align = true
priority = 3
verbosity = 2
`)
	fc, err := LoadFileConfig(path)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}
	if fc.Format != "epoch" {
		t.Errorf("Format = %v, want epoch", fc.Format)
	}
	if fc.Align == nil || !*fc.Align {
		t.Error("Align not loaded")
	}
	if fc.Priority == nil || *fc.Priority != 3 {
		t.Error("Priority not loaded")
	}
	if fc.Realign != nil {
		t.Error("absent key produced a value")
	}
}

func TestLoadFileConfig_BadTOML(t *testing.T) {
	path := writeConfig(t, "format = [what")
	if _, err := LoadFileConfig(path); err == nil {
		t.Error("LoadFileConfig() expected error for malformed TOML")
	}
}

func TestApplyFileConfig_Precedence(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Format = "elapsed" // pretend --format was given

	align := true
	prio := 2
	fc := FileConfig{Format: "epoch", Align: &align, Priority: &prio}

	ApplyFileConfig(&cfg, fc, map[string]bool{"format": true})

	if cfg.Format != "elapsed" {
		t.Errorf("Format = %v, want elapsed (flag wins)", cfg.Format)
	}
	if !cfg.Align {
		t.Error("Align from file not applied")
	}
	if cfg.Priority != 2 {
		t.Errorf("Priority = %v, want 2", cfg.Priority)
	}
}

func TestApplyFileConfig_ExplicitFalse(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Align = true

	off := false
	ApplyFileConfig(&cfg, FileConfig{Align: &off}, nil)

	if cfg.Align {
		t.Error("explicit false in file not applied")
	}
}

func TestFileExists(t *testing.T) {
	path := writeConfig(t, "")
	if !FileExists(path) {
		t.Error("FileExists() = false for existing file")
	}
	if FileExists(filepath.Join(t.TempDir(), "nope.toml")) {
		t.Error("FileExists() = true for missing file")
	}
}
