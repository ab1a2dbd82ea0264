package cliconfig

import "testing"

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		changed map[string]bool
		check   func(t *testing.T, cfg Config)
		wantErr bool
	}{
		{
			name: "format and priority",
			env: map[string]string{
				"TSCAT_FORMAT":   "epoch",
				"TSCAT_PRIORITY": "2",
			},
			check: func(t *testing.T, cfg Config) {
				if cfg.Format != "epoch" {
					t.Errorf("Format = %v, want epoch", cfg.Format)
				}
				if cfg.Priority != 2 {
					t.Errorf("Priority = %v, want 2", cfg.Priority)
				}
			},
		},
		{
			name: "bools accept 1 and true",
			env: map[string]string{
				"TSCAT_ALIGN": "1",
				"TSCAT_UTC":   "true",
			},
			check: func(t *testing.T, cfg Config) {
				if !cfg.Align || !cfg.UTC {
					t.Errorf("Align = %v, UTC = %v, want both true", cfg.Align, cfg.UTC)
				}
			},
		},
		{
			name: "changed flag wins over env",
			env: map[string]string{
				"TSCAT_FORMAT": "epoch",
			},
			changed: map[string]bool{"format": true},
			check: func(t *testing.T, cfg Config) {
				if cfg.Format != "calendar" {
					t.Errorf("Format = %v, want calendar (flag set)", cfg.Format)
				}
			},
		},
		{
			name: "bad priority errors",
			env: map[string]string{
				"TSCAT_PRIORITY": "high",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			cfg := DefaultConfig()
			err := ApplyEnvConfig(&cfg, tt.changed)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApplyEnvConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, cfg)
			}
		})
	}
}
