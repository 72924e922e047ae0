package config

import (
	"strings"
	"testing"
)

const sampleConfig = `
log:
  file: /var/log/git-hooks.log
  level: debug
hooks:
  extra_names:
    - pre-push
    - post-merge
`

func TestParse_Valid(t *testing.T) {
	cfg, err := Parse([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Log.File != "/var/log/git-hooks.log" {
		t.Errorf("Log.File = %q", cfg.Log.File)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
	if len(cfg.Hooks.ExtraNames) != 2 || cfg.Hooks.ExtraNames[0] != "pre-push" {
		t.Errorf("Hooks.ExtraNames = %q", cfg.Hooks.ExtraNames)
	}
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if cfg.Log.File != "" || cfg.Log.Level != "" || cfg.Hooks.ExtraNames != nil {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "unknown field",
			input:   "log:\n  fil: /tmp/x\n",
			wantErr: "field fil not found",
		},
		{
			name:    "type mismatch",
			input:   "hooks:\n  extra_names: pre-push\n",
			wantErr: "cannot unmarshal",
		},
		{
			name:    "malformed",
			input:   "log: [unclosed\n",
			wantErr: "decode YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
