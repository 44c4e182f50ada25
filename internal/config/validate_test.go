package config

import (
	"strings"
	"testing"
)

func TestValidateGlobalConfig_LogLevels(t *testing.T) {
	tests := []struct {
		level   string
		wantErr bool
	}{
		{"", false},
		{"debug", false},
		{"info", false},
		{"warn", false},
		{"error", false},
		{"trace", true},
		{"INFO", true},
	}

	for _, tt := range tests {
		cfg := &GlobalConfig{Log: LogConfig{Level: tt.level}}
		err := ValidateGlobalConfig(cfg)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateGlobalConfig(level=%q) error = %v, wantErr %v", tt.level, err, tt.wantErr)
		}
	}
}

func TestValidateProjectConfig_Valid(t *testing.T) {
	cfg := &ProjectConfig{
		Files:   []string{"docker-compose.yml"},
		Machine: "dev",
		Env:     map[string]string{"A": "1"},
	}
	if err := ValidateProjectConfig(cfg); err != nil {
		t.Errorf("ValidateProjectConfig() error = %v", err)
	}
}

func TestValidateProjectConfig_EmptyFile(t *testing.T) {
	cfg := &ProjectConfig{Files: []string{"docker-compose.yml", ""}}
	err := ValidateProjectConfig(cfg)
	if err == nil {
		t.Fatal("ValidateProjectConfig() expected error for empty file entry")
	}
	if !strings.Contains(err.Error(), "files[1]") {
		t.Errorf("error = %q, want to contain %q", err.Error(), "files[1]")
	}
}

func TestValidateProjectConfig_EmptyEnvName(t *testing.T) {
	cfg := &ProjectConfig{Env: map[string]string{"": "x"}}
	if err := ValidateProjectConfig(cfg); err == nil {
		t.Fatal("ValidateProjectConfig() expected error for empty env variable name")
	}
}
