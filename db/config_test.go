// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package db_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mdhender/ccapi/db"
)

func TestDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := db.DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath failed: %v", err)
	}
	want := filepath.Join(home, ".ccapi", "db.db")
	if got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}

func TestConfigFromEnv(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		timeout     string
		skip        string
		wantPath    string
		wantTimeout time.Duration
		wantSkip    bool
		wantErr     bool
	}{
		{name: "unset", wantTimeout: 0},
		{name: "path", path: "/tmp/x.db", wantPath: "/tmp/x.db"},
		{name: "duration timeout", timeout: "1500ms", wantTimeout: 1500 * time.Millisecond},
		{name: "seconds timeout", timeout: "3", wantTimeout: 3 * time.Second},
		{name: "bad timeout", timeout: "soon", wantErr: true},
		{name: "negative timeout", timeout: "-1s", wantErr: true},
		{name: "skip bootstrap", skip: "true", wantSkip: true},
		{name: "bad skip bootstrap", skip: "maybe", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(db.EnvPath, tt.path)
			t.Setenv(db.EnvTimeout, tt.timeout)
			t.Setenv(db.EnvSkipBootstrap, tt.skip)

			cfg, err := db.ConfigFromEnv()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ConfigFromEnv failed: %v", err)
			}
			if cfg.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", cfg.Path, tt.wantPath)
			}
			if cfg.Timeout != tt.wantTimeout {
				t.Errorf("Timeout = %v, want %v", cfg.Timeout, tt.wantTimeout)
			}
			if cfg.SkipBootstrap != tt.wantSkip {
				t.Errorf("SkipBootstrap = %v, want %v", cfg.SkipBootstrap, tt.wantSkip)
			}
		})
	}
}

// writeConfig writes a YAML config file and returns its path.
func writeConfig(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ccapi.yaml")
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Setenv(db.EnvPath, "")
	t.Setenv(db.EnvTimeout, "")
	t.Setenv(db.EnvSkipBootstrap, "")

	path := writeConfig(t, `
database:
  path: "/var/cache/ccapi/db.db"
  timeout: "2s"
  skip_bootstrap: true
logging:
  level: "debug"
  format: "json"
`)

	cfg, err := db.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Path != "/var/cache/ccapi/db.db" {
		t.Errorf("Path = %q", cfg.Path)
	}
	if cfg.Timeout != 2*time.Second {
		t.Errorf("Timeout = %v, want 2s", cfg.Timeout)
	}
	if !cfg.SkipBootstrap {
		t.Error("SkipBootstrap should be true")
	}
	if cfg.Logger == nil {
		t.Error("Logger should be set")
	}
	if cfg.Metrics != nil {
		t.Error("Metrics should be nil when disabled")
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv(db.EnvPath, "/override/db.db")
	t.Setenv(db.EnvTimeout, "5")
	t.Setenv(db.EnvSkipBootstrap, "")

	path := writeConfig(t, `
database:
  path: "/from/file.db"
  timeout: "2s"
`)

	cfg, err := db.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Path != "/override/db.db" {
		t.Errorf("Path = %q, want env override", cfg.Path)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.Timeout)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Setenv(db.EnvTimeout, "")

	t.Run("missing file", func(t *testing.T) {
		if _, err := db.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
			t.Fatal("expected error for missing file")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		if _, err := db.LoadConfig(writeConfig(t, "database: [")); err == nil {
			t.Fatal("expected error for invalid yaml")
		}
	})

	t.Run("invalid timeout", func(t *testing.T) {
		if _, err := db.LoadConfig(writeConfig(t, "database:\n  timeout: \"later\"\n")); err == nil {
			t.Fatal("expected error for invalid timeout")
		}
	})
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := db.NewLogger(db.LoggingConfig{Level: "warn", Format: "json"}, &buf)

	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn level, got %q", buf.String())
	}

	logger.Warn("shown", "key", "value")
	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if record["msg"] != "shown" || record["service"] != "ccapi" || record["key"] != "value" {
		t.Errorf("unexpected record %v", record)
	}
}
