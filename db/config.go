// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package db

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mdhender/ccapi"
	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultTimeout bounds how long a connection waits for a lock held by another process.
	DefaultTimeout = 10 * time.Second

	// FileName is the name of the cache database inside the product directory.
	FileName = "db.db"

	// Environment variables read by ConfigFromEnv and LoadConfig.
	EnvPath          = "CCAPI_DB_PATH"
	EnvTimeout       = "CCAPI_DB_TIMEOUT"
	EnvSkipBootstrap = "CCAPI_SKIP_BOOTSTRAP"
)

// Config holds database configuration options.
type Config struct {
	// Path to the database file. Use ":memory:" for an in-memory database.
	// Defaults to DefaultPath() when empty.
	Path string

	// Timeout bounds how long acquiring a lock on the database file may wait
	// before the engine reports the database as busy. Default: 10s.
	Timeout time.Duration

	// SkipBootstrap disables running the bootstrap script when a Connector
	// creates its handle. By default the script runs.
	SkipBootstrap bool

	// BootstrapFS holds the bootstrap.sql script. Optional - if nil, the
	// script embedded in this package is used.
	BootstrapFS fs.FS

	// Logger for operational logging. Uses slog.Default() if nil.
	Logger *slog.Logger

	// Metrics records query and bootstrap counters. Optional.
	Metrics *Metrics
}

// defaults returns a copy of cfg with default values applied.
func (cfg Config) defaults() Config {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.BootstrapFS == nil {
		cfg.BootstrapFS = bootstrapFS
	}
	return cfg
}

// resolvePath returns cfg.Path, or the default location under the user's home directory.
func (cfg Config) resolvePath() (string, error) {
	if cfg.Path != "" {
		return cfg.Path, nil
	}
	return DefaultPath()
}

// isMemory returns true if path indicates an in-memory database.
func isMemory(path string) bool {
	return path == ":memory:" || strings.HasPrefix(path, "file::memory:")
}

// uriEscaper escapes the characters that end the path part of a "file:" URI.
var uriEscaper = strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")

// uriPath returns path escaped for use in a "file:" DSN.
// SQLite decodes the escapes when it opens the file.
func uriPath(path string) string {
	return uriEscaper.Replace(path)
}

// DefaultPath returns <home>/.ccapi/db.db.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home directory: %w", err)
	}
	return filepath.Join(home, "."+ccapi.Name, FileName), nil
}

// ConfigFromEnv returns a Config with environment overrides applied.
func ConfigFromEnv() (Config, error) {
	var cfg Config
	if err := applyEnvOverrides(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnvOverrides overrides configuration values from environment variables.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv(EnvPath); v != "" {
		cfg.Path = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := parseTimeout(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		cfg.Timeout = d
	}
	if v := os.Getenv(EnvSkipBootstrap); v != "" {
		skip, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSkipBootstrap, err)
		}
		cfg.SkipBootstrap = skip
	}
	return nil
}

// parseTimeout accepts a Go duration ("1500ms", "10s") or a whole number of seconds ("10").
func parseTimeout(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("invalid timeout %q", s)
		}
		return time.Duration(n) * time.Second, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid timeout %q", s)
	}
	return d, nil
}

// FileConfig is the YAML document read by LoadConfig.
//
//	database:
//	  path: "/home/me/.ccapi/db.db"
//	  timeout: "10s"
//	  skip_bootstrap: false
//	logging:
//	  level: "info"   # debug, info, warn, error
//	  format: "text"  # json, text
//	metrics:
//	  enabled: true
type FileConfig struct {
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// DatabaseConfig contains the cache database settings.
type DatabaseConfig struct {
	Path          string `yaml:"path"`
	Timeout       string `yaml:"timeout"`
	SkipBootstrap bool   `yaml:"skip_bootstrap"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls registration with the default Prometheus registry.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LoadConfig reads a YAML configuration file and applies environment overrides.
//
// The loading order is:
//  1. Default values
//  2. YAML file values
//  3. Environment variables
//
// Log output goes to stderr.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}

	cfg := Config{
		Path:          fc.Database.Path,
		SkipBootstrap: fc.Database.SkipBootstrap,
		Logger:        NewLogger(fc.Logging, os.Stderr),
	}
	if fc.Database.Timeout != "" {
		if cfg.Timeout, err = parseTimeout(fc.Database.Timeout); err != nil {
			return Config{}, fmt.Errorf("database.timeout: %w", err)
		}
	}
	if fc.Metrics.Enabled {
		if cfg.Metrics, err = NewMetrics(prometheus.DefaultRegisterer); err != nil {
			return Config{}, fmt.Errorf("metrics: %w", err)
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewLogger creates a slog.Logger writing to w with the configured level and format.
// Every record carries the service name and library version.
func NewLogger(cfg LoggingConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler.WithAttrs([]slog.Attr{
		slog.String("service", ccapi.Name),
		slog.Any("version", ccapi.Version()),
	}))
}

// parseLevel converts a string log level to slog.Level.
// Defaults to info if unrecognised.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
