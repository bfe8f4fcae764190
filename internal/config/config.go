// Package config defines application configuration and its loading order.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config contains process configuration.
type Config struct {
	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// CameraID selects the capture device.
	CameraID int `koanf:"camera_id"`

	// TargetFPS is the frame-processing cadence of the tracking pipeline.
	TargetFPS int `koanf:"target_fps"`

	// MotionThreshold is the percent of changed pixels treated as motion.
	MotionThreshold float64 `koanf:"motion_threshold"`

	// AutoStopSeconds stops an active session after this long without
	// motion. Zero disables auto-stop.
	AutoStopSeconds int `koanf:"auto_stop_seconds"`

	// DBPath is the SQLite database location. Empty means the default
	// under the user's home directory.
	DBPath string `koanf:"db_path"`

	// StaticDir serves the web UI when set.
	StaticDir string `koanf:"static_dir"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Addr:            ":8080",
		CameraID:        0,
		TargetFPS:       30,
		MotionThreshold: 1.0,
		AutoStopSeconds: 0,
	}
}

// Load builds a Config by layering defaults, an optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (Default())
//  2. file (YAML) if GYMTRACE_CONFIG is set
//  3. env (prefix GYMTRACE_)
func Load() (*Config, error) {
	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("GYMTRACE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: GYMTRACE_ADDR, GYMTRACE_CAMERA_ID, ...
	// Keys map to the flat koanf tags on the struct, underscores kept.
	envProvider := env.Provider("GYMTRACE_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "gymtrace_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.Addr == "" {
		return nil, errors.New("addr must not be empty")
	}
	if cfg.TargetFPS <= 0 {
		return nil, errors.New("target_fps must be positive")
	}
	return &cfg, nil
}

// DefaultDBPath returns the database location used when db_path is unset,
// creating the data directory if needed.
func DefaultDBPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dataDir := filepath.Join(homeDir, ".gymtrace")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "gymtrace.db"), nil
}
