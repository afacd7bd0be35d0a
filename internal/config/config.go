// Package config loads runtime settings from the environment. A .env file in
// the working directory is read first; command-line flags override the result.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Makepad-fr/countdown/internal/logger"
)

// Environment variable names.
const (
	EnvTheme     = "COUNTDOWN_THEME"
	EnvStateFile = "COUNTDOWN_STATE_FILE"
	EnvRestore   = "COUNTDOWN_RESTORE"
	EnvChime     = "COUNTDOWN_CHIME"
	EnvBlink     = "COUNTDOWN_BLINK"
	EnvLogLevel  = "COUNTDOWN_LOG_LEVEL"
	EnvLogFile   = "COUNTDOWN_LOG_FILE"
)

// DefaultLogFile keeps logs out of the terminal the TUI draws on.
const DefaultLogFile = ".countdown-logs/countdown.log"

// Config holds every runtime setting.
type Config struct {
	Theme     string
	StateFile string // empty means the store default
	Restore   bool
	Chime     bool
	Blink     bool
	LogLevel  logger.Level
	LogFile   string // "stderr" logs to the console
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Theme:    "classic",
		Restore:  true,
		Chime:    false,
		Blink:    true,
		LogLevel: logger.LevelNormal,
		LogFile:  DefaultLogFile,
	}
}

// Load reads .env (if present) and the environment on top of Default.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if v := os.Getenv(EnvTheme); v != "" {
		cfg.Theme = strings.ToLower(v)
	}
	if v := os.Getenv(EnvStateFile); v != "" {
		cfg.StateFile = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		lvl, err := logger.ParseLevel(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
		cfg.LogLevel = lvl
	}

	var err error
	if cfg.Restore, err = boolEnv(EnvRestore, cfg.Restore); err != nil {
		return cfg, err
	}
	if cfg.Chime, err = boolEnv(EnvChime, cfg.Chime); err != nil {
		return cfg, err
	}
	if cfg.Blink, err = boolEnv(EnvBlink, cfg.Blink); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func boolEnv(name string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(name))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("%s: not a boolean: %q", name, v)
	}
	return b, nil
}
