package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	defaultEnv          = "development"
	defaultMarketCode   = "XMON"
	defaultLogLevel     = "info"
	defaultLogFormat    = "json"
	defaultLogMaxSizeMB = 100
	defaultLogBackups   = 3
	defaultLogMaxAge    = 7
	defaultEnvFile      = ".env"
)

// Config keeps the runtime configuration for the market session.
type Config struct {
	Env     string
	Market  MarketConfig
	Log     LogConfig
	Session SessionConfig
}

// MarketConfig identifies the market the registry belongs to.
type MarketConfig struct {
	Code string
}

// LogConfig controls logger level, format and optional rotating file output.
type LogConfig struct {
	Level      string
	Format     string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// SessionConfig points at the session script to replay.
type SessionConfig struct {
	File string
}

// Load reads an optional .env file and builds Config from environment variables.
// Variables already set in the environment win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(getString("ENV_FILE", defaultEnvFile)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}

	maxSize, err := getInt("LOG_MAX_SIZE_MB", defaultLogMaxSizeMB)
	if err != nil {
		return nil, fmt.Errorf("parse LOG_MAX_SIZE_MB: %w", err)
	}
	backups, err := getInt("LOG_MAX_BACKUPS", defaultLogBackups)
	if err != nil {
		return nil, fmt.Errorf("parse LOG_MAX_BACKUPS: %w", err)
	}
	maxAge, err := getInt("LOG_MAX_AGE_DAYS", defaultLogMaxAge)
	if err != nil {
		return nil, fmt.Errorf("parse LOG_MAX_AGE_DAYS: %w", err)
	}
	compress, err := getBool("LOG_COMPRESS", false)
	if err != nil {
		return nil, fmt.Errorf("parse LOG_COMPRESS: %w", err)
	}

	format := getString("LOG_FORMAT", defaultLogFormat)
	if format != "json" && format != "text" {
		return nil, fmt.Errorf("parse LOG_FORMAT: unsupported format %q", format)
	}

	return &Config{
		Env:    getString("APP_ENV", defaultEnv),
		Market: MarketConfig{Code: getString("MARKET_CODE", defaultMarketCode)},
		Log: LogConfig{
			Level:      getString("LOG_LEVEL", defaultLogLevel),
			Format:     format,
			File:       os.Getenv("LOG_FILE"),
			MaxSizeMB:  maxSize,
			MaxBackups: backups,
			MaxAgeDays: maxAge,
			Compress:   compress,
		},
		Session: SessionConfig{File: os.Getenv("SESSION_FILE")},
	}, nil
}

func getString(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	return value
}

func getInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("convert %s value %q to int: %w", key, value, err)
	}
	return parsed, nil
}

func getBool(key string, fallback bool) (bool, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("convert %s value %q to bool: %w", key, value, err)
	}
	return parsed, nil
}
