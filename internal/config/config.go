// Package config provides configuration management for the spinqobj CLI.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/spinqobj/converter"
	"github.com/katalvlaran/spinqobj/internal/export"
)

// Environment keys.
const (
	EnvEndianness = "SPINQOBJ_ENDIANNESS"
	EnvFormat     = "SPINQOBJ_FORMAT"
	EnvWorkers    = "SPINQOBJ_WORKERS"
	EnvLogLevel   = "SPINQOBJ_LOG_LEVEL"
	EnvLogPretty  = "SPINQOBJ_LOG_PRETTY"
)

// DefaultEnvFile is read by Load when no file is given.
const DefaultEnvFile = ".env"

// Config holds CLI configuration
type Config struct {
	Endianness converter.Endianness
	Format     export.Format
	Workers    int
	LogLevel   string
	LogPretty  bool
}

// Load reads configuration from the process environment, falling back to
// values from the given .env files (DefaultEnvFile when none). Missing
// files are ignored; the process environment always wins.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}
	dotenv := make(map[string]string)
	for _, f := range files {
		vals, err := godotenv.Read(f)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}

			return nil, fmt.Errorf("config: read %s: %w", f, err)
		}
		maps.Copy(dotenv, vals)
	}
	env := lookup(dotenv)

	endianness, err := converter.ParseEndianness(env.get(EnvEndianness, converter.DefaultEndianness.String()))
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", EnvEndianness, err)
	}
	format, err := export.ParseFormat(env.get(EnvFormat, string(export.Text)))
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", EnvFormat, err)
	}

	cfg := &Config{
		Endianness: endianness,
		Format:     format,
		Workers:    env.getInt(EnvWorkers, converter.DefaultWorkers),
		LogLevel:   env.get(EnvLogLevel, "warn"),
		LogPretty:  env.getBool(EnvLogPretty, false),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks value ranges that parsing cannot catch.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("config: %s must be >= 1, got %d", EnvWorkers, c.Workers)
	}

	return nil
}

// lookup resolves a key from the environment first, then from .env values.
type lookup map[string]string

func (l lookup) get(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	if value := l[key]; value != "" {
		return value
	}
	return defaultValue
}

func (l lookup) getInt(key string, defaultValue int) int {
	if intVal, err := strconv.Atoi(l.get(key, "")); err == nil {
		return intVal
	}
	return defaultValue
}

func (l lookup) getBool(key string, defaultValue bool) bool {
	if boolVal, err := strconv.ParseBool(l.get(key, "")); err == nil {
		return boolVal
	}
	return defaultValue
}
