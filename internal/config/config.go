package config

import (
	"errors"
	"fmt"
	"github.com/gostonefire/coursedb/internal/hash"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
	"io/fs"
	"os"
	"strconv"
)

// Config holds the course store and logging configuration.
type Config struct {
	Store struct {
		// ExpectedRecords sizes the table when Capacity is zero.
		ExpectedRecords int64   `yaml:"expected_records"`
		Capacity        int64   `yaml:"capacity"`
		LoadFactor      float64 `yaml:"load_factor"`
	} `yaml:"store"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"logging"`
}

// Load reads configuration from a YAML file if it exists, then from a .env file if present, then from
// environment variables, and validates the result.
//   - path is the YAML file, a missing file is not an error
func Load(path string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	file, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err = yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	_ = godotenv.Load() // .env is optional

	if err = loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err = Validate(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Validate checks that the configuration can be used to create a store.
func Validate(config *Config) error {
	if config.Store.ExpectedRecords < 0 {
		return fmt.Errorf("store.expected_records can not be negative")
	}
	if config.Store.Capacity < 0 {
		return fmt.Errorf("store.capacity can not be negative")
	}
	if !hash.ValidLoadFactor(config.Store.LoadFactor) {
		return fmt.Errorf("store.load_factor must be a finite number higher than 0 (zero), got %f", config.Store.LoadFactor)
	}

	switch config.Logging.Format {
	case "json", "pretty", "auto":
	default:
		return fmt.Errorf("logging.format must be one of json, pretty or auto, got %q", config.Logging.Format)
	}

	return nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Store.ExpectedRecords = 20
	config.Store.LoadFactor = 1.5

	config.Logging.Level = "info"
	config.Logging.Format = "auto"
}

// loadFromEnv overrides configuration with COURSEDB_* environment variables
func loadFromEnv(config *Config) (err error) {
	if config.Store.ExpectedRecords, err = getEnvInt64("COURSEDB_EXPECTED_RECORDS", config.Store.ExpectedRecords); err != nil {
		return
	}
	if config.Store.Capacity, err = getEnvInt64("COURSEDB_CAPACITY", config.Store.Capacity); err != nil {
		return
	}
	if config.Store.LoadFactor, err = getEnvFloat("COURSEDB_LOAD_FACTOR", config.Store.LoadFactor); err != nil {
		return
	}
	config.Logging.Level = getEnv("COURSEDB_LOG_LEVEL", config.Logging.Level)
	config.Logging.Format = getEnv("COURSEDB_LOG_FORMAT", config.Logging.Format)

	return
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}
