// Package config handles loading and managing application configuration
// from YAML files, .env files, and environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/Szelwin/qrGenerator/sheet"
)

// Config holds all application configuration values.
type Config struct {
	Port        int     `yaml:"port"`
	LogLevel    string  `yaml:"log_level"`
	OutputDir   string  `yaml:"output_dir"`
	Columns     int     `yaml:"columns"`
	ChunkSize   int     `yaml:"chunk_size"`
	QRWidthMM   float64 `yaml:"qr_width_mm"`
	LabelSizePt float64 `yaml:"label_size_pt"`
}

// defaults returns a Config populated with sensible default values.
func defaults() *Config {
	layout := sheet.DefaultLayout()
	return &Config{
		Port:        8590,
		LogLevel:    "info",
		OutputDir:   ".",
		Columns:     layout.Columns,
		ChunkSize:   layout.ChunkSize,
		QRWidthMM:   layout.QRWidthMM,
		LabelSizePt: layout.LabelSizePt,
	}
}

// Load reads configuration from the YAML file at path, falling back to
// defaults if the file does not exist. A .env file in the working
// directory is loaded first, then environment variables with the QRGEN_
// prefix override any file or default values.
func Load(path string) (*Config, error) {
	// Ignore a missing .env; it only seeds the environment.
	_ = godotenv.Load()

	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// File doesn't exist — proceed with defaults.
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies QRGEN_* environment variable overrides to cfg.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("QRGEN_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	if v := os.Getenv("QRGEN_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("QRGEN_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("QRGEN_COLUMNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Columns = n
		}
	}
	if v := os.Getenv("QRGEN_CHUNK_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ChunkSize = n
		}
	}
}

// validate rejects layout values the generator cannot work with.
func (c *Config) validate() error {
	if c.Columns < 1 {
		return fmt.Errorf("columns must be at least 1, got %d", c.Columns)
	}
	if c.ChunkSize < 1 {
		return fmt.Errorf("chunk_size must be at least 1, got %d", c.ChunkSize)
	}
	if c.QRWidthMM <= 0 {
		return fmt.Errorf("qr_width_mm must be positive, got %v", c.QRWidthMM)
	}
	return nil
}

// Layout returns the sheet layout described by the configuration.
func (c *Config) Layout() sheet.Layout {
	return sheet.Layout{
		Columns:     c.Columns,
		ChunkSize:   c.ChunkSize,
		QRWidthMM:   c.QRWidthMM,
		LabelSizePt: c.LabelSizePt,
	}
}
