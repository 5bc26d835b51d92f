package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/yigit/unicrud/internal/pkg/validation"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port            string `yaml:"port" toml:"port" env:"SERVER_PORT" validate:"required,numeric"`
		Mode            string `yaml:"mode" toml:"mode" env:"SERVER_MODE" validate:"oneof=development production test"`
		ReadTimeout     string `yaml:"read_timeout" toml:"read_timeout" env:"SERVER_READ_TIMEOUT" validate:"duration"`
		WriteTimeout    string `yaml:"write_timeout" toml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" validate:"duration"`
		IdleTimeout     string `yaml:"idle_timeout" toml:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" validate:"duration"`
		ShutdownTimeout string `yaml:"shutdown_timeout" toml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" validate:"duration"`
	} `yaml:"server" toml:"server"`

	Logging struct {
		Level  string `yaml:"level" toml:"level" env:"LOG_LEVEL" validate:"oneof=debug info warn error disabled"`
		Format string `yaml:"format" toml:"format" env:"LOG_FORMAT" validate:"oneof=json text"`
	} `yaml:"logging" toml:"logging"`

	Seed struct {
		Enabled bool `yaml:"enabled" toml:"enabled" env:"SEED_ENABLED"`
	} `yaml:"seed" toml:"seed"`

	RateLimit struct {
		Enabled bool    `yaml:"enabled" toml:"enabled" env:"RATE_LIMIT_ENABLED"`
		RPS     float64 `yaml:"rps" toml:"rps" env:"RATE_LIMIT_RPS" validate:"gte=0,required_if=Enabled true"`
		Burst   int     `yaml:"burst" toml:"burst" env:"RATE_LIMIT_BURST" validate:"gte=0,required_if=Enabled true"`
	} `yaml:"rate_limit" toml:"rate_limit"`

	Swagger struct {
		Enabled bool `yaml:"enabled" toml:"enabled" env:"SWAGGER_ENABLED"`
	} `yaml:"swagger" toml:"swagger"`
}

var validate = validation.New()

// LoadConfig loads configuration from a file and environment variables.
// A missing file is not an error: defaults and environment still apply.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if configPath != "" {
		if err := loadFile(configPath, config); err != nil {
			return nil, err
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func loadFile(configPath string, config *Config) error {
	file, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".toml":
		err = toml.Unmarshal(file, config)
	case ".yaml", ".yml", "":
		err = yaml.Unmarshal(file, config)
	default:
		return fmt.Errorf("unsupported config file extension %q", filepath.Ext(configPath))
	}
	if err != nil {
		return fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}
	return nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.ReadTimeout = "10s"
	config.Server.WriteTimeout = "10s"
	config.Server.IdleTimeout = "120s"
	config.Server.ShutdownTimeout = "10s"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.Seed.Enabled = true

	config.RateLimit.Enabled = false
	config.RateLimit.RPS = 50
	config.RateLimit.Burst = 100

	config.Swagger.Enabled = true
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	return validation.Struct(validate, config, "Config.")
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Mode, "production")
}
