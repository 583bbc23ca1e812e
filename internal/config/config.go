package config

import (
	"fmt"
	"os"
	"time"

	"github.com/yigit/unitutor/internal/pkg/helpers"
	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port            string `yaml:"port" env:"SERVER_PORT"`
		Mode            string `yaml:"mode" env:"SERVER_MODE"`
		ReadTimeout     string `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout    string `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
		ShutdownTimeout string `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxConns        int    `yaml:"max_conns" env:"DB_MAX_CONNS"`
		MinConns        int    `yaml:"min_conns" env:"DB_MIN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		MigrationsDir   string `yaml:"migrations_dir" env:"DB_MIGRATIONS_DIR"`
	} `yaml:"database"`

	JWT struct {
		Secret                string `yaml:"secret" env:"JWT_SECRET"`
		AccessTokenExpiration string `yaml:"access_token_expiration" env:"JWT_ACCESS_TOKEN_EXPIRATION"`
		Issuer                string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	RateLimit struct {
		Enabled           bool `yaml:"enabled" env:"RATE_LIMIT_ENABLED"`
		RequestsPerMinute int  `yaml:"requests_per_minute" env:"RATE_LIMIT_REQUESTS_PER_MINUTE"`
		Burst             int  `yaml:"burst" env:"RATE_LIMIT_BURST"`
	} `yaml:"rate_limit"`

	Seed struct {
		Enabled bool `yaml:"enabled" env:"SEED_ENABLED"`
	} `yaml:"seed"`
}

// LoadConfig loads configuration from a .env file, a YAML file and environment variables,
// in increasing order of precedence
func LoadConfig(configPath string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.ReadTimeout = "15s"
	config.Server.WriteTimeout = "15s"
	config.Server.ShutdownTimeout = "10s"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "unitutor"
	config.Database.SSLMode = "disable"
	config.Database.MaxConns = 20
	config.Database.MinConns = 2
	config.Database.ConnMaxLifetime = "1h"
	config.Database.MigrationsDir = "migrations"

	config.JWT.AccessTokenExpiration = "1h"
	config.JWT.Issuer = "unitutor.app"

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.RateLimit.Enabled = true
	config.RateLimit.RequestsPerMinute = 120
	config.RateLimit.Burst = 30

	config.Seed.Enabled = false
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	durations := map[string]string{
		"JWT access token expiration":  config.JWT.AccessTokenExpiration,
		"server read timeout":          config.Server.ReadTimeout,
		"server write timeout":         config.Server.WriteTimeout,
		"server shutdown timeout":      config.Server.ShutdownTimeout,
		"database connection lifetime": config.Database.ConnMaxLifetime,
	}
	for name, value := range durations {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s format: %w", name, err)
		}
	}

	if config.Database.MaxConns <= 0 || config.Database.MinConns < 0 || config.Database.MinConns > config.Database.MaxConns {
		return fmt.Errorf("database pool requires 0 <= min_conns <= max_conns and max_conns > 0")
	}

	if config.RateLimit.Enabled && (config.RateLimit.RequestsPerMinute <= 0 || config.RateLimit.Burst <= 0) {
		return fmt.Errorf("rate limit requests_per_minute and burst must be positive")
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// IsProduction reports whether gin should run in release mode
func (c *Config) IsProduction() bool {
	return c.Server.Mode == "production" || c.Server.Mode == "release"
}

// AccessTokenDuration returns the parsed JWT lifetime
func (c *Config) AccessTokenDuration() time.Duration {
	return helpers.ParseDuration(c.JWT.AccessTokenExpiration, time.Hour)
}

// ReadTimeout returns the parsed HTTP read timeout
func (c *Config) ReadTimeout() time.Duration {
	return helpers.ParseDuration(c.Server.ReadTimeout, 15*time.Second)
}

// WriteTimeout returns the parsed HTTP write timeout
func (c *Config) WriteTimeout() time.Duration {
	return helpers.ParseDuration(c.Server.WriteTimeout, 15*time.Second)
}

// ShutdownTimeout returns how long graceful shutdown may take
func (c *Config) ShutdownTimeout() time.Duration {
	return helpers.ParseDuration(c.Server.ShutdownTimeout, 10*time.Second)
}

// ConnMaxLifetime returns the parsed pool connection lifetime
func (c *Config) ConnMaxLifetime() time.Duration {
	return helpers.ParseDuration(c.Database.ConnMaxLifetime, time.Hour)
}
