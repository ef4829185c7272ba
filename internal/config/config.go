package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/cariesreview/catalog/internal/app/models"
)

// Config structure represents the application configuration
type Config struct {
	Server   ServerConfig    `yaml:"server"`
	Database DatabaseConfig  `yaml:"database"`
	JWT      JWTConfig       `yaml:"jwt"`
	Logging  LoggingConfig   `yaml:"logging"`
	Tracing  TracingConfig   `yaml:"tracing"`
	CORS     CORSConfig      `yaml:"cors"`
	Editors  []models.Editor `yaml:"editors"`
}

type ServerConfig struct {
	Port     string `yaml:"port" env:"SERVER_PORT"`
	Mode     string `yaml:"mode" env:"SERVER_MODE"`
	PageSize int    `yaml:"page_size" env:"SERVER_PAGE_SIZE"`
}

type DatabaseConfig struct {
	Host            string `yaml:"host" env:"DB_HOST"`
	Port            string `yaml:"port" env:"DB_PORT"`
	User            string `yaml:"user" env:"DB_USER"`
	Password        string `yaml:"password" env:"DB_PASSWORD"`
	DBName          string `yaml:"dbname" env:"DB_NAME"`
	SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
	MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
	MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
	ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
}

type JWTConfig struct {
	Secret                string `yaml:"secret" env:"JWT_SECRET"`
	AccessTokenExpiration string `yaml:"access_token_expiration" env:"JWT_ACCESS_TOKEN_EXPIRATION"`
	Issuer                string `yaml:"issuer" env:"JWT_ISSUER"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL"`
	Format string `yaml:"format" env:"LOG_FORMAT"`
}

// TracingConfig controls OpenTelemetry request tracing. Exporter is "stdout"
// or "otlp".
type TracingConfig struct {
	Enabled     bool    `yaml:"enabled" env:"TRACING_ENABLED"`
	Exporter    string  `yaml:"exporter" env:"TRACING_EXPORTER"`
	Endpoint    string  `yaml:"endpoint" env:"TRACING_ENDPOINT"`
	SampleRatio float64 `yaml:"sample_ratio" env:"TRACING_SAMPLE_RATIO"`
	ServiceName string  `yaml:"service_name" env:"TRACING_SERVICE_NAME"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
}

// LoadConfig loads configuration from a file, an optional .env file and
// environment variables, in that order of precedence (lowest first).
func LoadConfig(configPath string) (*Config, error) {
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

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	if err := loadFromEnv(config); err != nil {
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
	config.Server.PageSize = 20

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "caries_review"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = "1h"

	config.JWT.AccessTokenExpiration = "8h"
	config.JWT.Issuer = "caries-review"

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.Tracing.Exporter = "stdout"
	config.Tracing.SampleRatio = 1
	config.Tracing.ServiceName = "caries-catalog"
}

// loadFromEnv overrides each section with environment variables. Editors are
// file-only.
func loadFromEnv(config *Config) error {
	sections := []any{
		&config.Server,
		&config.Database,
		&config.JWT,
		&config.Logging,
		&config.Tracing,
		&config.CORS,
	}
	for _, section := range sections {
		if err := ParseEnv(section); err != nil {
			return err
		}
	}
	return nil
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if _, err := time.ParseDuration(config.JWT.AccessTokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT access token expiration format: %w", err)
	}

	if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid database connection lifetime: %w", err)
	}

	if config.Server.PageSize <= 0 {
		return fmt.Errorf("server page size must be positive")
	}

	switch config.Tracing.Exporter {
	case "stdout", "otlp":
	default:
		return fmt.Errorf("unknown tracing exporter %q", config.Tracing.Exporter)
	}
	if config.Tracing.SampleRatio < 0 || config.Tracing.SampleRatio > 1 {
		return fmt.Errorf("tracing sample ratio must be between 0 and 1")
	}

	seen := make(map[string]bool, len(config.Editors))
	for i, editor := range config.Editors {
		name := strings.TrimSpace(editor.Username)
		if name == "" {
			return fmt.Errorf("editors[%d]: username is required", i)
		}
		if seen[name] {
			return fmt.Errorf("editors[%d]: duplicate username %q", i, name)
		}
		seen[name] = true
		if !editor.Role.Valid() {
			return fmt.Errorf("editors[%d]: unknown role %q", i, editor.Role)
		}
		if editor.PasswordHash == "" {
			return fmt.Errorf("editors[%d]: password_hash is required", i)
		}
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

// AccessTokenTTL returns the parsed access token lifetime.
func (c *Config) AccessTokenTTL() time.Duration {
	d, _ := time.ParseDuration(c.JWT.AccessTokenExpiration)
	return d
}

// Editor looks up a configured editor by username.
func (c *Config) Editor(username string) (models.Editor, bool) {
	for _, e := range c.Editors {
		if e.Username == username {
			return e, true
		}
	}
	return models.Editor{}, false
}
