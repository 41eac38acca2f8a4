package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. STOREFRONT_SERVER_PORT.
const EnvPrefix = "STOREFRONT"

// Config holds the application configuration
type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	RateLimit    RateLimitConfig    `mapstructure:"rate_limit"`
	Session      SessionConfig      `mapstructure:"session"`
	Presentation PresentationConfig `mapstructure:"presentation"`
	Telemetry    TelemetryConfig    `mapstructure:"telemetry"`
	Logging      LoggingConfig      `mapstructure:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Host            string        `mapstructure:"host"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr returns host:port.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// RateLimitConfig holds per-IP rate limiting configuration
type RateLimitConfig struct {
	Enabled           bool          `mapstructure:"enabled"`
	RequestsPerSecond float64       `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
}

// SessionConfig controls visitor session lifetime
type SessionConfig struct {
	TTL             time.Duration `mapstructure:"ttl"`
	SweepInterval   time.Duration `mapstructure:"sweep_interval"`
	SubmittedWindow time.Duration `mapstructure:"submitted_window"`
}

// PresentationConfig holds defaults handed to the presentation layer
type PresentationConfig struct {
	DefaultTheme string `mapstructure:"default_theme"`
	// PriceCeiling is the upper bound of the initial laptop price filter.
	PriceCeiling float64 `mapstructure:"price_ceiling"`
}

// PriceCeilingDecimal returns PriceCeiling as money.
func (p PresentationConfig) PriceCeilingDecimal() decimal.Decimal {
	return decimal.NewFromFloat(p.PriceCeiling)
}

// TelemetryConfig holds OpenTelemetry exporter settings
type TelemetryConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"service_name"`
	Environment string `mapstructure:"environment"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level   string `mapstructure:"level"`
	Format  string `mapstructure:"format"`
	NoColor bool   `mapstructure:"no_color"`
}

// ErrInvalidConfig is returned when a configuration value is out of range.
type ErrInvalidConfig struct {
	Field  string
	Reason string
}

func (e ErrInvalidConfig) Error() string {
	return "invalid config " + e.Field + ": " + e.Reason
}

// Load loads the configuration from file, .env, and environment variables
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Read config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// .env is optional
	if err := loadEnvFile(); err != nil {
		log.Debug().Err(err).Msg(".env file not loaded")
	}

	// Enable environment variable override
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind env keys that do not follow the prefix convention
	bindEnvVars(v)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return ErrInvalidConfig{Field: "server.port", Reason: "must be between 1 and 65535"}
	}
	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerSecond <= 0 {
			return ErrInvalidConfig{Field: "rate_limit.requests_per_second", Reason: "must be positive"}
		}
		if c.RateLimit.Burst < 1 {
			return ErrInvalidConfig{Field: "rate_limit.burst", Reason: "must be at least 1"}
		}
	}
	if c.Session.TTL < 0 {
		return ErrInvalidConfig{Field: "session.ttl", Reason: "cannot be negative"}
	}
	if c.Session.TTL > 0 && c.Session.SweepInterval <= 0 {
		return ErrInvalidConfig{Field: "session.sweep_interval", Reason: "must be positive when ttl is set"}
	}
	switch c.Presentation.DefaultTheme {
	case "light", "dark":
	default:
		return ErrInvalidConfig{Field: "presentation.default_theme", Reason: "must be light or dark"}
	}
	if c.Presentation.PriceCeiling < 0 {
		return ErrInvalidConfig{Field: "presentation.price_ceiling", Reason: "cannot be negative"}
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return ErrInvalidConfig{Field: "logging.format", Reason: "must be json or console"}
	}
	return nil
}

// loadEnvFile loads the first .env file found into the process environment
func loadEnvFile() error {
	envPaths := []string{
		".",
		"./config",
	}

	for _, path := range envPaths {
		envFile := fmt.Sprintf("%s/.env", path)
		if _, err := os.Stat(envFile); err == nil {
			if err := loadDotEnvFile(envFile); err == nil {
				return nil
			}
		}
	}
	return fmt.Errorf("no .env file found")
}

// loadDotEnvFile reads KEY=VALUE lines and sets them as environment
// variables. Variables already set in the environment win.
func loadDotEnvFile(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(strings.TrimPrefix(parts[0], "export "))
		value := strings.Trim(strings.TrimSpace(parts[1]), "\"'")
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		os.Setenv(key, value)
	}
	return scanner.Err()
}

// bindEnvVars binds conventional environment variables to config keys
func bindEnvVars(v *viper.Viper) {
	// Server
	v.BindEnv("server.port", EnvPrefix+"_SERVER_PORT", "PORT")
	v.BindEnv("server.host", EnvPrefix+"_SERVER_HOST", "HOST")

	// Logging
	v.BindEnv("logging.level", EnvPrefix+"_LOGGING_LEVEL", "LOG_LEVEL")

	// Telemetry
	v.BindEnv("telemetry.endpoint", "OTEL_EXPORTER_OTLP_ENDPOINT")
	v.BindEnv("telemetry.service_name", "OTEL_SERVICE_NAME")
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 15*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	// Rate limit defaults
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_second", 10)
	v.SetDefault("rate_limit.burst", 20)
	v.SetDefault("rate_limit.cleanup_interval", 5*time.Minute)

	// Session defaults
	v.SetDefault("session.ttl", 30*time.Minute)
	v.SetDefault("session.sweep_interval", time.Minute)
	v.SetDefault("session.submitted_window", 3*time.Second)

	// Presentation defaults
	v.SetDefault("presentation.default_theme", "light")
	v.SetDefault("presentation.price_ceiling", 2000)

	// Telemetry defaults
	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.service_name", "storefront")
	v.SetDefault("telemetry.environment", "development")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.no_color", false)
}
