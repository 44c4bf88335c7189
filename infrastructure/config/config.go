package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// Storage
	DatabasePath string

	// Authentication
	JWTSecret  string
	JWTIssuer  string
	JWTExpiry  time.Duration
	BcryptCost int

	// Logging and features
	LogLevel   string
	EnableCORS bool
}

// Load reads configuration from an optional config.yaml and the IDEAHUB_*
// environment, applying defaults for everything not set
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("IDEAHUB")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using defaults and env vars
	}

	cfg := &Config{
		ServerAddress: v.GetString("server.address"),
		Environment:   v.GetString("environment"),
		DatabasePath:  v.GetString("database.path"),
		JWTSecret:     v.GetString("auth.jwt_secret"),
		JWTIssuer:     v.GetString("auth.jwt_issuer"),
		JWTExpiry:     v.GetDuration("auth.jwt_expiry"),
		BcryptCost:    v.GetInt("auth.bcrypt_cost"),
		LogLevel:      v.GetString("log_level"),
		EnableCORS:    v.GetBool("enable_cors"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("environment", "development")
	v.SetDefault("database.path", "ideahub.db")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.jwt_issuer", "ideahub-backend")
	// Matches the 30-day web session lifetime
	v.SetDefault("auth.jwt_expiry", 30*24*time.Hour)
	v.SetDefault("auth.bcrypt_cost", 0)
	v.SetDefault("log_level", "info")
	v.SetDefault("enable_cors", true)
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.IsProduction() && c.JWTSecret == "" {
		return fmt.Errorf("auth.jwt_secret is required in production")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database.path is required")
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
