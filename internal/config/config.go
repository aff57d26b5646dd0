package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port              string   `mapstructure:"PORT"`
	Env               string   `mapstructure:"ENV"`
	DatabaseURL       string   `mapstructure:"DATABASE_URL"`
	DBMaxConns        int32    `mapstructure:"DB_MAX_CONNS"`
	DBMinConns        int32    `mapstructure:"DB_MIN_CONNS"`
	APIAccessKey      string   `mapstructure:"API_ACCESS_KEY"`
	SourceLanguage    string   `mapstructure:"SOURCE_LANGUAGE"`
	TranslatorURL     string   `mapstructure:"TRANSLATOR_URL"`
	TranslatorAPIKey  string   `mapstructure:"TRANSLATOR_API_KEY"`
	TranslatorTimeout int      `mapstructure:"TRANSLATOR_TIMEOUT_SECONDS"`
	CORSOrigins       []string `mapstructure:"CORS_ORIGINS"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_MIN_CONNS", 5)
	v.SetDefault("SOURCE_LANGUAGE", "en")
	v.SetDefault("TRANSLATOR_TIMEOUT_SECONDS", 30)
	v.SetDefault("CORS_ORIGINS", "*")

	// Bind env vars explicitly so Unmarshal picks them up
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("DATABASE_URL")
	v.BindEnv("DB_MAX_CONNS")
	v.BindEnv("DB_MIN_CONNS")
	v.BindEnv("API_ACCESS_KEY")
	v.BindEnv("SOURCE_LANGUAGE")
	v.BindEnv("TRANSLATOR_URL")
	v.BindEnv("TRANSLATOR_API_KEY")
	v.BindEnv("TRANSLATOR_TIMEOUT_SECONDS")
	v.BindEnv("CORS_ORIGINS")

	// Try reading .env file, but don't fail if missing
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.CORSOrigins == nil {
		origins := v.GetString("CORS_ORIGINS")
		if origins != "" {
			cfg.CORSOrigins = strings.Split(origins, ",")
		}
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// IsProduction returns true when the server is configured for production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Validate checks that the configuration is safe to run. Mutating routes are
// gated by the access key, so production refuses to start without one. The
// translator endpoint is likewise required outside development, where the
// loopback translator stands in for a real provider.
func (c *Config) Validate() error {
	if c.IsProduction() && c.APIAccessKey == "" {
		return fmt.Errorf("API_ACCESS_KEY is required in production; " +
			"POST and PUT routes cannot be exposed unauthenticated")
	}
	if c.IsProduction() && c.TranslatorURL == "" {
		return fmt.Errorf("TRANSLATOR_URL is required in production")
	}
	if c.SourceLanguage == "" {
		return fmt.Errorf("SOURCE_LANGUAGE must not be empty")
	}
	if c.TranslatorTimeout <= 0 {
		return fmt.Errorf("TRANSLATOR_TIMEOUT_SECONDS must be positive, got %d", c.TranslatorTimeout)
	}
	return nil
}
