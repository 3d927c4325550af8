package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/spf13/viper"
)

// DefaultJWTSecret is only acceptable outside production.
const DefaultJWTSecret = "change-me-in-production"

// DefaultFormTimezone is the zone report dates are printed in.
const DefaultFormTimezone = "Europe/Berlin"

// Default ICD-API endpoints (WHO ICD-10 release, German).
const (
	DefaultICDTokenURL  = "https://icdaccessmanagement.who.int/connect/token"
	DefaultICDSearchURL = "https://id.who.int/icd/release/10/2019/search"
)

type Config struct {
	Port             string        `mapstructure:"PORT"`
	Env              string        `mapstructure:"ENV"`
	LogLevel         string        `mapstructure:"LOG_LEVEL"`
	DatabaseURL      string        `mapstructure:"DATABASE_URL"`
	DBMaxConns       int32         `mapstructure:"DB_MAX_CONNS"`
	DBMinConns       int32         `mapstructure:"DB_MIN_CONNS"`
	JWTSecret        string        `mapstructure:"JWT_SECRET"`
	JWTIssuer        string        `mapstructure:"JWT_ISSUER"`
	JWTExpireMinutes int           `mapstructure:"JWT_EXPIRE_MINUTES"`
	CORSOrigins      []string      `mapstructure:"CORS_ORIGINS"`
	RateLimitRPS     float64       `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst   int           `mapstructure:"RATE_LIMIT_BURST"`
	RequestTimeout   time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	ICDClientID      string        `mapstructure:"ICD_CLIENT_ID"`
	ICDClientSecret  string        `mapstructure:"ICD_CLIENT_SECRET"`
	ICDTokenURL      string        `mapstructure:"ICD_TOKEN_URL"`
	ICDSearchURL     string        `mapstructure:"ICD_SEARCH_URL"`
	ICDLanguage      string        `mapstructure:"ICD_LANGUAGE"`
	FormTimezone     string        `mapstructure:"FORM_TIMEZONE"`
}

var keys = []string{
	"PORT", "ENV", "LOG_LEVEL",
	"DATABASE_URL", "DB_MAX_CONNS", "DB_MIN_CONNS",
	"JWT_SECRET", "JWT_ISSUER", "JWT_EXPIRE_MINUTES",
	"CORS_ORIGINS", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "REQUEST_TIMEOUT",
	"ICD_CLIENT_ID", "ICD_CLIENT_SECRET", "ICD_TOKEN_URL", "ICD_SEARCH_URL", "ICD_LANGUAGE",
	"FORM_TIMEZONE",
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("JWT_SECRET", DefaultJWTSecret)
	v.SetDefault("JWT_ISSUER", "dabform")
	v.SetDefault("JWT_EXPIRE_MINUTES", 1440)
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT_RPS", 20)
	v.SetDefault("RATE_LIMIT_BURST", 40)
	v.SetDefault("REQUEST_TIMEOUT", "30s")
	v.SetDefault("ICD_TOKEN_URL", DefaultICDTokenURL)
	v.SetDefault("ICD_SEARCH_URL", DefaultICDSearchURL)
	v.SetDefault("ICD_LANGUAGE", "de")
	v.SetDefault("FORM_TIMEZONE", DefaultFormTimezone)

	// Bind explicitly so Unmarshal sees env-only keys.
	for _, k := range keys {
		v.BindEnv(k)
	}

	// .env is optional
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if origins := v.GetString("CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = splitList(origins)
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// TokenTTL is the lifetime of issued access tokens.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTExpireMinutes) * time.Minute
}

// ICDEnabled reports whether diagnosis lookup credentials are configured.
func (c *Config) ICDEnabled() bool {
	return c.ICDClientID != "" && c.ICDClientSecret != ""
}

// Location resolves FormTimezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.FormTimezone)
	if err != nil {
		return nil, fmt.Errorf("FORM_TIMEZONE %q: %w", c.FormTimezone, err)
	}
	return loc, nil
}

// Validate checks that the configuration is safe to run. Production refuses
// the default JWT secret and any secret shorter than 32 bytes.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must not be empty")
	}
	if c.IsProduction() {
		if c.JWTSecret == DefaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be changed from the default in production")
		}
		if len(c.JWTSecret) < 32 {
			return fmt.Errorf("JWT_SECRET must be at least 32 bytes in production, got %d", len(c.JWTSecret))
		}
	}
	if c.JWTExpireMinutes <= 0 {
		return fmt.Errorf("JWT_EXPIRE_MINUTES must be positive, got %d", c.JWTExpireMinutes)
	}
	if c.DBMinConns > c.DBMaxConns {
		return fmt.Errorf("DB_MIN_CONNS (%d) exceeds DB_MAX_CONNS (%d)", c.DBMinConns, c.DBMaxConns)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must not be negative")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}
