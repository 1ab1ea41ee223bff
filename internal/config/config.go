package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"starblog/internal/pkg/validator"
)

const (
	defaultPort            = "3000"
	defaultAppEnv          = "dev"
	defaultLogLevel        = "info"
	defaultShutdownTimeout = 5 * time.Second
)

type Config struct {
	AppEnv             string        `koanf:"app_env" validate:"oneof=dev test prod"`
	DatabaseURL        string        `koanf:"database_url"`
	Port               string        `koanf:"port" validate:"required,numeric"`
	LogLevel           string        `koanf:"log_level" validate:"oneof=trace debug info warn error"`
	CORSAllowedOrigins []string      `koanf:"cors_allowed_origins" validate:"min=1"`
	ShutdownTimeout    time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
	DBAutoMigrate      bool          `koanf:"db_auto_migrate"`
}

// known lists the environment variables Load reads; everything else is ignored.
var known = map[string]bool{
	"APP_ENV":              true,
	"DATABASE_URL":         true,
	"PORT":                 true,
	"LOG_LEVEL":            true,
	"CORS_ALLOWED_ORIGINS": true,
	"SHUTDOWN_TIMEOUT":     true,
	"DB_AUTO_MIGRATE":      true,
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	k := koanf.New(".")
	// Unknown and empty variables are skipped so defaults apply to them.
	err := k.Load(env.ProviderWithValue("", ".", func(key, value string) (string, interface{}) {
		if !known[key] || strings.TrimSpace(value) == "" {
			return "", nil
		}
		if key == "CORS_ALLOWED_ORIGINS" {
			return strings.ToLower(key), strings.Split(value, ",")
		}
		return strings.ToLower(key), value
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{DBAutoMigrate: true}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	applyDefaults(cfg)

	if err := validator.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))
	if cfg.AppEnv == "" {
		cfg.AppEnv = defaultAppEnv
	}
	cfg.Port = strings.TrimSpace(cfg.Port)
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	origins := cfg.CORSAllowedOrigins[:0]
	for _, o := range cfg.CORSAllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	cfg.CORSAllowedOrigins = origins
}

func (c *Config) IsProd() bool {
	return c.AppEnv == "prod"
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
