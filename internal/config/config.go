package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret    string `yaml:"secret"`
	Issuer    string `yaml:"issuer"`
	ExpiresIn string `yaml:"expires_in"`
}

type SessionConfig struct {
	MaxActive int    `yaml:"max_active"`
	CacheTTL  string `yaml:"cache_ttl"`
}

type CasbinConfig struct {
	ModelPath string `yaml:"model_path"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	Sessions SessionConfig  `yaml:"sessions"`
	Casbin   CasbinConfig   `yaml:"casbin"`
}

// Config is the resolved runtime configuration.
type Config struct {
	Port              string
	GinMode           string
	DSN               string
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	JWTSecret         string
	JWTIssuer         string
	JWTExpiresIn      time.Duration
	MaxActiveSessions int
	SessionCacheTTL   time.Duration
	CasbinModelPath   string
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml when present and applies environment
// overrides on top. Every setting has a default so the service starts with
// no file at all.
func Load() (*Config, error) {
	path := env("CONFIG_PATH", "config/config.yml")
	file, err := loadConfigFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
		file = &ConfigFile{}
	}

	cfg := &Config{
		Port:              env("PORT", orDefault(strconv.Itoa(file.App.Port), "0", "8080")),
		GinMode:           env("GIN_MODE", orDefault(file.App.GinMode, "", "debug")),
		DSN:               env("DATABASE_DSN", orDefault(file.Database.DSN, "", "host=localhost user=postgres password=postgres dbname=classroom port=5432 sslmode=disable")),
		RedisAddr:         env("REDIS_ADDR", orDefault(file.Redis.Addr, "", "localhost:6379")),
		RedisPassword:     env("REDIS_PASSWORD", file.Redis.Password),
		RedisDB:           file.Redis.DB,
		JWTSecret:         env("JWT_SECRET", orDefault(file.JWT.Secret, "", "dev-secret-change-me")),
		JWTIssuer:         env("JWT_ISSUER", orDefault(file.JWT.Issuer, "", "classroom-mecatronica")),
		CasbinModelPath:   env("CASBIN_MODEL_PATH", orDefault(file.Casbin.ModelPath, "", "config/casbin_model.conf")),
		MaxActiveSessions: file.Sessions.MaxActive,
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
		}
		cfg.RedisDB = n
	}

	expires := env("JWT_EXPIRES_IN", orDefault(file.JWT.ExpiresIn, "", "24h"))
	cfg.JWTExpiresIn, err = time.ParseDuration(expires)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT expiry: %w", err)
	}

	cacheTTL := env("SESSION_CACHE_TTL", orDefault(file.Sessions.CacheTTL, "", "30s"))
	cfg.SessionCacheTTL, err = time.ParseDuration(cacheTTL)
	if err != nil {
		return nil, fmt.Errorf("invalid session cache TTL: %w", err)
	}

	if v := os.Getenv("MAX_ACTIVE_SESSIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_ACTIVE_SESSIONS: %w", err)
		}
		cfg.MaxActiveSessions = n
	}
	if cfg.MaxActiveSessions <= 0 {
		cfg.MaxActiveSessions = 3
	}

	return cfg, nil
}

func orDefault(v, zero, def string) string {
	if v == zero || v == "" {
		return def
	}
	return v
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file ConfigFile
	if err := yaml.Unmarshal(bytes, &file); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}
	return &file, nil
}
