package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config represents the complete application configuration. Values load
// from an optional TOML file and can be overridden per-key by environment
// variables, which is how deployments configure secrets.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Redis    RedisConfig    `toml:"redis"`
	Auth     AuthConfig     `toml:"auth"`
	Reports  ReportsConfig  `toml:"reports"`
}

// ServerConfig contains HTTP listener settings
type ServerConfig struct {
	Port int `toml:"port"`
}

// DatabaseConfig contains PostgreSQL settings
type DatabaseConfig struct {
	URL string `toml:"url"`
}

// RedisConfig contains cache settings
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// AuthConfig contains JWT settings
type AuthConfig struct {
	JWTSecret string `toml:"jwt_secret"`
}

// ReportsConfig contains report caching and refresh settings
type ReportsConfig struct {
	CacheTTLMinutes        int `toml:"cache_ttl_minutes"`
	RefreshIntervalMinutes int `toml:"refresh_interval_minutes"`
}

// Load reads the TOML file at path (skipped when path is empty or missing)
// and applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Server:  ServerConfig{Port: 8080},
		Redis:   RedisConfig{Addr: "localhost:6379"},
		Reports: ReportsConfig{CacheTTLMinutes: 10, RefreshIntervalMinutes: 15},
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		}
	}

	applyEnvOverrides(cfg)

	if cfg.Database.URL == "" {
		return nil, fmt.Errorf("database URL is required (set DATABASE_URL or database.url)")
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.URL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			cfg.Redis.DB = db
		}
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
}
