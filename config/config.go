package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMongo  = "mongo"
	DriverMemory = "memory"
)

type Config struct {
	Server ServerConfig
	Store  StoreConfig
	Cache  CacheConfig
	Auth   AuthConfig
}

type ServerConfig struct {
	Port        string
	CORSOrigins string
	StaticDir   string
}

type StoreConfig struct {
	Driver    string
	URI       string
	Database  string
	OpTimeout time.Duration
}

type CacheConfig struct {
	RedisURL string
	TTL      time.Duration
}

type AuthConfig struct {
	SigningKey   string
	TokenTTL     time.Duration
	RequireToken bool
}

func (c CacheConfig) Enabled() bool {
	return c.RedisURL != ""
}

// Load reads an optional .env file and then builds the config from the
// process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("cannot read .env file: %v", err)
	}

	cfg := FromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func FromEnv() *Config {
	return &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "3000"),
			CORSOrigins: getEnv("CORS_ORIGINS", "*"),
			StaticDir:   getEnv("STATIC_DIR", ""),
		},
		Store: StoreConfig{
			Driver:    strings.ToLower(getEnv("STORE_DRIVER", DriverMongo)),
			URI:       getEnv("MONGODB_CONNSTRING", "mongodb://localhost:27017"),
			Database:  getEnv("MONGODB_DATABASE", "tourismApp"),
			OpTimeout: getDuration("DB_TIMEOUT", 5*time.Second),
		},
		Cache: CacheConfig{
			RedisURL: getEnv("REDIS_URL", ""),
			TTL:      getDuration("CACHE_TTL", time.Minute),
		},
		Auth: AuthConfig{
			SigningKey:   getEnv("SIGN", ""),
			TokenTTL:     getDuration("TOKEN_TTL", 8*time.Hour),
			RequireToken: getBool("REQUIRE_TOKEN", false),
		},
	}
}

func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverMongo, DriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	if c.Auth.RequireToken && c.Auth.SigningKey == "" {
		return fmt.Errorf("REQUIRE_TOKEN is set but SIGN is empty")
	}
	if c.Store.OpTimeout <= 0 {
		return fmt.Errorf("DB_TIMEOUT must be positive")
	}
	return nil
}

func GetSecret(key string) (string, error) {
	val, exist := os.LookupEnv(key)
	if exist {
		return val, nil
	}
	return "", fmt.Errorf("no env variable with key %v", key)
}

func getEnv(key, fallback string) string {
	if value, err := GetSecret(key); err == nil {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
