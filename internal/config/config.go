package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Port          string
	DBDriver      string
	DBPath        string
	DatabaseURL   string
	UploadDir     string
	PublicDir     string
	PublicBaseURL string
	MaxUploadMB   int
	LogLevel      string
	LogFormat     string

	// loadErrs holds env values that could not be parsed.
	loadErrs []error
}

// StaticConfig configures the standalone static asset server.
type StaticConfig struct {
	Port      string
	StaticDir string
	LogLevel  string
	LogFormat string
}

func Load() *Config {
	_ = godotenv.Load()

	maxUploadMB, err := getEnvInt("MAX_UPLOAD_MB", 100)

	cfg := &Config{
		Port:          getEnv("PORT", "3000"),
		DBDriver:      getEnv("DB_DRIVER", DriverSQLite),
		DBPath:        getEnv("DB_PATH", "albums.db"),
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		PublicDir:     getEnv("PUBLIC_DIR", "public"),
		PublicBaseURL: getEnv("PUBLIC_BASE_URL", ""),
		MaxUploadMB:   maxUploadMB,
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "json"),
	}
	if err != nil {
		cfg.loadErrs = append(cfg.loadErrs, err)
	}
	return cfg
}

func LoadStatic() *StaticConfig {
	_ = godotenv.Load()

	return &StaticConfig{
		Port:      getEnv("PORT", "10000"),
		StaticDir: getEnv("STATIC_DIR", "public"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}
}

func (c *Config) Validate() error {
	if len(c.loadErrs) > 0 {
		return errors.Join(c.loadErrs...)
	}

	switch c.DBDriver {
	case DriverSQLite:
		if c.DBPath == "" {
			return fmt.Errorf("DB_PATH is required for the sqlite driver")
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}

	if c.MaxUploadMB <= 0 {
		return fmt.Errorf("MAX_UPLOAD_MB must be positive (current: %d)", c.MaxUploadMB)
	}
	if c.UploadDir == "" {
		return fmt.Errorf("UPLOAD_DIR must not be empty")
	}
	return nil
}

// Addr is the listen address for fiber.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func (c *StaticConfig) Addr() string {
	return ":" + c.Port
}

func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) * 1024 * 1024
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback, fmt.Errorf("%s must be an integer (current: %q)", key, v)
	}
	return n, nil
}
