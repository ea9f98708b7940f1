package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logging  LoggingConfig
	Draw     DrawConfig
}

type ServerConfig struct {
	Port               string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	IdleTimeout        time.Duration
	ShutdownTimeout    time.Duration
	CORSAllowedOrigins []string
}

type DatabaseConfig struct {
	Path            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type LoggingConfig struct {
	Level      string
	Format     string
	Structured bool
}

type DrawConfig struct {
	// Seed makes every draw reproducible when set. Zero means seed each draw
	// from entropy.
	Seed          uint64
	MaxConcurrent int
	// RevealInterval paces the console's one-by-one reveal of results.
	RevealInterval time.Duration
}

// Load reads configuration from the environment. Values in a .env file in
// the working directory fill in variables that are not already set.
func Load() *Config {
	loadDotEnv(".env")

	return &Config{
		Server: ServerConfig{
			Port:               getEnvStr("PORT", "8080"),
			ReadTimeout:        getEnvDuration("READ_TIMEOUT", 10*time.Second),
			WriteTimeout:       getEnvDuration("WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:        getEnvDuration("IDLE_TIMEOUT", 120*time.Second),
			ShutdownTimeout:    getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
			CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Database: DatabaseConfig{
			Path:            getEnvStr("DB_PATH", "./sorteio.db"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 1),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 1),
			ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Logging: LoggingConfig{
			Level:      getEnvStr("LOG_LEVEL", "info"),
			Format:     getEnvStr("LOG_FORMAT", "json"),
			Structured: getEnvBool("LOG_STRUCTURED", true),
		},
		Draw: DrawConfig{
			Seed:           getEnvUint64("DRAW_SEED", 0),
			MaxConcurrent:  getEnvInt("DRAW_MAX_CONCURRENT", 100),
			RevealInterval: getEnvDuration("DRAW_REVEAL_INTERVAL", 700*time.Millisecond),
		},
	}
}

func loadDotEnv(path string) {
	err := godotenv.Load(path)
	switch {
	case err == nil:
		log.Debug("Loaded environment file", "path", path)
	case errors.Is(err, fs.ErrNotExist):
	default:
		log.Warn("Failed to load environment file", "path", path, "error", err)
	}
}

func getEnvStr(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvUint64(key string, defaultValue uint64) uint64 {
	if value := os.Getenv(key); value != "" {
		if uintValue, err := strconv.ParseUint(value, 10, 64); err == nil {
			return uintValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
