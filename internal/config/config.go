package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver   string
	DBDSN      string
	ServerPort string
	GinMode    string
	LogLevel   string

	// CatalogFile optionally replaces the embedded lookup catalog.
	CatalogFile string
	// DefaultEmployeePassword is set on employees created through the admin API.
	DefaultEmployeePassword string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DBDriver:                getEnv("DB_DRIVER", "postgres"),
		DBDSN:                   os.Getenv("DB_DSN"),
		ServerPort:              getEnv("SERVER_PORT", "8080"),
		GinMode:                 getEnv("GIN_MODE", "release"),
		LogLevel:                getEnv("LOG_LEVEL", "info"),
		CatalogFile:             os.Getenv("CATALOG_FILE"),
		DefaultEmployeePassword: getEnv("DEFAULT_EMPLOYEE_PASSWORD", "pass"),
	}
}

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	var problems []string

	switch c.DBDriver {
	case "postgres", "sqlite":
	default:
		problems = append(problems, fmt.Sprintf("invalid DB_DRIVER '%s': must be postgres or sqlite", c.DBDriver))
	}

	if c.DBDSN == "" {
		problems = append(problems, "DB_DSN is not set")
	}

	if port, err := strconv.Atoi(c.ServerPort); err != nil {
		problems = append(problems, fmt.Sprintf("invalid SERVER_PORT '%s': must be a number", c.ServerPort))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid SERVER_PORT %d: must be between 1 and 65535", port))
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		problems = append(problems, fmt.Sprintf("invalid GIN_MODE '%s'", c.GinMode))
	}

	if _, err := ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, err.Error())
	}

	if c.DefaultEmployeePassword == "" {
		problems = append(problems, "DEFAULT_EMPLOYEE_PASSWORD cannot be empty")
	}

	if len(problems) > 0 {
		return errors.New("configuration validation failed: " + strings.Join(problems, "; "))
	}
	return nil
}

// ParseLevel maps LOG_LEVEL to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL '%s'", s)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
