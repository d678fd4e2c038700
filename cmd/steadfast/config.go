package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/terraincognita07/steadfast/internal/db"
	"github.com/terraincognita07/steadfast/internal/logging"
)

const minSecretKeyLength = 32

var insecureSecretKeys = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
}

type appConfig struct {
	Port         string
	SecretKey    string
	Database     db.Config
	Location     *time.Location
	CookieSecure bool
	Logging      logging.Config
}

// loadDotEnv reads .env from the working directory when present. Variables
// already set in the environment win.
func loadDotEnv() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// loadDatabaseConfig merges DB_* variables with the persistent flags.
func loadDatabaseConfig(cmd *cobra.Command) db.Config {
	config := db.Config{
		Driver:      getEnv("DB_DRIVER", db.DriverSQLite),
		SQLitePath:  getEnv("DB_PATH", filepath.Join("data", "steadfast.db")),
		PostgresDSN: os.Getenv("DATABASE_URL"),
	}
	overrideFromFlag(cmd, "db-driver", &config.Driver)
	overrideFromFlag(cmd, "db-path", &config.SQLitePath)
	overrideFromFlag(cmd, "database-url", &config.PostgresDSN)
	config.Driver = db.NormalizeDriver(config.Driver)
	return config
}

func loadLoggingConfig() logging.Config {
	return logging.Config{
		Level:  os.Getenv("LOG_LEVEL"),
		Format: os.Getenv("LOG_FORMAT"),
		File:   os.Getenv("LOG_FILE"),
	}
}

func loadServeConfig(cmd *cobra.Command) (appConfig, error) {
	secretKey, err := resolveSecretKey()
	if err != nil {
		return appConfig{}, err
	}

	if cmd != nil && cmd.Flags().Changed("port") {
		port, _ := cmd.Flags().GetString("port")
		_ = os.Setenv("PORT", port)
	}
	port, err := resolvePort()
	if err != nil {
		return appConfig{}, err
	}

	cookieSecure, err := resolveBool("COOKIE_SECURE", false)
	if err != nil {
		return appConfig{}, err
	}

	return appConfig{
		Port:         port,
		SecretKey:    secretKey,
		Database:     loadDatabaseConfig(cmd),
		Location:     resolveLocation(getEnv("TZ", "UTC")),
		CookieSecure: cookieSecure,
		Logging:      loadLoggingConfig(),
	}, nil
}

func resolveSecretKey() (string, error) {
	secret := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	if secret == "" {
		return "", errors.New("SECRET_KEY is required")
	}
	if _, insecure := insecureSecretKeys[secret]; insecure {
		return "", errors.New("SECRET_KEY uses a placeholder value; generate one with `steadfast gen-secret`")
	}
	if len(secret) < minSecretKeyLength {
		return "", fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretKeyLength)
	}
	return secret, nil
}

func resolvePort() (string, error) {
	raw := getEnv("PORT", "8080")
	port, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || port < 1 || port > 65535 {
		return "", fmt.Errorf("PORT must be between 1 and 65535, got %q", raw)
	}
	return strconv.Itoa(port), nil
}

func resolveBool(key string, fallback bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback, fmt.Errorf("%s must be a boolean, got %q", key, raw)
	}
	return value, nil
}

// resolveLocation falls back to UTC for unknown zone names.
func resolveLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func overrideFromFlag(cmd *cobra.Command, name string, target *string) {
	if cmd == nil {
		return
	}
	flag := cmd.Flags().Lookup(name)
	if flag == nil || !flag.Changed {
		return
	}
	*target = flag.Value.String()
}
