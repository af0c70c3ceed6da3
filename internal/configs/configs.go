/*
Package configs loads the application's configuration from the environment.

A .env file in the working directory is loaded first when present; variables already
set in the process environment take precedence over it.
*/
package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"aaelink/internal/app/storage"
)

// AppConfig contains all configuration parameters required for the application to run.
type AppConfig struct {
	// General Server Settings
	Environment string
	Port        int

	// Security Settings
	AllowedOrigins []string
	JWTSecret      string

	// Upload rate limit per client IP, in requests per second and burst size.
	UploadRate  float64
	UploadBurst int

	// Object storage settings.
	Storage storage.ServiceConfig
}

// IsDevelopment reports whether the service runs with development defaults.
func (c *AppConfig) IsDevelopment() bool {
	return c.Environment == "development"
}

// LoadConfig reads, defaults, and validates the configuration.
func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	return loadFromEnv()
}

func loadFromEnv() (*AppConfig, error) {
	cfg := &AppConfig{}
	var err error

	// --- General Server Settings ---
	cfg.Environment = getEnv("ENVIRONMENT", "development")
	dev := cfg.IsDevelopment()

	if cfg.Port, err = getInt("PORT", 8080); err != nil {
		return nil, err
	}
	if cfg.Port < 1024 || cfg.Port > 65535 {
		return nil, fmt.Errorf("port number %d is outside the recommended range (%d-%d) to avoid privileged ports", cfg.Port, 1024, 65535)
	}

	// --- Security Settings ---
	cfg.AllowedOrigins = []string{}
	for _, origin := range strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		if !dev {
			return nil, fmt.Errorf("JWT_SECRET environment variable is required in %s environment for security", cfg.Environment)
		}
		cfg.JWTSecret = "your_default_insecure_secret_key_change_me"
	}

	if cfg.UploadRate, err = getFloat("UPLOAD_RATE", 1); err != nil {
		return nil, err
	}
	if cfg.UploadBurst, err = getInt("UPLOAD_BURST", 5); err != nil {
		return nil, err
	}
	if cfg.UploadRate <= 0 || cfg.UploadBurst <= 0 {
		return nil, fmt.Errorf("UPLOAD_RATE and UPLOAD_BURST must be positive")
	}

	// --- Object Storage Settings ---
	s := &cfg.Storage
	s.Driver = getEnv("STORAGE_DRIVER", storage.DriverMinio)
	if s.Driver != storage.DriverMinio && s.Driver != storage.DriverS3 {
		return nil, fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", storage.DriverMinio, storage.DriverS3, s.Driver)
	}

	s.Region = getEnv("STORAGE_REGION", storage.DefaultRegion)
	s.BucketName = getEnv("MINIO_BUCKET_NAME", "aaelink-files")

	if s.Port, err = getInt("MINIO_PORT", 9000); err != nil {
		return nil, err
	}
	if s.Port < 1 || s.Port > 65535 {
		return nil, fmt.Errorf("MINIO_PORT %d is not a valid port", s.Port)
	}

	if s.UseSSL, err = getBool("MINIO_USE_SSL", false); err != nil {
		return nil, err
	}

	// Endpoint and credentials have development defaults matching a local MinIO.
	required := []struct {
		key, devDefault string
		dst             *string
	}{
		{"MINIO_ENDPOINT", "localhost", &s.Endpoint},
		{"MINIO_ACCESS_KEY", "minioadmin", &s.AccessKey},
		{"MINIO_SECRET_KEY", "minioadmin", &s.SecretKey},
	}
	for _, r := range required {
		*r.dst = os.Getenv(r.key)
		if *r.dst != "" {
			continue
		}
		if !dev {
			return nil, fmt.Errorf("%s environment variable is required for object storage in %s environment", r.key, cfg.Environment)
		}
		*r.dst = r.devDefault
	}

	if strings.Contains(s.Endpoint, "://") || strings.Contains(s.Endpoint, "/") {
		return nil, fmt.Errorf("MINIO_ENDPOINT must be a bare host name, got %q", s.Endpoint)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return n, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return f, nil
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return b, nil
}
