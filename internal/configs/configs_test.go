package configs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"aaelink/internal/app/storage"
)

var configKeys = []string{
	"ENVIRONMENT", "PORT", "ALLOWED_ORIGINS", "JWT_SECRET", "UPLOAD_RATE", "UPLOAD_BURST",
	"STORAGE_DRIVER", "STORAGE_REGION", "MINIO_ENDPOINT", "MINIO_PORT", "MINIO_USE_SSL",
	"MINIO_ACCESS_KEY", "MINIO_SECRET_KEY", "MINIO_BUCKET_NAME",
}

// clearEnv blanks every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range configKeys {
		t.Setenv(k, "")
	}
}

func TestDevelopmentDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := loadFromEnv()
	if err != nil {
		t.Fatalf("loadFromEnv: %v", err)
	}

	want := storage.ServiceConfig{
		Driver:     storage.DriverMinio,
		Endpoint:   "localhost",
		Port:       9000,
		AccessKey:  "minioadmin",
		SecretKey:  "minioadmin",
		BucketName: "aaelink-files",
		Region:     storage.DefaultRegion,
	}
	if cfg.Storage != want {
		t.Errorf("storage config = %+v, want %+v", cfg.Storage, want)
	}
	if !cfg.IsDevelopment() || cfg.Port != 8080 || cfg.JWTSecret == "" {
		t.Errorf("unexpected server config: %+v", cfg)
	}
	if len(cfg.AllowedOrigins) != 0 {
		t.Errorf("AllowedOrigins = %v", cfg.AllowedOrigins)
	}
}

func TestProductionOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("STORAGE_DRIVER", "s3")
	t.Setenv("MINIO_ENDPOINT", "storage.internal")
	t.Setenv("MINIO_PORT", "443")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("MINIO_ACCESS_KEY", "ak")
	t.Setenv("MINIO_SECRET_KEY", "sk")
	t.Setenv("MINIO_BUCKET_NAME", "files")

	cfg, err := loadFromEnv()
	if err != nil {
		t.Fatalf("loadFromEnv: %v", err)
	}

	if got := strings.Join(cfg.AllowedOrigins, "|"); got != "https://a.example|https://b.example" {
		t.Errorf("AllowedOrigins = %q", got)
	}
	s := cfg.Storage
	if s.Driver != storage.DriverS3 || s.Endpoint != "storage.internal" || s.Port != 443 || !s.UseSSL || s.BucketName != "files" {
		t.Errorf("unexpected storage config: %+v", s)
	}
}

func TestInvalidConfig(t *testing.T) {
	tests := map[string]map[string]string{
		"privileged port":        {"PORT": "80"},
		"non numeric port":       {"PORT": "eighty"},
		"bad ssl flag":           {"MINIO_USE_SSL": "maybe"},
		"bad driver":             {"STORAGE_DRIVER": "ftp"},
		"endpoint with scheme":   {"MINIO_ENDPOINT": "http://localhost"},
		"zero burst":             {"UPLOAD_BURST": "0"},
		"production without jwt": {"ENVIRONMENT": "production"},
		"production without storage credentials": {
			"ENVIRONMENT": "production", "JWT_SECRET": "x", "MINIO_ENDPOINT": "s3.internal",
		},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			if _, err := loadFromEnv(); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadConfigReadsDotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("MINIO_BUCKET_NAME")

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("MINIO_BUCKET_NAME=from-dotenv\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Storage.BucketName != "from-dotenv" {
		t.Errorf("BucketName = %q, want value from .env", cfg.Storage.BucketName)
	}
}
