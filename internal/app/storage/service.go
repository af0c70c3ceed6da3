/*
Package storage provides the object storage gateway used by the AAELink file service.

It wraps an S3-compatible backend (MinIO or any S3 endpoint) behind a narrow interface:
bucket provisioning, content upload with content-type tagging, time-limited signed
download and upload URLs, and object deletion. Backend failures are logged with full
detail here and surfaced to callers as coarse, tagged errors (see Error).
*/
package storage

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"
)

const (
	// DefaultURLDuration is the validity of read URLs and upload URL pairs when the caller gives none.
	DefaultURLDuration = time.Hour

	// ObjectURLDuration is the validity of the download URL returned by UploadFile.
	ObjectURLDuration = 24 * time.Hour

	// DefaultRegion is the fixed region used when the bucket has to be created.
	DefaultRegion = "us-east-1"
)

// Supported values for ServiceConfig.Driver.
const (
	DriverMinio = "minio"
	DriverS3    = "s3"
)

// ServiceConfig holds the configuration required to connect to the storage service.
// It is read once at process start and never mutated afterwards.
type ServiceConfig struct {
	Driver     string
	Endpoint   string
	Port       int
	UseSSL     bool
	AccessKey  string
	SecretKey  string
	BucketName string
	Region     string
}

// hostPort returns the endpoint as host:port, omitting the port when unset.
func (c ServiceConfig) hostPort() string {
	if c.Port == 0 {
		return c.Endpoint
	}
	return net.JoinHostPort(c.Endpoint, strconv.Itoa(c.Port))
}

// baseURL returns the scheme-qualified endpoint, e.g. "http://localhost:9000".
func (c ServiceConfig) baseURL() string {
	scheme := "http"
	if c.UseSSL {
		scheme = "https"
	}
	return scheme + "://" + c.hostPort()
}

func (c ServiceConfig) region() string {
	if c.Region == "" {
		return DefaultRegion
	}
	return c.Region
}

// UploadResult is returned by UploadFile.
type UploadResult struct {
	URL  string `json:"url"`
	ETag string `json:"etag"`
}

// SignedURLPair lets a client upload directly to storage and read the object back.
// Both URLs share the same expiry.
type SignedURLPair struct {
	UploadURL   string `json:"uploadUrl"`
	DownloadURL string `json:"downloadUrl"`
}

// StorageService defines the public interface for the file storage service.
type StorageService interface {
	// EnsureBucket creates the configured bucket if it does not exist. It is idempotent.
	EnsureBucket(ctx context.Context) error

	// UploadFile stores payload under key and returns a download URL valid for ObjectURLDuration.
	UploadFile(ctx context.Context, payload []byte, key string, contentType string) (*UploadResult, error)

	// DeleteFile removes the object stored under key.
	DeleteFile(ctx context.Context, key string) error

	// GetFileURL signs a download URL for key without checking that the object exists.
	// A non-positive expires selects DefaultURLDuration.
	GetFileURL(ctx context.Context, key string, expires time.Duration) (string, error)

	// GenerateUploadURL signs a PUT URL bound to contentType and a matching GET URL.
	// A non-positive expires selects DefaultURLDuration.
	GenerateUploadURL(ctx context.Context, key string, contentType string, expires time.Duration) (*SignedURLPair, error)
}

// NewStorageService is the factory function for StorageService.
// It builds the backend selected by cfg.Driver and provisions the bucket before returning,
// so a nil error means the gateway is ready for object operations.
func NewStorageService(ctx context.Context, cfg ServiceConfig) (StorageService, error) {
	backend, err := newBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}

	g := newGateway(cfg, backend)
	if err := g.EnsureBucket(ctx); err != nil {
		return nil, err
	}

	return g, nil
}

func newBackend(ctx context.Context, cfg ServiceConfig) (objectBackend, error) {
	switch cfg.Driver {
	case DriverMinio, "":
		return newMinioBackend(cfg)
	case DriverS3:
		return newS3Backend(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
