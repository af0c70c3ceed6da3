package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// minioBackend implements objectBackend with minio-go against a MinIO (or any S3-compatible) server.
type minioBackend struct {
	client *minio.Client
}

// newMinioBackend creates the MinIO client. The region is always set so that presigning
// never needs a bucket-location round trip.
func newMinioBackend(cfg ServiceConfig) (*minioBackend, error) {
	client, err := minio.New(cfg.hostPort(), &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.region(),
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}

	return &minioBackend{client: client}, nil
}

func (b *minioBackend) BucketExists(ctx context.Context, bucket string) (bool, error) {
	return b.client.BucketExists(ctx, bucket)
}

func (b *minioBackend) MakeBucket(ctx context.Context, bucket, region string) error {
	err := b.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region})
	if err != nil && minio.ToErrorResponse(err).Code == "BucketAlreadyOwnedByYou" {
		return nil
	}
	return err
}

func (b *minioBackend) PutObject(ctx context.Context, bucket, key string, payload []byte, contentType string) (string, error) {
	info, err := b.client.PutObject(ctx, bucket, key, bytes.NewReader(payload), int64(len(payload)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}
	return info.ETag, nil
}

func (b *minioBackend) RemoveObject(ctx context.Context, bucket, key string) error {
	return b.client.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{})
}

func (b *minioBackend) PresignGet(ctx context.Context, bucket, key string, expires time.Duration) (string, error) {
	u, err := b.client.PresignedGetObject(ctx, bucket, key, expires, nil)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// PresignPut signs Content-Type into the URL, so the uploader must send the same header.
func (b *minioBackend) PresignPut(ctx context.Context, bucket, key, contentType string, expires time.Duration) (string, error) {
	headers := http.Header{}
	if contentType != "" {
		headers.Set("Content-Type", contentType)
	}

	u, err := b.client.PresignHeader(ctx, http.MethodPut, bucket, key, expires, nil, headers)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
