package storage

import (
	"context"
	"time"

	"aaelink/internal/pkg/logx"
)

// gateway implements StorageService on top of an objectBackend.
// It holds no mutable state, so one instance serves all concurrent requests.
type gateway struct {
	cfg     ServiceConfig
	backend objectBackend
}

func newGateway(cfg ServiceConfig, backend objectBackend) *gateway {
	return &gateway{cfg: cfg, backend: backend}
}

// fail logs the backend cause and returns the coarse error handed to callers.
func (g *gateway) fail(kind Kind, op, key string, err error) error {
	logx.Error(err, "Object storage operation failed",
		"operation", op,
		"bucket", g.cfg.BucketName,
		"key", key,
	)
	return &Error{Kind: kind, Op: op, Key: key, Err: err}
}

func (g *gateway) EnsureBucket(ctx context.Context) (err error) {
	defer func(start time.Time) { observe(opEnsureBucket, start, err) }(time.Now())

	exists, err := g.backend.BucketExists(ctx, g.cfg.BucketName)
	if err != nil {
		return g.fail(KindInitialization, opEnsureBucket, "", err)
	}
	if exists {
		logx.Debug("Storage bucket already exists", "bucket", g.cfg.BucketName)
		return nil
	}

	region := g.cfg.region()
	if err = g.backend.MakeBucket(ctx, g.cfg.BucketName, region); err != nil {
		return g.fail(KindInitialization, opEnsureBucket, "", err)
	}

	logx.Info("Storage bucket created", "bucket", g.cfg.BucketName, "region", region)
	return nil
}

func (g *gateway) UploadFile(ctx context.Context, payload []byte, key string, contentType string) (res *UploadResult, err error) {
	defer func(start time.Time) { observe(opUploadFile, start, err) }(time.Now())

	etag, err := g.backend.PutObject(ctx, g.cfg.BucketName, key, payload, contentType)
	if err != nil {
		return nil, g.fail(KindUpload, opUploadFile, key, err)
	}
	uploadedBytesTotal.Add(float64(len(payload)))

	url, err := g.backend.PresignGet(ctx, g.cfg.BucketName, key, ObjectURLDuration)
	if err != nil {
		return nil, g.fail(KindUpload, opUploadFile, key, err)
	}

	return &UploadResult{URL: url, ETag: etag}, nil
}

func (g *gateway) DeleteFile(ctx context.Context, key string) (err error) {
	defer func(start time.Time) { observe(opDeleteFile, start, err) }(time.Now())

	if err = g.backend.RemoveObject(ctx, g.cfg.BucketName, key); err != nil {
		return g.fail(KindDeletion, opDeleteFile, key, err)
	}
	return nil
}

func (g *gateway) GetFileURL(ctx context.Context, key string, expires time.Duration) (url string, err error) {
	defer func(start time.Time) { observe(opGetFileURL, start, err) }(time.Now())

	if expires <= 0 {
		expires = DefaultURLDuration
	}

	url, err = g.backend.PresignGet(ctx, g.cfg.BucketName, key, expires)
	if err != nil {
		return "", g.fail(KindURLGeneration, opGetFileURL, key, err)
	}
	return url, nil
}

func (g *gateway) GenerateUploadURL(ctx context.Context, key string, contentType string, expires time.Duration) (pair *SignedURLPair, err error) {
	defer func(start time.Time) { observe(opGenerateUploadURL, start, err) }(time.Now())

	if expires <= 0 {
		expires = DefaultURLDuration
	}

	uploadURL, err := g.backend.PresignPut(ctx, g.cfg.BucketName, key, contentType, expires)
	if err != nil {
		return nil, g.fail(KindURLGeneration, opGenerateUploadURL, key, err)
	}

	downloadURL, err := g.backend.PresignGet(ctx, g.cfg.BucketName, key, expires)
	if err != nil {
		return nil, g.fail(KindURLGeneration, opGenerateUploadURL, key, err)
	}

	return &SignedURLPair{UploadURL: uploadURL, DownloadURL: downloadURL}, nil
}
