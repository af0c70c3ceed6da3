package storage

import (
	"context"
	"time"
)

// objectBackend is the SDK-facing seam of the gateway. Implementations return raw SDK
// errors; classification and logging happen in the gateway.
type objectBackend interface {
	BucketExists(ctx context.Context, bucket string) (bool, error)

	// MakeBucket creates bucket in region. Creating a bucket the caller already owns is not an error.
	MakeBucket(ctx context.Context, bucket, region string) error

	PutObject(ctx context.Context, bucket, key string, payload []byte, contentType string) (etag string, err error)
	RemoveObject(ctx context.Context, bucket, key string) error

	PresignGet(ctx context.Context, bucket, key string, expires time.Duration) (string, error)
	PresignPut(ctx context.Context, bucket, key, contentType string, expires time.Duration) (string, error)
}
