package storage

import (
	"context"
	"errors"
	"io"
)

var ErrObjectNotFound = errors.New("object not found")

// Provider is a minimal bucket/key object store. GetObject must return an
// error wrapping ErrObjectNotFound when the key does not exist, and
// PutObject must replace the object as a whole.
type Provider interface {
	CreateBucket(ctx context.Context, bucket string) error

	GetObject(ctx context.Context, bucket, key string) ([]byte, error)

	PutObject(ctx context.Context, bucket, key string, data io.Reader) error
}
