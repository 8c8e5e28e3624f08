package minio

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"

	"github.com/hupe1980/aerodex/source"
)

// Source implements source.Source for MinIO and S3-compatible storage.
type Source struct {
	client *minio.Client
	bucket string
	key    string
}

// New creates a MinIO dataset source for the given bucket and object key.
func New(client *minio.Client, bucket, key string) *Source {
	return &Source{
		client: client,
		bucket: bucket,
		key:    key,
	}
}

// Open opens the object for reading.
func (s *Source) Open(ctx context.Context) (io.ReadCloser, error) {
	// Stat first so a missing object surfaces as ErrNotFound instead of a
	// read error on the first byte.
	_, err := s.client.StatObject(ctx, s.bucket, s.key, minio.StatObjectOptions{})
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.Code == "NotFound" {
			return nil, fmt.Errorf("%s: %w", s, source.ErrNotFound)
		}
		return nil, err
	}

	obj, err := s.client.GetObject(ctx, s.bucket, s.key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	return obj, nil
}

func (s *Source) String() string {
	return fmt.Sprintf("minio://%s/%s", s.bucket, s.key)
}
