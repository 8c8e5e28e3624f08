package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/hupe1980/aerodex/source"
)

// Source implements source.Source for Amazon S3 objects.
type Source struct {
	client *s3.Client
	bucket string
	key    string
}

// New creates an S3 dataset source for the given bucket and object key.
func New(client *s3.Client, bucket, key string) *Source {
	return &Source{
		client: client,
		bucket: bucket,
		key:    key,
	}
}

// Open downloads the object into memory and returns a reader over it.
// Airport datasets are small enough that buffering the whole object is fine.
func (s *Source) Open(ctx context.Context) (io.ReadCloser, error) {
	buf := manager.NewWriteAtBuffer(nil)
	downloader := manager.NewDownloader(s.client)

	_, err := downloader.Download(ctx, buf, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil, fmt.Errorf("%s: %w", s, source.ErrNotFound)
		}
		var nf *types.NotFound
		if errors.As(err, &nf) {
			return nil, fmt.Errorf("%s: %w", s, source.ErrNotFound)
		}
		return nil, err
	}

	return io.NopCloser(bytes.NewReader(buf.Bytes())), nil
}

func (s *Source) String() string {
	return fmt.Sprintf("s3://%s/%s", s.bucket, s.key)
}
