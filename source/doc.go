// Package source provides the dataset source abstraction for aerodex.
//
// Source is the interface for fetching the raw tabular dataset bytes at
// startup. The dataset is read exactly once per process lifetime.
//
// # Built-in Implementations
//
//   - Local: local filesystem path
//   - s3.Source: Amazon S3 object
//   - minio.Source: MinIO and other S3-compatible object storage
//
// # Custom Implementations
//
// Implement the Source interface to support custom backends:
//
//	type Source interface {
//	    Open(ctx context.Context) (io.ReadCloser, error)
//	    String() string
//	}
//
// Missing objects should surface as an error satisfying
// errors.Is(err, source.ErrNotFound) so callers can distinguish a missing
// dataset from a transport failure.
package source
