// Package aerodex provides an embedded, read-only lookup engine over a fixed
// in-memory dataset of airport records.
//
// The dataset is loaded once at startup and shared read-only across all
// concurrent requests. Two operations are offered: listing the full dataset
// and case-insensitive substring search over identifier and name, both
// paginated with a hard page ceiling of 50 items.
//
// # Quick Start
//
//	f, _ := os.Open("airports.csv")
//	lk, _ := aerodex.FromCSV(f)
//
//	page := lk.List(nil, nil)
//
//	page, _ = lk.Search("heathrow").Offset(10).Limit(20).Execute(ctx)
//
// Remote datasets:
//
//	src := s3.New(client, "my-bucket", "airports.csv")
//	lk, _ := aerodex.Open(ctx, src)
//
// # Concurrency
//
// A Lookup is immutable after construction, so all methods are safe for
// concurrent use without locking. Search may fan out across CPU cores for
// large datasets; the result order is always the dataset's load order,
// regardless of execution strategy.
//
// # Key Features
//
//   - Case-insensitive substring search over identifier and name
//   - Precomputed lowercase search keys (normalized once at load)
//   - Clamp-never-reject pagination with zero-copy windows
//   - Order-preserving parallel filtering
//   - Pluggable dataset sources (local file, S3, MinIO)
package aerodex
