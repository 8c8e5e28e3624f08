// Package s3 provides an S3 implementation of the source.Source interface.
//
// # Usage
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	src := s3.New(awss3.NewFromConfig(cfg), "my-bucket", "airports.csv")
//
//	lk, err := aerodex.Open(ctx, src)
//
// The object is downloaded in full at startup via the parallel transfer
// manager; nothing is fetched again for the lifetime of the process.
package s3
