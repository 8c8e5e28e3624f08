// Package testutil provides testing fixtures for aerodex.
//
// This package is intended for use in tests and benchmarks only. It provides
// the canonical airport fixture, a CSV document builder, and a deterministic
// synthetic dataset generator for parallel-path tests.
package testutil
