package source

import (
	"context"
	"fmt"
	"io"
	"os"
)

// ErrNotFound is returned when the dataset object does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// Source is an abstraction for fetching the raw tabular dataset bytes.
//
// A Source is read exactly once, at startup. Implementations do not need
// to support concurrent opens.
type Source interface {
	// Open opens the dataset for reading.
	Open(ctx context.Context) (io.ReadCloser, error)

	// String describes the source for logs and error messages.
	String() string
}

// Local reads the dataset from the local file system.
type Local struct {
	path string
}

// NewLocal creates a Source for a local file path.
func NewLocal(path string) *Local {
	return &Local{path: path}
}

// Open opens the file for reading.
func (s *Local) Open(_ context.Context) (io.ReadCloser, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", s.path, ErrNotFound)
		}
		return nil, err
	}
	return f, nil
}

func (s *Local) String() string {
	return "file://" + s.path
}
