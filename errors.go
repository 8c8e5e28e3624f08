package aerodex

import "fmt"

// ErrMissingColumn indicates the dataset header lacks a required column.
//
// This is a startup-abort condition: the service cannot run with a
// structurally malformed source.
type ErrMissingColumn struct {
	Column string
}

func (e *ErrMissingColumn) Error() string {
	return fmt.Sprintf("missing required column: %q", e.Column)
}
