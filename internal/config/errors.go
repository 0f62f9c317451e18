package config

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceRead matches any *SourceReadError via errors.Is.
	ErrSourceRead = errors.New("configuration source read failure")

	// ErrInvalidDelimiter reports a nesting delimiter containing characters
	// that dotenv keys cannot carry.
	ErrInvalidDelimiter = errors.New("delimiter must consist of underscores and dots")
)

// SourceReadError reports an I/O failure or malformed content in one
// specific configuration source. It is fatal: resolution aborts and no
// partial configuration is produced.
type SourceReadError struct {
	Source string
	Path   string
	Err    error
}

func (e *SourceReadError) Error() string {
	return fmt.Sprintf("error reading %s source (%s): %v", e.Source, e.Path, e.Err)
}

func (e *SourceReadError) Unwrap() error { return e.Err }

func (e *SourceReadError) Is(target error) bool { return target == ErrSourceRead }
