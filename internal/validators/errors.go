package validators

import "errors"

var (
	ErrUnknownValidator = errors.New("unknown validator")

	ErrEmptyValue      = errors.New("value must be non-empty")
	ErrInvalidPort     = errors.New("value must be a port number between 1 and 65535")
	ErrFileNotFound    = errors.New("file not found at path")
	ErrDirNotFound     = errors.New("directory not found at path")
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrValueNotAllowed = errors.New("value not allowed")
)
