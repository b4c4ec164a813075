package manifest

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidJSON   = errors.New("invalid JSON")
	ErrInvalidBucket = errors.New("invalid dependency field")
)

// ManifestReadError is fatal for a run. It covers a missing or unreadable file
// as well as content that cannot be parsed.
type ManifestReadError struct {
	Path string
	Err  error
}

func (e *ManifestReadError) Error() string {
	return fmt.Sprintf("failed to read manifest %s: %v", e.Path, e.Err)
}

func (e *ManifestReadError) Unwrap() error {
	return e.Err
}
