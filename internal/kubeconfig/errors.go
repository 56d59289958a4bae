package kubeconfig

import (
	"errors"
	"fmt"
)

// ErrNoClusters is returned when the combined document holds no cluster. The
// destination file is never written in that case.
var ErrNoClusters = errors.New("no clusters found in config files")

// ParseError reports a source file that is not a valid kubeconfig document.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError reports whether err, or any error it wraps, is a *ParseError.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}
