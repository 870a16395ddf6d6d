package convert

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies a per-file conversion failure.
type Kind int

const (
	KindInputOpen Kind = iota + 1
	KindFileTooSmall
	KindAllocation
	KindOutputOpen
	KindWrite
)

func (k Kind) String() string {
	switch k {
	case KindInputOpen:
		return "open input failed"
	case KindFileTooSmall:
		return "file too small"
	case KindAllocation:
		return "allocation failed"
	case KindOutputOpen:
		return "open output failed"
	case KindWrite:
		return "write output failed"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Error is returned by Convert. It never aborts a batch.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Path)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Path, e.Err)
}

// Cause lets errors.Cause reach the underlying failure.
func (e *Error) Cause() error { return e.Err }

func newError(kind Kind, path string, err error) *Error {
	return &Error{Kind: kind, Path: path, Err: err}
}

// IsKind reports whether err is a conversion error of the given kind.
func IsKind(err error, kind Kind) bool {
	var cerr *Error
	if !errors.As(err, &cerr) {
		return false
	}
	return cerr.Kind == kind
}
