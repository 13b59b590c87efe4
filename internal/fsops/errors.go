package fsops

import (
	"errors"
	"fmt"
)

// Kind classifies a filesystem operation failure.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindExists
	KindNotDir
	KindIsDir
	KindInvalidName
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "does not exist"
	case KindExists:
		return "already exists"
	case KindNotDir:
		return "is not a directory"
	case KindIsDir:
		return "is a directory"
	case KindInvalidName:
		return "has an invalid name"
	default:
		return "failed"
	}
}

// Error describes a failed filesystem operation on a path.
type Error struct {
	Op   string
	Path string
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of a filesystem error, or KindUnknown.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return KindUnknown
}

func newError(op, path string, kind Kind, err error) *Error {
	return &Error{Op: op, Path: path, Kind: kind, Err: err}
}
