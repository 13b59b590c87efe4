package usage

import "errors"

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrEmptyCommand
	ErrUnknownCommand
	ErrMissingArgument
	ErrMissingFlag
)

func (k ErrorKind) String() string {
	switch k {
	case ErrEmptyCommand:
		return "empty command"
	case ErrUnknownCommand:
		return "unknown command"
	case ErrMissingArgument:
		return "missing argument"
	case ErrMissingFlag:
		return "missing flag"
	default:
		return "unknown"
	}
}

// ErrEmptyInput is returned by the line parser for empty or whitespace-only input.
var ErrEmptyInput = &Error{Kind: ErrEmptyCommand, Message: "empty command"}

// Error represents a user-facing usage error with semantic type information.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is a usage error of the same kind, so that
// errors.Is(err, ErrEmptyInput) works for any empty-input error value.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of a usage error, or ErrUnknown if err is not one.
func KindOf(err error) ErrorKind {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Kind
	}
	return ErrUnknown
}

// Verify Error implements the error interface.
var _ error = (*Error)(nil)
