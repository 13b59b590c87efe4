package usage

import (
	"fmt"
	"strings"
)

// MissingFlag is returned when none of the flag combinations a command
// requires is present. Accepted lists the flags that would have matched.
func MissingFlag(command string, accepted ...string) *Error {
	msg := fmt.Sprintf("fm: '%s' requires a flag", command)
	if len(accepted) > 0 {
		msg += fmt.Sprintf(", one of: --%s", strings.Join(accepted, ", --"))
	}
	return &Error{
		Kind:    ErrMissingFlag,
		Message: msg,
	}
}
