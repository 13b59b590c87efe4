package usage

import (
	"fmt"
	"strings"
)

// UnknownCommand is returned when a verb is not part of the grammar.
// Suggestions, if any, are appended as a "did you mean" hint.
func UnknownCommand(command string, suggestions ...string) *Error {
	msg := fmt.Sprintf("fm: '%s' is not a command. See 'help'.", command)
	if len(suggestions) > 0 {
		msg += fmt.Sprintf(" Did you mean: %s?", strings.Join(suggestions, ", "))
	}
	return &Error{
		Kind:    ErrUnknownCommand,
		Message: msg,
	}
}
