package dispatchers

import (
	"strings"

	"github.com/footprint-tools/fm/internal/usage"
)

// FlagPrefix marks a token as a flag.
const FlagPrefix = "--"

// ParsedCommand is one tokenized input line.
type ParsedCommand struct {
	Verb  string
	Args  []string
	Flags *ParsedFlags
}

// ParseLine splits a raw input line into a verb, positional arguments and
// flags. Tokens are separated by runs of whitespace; there is no quoting
// or escaping. Empty input yields usage.ErrEmptyInput.
func ParseLine(line string) (ParsedCommand, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ParsedCommand{}, usage.ErrEmptyInput
	}

	args, flags := splitTokens(fields[1:])

	return ParsedCommand{
		Verb:  fields[0],
		Args:  args,
		Flags: NewParsedFlags(flags),
	}, nil
}

// ParseArgs extracts the flags from process arguments (os.Args[1:]).
// Non-flag arguments are ignored.
func ParseArgs(args []string) *ParsedFlags {
	_, flags := splitTokens(args)
	return NewParsedFlags(flags)
}

func splitTokens(tokens []string) (args []string, flags []string) {
	args = []string{}
	for _, tok := range tokens {
		if name, ok := strings.CutPrefix(tok, FlagPrefix); ok {
			flags = append(flags, name)
			continue
		}
		args = append(args, tok)
	}
	return args, flags
}
