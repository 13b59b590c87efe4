package dispatchers

import (
	"github.com/footprint-tools/fm/internal/usage"
)

const defaultSuggestionsCount = 3

// Resolution is the outcome of matching a parsed command against the grammar.
// When Valid is false, ID is empty and Err explains the rejection.
type Resolution struct {
	Valid      bool
	ID         OperationID
	Descriptor *Descriptor
	Err        error
}

// Resolve matches cmd against the grammar. The first candidate, in
// declaration order, whose required flags are all present and whose
// minimum argument count is met is selected. Resolve has no side effects.
func Resolve(g *Grammar, cmd ParsedCommand) Resolution {
	candidates := g.Lookup(cmd.Verb)
	if len(candidates) == 0 {
		suggestions := FindSimilarVerbs(cmd.Verb, g, defaultSuggestionsCount)
		return Resolution{Err: usage.UnknownCommand(cmd.Verb, suggestions...)}
	}

	for _, d := range candidates {
		if d.Accepts(cmd) {
			return Resolution{Valid: true, ID: d.ID, Descriptor: d}
		}
	}

	return Resolution{Err: rejection(cmd, candidates)}
}

// rejection explains why no candidate matched. If some candidate's flags
// are satisfied, the arguments were short; otherwise a flag is missing.
func rejection(cmd ParsedCommand, candidates []*Descriptor) error {
	for _, d := range candidates {
		if d.flagsSatisfied(cmd.Flags) {
			return usage.MissingArgument(cmd.Verb, d.missingArg(cmd.Args))
		}
	}

	var accepted []string
	for _, d := range candidates {
		accepted = append(accepted, d.Flags...)
	}
	return usage.MissingFlag(cmd.Verb, accepted...)
}
