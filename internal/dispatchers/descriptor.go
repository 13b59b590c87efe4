package dispatchers

// OperationID uniquely names one concrete supported operation.
// It is the dispatch key and is never derived from user input at runtime.
type OperationID string

// ArgSpec documents a positional argument of a command.
type ArgSpec struct {
	Name        string
	Description string
}

// Descriptor describes what a syntactically valid command looks like.
// Several descriptors may share a Verb; they are then told apart by
// Flags and MinArgs.
type Descriptor struct {
	ID       OperationID
	Verb     string
	Summary  string
	Usage    string
	MinArgs  int      // 0 means no minimum
	Flags    []string // every flag listed must be present
	Args     []ArgSpec
	Category CommandCategory
}

// Accepts reports whether a parsed command satisfies the descriptor's
// required flags and minimum argument count. Extra arguments and flags
// are tolerated.
func (d *Descriptor) Accepts(cmd ParsedCommand) bool {
	return d.flagsSatisfied(cmd.Flags) && d.argsSatisfied(cmd.Args)
}

func (d *Descriptor) flagsSatisfied(flags *ParsedFlags) bool {
	for _, f := range d.Flags {
		if !flags.Has(f) {
			return false
		}
	}
	return true
}

func (d *Descriptor) argsSatisfied(args []string) bool {
	return d.MinArgs == 0 || len(args) >= d.MinArgs
}

// missingArg names the first positional argument the command lacks.
func (d *Descriptor) missingArg(args []string) string {
	if len(args) < len(d.Args) {
		return d.Args[len(args)].Name
	}
	return "argument"
}
