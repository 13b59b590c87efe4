package dispatchers

type CommandCategory int

const (
	CategoryUncategorized CommandCategory = iota
	CategoryNavigation                    // up, cd, ls
	CategoryFiles                         // cat, add, rn, cp, mv, rm
	CategoryHash                          // hash
	CategoryCompression                   // compress, decompress
	CategoryOS                            // os --<flag>
	CategorySession                       // help, .exit
)

func (c CommandCategory) String() string {
	switch c {
	case CategoryNavigation:
		return "navigation"
	case CategoryFiles:
		return "work with files"
	case CategoryHash:
		return "hash calculation"
	case CategoryCompression:
		return "compression"
	case CategoryOS:
		return "operating system info"
	case CategorySession:
		return "session"
	default:
		return "other commands"
	}
}

var categoryOrder = []CommandCategory{
	CategoryNavigation,
	CategoryFiles,
	CategoryHash,
	CategoryCompression,
	CategoryOS,
	CategorySession,
	CategoryUncategorized,
}

// CategoryOrder returns the display order for categories.
func CategoryOrder() []CommandCategory {
	return categoryOrder
}
