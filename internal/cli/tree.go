package cli

import "github.com/footprint-tools/fm/internal/dispatchers"

// OS info flags, in resolution order.
const (
	FlagEOL          = "EOL"
	FlagCPUs         = "cpus"
	FlagHomeDir      = "homedir"
	FlagUserName     = "username"
	FlagArchitecture = "architecture"
)

var (
	pathArg    = dispatchers.ArgSpec{Name: "path", Description: "File path, absolute or relative"}
	destDirArg = dispatchers.ArgSpec{Name: "dest_dir", Description: "Destination directory"}
)

// BuildGrammar returns the command catalog of the file manager.
func BuildGrammar() *dispatchers.Grammar {
	return dispatchers.MustGrammar(
		// navigation
		dispatchers.Descriptor{
			ID:       dispatchers.OpGoUp,
			Verb:     "up",
			Summary:  "Go to the parent directory",
			Usage:    "up",
			Category: dispatchers.CategoryNavigation,
		},
		dispatchers.Descriptor{
			ID:       dispatchers.OpChangeDirectory,
			Verb:     "cd",
			Summary:  "Change to a directory",
			Usage:    "cd <path>",
			MinArgs:  1,
			Args:     []dispatchers.ArgSpec{pathArg},
			Category: dispatchers.CategoryNavigation,
		},
		dispatchers.Descriptor{
			ID:       dispatchers.OpListDirectory,
			Verb:     "ls",
			Summary:  "List the current directory",
			Usage:    "ls",
			Category: dispatchers.CategoryNavigation,
		},

		// files
		dispatchers.Descriptor{
			ID:       dispatchers.OpShowFileContent,
			Verb:     "cat",
			Summary:  "Print a file",
			Usage:    "cat <path>",
			MinArgs:  1,
			Args:     []dispatchers.ArgSpec{pathArg},
			Category: dispatchers.CategoryFiles,
		},
		dispatchers.Descriptor{
			ID:      dispatchers.OpCreateEmptyFile,
			Verb:    "add",
			Summary: "Create an empty file",
			Usage:   "add <name>",
			MinArgs: 1,
			Args: []dispatchers.ArgSpec{
				{Name: "name", Description: "Name of the new file"},
			},
			Category: dispatchers.CategoryFiles,
		},
		dispatchers.Descriptor{
			ID:      dispatchers.OpRenameFile,
			Verb:    "rn",
			Summary: "Rename a file",
			Usage:   "rn <path> <new_name>",
			MinArgs: 2,
			Args: []dispatchers.ArgSpec{
				pathArg,
				{Name: "new_name", Description: "New file name, without directories"},
			},
			Category: dispatchers.CategoryFiles,
		},
		dispatchers.Descriptor{
			ID:       dispatchers.OpCopyFile,
			Verb:     "cp",
			Summary:  "Copy a file into a directory",
			Usage:    "cp <path> <dest_dir>",
			MinArgs:  2,
			Args:     []dispatchers.ArgSpec{pathArg, destDirArg},
			Category: dispatchers.CategoryFiles,
		},
		dispatchers.Descriptor{
			ID:       dispatchers.OpMoveFile,
			Verb:     "mv",
			Summary:  "Move a file into a directory",
			Usage:    "mv <path> <dest_dir>",
			MinArgs:  2,
			Args:     []dispatchers.ArgSpec{pathArg, destDirArg},
			Category: dispatchers.CategoryFiles,
		},
		dispatchers.Descriptor{
			ID:       dispatchers.OpDeleteFile,
			Verb:     "rm",
			Summary:  "Delete a file",
			Usage:    "rm <path>",
			MinArgs:  1,
			Args:     []dispatchers.ArgSpec{pathArg},
			Category: dispatchers.CategoryFiles,
		},

		// hash
		dispatchers.Descriptor{
			ID:       dispatchers.OpCalculateFileHash,
			Verb:     "hash",
			Summary:  "Print the SHA-256 of a file",
			Usage:    "hash <path>",
			MinArgs:  1,
			Args:     []dispatchers.ArgSpec{pathArg},
			Category: dispatchers.CategoryHash,
		},

		// compression
		dispatchers.Descriptor{
			ID:       dispatchers.OpCompressFile,
			Verb:     "compress",
			Summary:  "Compress a file with brotli",
			Usage:    "compress <path> <dest_dir>",
			MinArgs:  2,
			Args:     []dispatchers.ArgSpec{pathArg, destDirArg},
			Category: dispatchers.CategoryCompression,
		},
		dispatchers.Descriptor{
			ID:       dispatchers.OpDecompressFile,
			Verb:     "decompress",
			Summary:  "Decompress a .br file",
			Usage:    "decompress <path> <dest_dir>",
			MinArgs:  2,
			Args:     []dispatchers.ArgSpec{pathArg, destDirArg},
			Category: dispatchers.CategoryCompression,
		},

		// os
		osDescriptor(dispatchers.OpGetEOL, FlagEOL, "Print the line ending"),
		osDescriptor(dispatchers.OpGetCPUs, FlagCPUs, "Print CPU count and models"),
		osDescriptor(dispatchers.OpGetHomeDir, FlagHomeDir, "Print the home directory"),
		osDescriptor(dispatchers.OpGetSystemUserName, FlagUserName, "Print the system user name"),
		osDescriptor(dispatchers.OpGetCPUArchitecture, FlagArchitecture, "Print the CPU architecture"),

		// session
		dispatchers.Descriptor{
			ID:       dispatchers.OpShowHelp,
			Verb:     "help",
			Summary:  "Show this help",
			Usage:    "help",
			Category: dispatchers.CategorySession,
		},
		dispatchers.Descriptor{
			ID:       dispatchers.OpExit,
			Verb:     ".exit",
			Summary:  "End the session",
			Usage:    ".exit",
			Category: dispatchers.CategorySession,
		},
	)
}

func osDescriptor(id dispatchers.OperationID, flag, summary string) dispatchers.Descriptor {
	return dispatchers.Descriptor{
		ID:       id,
		Verb:     "os",
		Summary:  summary,
		Usage:    "os " + dispatchers.FlagPrefix + flag,
		Flags:    []string{flag},
		Category: dispatchers.CategoryOS,
	}
}
