package dispatchers

// Pseudo operations. They have handlers but no grammar entry, except OpExit
// which is also reachable through the ".exit" verb.
const (
	OpGreeting OperationID = "greeting"
	OpInvalid  OperationID = "invalid-command"
	OpExit     OperationID = "exit"
)

// Navigation
const (
	OpGoUp            OperationID = "go-up"
	OpChangeDirectory OperationID = "change-directory"
	OpListDirectory   OperationID = "list-directory"
)

// File management
const (
	OpShowFileContent OperationID = "show-file-content"
	OpCreateEmptyFile OperationID = "create-empty-file"
	OpRenameFile      OperationID = "rename-file"
	OpCopyFile        OperationID = "copy-file"
	OpMoveFile        OperationID = "move-file"
	OpDeleteFile      OperationID = "delete-file"
)

// Hash, compression
const (
	OpCalculateFileHash OperationID = "calculate-file-hash"
	OpCompressFile      OperationID = "compress-file"
	OpDecompressFile    OperationID = "decompress-file"
)

// OS info
const (
	OpGetEOL             OperationID = "get-eol"
	OpGetCPUs            OperationID = "get-cpus"
	OpGetHomeDir         OperationID = "get-homedir"
	OpGetSystemUserName  OperationID = "get-system-username"
	OpGetCPUArchitecture OperationID = "get-cpu-architecture"
)

// OpShowHelp lists the command catalog.
const OpShowHelp OperationID = "show-help"

// IsPseudo reports whether id is an internal operation that is not
// expected to have a grammar descriptor.
func IsPseudo(id OperationID) bool {
	switch id {
	case OpGreeting, OpInvalid:
		return true
	default:
		return false
	}
}
