package actions

import (
	"context"

	"github.com/footprint-tools/fm/internal/dispatchers"
	"github.com/footprint-tools/fm/internal/domain"
)

// Workspace is the session state handlers read. Only navigation
// handlers call SetLocation.
type Workspace interface {
	UserName() string
	Location() string
	SetLocation(path string)
}

// Deps are the collaborators handlers call into.
type Deps struct {
	FS      domain.FileSystem
	OS      domain.OSInfo
	Out     domain.OutputWriter
	Styler  domain.Styler
	Grammar *dispatchers.Grammar
}

// Action is the signature shared by every command handler. Arguments are
// the positional arguments of the command, already checked against the
// grammar's minimum count.
type Action func(ctx context.Context, ws Workspace, args []string, deps Deps) error

// Handlers maps every grammar operation to its handler.
var Handlers = map[dispatchers.OperationID]Action{
	dispatchers.OpGoUp:               GoUp,
	dispatchers.OpChangeDirectory:    ChangeDirectory,
	dispatchers.OpListDirectory:      ListDirectory,
	dispatchers.OpShowFileContent:    ShowFileContent,
	dispatchers.OpCreateEmptyFile:    CreateEmptyFile,
	dispatchers.OpRenameFile:         RenameFile,
	dispatchers.OpCopyFile:           CopyFile,
	dispatchers.OpMoveFile:           MoveFile,
	dispatchers.OpDeleteFile:         DeleteFile,
	dispatchers.OpCalculateFileHash:  CalculateFileHash,
	dispatchers.OpCompressFile:       CompressFile,
	dispatchers.OpDecompressFile:     DecompressFile,
	dispatchers.OpGetEOL:             ShowEOL,
	dispatchers.OpGetCPUs:            ShowCPUs,
	dispatchers.OpGetHomeDir:         ShowHomeDir,
	dispatchers.OpGetSystemUserName:  ShowSystemUserName,
	dispatchers.OpGetCPUArchitecture: ShowArchitecture,
	dispatchers.OpShowHelp:           ShowHelp,
}
