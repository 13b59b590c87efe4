package domain

import (
	"context"
	"io"
)

// FileSystem is the set of file operations the command handlers consume.
// Paths are absolute. Every operation fails with a descriptive error on a
// missing source, an existing destination or a missing destination directory.
type FileSystem interface {
	// ReadFileTo streams the content of path into sink.
	ReadFileTo(ctx context.Context, path string, sink io.Writer) error

	// CreateEmptyFile creates path; it must not exist yet.
	CreateEmptyFile(ctx context.Context, path string) error

	// RenameFile renames path to newName inside the same directory.
	RenameFile(ctx context.Context, path, newName string) error

	// CopyFile copies path into destDir, keeping its base name.
	CopyFile(ctx context.Context, path, destDir string) error

	// MoveFile moves path into destDir, keeping its base name.
	MoveFile(ctx context.Context, path, destDir string) error

	// RemoveFile deletes the file at path.
	RemoveFile(ctx context.Context, path string) error

	// ContentHash returns the hex encoded SHA-256 of the file content.
	ContentHash(ctx context.Context, path string) (string, error)

	// Compress writes a brotli compressed copy of path into destDir.
	Compress(ctx context.Context, path, destDir string) error

	// Decompress restores a brotli compressed file into destDir.
	Decompress(ctx context.Context, path, destDir string) error

	// ListDirectory returns the entries of dir, directories first.
	ListDirectory(ctx context.Context, dir string) ([]DirEntry, error)

	// IsDir reports whether path exists and is a directory.
	IsDir(ctx context.Context, path string) (bool, error)
}

// EntryType is the kind of a directory entry.
type EntryType string

const (
	EntryDirectory EntryType = "directory"
	EntryFile      EntryType = "file"
)

// DirEntry is one row of a directory listing.
type DirEntry struct {
	Name string
	Type EntryType
}

// CPU describes one logical processor.
type CPU struct {
	Model    string
	SpeedGHz float64
}

// CPUInfo is the host processor summary.
type CPUInfo struct {
	Count int
	CPUs  []CPU
}

// OSInfo provides information about the host operating system.
type OSInfo interface {
	// EOL returns the platform line ending.
	EOL() string

	// CPUs returns the logical processor count and per-CPU details.
	CPUs(ctx context.Context) (CPUInfo, error)

	// HomeDir returns the home directory of the invoking user.
	HomeDir() (string, error)

	// SystemUserName returns the operating system account name.
	SystemUserName() (string, error)

	// Architecture returns the CPU architecture the binary was built for.
	Architecture() string
}

// ConfigProvider defines read access to configuration.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// GetAll returns all configuration values.
	GetAll() (map[string]string, error)
}

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// Close closes the logger.
	Close() error
}

// OutputWriter defines output operations.
type OutputWriter interface {
	io.Writer

	// Printf formats and prints to the output.
	Printf(format string, args ...any) (int, error)

	// Println prints a line to the output.
	Println(args ...any) (int, error)

	// Flush writes any buffered output.
	Flush() error
}

// Styler defines text styling operations.
type Styler interface {
	// Enabled returns true if styling is enabled.
	Enabled() bool

	// Success styles text as success.
	Success(text string) string

	// Warning styles text as warning.
	Warning(text string) string

	// Error styles text as error.
	Error(text string) string

	// Info styles text as info.
	Info(text string) string

	// Muted styles text as muted.
	Muted(text string) string

	// Header styles text as header.
	Header(text string) string
}

// Application represents the main application context with all dependencies.
type Application struct {
	FS      FileSystem
	OS      OSInfo
	Logger  Logger
	Output  OutputWriter
	Styler  Styler
	Verbose bool
}
