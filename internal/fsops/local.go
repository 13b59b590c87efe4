// Package fsops implements the file operations used by the command
// handlers on top of a go-billy filesystem. Production code uses the OS
// filesystem rooted at "/", tests use an in-memory one.
package fsops

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/footprint-tools/fm/internal/domain"
)

// CompressedExt is appended to compressed files.
const CompressedExt = ".br"

const fileMode = 0644

// Local implements domain.FileSystem.
type Local struct {
	fs billy.Filesystem
}

// New wraps a billy filesystem. Paths handed to it must be absolute.
func New(bfs billy.Filesystem) *Local {
	return &Local{fs: bfs}
}

// NewOS returns a Local backed by the operating system filesystem.
func NewOS() *Local {
	return New(osfs.New("/"))
}

// ReadFileTo streams the file at p into sink.
func (l *Local) ReadFileTo(_ context.Context, p string, sink io.Writer) error {
	const op = "read"

	if err := l.requireFile(op, p); err != nil {
		return err
	}

	f, err := l.fs.Open(p)
	if err != nil {
		return newError(op, p, KindUnknown, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := io.Copy(sink, f); err != nil {
		return newError(op, p, KindUnknown, err)
	}
	return nil
}

// CreateEmptyFile creates p. Its directory must exist and p must not.
func (l *Local) CreateEmptyFile(ctx context.Context, p string) error {
	const op = "create"

	err := l.precheck(ctx,
		func() error { return l.requireDir(op, filepath.Dir(p)) },
		func() error { return l.requireAbsent(op, p) },
	)
	if err != nil {
		return err
	}

	f, err := l.fs.OpenFile(p, os.O_CREATE|os.O_EXCL|os.O_WRONLY, fileMode)
	if err != nil {
		return newError(op, p, classify(err), err)
	}
	if err := f.Close(); err != nil {
		return newError(op, p, KindUnknown, err)
	}
	return nil
}

// RenameFile renames p to newName within the same directory.
func (l *Local) RenameFile(ctx context.Context, p, newName string) error {
	const op = "rename"

	if !validName(newName) {
		return newError(op, newName, KindInvalidName, nil)
	}
	target := filepath.Join(filepath.Dir(p), newName)

	err := l.precheck(ctx,
		func() error { return l.requireFile(op, p) },
		func() error { return l.requireAbsent(op, target) },
	)
	if err != nil {
		return err
	}

	if err := l.fs.Rename(p, target); err != nil {
		return newError(op, p, classify(err), err)
	}
	return nil
}

// CopyFile copies p into destDir under the same base name.
func (l *Local) CopyFile(ctx context.Context, p, destDir string) error {
	const op = "copy"

	target := filepath.Join(destDir, filepath.Base(p))
	if err := l.precheckTransfer(ctx, op, p, destDir, target); err != nil {
		return err
	}

	return l.pipe(op, p, target, func(dst io.Writer, src io.Reader) error {
		_, err := io.Copy(dst, src)
		return err
	})
}

// MoveFile copies p into destDir and removes the original.
func (l *Local) MoveFile(ctx context.Context, p, destDir string) error {
	if err := l.CopyFile(ctx, p, destDir); err != nil {
		var fe *Error
		if errors.As(err, &fe) {
			fe.Op = "move"
		}
		return err
	}

	if err := l.fs.Remove(p); err != nil {
		return newError("move", p, classify(err), err)
	}
	return nil
}

// RemoveFile deletes the file at p. Directories are refused.
func (l *Local) RemoveFile(_ context.Context, p string) error {
	const op = "remove"

	if err := l.requireFile(op, p); err != nil {
		return err
	}
	if err := l.fs.Remove(p); err != nil {
		return newError(op, p, classify(err), err)
	}
	return nil
}

// ContentHash returns the hex encoded SHA-256 digest of the file at p.
func (l *Local) ContentHash(_ context.Context, p string) (string, error) {
	const op = "hash"

	if err := l.requireFile(op, p); err != nil {
		return "", err
	}

	f, err := l.fs.Open(p)
	if err != nil {
		return "", newError(op, p, classify(err), err)
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", newError(op, p, KindUnknown, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// Compress writes a brotli stream of p to destDir/<base>.br.
func (l *Local) Compress(ctx context.Context, p, destDir string) error {
	const op = "compress"

	target := filepath.Join(destDir, filepath.Base(p)+CompressedExt)
	if err := l.precheckTransfer(ctx, op, p, destDir, target); err != nil {
		return err
	}

	return l.pipe(op, p, target, func(dst io.Writer, src io.Reader) error {
		bw := brotli.NewWriterLevel(dst, brotli.BestCompression)
		if _, err := io.Copy(bw, src); err != nil {
			_ = bw.Close()
			return err
		}
		return bw.Close()
	})
}

// Decompress restores a brotli file into destDir. The output name is the
// source name up to its first ".br".
func (l *Local) Decompress(ctx context.Context, p, destDir string) error {
	const op = "decompress"

	name, _, found := strings.Cut(filepath.Base(p), CompressedExt)
	if !found || name == "" {
		return newError(op, p, KindInvalidName, nil)
	}

	target := filepath.Join(destDir, name)
	if err := l.precheckTransfer(ctx, op, p, destDir, target); err != nil {
		return err
	}

	return l.pipe(op, p, target, func(dst io.Writer, src io.Reader) error {
		_, err := io.Copy(dst, brotli.NewReader(src))
		return err
	})
}

// ListDirectory returns the entries of dir: directories first, then
// files, each group sorted by name.
func (l *Local) ListDirectory(_ context.Context, dir string) ([]domain.DirEntry, error) {
	const op = "list"

	infos, err := l.fs.ReadDir(dir)
	if err != nil {
		return nil, newError(op, dir, classify(err), err)
	}

	entries := make([]domain.DirEntry, 0, len(infos))
	for _, info := range infos {
		typ := domain.EntryFile
		if l.entryIsDir(dir, info) {
			typ = domain.EntryDirectory
		}
		entries = append(entries, domain.DirEntry{Name: info.Name(), Type: typ})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Type != entries[j].Type {
			return entries[i].Type == domain.EntryDirectory
		}
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}

// entryIsDir follows symlinks so a link to a directory lists as one.
// Dangling links list as files.
func (l *Local) entryIsDir(dir string, info fs.FileInfo) bool {
	if info.Mode()&fs.ModeSymlink == 0 {
		return info.IsDir()
	}
	target, err := l.fs.Stat(filepath.Join(dir, info.Name()))
	return err == nil && target.IsDir()
}

// IsDir reports whether p exists and is a directory.
func (l *Local) IsDir(_ context.Context, p string) (bool, error) {
	info, err := l.fs.Stat(p)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, newError("stat", p, classify(err), err)
	}
	return info.IsDir(), nil
}

// pipe streams src into a newly created dst through fn. The target is
// created exclusively and removed again if anything fails.
func (l *Local) pipe(op, src, dst string, fn func(dst io.Writer, src io.Reader) error) (err error) {
	in, err := l.fs.Open(src)
	if err != nil {
		return newError(op, src, classify(err), err)
	}
	defer func() { _ = in.Close() }()

	out, err := l.fs.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, fileMode)
	if err != nil {
		return newError(op, dst, classify(err), err)
	}

	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = newError(op, dst, KindUnknown, cerr)
		}
		if err != nil {
			_ = l.fs.Remove(dst)
		}
	}()

	if ferr := fn(out, in); ferr != nil {
		return newError(op, src, KindUnknown, ferr)
	}
	return nil
}

// validName accepts a bare file name: no separators, not "." or "..".
func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`) && path.Base(name) == name
}

var _ domain.FileSystem = (*Local)(nil)
