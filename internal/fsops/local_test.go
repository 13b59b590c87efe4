package fsops

import (
	"bytes"
	"context"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/fm/internal/domain"
)

func newTestFS(t *testing.T) (*Local, billy.Filesystem) {
	t.Helper()

	bfs := memfs.New()
	require.NoError(t, bfs.MkdirAll("/home/user/docs", 0755))
	require.NoError(t, bfs.MkdirAll("/home/user/out", 0755))
	require.NoError(t, util.WriteFile(bfs, "/home/user/notes.txt", []byte("hello\n"), 0644))

	return New(bfs), bfs
}

func readFile(t *testing.T, bfs billy.Filesystem, p string) string {
	t.Helper()
	data, err := util.ReadFile(bfs, p)
	require.NoError(t, err)
	return string(data)
}

func exists(bfs billy.Filesystem, p string) bool {
	_, err := bfs.Stat(p)
	return err == nil
}

func TestReadFileTo(t *testing.T) {
	l, _ := newTestFS(t)
	ctx := context.Background()

	var buf bytes.Buffer
	require.NoError(t, l.ReadFileTo(ctx, "/home/user/notes.txt", &buf))
	require.Equal(t, "hello\n", buf.String())

	err := l.ReadFileTo(ctx, "/home/user/missing.txt", &buf)
	require.Error(t, err)
	require.Equal(t, KindNotFound, KindOf(err))

	err = l.ReadFileTo(ctx, "/home/user/docs", &buf)
	require.Equal(t, KindIsDir, KindOf(err))
}

func TestCreateEmptyFile(t *testing.T) {
	l, bfs := newTestFS(t)
	ctx := context.Background()

	require.NoError(t, l.CreateEmptyFile(ctx, "/home/user/new.txt"))
	require.Equal(t, "", readFile(t, bfs, "/home/user/new.txt"))

	err := l.CreateEmptyFile(ctx, "/home/user/new.txt")
	require.Equal(t, KindExists, KindOf(err))

	err = l.CreateEmptyFile(ctx, "/home/user/nowhere/new.txt")
	require.Equal(t, KindNotFound, KindOf(err))
	require.False(t, exists(bfs, "/home/user/nowhere"))
}

func TestRenameFile(t *testing.T) {
	ctx := context.Background()

	t.Run("renames within directory", func(t *testing.T) {
		l, bfs := newTestFS(t)
		require.NoError(t, l.RenameFile(ctx, "/home/user/notes.txt", "renamed.txt"))
		require.False(t, exists(bfs, "/home/user/notes.txt"))
		require.Equal(t, "hello\n", readFile(t, bfs, "/home/user/renamed.txt"))
	})

	t.Run("target exists", func(t *testing.T) {
		l, bfs := newTestFS(t)
		require.NoError(t, util.WriteFile(bfs, "/home/user/other.txt", []byte("x"), 0644))
		err := l.RenameFile(ctx, "/home/user/notes.txt", "other.txt")
		require.Equal(t, KindExists, KindOf(err))
		require.Equal(t, "x", readFile(t, bfs, "/home/user/other.txt"))
	})

	t.Run("source missing", func(t *testing.T) {
		l, _ := newTestFS(t)
		err := l.RenameFile(ctx, "/home/user/missing.txt", "x.txt")
		require.Equal(t, KindNotFound, KindOf(err))
	})

	t.Run("name with separator", func(t *testing.T) {
		l, _ := newTestFS(t)
		err := l.RenameFile(ctx, "/home/user/notes.txt", "docs/x.txt")
		require.Equal(t, KindInvalidName, KindOf(err))
	})
}

func TestCopyFile(t *testing.T) {
	l, bfs := newTestFS(t)
	ctx := context.Background()

	require.NoError(t, l.CopyFile(ctx, "/home/user/notes.txt", "/home/user/docs"))
	require.Equal(t, "hello\n", readFile(t, bfs, "/home/user/docs/notes.txt"))
	require.True(t, exists(bfs, "/home/user/notes.txt"))

	// A second copy must not overwrite the first.
	err := l.CopyFile(ctx, "/home/user/notes.txt", "/home/user/docs")
	require.Equal(t, KindExists, KindOf(err))

	err = l.CopyFile(ctx, "/home/user/notes.txt", "/home/user/missing")
	require.Equal(t, KindNotFound, KindOf(err))

	err = l.CopyFile(ctx, "/home/user/notes.txt", "/home/user/notes.txt")
	require.Error(t, err)
}

func TestMoveFile(t *testing.T) {
	l, bfs := newTestFS(t)
	ctx := context.Background()

	require.NoError(t, l.MoveFile(ctx, "/home/user/notes.txt", "/home/user/docs"))
	require.False(t, exists(bfs, "/home/user/notes.txt"))
	require.Equal(t, "hello\n", readFile(t, bfs, "/home/user/docs/notes.txt"))

	err := l.MoveFile(ctx, "/home/user/notes.txt", "/home/user/out")
	require.Equal(t, KindNotFound, KindOf(err))

	var fe *Error
	require.ErrorAs(t, err, &fe)
	require.Equal(t, "move", fe.Op)
}

func TestMoveFileKeepsSourceWhenTargetExists(t *testing.T) {
	l, bfs := newTestFS(t)
	ctx := context.Background()

	require.NoError(t, util.WriteFile(bfs, "/home/user/docs/notes.txt", []byte("old"), 0644))

	err := l.MoveFile(ctx, "/home/user/notes.txt", "/home/user/docs")
	require.Equal(t, KindExists, KindOf(err))
	require.True(t, exists(bfs, "/home/user/notes.txt"))
	require.Equal(t, "old", readFile(t, bfs, "/home/user/docs/notes.txt"))
}

func TestRemoveFile(t *testing.T) {
	l, bfs := newTestFS(t)
	ctx := context.Background()

	require.NoError(t, l.RemoveFile(ctx, "/home/user/notes.txt"))
	require.False(t, exists(bfs, "/home/user/notes.txt"))

	err := l.RemoveFile(ctx, "/home/user/notes.txt")
	require.Equal(t, KindNotFound, KindOf(err))

	err = l.RemoveFile(ctx, "/home/user/docs")
	require.Equal(t, KindIsDir, KindOf(err))
	require.True(t, exists(bfs, "/home/user/docs"))
}

func TestContentHash(t *testing.T) {
	l, bfs := newTestFS(t)
	ctx := context.Background()

	require.NoError(t, util.WriteFile(bfs, "/home/user/empty.txt", nil, 0644))
	require.NoError(t, util.WriteFile(bfs, "/home/user/abc.txt", []byte("abc"), 0644))

	sum, err := l.ContentHash(ctx, "/home/user/empty.txt")
	require.NoError(t, err)
	require.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", sum)

	sum, err = l.ContentHash(ctx, "/home/user/abc.txt")
	require.NoError(t, err)
	require.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", sum)

	_, err = l.ContentHash(ctx, "/home/user/missing.txt")
	require.Equal(t, KindNotFound, KindOf(err))
}

func TestCompressDecompressRoundTrip(t *testing.T) {
	l, bfs := newTestFS(t)
	ctx := context.Background()

	payload := bytes.Repeat([]byte("file manager payload "), 200)
	require.NoError(t, util.WriteFile(bfs, "/home/user/data.txt", payload, 0644))

	require.NoError(t, l.Compress(ctx, "/home/user/data.txt", "/home/user/out"))

	compressed, err := util.ReadFile(bfs, "/home/user/out/data.txt.br")
	require.NoError(t, err)
	require.Less(t, len(compressed), len(payload))

	plain, err := readBrotli(compressed)
	require.NoError(t, err)
	require.Equal(t, payload, plain)

	require.NoError(t, l.Decompress(ctx, "/home/user/out/data.txt.br", "/home/user/docs"))
	require.Equal(t, string(payload), readFile(t, bfs, "/home/user/docs/data.txt"))
}

func TestCompressTargetExists(t *testing.T) {
	l, bfs := newTestFS(t)
	ctx := context.Background()

	require.NoError(t, util.WriteFile(bfs, "/home/user/out/notes.txt.br", []byte("keep"), 0644))

	err := l.Compress(ctx, "/home/user/notes.txt", "/home/user/out")
	require.Equal(t, KindExists, KindOf(err))
	require.Equal(t, "keep", readFile(t, bfs, "/home/user/out/notes.txt.br"))
}

func TestDecompressName(t *testing.T) {
	ctx := context.Background()

	t.Run("name is cut at first .br", func(t *testing.T) {
		l, bfs := newTestFS(t)
		var buf bytes.Buffer
		bw := brotli.NewWriter(&buf)
		_, err := bw.Write([]byte("x"))
		require.NoError(t, err)
		require.NoError(t, bw.Close())
		require.NoError(t, util.WriteFile(bfs, "/home/user/a.br.br", buf.Bytes(), 0644))

		require.NoError(t, l.Decompress(ctx, "/home/user/a.br.br", "/home/user/out"))
		require.Equal(t, "x", readFile(t, bfs, "/home/user/out/a"))
	})

	t.Run("missing extension", func(t *testing.T) {
		l, _ := newTestFS(t)
		err := l.Decompress(ctx, "/home/user/notes.txt", "/home/user/out")
		require.Equal(t, KindInvalidName, KindOf(err))
	})

	t.Run("corrupt stream leaves no output", func(t *testing.T) {
		l, bfs := newTestFS(t)
		require.NoError(t, util.WriteFile(bfs, "/home/user/bad.txt.br", []byte("not brotli at all"), 0644))

		err := l.Decompress(ctx, "/home/user/bad.txt.br", "/home/user/out")
		require.Error(t, err)
		require.False(t, exists(bfs, "/home/user/out/bad.txt"))
	})
}

func TestListDirectory(t *testing.T) {
	l, bfs := newTestFS(t)
	ctx := context.Background()

	require.NoError(t, util.WriteFile(bfs, "/home/user/a.txt", nil, 0644))
	require.NoError(t, bfs.MkdirAll("/home/user/zeta", 0755))

	entries, err := l.ListDirectory(ctx, "/home/user")
	require.NoError(t, err)
	require.Equal(t, []domain.DirEntry{
		{Name: "docs", Type: domain.EntryDirectory},
		{Name: "out", Type: domain.EntryDirectory},
		{Name: "zeta", Type: domain.EntryDirectory},
		{Name: "a.txt", Type: domain.EntryFile},
		{Name: "notes.txt", Type: domain.EntryFile},
	}, entries)
}

func TestListDirectory_FollowsSymlinks(t *testing.T) {
	l, bfs := newTestFS(t)
	ctx := context.Background()

	require.NoError(t, bfs.Symlink("/home/user/docs", "/home/user/docs-link"))
	require.NoError(t, bfs.Symlink("/home/user/notes.txt", "/home/user/notes-link"))
	require.NoError(t, bfs.Symlink("/home/user/gone", "/home/user/dangling"))

	entries, err := l.ListDirectory(ctx, "/home/user")
	require.NoError(t, err)
	require.Equal(t, []domain.DirEntry{
		{Name: "docs", Type: domain.EntryDirectory},
		{Name: "docs-link", Type: domain.EntryDirectory},
		{Name: "out", Type: domain.EntryDirectory},
		{Name: "dangling", Type: domain.EntryFile},
		{Name: "notes-link", Type: domain.EntryFile},
		{Name: "notes.txt", Type: domain.EntryFile},
	}, entries)

	ok, err := l.IsDir(ctx, "/home/user/docs-link")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestIsDir(t *testing.T) {
	l, _ := newTestFS(t)
	ctx := context.Background()

	ok, err := l.IsDir(ctx, "/home/user/docs")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = l.IsDir(ctx, "/home/user/notes.txt")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = l.IsDir(ctx, "/home/user/missing")
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = l.IsDir(ctx, "/")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestValidName(t *testing.T) {
	require.True(t, validName("a.txt"))
	require.False(t, validName(""))
	require.False(t, validName("."))
	require.False(t, validName(".."))
	require.False(t, validName("a/b"))
	require.False(t, validName(`a\b`))
}

func readBrotli(data []byte) ([]byte, error) {
	var out bytes.Buffer
	_, err := out.ReadFrom(brotli.NewReader(bytes.NewReader(data)))
	return out.Bytes(), err
}
