package actions

import (
	"context"
	"io"
)

func ShowFileContent(ctx context.Context, ws Workspace, args []string, deps Deps) error {
	if err := requireArgs("cat", args, "path"); err != nil {
		return err
	}

	tw := &tailWriter{w: deps.Out}
	if err := deps.FS.ReadFileTo(ctx, resolve(ws, args[0]), tw); err != nil {
		return err
	}

	// Keep the location line on its own line.
	if tw.n > 0 && tw.last != '\n' {
		_, _ = io.WriteString(deps.Out, deps.OS.EOL())
	}
	return nil
}

func CreateEmptyFile(ctx context.Context, ws Workspace, args []string, deps Deps) error {
	if err := requireArgs("add", args, "name"); err != nil {
		return err
	}
	return deps.FS.CreateEmptyFile(ctx, resolve(ws, args[0]))
}

func RenameFile(ctx context.Context, ws Workspace, args []string, deps Deps) error {
	if err := requireArgs("rn", args, "path", "new_name"); err != nil {
		return err
	}
	return deps.FS.RenameFile(ctx, resolve(ws, args[0]), args[1])
}

func CopyFile(ctx context.Context, ws Workspace, args []string, deps Deps) error {
	if err := requireArgs("cp", args, "path", "dest_dir"); err != nil {
		return err
	}
	return deps.FS.CopyFile(ctx, resolve(ws, args[0]), resolve(ws, args[1]))
}

func MoveFile(ctx context.Context, ws Workspace, args []string, deps Deps) error {
	if err := requireArgs("mv", args, "path", "dest_dir"); err != nil {
		return err
	}
	return deps.FS.MoveFile(ctx, resolve(ws, args[0]), resolve(ws, args[1]))
}

func DeleteFile(ctx context.Context, ws Workspace, args []string, deps Deps) error {
	if err := requireArgs("rm", args, "path"); err != nil {
		return err
	}
	return deps.FS.RemoveFile(ctx, resolve(ws, args[0]))
}

// tailWriter remembers the last byte written through it.
type tailWriter struct {
	w    io.Writer
	n    int64
	last byte
}

func (t *tailWriter) Write(p []byte) (int, error) {
	n, err := t.w.Write(p)
	if n > 0 {
		t.n += int64(n)
		t.last = p[n-1]
	}
	return n, err
}
