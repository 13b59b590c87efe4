package actions

import (
	"context"
	"fmt"

	"github.com/footprint-tools/fm/internal/domain"
	"github.com/footprint-tools/fm/internal/paths"
	"github.com/footprint-tools/fm/internal/ui"
)

func GoUp(_ context.Context, ws Workspace, _ []string, _ Deps) error {
	ws.SetLocation(paths.GoUp(ws.Location()))
	return nil
}

func ChangeDirectory(ctx context.Context, ws Workspace, args []string, deps Deps) error {
	if err := requireArgs("cd", args, "path"); err != nil {
		return err
	}

	target := resolve(ws, args[0])
	ok, err := deps.FS.IsDir(ctx, target)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s is not a directory", target)
	}

	ws.SetLocation(target)
	return nil
}

func ListDirectory(ctx context.Context, ws Workspace, _ []string, deps Deps) error {
	entries, err := deps.FS.ListDirectory(ctx, ws.Location())
	if err != nil {
		return err
	}

	_, _ = deps.Out.Println(ui.Table([]string{"Name", "Type"}, entryRows(entries)))
	return nil
}

func entryRows(entries []domain.DirEntry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Name, string(e.Type)})
	}
	return rows
}
