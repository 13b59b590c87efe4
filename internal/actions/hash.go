package actions

import "context"

func CalculateFileHash(ctx context.Context, ws Workspace, args []string, deps Deps) error {
	if err := requireArgs("hash", args, "path"); err != nil {
		return err
	}

	sum, err := deps.FS.ContentHash(ctx, resolve(ws, args[0]))
	if err != nil {
		return err
	}

	_, _ = deps.Out.Println(sum)
	return nil
}
