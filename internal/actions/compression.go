package actions

import "context"

func CompressFile(ctx context.Context, ws Workspace, args []string, deps Deps) error {
	if err := requireArgs("compress", args, "path", "dest_dir"); err != nil {
		return err
	}
	return deps.FS.Compress(ctx, resolve(ws, args[0]), resolve(ws, args[1]))
}

func DecompressFile(ctx context.Context, ws Workspace, args []string, deps Deps) error {
	if err := requireArgs("decompress", args, "path", "dest_dir"); err != nil {
		return err
	}
	return deps.FS.Decompress(ctx, resolve(ws, args[0]), resolve(ws, args[1]))
}
