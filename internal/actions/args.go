package actions

import (
	"github.com/footprint-tools/fm/internal/paths"
	"github.com/footprint-tools/fm/internal/usage"
)

// requireArgs fails with a usage error naming the first missing argument.
func requireArgs(verb string, args []string, names ...string) error {
	if len(args) < len(names) {
		return usage.MissingArgument(verb, names[len(args)])
	}
	return nil
}

// resolve makes p absolute against the workspace location.
func resolve(ws Workspace, p string) string {
	return paths.Resolve(ws.Location(), p)
}
