package actions

import (
	"context"
	"errors"
	"io"

	"github.com/footprint-tools/fm/internal/dispatchers"
	"github.com/footprint-tools/fm/internal/ui/style"
)

func ShowHelp(_ context.Context, _ Workspace, _ []string, deps Deps) error {
	if deps.Grammar == nil {
		return errors.New("no command grammar configured")
	}
	st := deps.Styler
	if st == nil {
		st = style.NopStyler{}
	}
	_, _ = io.WriteString(deps.Out, dispatchers.HelpText(deps.Grammar, st))
	return nil
}
