package actions

import (
	"context"
	"strconv"

	"github.com/footprint-tools/fm/internal/domain"
	"github.com/footprint-tools/fm/internal/ui"
)

// ShowEOL prints the platform line ending quoted, e.g. "\n".
func ShowEOL(_ context.Context, _ Workspace, _ []string, deps Deps) error {
	_, _ = deps.Out.Println(strconv.Quote(deps.OS.EOL()))
	return nil
}

func ShowCPUs(ctx context.Context, _ Workspace, _ []string, deps Deps) error {
	info, err := deps.OS.CPUs(ctx)
	if err != nil {
		return err
	}

	_, _ = deps.Out.Printf("Overall amount of CPUs: %d\n", info.Count)
	_, _ = deps.Out.Println(ui.Table([]string{"Model", "Speed"}, cpuRows(info.CPUs)))
	return nil
}

func cpuRows(cpus []domain.CPU) [][]string {
	rows := make([][]string, 0, len(cpus))
	for _, c := range cpus {
		rows = append(rows, []string{c.Model, formatGHz(c.SpeedGHz)})
	}
	return rows
}

func formatGHz(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "GHz"
}

func ShowHomeDir(_ context.Context, _ Workspace, _ []string, deps Deps) error {
	dir, err := deps.OS.HomeDir()
	if err != nil {
		return err
	}
	_, _ = deps.Out.Println(dir)
	return nil
}

func ShowSystemUserName(_ context.Context, _ Workspace, _ []string, deps Deps) error {
	name, err := deps.OS.SystemUserName()
	if err != nil {
		return err
	}
	_, _ = deps.Out.Println(name)
	return nil
}

func ShowArchitecture(_ context.Context, _ Workspace, _ []string, deps Deps) error {
	_, _ = deps.Out.Println(deps.OS.Architecture())
	return nil
}
