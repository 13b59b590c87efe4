// Package osinfo reports facts about the host operating system.
package osinfo

import (
	"context"
	"fmt"
	"os"
	"os/user"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v4/cpu"

	"github.com/footprint-tools/fm/internal/domain"
)

// Provider implements domain.OSInfo. The zero value is not usable, use New.
type Provider struct {
	goos   string
	goarch string

	cpuInfo     func(ctx context.Context) ([]cpu.InfoStat, error)
	cpuCount    func(ctx context.Context, logical bool) (int, error)
	currentUser func() (*user.User, error)
	homeDir     func() (string, error)
}

// New returns a Provider for the running host.
func New() *Provider {
	return &Provider{
		goos:        runtime.GOOS,
		goarch:      runtime.GOARCH,
		cpuInfo:     cpu.InfoWithContext,
		cpuCount:    cpu.CountsWithContext,
		currentUser: user.Current,
		homeDir:     os.UserHomeDir,
	}
}

// EOL returns the line terminator of the host platform.
func (p *Provider) EOL() string {
	if p.goos == "windows" {
		return "\r\n"
	}
	return "\n"
}

// CPUs returns one entry per logical processor. Platforms that describe
// the package once get that description repeated for every processor.
func (p *Provider) CPUs(ctx context.Context) (domain.CPUInfo, error) {
	infos, err := p.cpuInfo(ctx)
	if err != nil {
		return domain.CPUInfo{}, fmt.Errorf("reading cpu info: %w", err)
	}

	count, err := p.cpuCount(ctx, true)
	if err != nil || count <= 0 {
		count = len(infos)
	}

	result := domain.CPUInfo{Count: count}
	if len(infos) == 0 {
		return result, nil
	}

	result.CPUs = make([]domain.CPU, count)
	for i := range result.CPUs {
		info := infos[i%len(infos)]
		result.CPUs[i] = domain.CPU{
			Model:    strings.TrimSpace(info.ModelName),
			SpeedGHz: info.Mhz / 1000,
		}
	}
	return result, nil
}

// HomeDir returns the home directory of the current user.
func (p *Provider) HomeDir() (string, error) {
	return p.homeDir()
}

// SystemUserName returns the account name of the current user without
// any domain prefix.
func (p *Provider) SystemUserName() (string, error) {
	u, err := p.currentUser()
	if err != nil {
		return "", fmt.Errorf("looking up current user: %w", err)
	}

	name := u.Username
	if i := strings.LastIndex(name, `\`); i >= 0 {
		name = name[i+1:]
	}
	return name, nil
}

// Architecture returns the architecture the binary runs on.
func (p *Provider) Architecture() string {
	return p.goarch
}

var _ domain.OSInfo = (*Provider)(nil)
