// Package testutil provides in-memory fixtures for handler and session tests.
package testutil

import (
	"context"
	"io"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/fm/internal/domain"
	"github.com/footprint-tools/fm/internal/fsops"
	"github.com/footprint-tools/fm/internal/log"
	"github.com/footprint-tools/fm/internal/ui"
	"github.com/footprint-tools/fm/internal/ui/style"
)

// Home is the home directory every fixture filesystem contains.
const Home = "/home/u"

// NewMemFS returns an in-memory filesystem containing Home, the given
// directories and the given files (path to content).
func NewMemFS(t *testing.T, dirs []string, files map[string]string) billy.Filesystem {
	t.Helper()

	bfs := memfs.New()
	require.NoError(t, bfs.MkdirAll(Home, 0755), "failed to create home")

	for _, d := range dirs {
		require.NoError(t, bfs.MkdirAll(d, 0755), "failed to create %s", d)
	}
	for p, content := range files {
		require.NoError(t, util.WriteFile(bfs, p, []byte(content), 0644), "failed to write %s", p)
	}
	return bfs
}

// FakeOS is a fixed domain.OSInfo.
type FakeOS struct {
	LineEnding string
	CPUInfo    domain.CPUInfo
	Home       string
	User       string
	Arch       string
	Err        error
}

// NewFakeOS returns a FakeOS describing a two core amd64 linux host.
func NewFakeOS() *FakeOS {
	return &FakeOS{
		LineEnding: "\n",
		CPUInfo: domain.CPUInfo{
			Count: 2,
			CPUs: []domain.CPU{
				{Model: "Test CPU", SpeedGHz: 2.4},
				{Model: "Test CPU", SpeedGHz: 2.4},
			},
		},
		Home: Home,
		User: "tester",
		Arch: "amd64",
	}
}

func (f *FakeOS) EOL() string { return f.LineEnding }

func (f *FakeOS) CPUs(context.Context) (domain.CPUInfo, error) {
	return f.CPUInfo, f.Err
}

func (f *FakeOS) HomeDir() (string, error) { return f.Home, f.Err }

func (f *FakeOS) SystemUserName() (string, error) { return f.User, f.Err }

func (f *FakeOS) Architecture() string { return f.Arch }

// NewApp wires an Application over bfs and a FakeOS. Output goes to out
// unstyled; logging is discarded.
func NewApp(bfs billy.Filesystem, osInfo domain.OSInfo, out io.Writer) *domain.Application {
	return &domain.Application{
		FS:     fsops.New(bfs),
		OS:     osInfo,
		Logger: log.NopLogger{},
		Output: ui.NewWriterTo(out),
		Styler: style.NopStyler{},
	}
}

// MapConfig is a fixed configuration with no file or environment behind it.
type MapConfig map[string]string

func (m MapConfig) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MapConfig) GetAll() (map[string]string, error) {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out, nil
}

// TagStyler marks styled text as <role>text</role> so tests can see which
// role was applied.
type TagStyler struct{}

func (TagStyler) Enabled() bool              { return true }
func (TagStyler) Success(text string) string { return tag("success", text) }
func (TagStyler) Warning(text string) string { return tag("warning", text) }
func (TagStyler) Error(text string) string   { return tag("error", text) }
func (TagStyler) Info(text string) string    { return tag("info", text) }
func (TagStyler) Muted(text string) string   { return tag("muted", text) }
func (TagStyler) Header(text string) string  { return tag("header", text) }

func tag(role, text string) string {
	return "<" + role + ">" + text + "</" + role + ">"
}

var (
	_ domain.Styler         = TagStyler{}
	_ domain.OSInfo         = (*FakeOS)(nil)
	_ domain.ConfigProvider = MapConfig(nil)
)
