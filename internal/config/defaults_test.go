package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// withConfigFile points HOME at a temp dir and writes lines to ~/.fmrc.
// A nil slice leaves the file absent.
func withConfigFile(t *testing.T, lines []string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	for key := range Defaults {
		t.Setenv(envKey(key), "")
	}

	if lines == nil {
		return
	}
	content := strings.Join(lines, "\n") + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, ".fmrc"), []byte(content), 0600))
}

func TestGet(t *testing.T) {
	tests := []struct {
		name        string
		configLines []string
		key         string
		wantValue   string
		wantFound   bool
	}{
		{
			name:        "key exists in config file",
			configLines: []string{"verbose=true"},
			key:         "verbose",
			wantValue:   "true",
			wantFound:   true,
		},
		{
			name:        "key exists in defaults but not in file",
			configLines: []string{},
			key:         "log_level",
			wantValue:   "warn",
			wantFound:   true,
		},
		{
			name:        "no config file falls back to defaults",
			configLines: nil,
			key:         "enable_log",
			wantValue:   "false",
			wantFound:   true,
		},
		{
			name:        "unknown key in file is still returned",
			configLines: []string{"custom=1"},
			key:         "custom",
			wantValue:   "1",
			wantFound:   true,
		},
		{
			name:        "unknown key",
			configLines: []string{},
			key:         "nope",
			wantValue:   "",
			wantFound:   false,
		},
		{
			name:        "broken file falls back to defaults",
			configLines: []string{"not a pair"},
			key:         "color",
			wantValue:   "auto",
			wantFound:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withConfigFile(t, tt.configLines)

			value, found := Get(tt.key)
			require.Equal(t, tt.wantFound, found)
			require.Equal(t, tt.wantValue, value)
		})
	}
}

func TestGet_EnvironmentOverridesFile(t *testing.T) {
	withConfigFile(t, []string{"log_level=info"})
	t.Setenv("FM_LOG_LEVEL", "debug")

	value, found := Get("log_level")
	require.True(t, found)
	require.Equal(t, "debug", value)
}

func TestGetAll_MergesCorrectly(t *testing.T) {
	withConfigFile(t, []string{
		"# fm configuration",
		"verbose=true",
		`color_theme="mono-dark"`,
	})
	t.Setenv("FM_ENABLE_LOG", "true")

	all, err := GetAll()
	require.NoError(t, err)

	require.Equal(t, "true", all["verbose"])
	require.Equal(t, "mono-dark", all["color_theme"])
	require.Equal(t, "true", all["enable_log"])
	require.Equal(t, "warn", all["log_level"])
	require.Equal(t, "auto", all["color"])
}

func TestGetAll_BrokenFileReturnsDefaultsAndError(t *testing.T) {
	withConfigFile(t, []string{"=oops"})

	all, err := GetAll()
	require.Error(t, err)
	require.Len(t, all, len(Defaults))
}

func TestProvider(t *testing.T) {
	withConfigFile(t, []string{"verbose=true"})

	p := NewProvider()
	v, ok := p.Get("verbose")
	require.True(t, ok)
	require.Equal(t, "true", v)

	all, err := p.GetAll()
	require.NoError(t, err)
	require.Equal(t, "true", all["verbose"])
}

func TestReadLines_TrimsCRLF(t *testing.T) {
	withConfigFile(t, nil)
	home := os.Getenv("HOME")
	require.NoError(t, os.WriteFile(filepath.Join(home, ".fmrc"), []byte("a=1\r\nb=2\r\n"), 0600))

	lines, err := ReadLines()
	require.NoError(t, err)
	require.Equal(t, []string{"a=1", "b=2"}, lines)
}
