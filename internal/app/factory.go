package app

import (
	"github.com/footprint-tools/fm/internal/config"
	"github.com/footprint-tools/fm/internal/domain"
	"github.com/footprint-tools/fm/internal/fsops"
	"github.com/footprint-tools/fm/internal/log"
	"github.com/footprint-tools/fm/internal/osinfo"
	"github.com/footprint-tools/fm/internal/paths"
	"github.com/footprint-tools/fm/internal/ui"
	"github.com/footprint-tools/fm/internal/ui/style"
)

// Color modes accepted by the "color" config key.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Options configures the application factory.
type Options struct {
	// Log options
	LogEnabled bool
	LogLevel   log.Level
	LogPath    string

	// Style options
	StyleEnabled bool
	StyleConfig  map[string]string

	// Verbose prints the cause of failed commands.
	Verbose bool
}

// DefaultOptions returns the options described by cfg. A broken config
// file yields the defaults.
func DefaultOptions(cfg domain.ConfigProvider) Options {
	if cfg == nil {
		cfg = config.NewProvider()
	}
	values, _ := cfg.GetAll()

	return Options{
		LogEnabled:   values["enable_log"] == "true",
		LogLevel:     log.ParseLevel(values["log_level"]),
		LogPath:      paths.LogFilePath(),
		StyleEnabled: values["color"] != ColorNever,
		StyleConfig:  values,
		Verbose:      values["verbose"] == "true",
	}
}

// ColorEnabled decides whether to style output for a color mode.
func ColorEnabled(mode string, isTerminal bool) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTerminal
	}
}

// New creates a new Application with all dependencies wired up.
func New(opts Options) *domain.Application {
	level := opts.LogLevel
	if opts.Verbose {
		level = log.LevelDebug
	}

	var logger domain.Logger = log.NopLogger{}
	if opts.LogEnabled {
		logPath := opts.LogPath
		if logPath == "" {
			logPath = paths.LogFilePath()
		}
		// Fall back to NopLogger on error
		if l, err := log.New(logPath, level); err == nil {
			logger = l
		}
	}

	style.Init(opts.StyleEnabled, opts.StyleConfig)

	return &domain.Application{
		FS:      fsops.NewOS(),
		OS:      osinfo.New(),
		Logger:  logger,
		Output:  ui.NewWriter(),
		Styler:  style.NewStyler(),
		Verbose: opts.Verbose,
	}
}

// Close flushes pending output and releases the log file.
func Close(app *domain.Application) error {
	if app.Output != nil {
		_ = app.Output.Flush()
	}
	if app.Logger != nil {
		_ = app.Logger.Close()
	}
	return nil
}
