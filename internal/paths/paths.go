package paths

import (
	"os"
	"path/filepath"
)

const appDirName = "fm"

// AppDataDir returns the application data directory for logs.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	return filepath.Join(dir, appDirName)
}

// ConfigFilePath returns the path of the user configuration file (~/.fmrc).
func ConfigFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".fmrc"), nil
}

// LogFilePath returns the path to the application log file.
//   - macOS: ~/Library/Application Support/fm/fm.log
//   - Linux: $XDG_CONFIG_HOME/fm/fm.log or ~/.config/fm/fm.log
//   - Windows: %AppData%\fm\fm.log
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "fm.log")
}
