package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "brig"

// ConfigEnvVar overrides the location of the configuration file.
const ConfigEnvVar = "BRIG_CONFIG"

// AppDataDir returns the application data directory for config/logs.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}

	path := filepath.Join(dir, appDirName)

	_ = os.MkdirAll(path, 0700)

	return path
}

// AppLocalDataDir returns the OS-appropriate local data directory.
// The world database lives here.
//   - macOS: ~/Library/Application Support/brig
//   - Linux: $XDG_DATA_HOME/brig or ~/.local/share/brig
//   - Windows: %LOCALAPPDATA%\brig
func AppLocalDataDir() string {
	var base string

	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		base = filepath.Join(home, "Library", "Application Support")

	case "windows":
		base = os.Getenv("LOCALAPPDATA")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, "AppData", "Local")
		}

	default:
		base = os.Getenv("XDG_DATA_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "."
			}
			base = filepath.Join(home, ".local", "share")
		}
	}

	return filepath.Join(base, appDirName)
}

// ConfigFilePath returns the path of config.toml, honoring BRIG_CONFIG.
func ConfigFilePath() (string, error) {
	if p := os.Getenv(ConfigEnvVar); p != "" {
		return p, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, appDirName, "config.toml"), nil
}

// DBPath returns the default location of the world database.
func DBPath() string {
	return filepath.Join(AppLocalDataDir(), "world.db")
}

// LogFilePath returns the path to the application log file.
//   - macOS: ~/Library/Application Support/brig/brig.log
//   - Linux: $XDG_CONFIG_HOME/brig/brig.log or ~/.config/brig/brig.log
//   - Windows: %AppData%\brig\brig.log
func LogFilePath() string {
	return filepath.Join(AppDataDir(), "brig.log")
}
