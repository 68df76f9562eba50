// Package paths resolves the configuration directory location.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName is the directory name used under the platform config root.
const AppName = "housebuilder"

// ConfigFileName is the config file read from the configuration directory.
const ConfigFileName = "config.yaml"

// EnvConfigDir overrides the configuration directory.
const EnvConfigDir = "HOUSEBUILDER_CONFIG_DIR"

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/housebuilder (fallback ~/.config/housebuilder)
// macOS:   ~/Library/Application Support/housebuilder
// Windows: %APPDATA%/housebuilder
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, AppName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", AppName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, AppName), nil
	}
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > HOUSEBUILDER_CONFIG_DIR env > DefaultConfigDir().
//
// Explicit values are made absolute relative to the working directory.
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ConfigFile returns the path of the config file inside configDir.
func ConfigFile(configDir string) string {
	return filepath.Join(configDir, ConfigFileName)
}
