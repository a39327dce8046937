package configpaths

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

const appName = "sigexport"

// configBases are the file names, without extension, searched in every
// config location.
var configBases = []string{appName, "config"}

// DefaultConfigDir returns the platform-specific configuration directory.
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if appdata := os.Getenv("AppData"); appdata != "" {
			return filepath.Join(appdata, appName), nil
		}
		return "", errors.New("AppData not set")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, ".config", appName), nil
		}
		return "", errors.New("HOME not set")
	}
}

// EnsureDir ensures the directory for a given file path exists.
func EnsureDir(filePath string) error {
	return os.MkdirAll(filepath.Dir(filePath), 0o755)
}

// ConfigCandidatePaths builds candidate config paths per format, highest
// priority first. A userPath is routed to the loader matching its extension
// (JSON when unknown) and placed ahead of every default location.
func ConfigCandidatePaths(userPath string) (jsonPaths, yamlPaths, tomlPaths []string) {
	if userPath != "" {
		switch filepath.Ext(userPath) {
		case ".yaml", ".yml":
			yamlPaths = append(yamlPaths, userPath)
		case ".toml":
			tomlPaths = append(tomlPaths, userPath)
		default:
			jsonPaths = append(jsonPaths, userPath)
		}
	}

	var dirs []string
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if dir, err := DefaultConfigDir(); err == nil {
		dirs = append(dirs, dir)
	}
	if runtime.GOOS != "windows" {
		dirs = append(dirs, filepath.Join("/etc", appName))
	}

	for _, dir := range dirs {
		for _, base := range configBases {
			p := filepath.Join(dir, base)
			jsonPaths = append(jsonPaths, p+".json")
			yamlPaths = append(yamlPaths, p+".yaml", p+".yml")
			tomlPaths = append(tomlPaths, p+".toml")
		}
	}
	return
}
