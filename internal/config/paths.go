package config

import (
	"os"
	"path/filepath"
)

const (
	// EnvConfigPath names an explicit config file
	EnvConfigPath = "RAILBOOK_CONFIG"
	// ConfigFileName is looked up in the working directory
	ConfigFileName = "railbook.yaml"
	// ConfigDirName is the directory under XDG and /etc
	ConfigDirName = "railbook"
)

// SearchPaths lists the config locations in lookup order:
// $RAILBOOK_CONFIG, ./railbook.yaml, $XDG_CONFIG_HOME/railbook/config.yaml,
// ~/.config/railbook/config.yaml, /etc/railbook/config.yaml.
// Unset variables contribute no entry.
func SearchPaths() []string {
	var paths []string
	if p := os.Getenv(EnvConfigPath); p != "" {
		paths = append(paths, p)
	}
	paths = append(paths, ConfigFileName)
	paths = append(paths, userPaths()...)
	return append(paths, filepath.Join("/etc", ConfigDirName, "config.yaml"))
}

// FindConfigPath returns the first existing file of SearchPaths, "" if none
func FindConfigPath() string {
	for _, p := range SearchPaths() {
		info, err := os.Stat(p)
		if err != nil || info.IsDir() {
			continue
		}
		if abs, err := filepath.Abs(p); err == nil {
			return abs
		}
		return p
	}
	return ""
}

// DefaultConfigPath is where `railbook config init` writes a new file: the
// first per-user location, or ./railbook.yaml without XDG_CONFIG_HOME and HOME
func DefaultConfigPath() string {
	if paths := userPaths(); len(paths) > 0 {
		return paths[0]
	}
	return ConfigFileName
}

func userPaths() []string {
	var paths []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, ConfigDirName, "config.yaml"))
	}
	if home := os.Getenv("HOME"); home != "" {
		paths = append(paths, filepath.Join(home, ".config", ConfigDirName, "config.yaml"))
	}
	return paths
}
