package config

import (
	"os"
	"path/filepath"
)

const (
	// DefaultRoot is the Johnny Decimal hierarchy root
	DefaultRoot = "~/Documents"
	// DefaultIndexPath holds the cached index document
	DefaultIndexPath = "~/.config/jdex/index.json"
)

// Root returns the hierarchy root from the JD_ROOT env var,
// falling back to DefaultRoot.
func Root() string {
	if env := os.Getenv("JD_ROOT"); env != "" {
		return env
	}
	return DefaultRoot
}

// IndexPath returns the index document path from the JD_INDEX env var,
// falling back to DefaultIndexPath.
func IndexPath() string {
	if env := os.Getenv("JD_INDEX"); env != "" {
		return env
	}
	return DefaultIndexPath
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
