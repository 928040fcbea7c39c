package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Paths contains standard filesystem paths for stencil.
type Paths struct {
	// ConfigFile is the path to the config file (~/.stencil/config.yaml).
	ConfigFile string

	// HomeDir is the stencil home directory (~/.stencil).
	HomeDir string
}

// DefaultPaths returns the default paths for stencil.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	stencilHome := filepath.Join(homeDir, ".stencil")

	return &Paths{
		ConfigFile: filepath.Join(stencilHome, "config.yaml"),
		HomeDir:    stencilHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If STENCIL_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("STENCIL_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" || !strings.HasPrefix(path, "~") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}

	if path == "~" {
		return homeDir, nil
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~user form is not supported
	return path, nil
}
