package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Paths contains standard filesystem paths for agentstack.
type Paths struct {
	// ConfigFile is the path to the config file (~/.agentstack/config.yaml).
	ConfigFile string

	// StartersDir is the default local starters root (~/.agentstack/starters).
	StartersDir string

	// HomeDir is the agentstack home directory (~/.agentstack).
	HomeDir string
}

// DefaultPaths returns the default paths for agentstack.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	stackHome := filepath.Join(homeDir, ".agentstack")

	return &Paths{
		ConfigFile:  filepath.Join(stackHome, "config.yaml"),
		StartersDir: filepath.Join(stackHome, "starters"),
		HomeDir:     stackHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If AGENTSTACK_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("AGENTSTACK_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// EnsureHomeDir creates the agentstack home directory if it doesn't exist.
func EnsureHomeDir() error {
	paths, err := DefaultPaths()
	if err != nil {
		return err
	}

	return os.MkdirAll(paths.HomeDir, 0o755)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
	}

	return path, nil
}
