package config

import (
	"fmt"
	"os"
	"path/filepath"
)

type Config struct {
	// ServerURL is the base URL of the Lumen API.
	ServerURL string

	// LumenHome is the directory where the CLI stores local state.
	LumenHome string
	// TokenPath is the path to the persisted access token slot.
	TokenPath string

	// Debug enables verbose logging.
	Debug bool
}

// Load loads configuration from environment and defaults
func Load() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	lumenHome := os.Getenv("LUMEN_HOME_DIR")
	if lumenHome == "" {
		lumenHome = filepath.Join(homeDir, ".lumen")
	}

	// Ensure lumen home exists
	if err := os.MkdirAll(lumenHome, 0700); err != nil {
		return nil, fmt.Errorf("failed to create lumen home: %w", err)
	}

	serverURL := os.Getenv("LUMEN_SERVER_URL")
	if serverURL == "" {
		serverURL = "https://api.lumen-gallery.com" // Default to official server
	}

	debug := os.Getenv("DEBUG") == "true" || os.Getenv("DEBUG") == "1"
	if !debug {
		debug = os.Getenv("LUMEN_DEBUG") == "true" || os.Getenv("LUMEN_DEBUG") == "1"
	}

	return &Config{
		ServerURL: serverURL,
		LumenHome: lumenHome,
		TokenPath: filepath.Join(lumenHome, "token"),
		Debug:     debug,
	}, nil
}
