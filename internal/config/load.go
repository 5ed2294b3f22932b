package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

// Environment variable names for overrides.
const (
	// EnvDataDirectory overrides the configuration directory.
	EnvDataDirectory = "BOXARR_DATA_DIRECTORY"
	// EnvRadarrAPIKey supplies the Radarr API key when the resolved
	// configuration leaves it empty.
	EnvRadarrAPIKey = "RADARR_API_KEY"
)

// DefaultDataDir is the configuration directory used when no override
// is set.
const DefaultDataDir = "config"

// SearchPaths returns the candidate configuration files in precedence
// order. Exactly one file is ever loaded: the first that exists.
func SearchPaths(dataDir string) []string {
	return []string{
		filepath.Join(dataDir, "local.yaml"),
		filepath.Join(dataDir, "config.yaml"),
		"config/local.yaml",
		"config/default.yaml",
		"/config/local.yaml", // Docker volume
		"/config/config.yaml",
	}
}

// Load resolves a Settings instance from defaults, environment variables
// and the first existing configuration file. A missing or malformed file
// is not an error; a validation failure is.
func Load() (*Settings, error) {
	dataDir := os.Getenv(EnvDataDirectory)
	if dataDir == "" {
		dataDir = DefaultDataDir
	}

	s := Default(dataDir)
	if err := envconfig.Process("", s); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	for _, path := range SearchPaths(dataDir) {
		if !FileExists(path) {
			continue
		}
		s.ApplyDocument(LoadDocument(path))
		s.sourceFile = path
		break
	}

	if s.RadarrAPIKey == "" {
		s.RadarrAPIKey = os.Getenv(EnvRadarrAPIKey)
	}

	s.normalize()
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return s, nil
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
