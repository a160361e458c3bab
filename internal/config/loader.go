package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// DirName is the directory holding config.yaml under the user config dir.
const DirName = "anki-russian-cards"

const fileName = "config.yaml"

// Load reads configuration the way the CLI does when no -config flag is
// given. It is LoadFile("").
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
//
// An explicit path (the argument, else CONFIG_PATH) must exist. Without one
// the first existing file of SearchPaths is used, and if there is none the
// configuration comes from ENV and defaults only.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: file %s: %w", path, err)
		}
	} else {
		found, err := search(SearchPaths())
		if err != nil {
			return nil, err
		}
		path = found
	}

	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}

	return &cfg, nil
}

// SearchPaths lists where a config file is looked for when none is named:
// the working directory first, then the user config directory.
func SearchPaths() []string {
	paths := []string{filepath.Join(".", fileName)}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, DirName, fileName))
	}
	return paths
}

// search returns the first existing path, or "" when none exists. Errors
// other than absence are reported so an unreadable config is not skipped.
func search(paths []string) (string, error) {
	for _, p := range paths {
		_, err := os.Stat(p)
		switch {
		case err == nil:
			return p, nil
		case errors.Is(err, fs.ErrNotExist):
			continue
		default:
			return "", fmt.Errorf("config: file %s: %w", p, err)
		}
	}
	return "", nil
}
