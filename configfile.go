package douze

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the optional config file looked up at the project root.
const ConfigFileName = ".douze.yaml"

// LoadFile reads a YAML config file. A missing file yields an empty Config.
func LoadFile(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Load builds the effective config for the project at root:
// defaults, then the config file, then the environment.
func Load(root string, lookup func(string) (string, bool)) (Config, error) {
	cfg, err := LoadFile(filepath.Join(root, ConfigFileName))
	if err != nil {
		return Config{}, err
	}
	if cfg.Root == "" {
		cfg.Root = root
	} else if !filepath.IsAbs(cfg.Root) {
		cfg.Root = filepath.Join(root, cfg.Root)
	}
	return cfg.FromEnv(lookup).WithDefaults(), nil
}
