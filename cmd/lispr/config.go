package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	defaultPrompt      = "user> "
	continuationPrompt = "... "
	defaultHistoryFile = "~/.lispr_history"
	defaultConfigFile  = "~/.lispr.yaml"
)

type Config struct {
	Prompt      string   `yaml:"prompt"`
	HistoryFile string   `yaml:"history_file"`
	Preload     []string `yaml:"preload"`
}

func DefaultConfig() Config {
	return Config{
		Prompt:      defaultPrompt,
		HistoryFile: expandHome(defaultHistoryFile),
	}
}

// LoadConfig reads the YAML config at path. A missing file is not an
// error: the defaults are returned instead.
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(expandHome(path))
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return parseConfig(b)
}

func parseConfig(b []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if cfg.Prompt == "" {
		cfg.Prompt = defaultPrompt
	}
	cfg.HistoryFile = expandHome(cfg.HistoryFile)
	for i, p := range cfg.Preload {
		cfg.Preload[i] = expandHome(p)
	}
	return cfg, nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
