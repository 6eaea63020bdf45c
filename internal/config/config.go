// Package config holds the settings of the golox command.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file looked up in the home
// directory when no path is given.
const FileName = ".golox.yaml"

// Config is read from a YAML document. Keys left out of the document keep
// their default value.
type Config struct {
	// Prompt is shown before every line read in interactive mode.
	Prompt string `yaml:"prompt"`
	// HistoryFile keeps the lines entered in interactive mode. An empty
	// value disables the history. A leading "~/" is the home directory.
	HistoryFile string `yaml:"history_file"`
	// Color turns on colored diagnostics when stderr is a terminal.
	Color bool `yaml:"color"`
	// EchoExpressions prints the value of expression statements entered in
	// interactive mode.
	EchoExpressions bool `yaml:"echo_expressions"`
	// Verbose logs the duration and output size of every pass.
	Verbose bool `yaml:"verbose"`
}

// Default returns the settings used when there is no configuration file.
func Default() Config {
	return Config{
		Prompt:          "> ",
		HistoryFile:     "~/.golox_history",
		Color:           true,
		EchoExpressions: true,
		Verbose:         false,
	}
}

// Load reads the configuration file at path.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault reads the configuration file from the home directory, falling
// back to the defaults when there is none.
func LoadDefault() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return Default(), nil
	}
	cfg, err := Load(filepath.Join(home, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// HistoryPath returns HistoryFile with "~/" expanded, or "" when the history
// is disabled or the home directory is unknown.
func (cfg Config) HistoryPath() string {
	path := cfg.HistoryFile
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, path[2:])
}
