// Package config loads edfinfo defaults from a TOML file.
//
// The file is optional. When it is missing every field keeps its default,
// and command-line flags override whatever the file sets.
//
// Example config.toml:
//
//	output = "table"
//	latin1 = true
//	strict = false
//
//	[log]
//	level = "debug"
//	format = "json"
//	output = "~/.local/state/edfinfo/edfinfo.log"
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the defaults edfinfo reads from its config file.
type Config struct {
	Output    string
	LogLevel  string
	LogFormat string
	LogOutput string
	Latin1    bool
	Strict    bool
}

const (
	defaultConfigPath = "~/.config/edfinfo/config.toml"
	defaultOutput     = "text"
	defaultLogLevel   = "warn"
	defaultLogFormat  = "text"
	defaultLogOutput  = "stderr"
)

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Output:    defaultOutput,
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
		LogOutput: defaultLogOutput,
	}
}

// Load locates and parses the config file, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Output string `toml:"output"`
		Latin1 bool   `toml:"latin1"`
		Strict bool   `toml:"strict"`
		Log    struct {
			Level  string `toml:"level"`
			Format string `toml:"format"`
			Output string `toml:"output"`
		} `toml:"log"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.Output = orDefault(raw.Output, defaultOutput)
	cfg.LogLevel = orDefault(raw.Log.Level, defaultLogLevel)
	cfg.LogFormat = orDefault(raw.Log.Format, defaultLogFormat)
	cfg.LogOutput = orDefault(raw.Log.Output, defaultLogOutput)
	cfg.Latin1 = raw.Latin1
	cfg.Strict = raw.Strict

	if out := strings.ToLower(cfg.LogOutput); out != "stdout" && out != "stderr" {
		cfg.LogOutput = mustExpand(cfg.LogOutput)
	}

	return cfg, nil
}

func orDefault(value, fallback string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return fallback
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
