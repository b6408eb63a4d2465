// Copyright (c) 2026 Keymaster Team
// Keyeditor - keyboard key assignment editor
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads and persists the key editor settings. It uses Viper
// for file/env/flag parsing and goccy/go-yaml to write config files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RuntimeOS is runtime.GOOS, overridable in tests.
var RuntimeOS = runtime.GOOS

// Config is the key editor configuration.
type Config struct {
	Language string `mapstructure:"language" yaml:"language"`
	Log      struct {
		Level string `mapstructure:"level" yaml:"level"`
		// File receives log output while the TUI owns the terminal.
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"log" yaml:"log"`
	Images struct {
		Dir string `mapstructure:"dir" yaml:"dir"`
	} `mapstructure:"images" yaml:"images"`
	Dropdown struct {
		Width  int `mapstructure:"width" yaml:"width"`
		Height int `mapstructure:"height" yaml:"height"`
	} `mapstructure:"dropdown" yaml:"dropdown"`
}

// Defaults are the built-in values of every config key.
func Defaults() map[string]any {
	return map[string]any{
		"language":        "en",
		"log.level":       "warn",
		"log.file":        "",
		"images.dir":      "images",
		"dropdown.width":  40,
		"dropdown.height": 14,
	}
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch RuntimeOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Keyeditor")
		default:
			configDir = "/etc/keyeditor"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "keyeditor")
	}

	return filepath.Join(configDir, "keyeditor.yaml"), nil
}

// LoadConfig resolves T from defaults, the first keyeditor.yaml found (or
// the explicit file), KEYEDITOR_* environment variables and the flags of cmd,
// in increasing order of precedence. The returned path is the file that was
// read, empty when none was found.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, explicitPath *string) (T, string, error) {
	var c T
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("keyeditor")
	v.SetConfigType("yaml")
	if explicitPath != nil {
		v.SetConfigFile(*explicitPath)
	}
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		// Running on defaults is fine, a broken file is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, "", fmt.Errorf("read config: %w", err)
		}
	}

	v.AutomaticEnv()
	v.SetEnvPrefix("keyeditor")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if cmd != nil {
		if err := v.BindPFlags(cmd.Flags()); err != nil {
			return c, "", err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, "", fmt.Errorf("decode config: %w", err)
	}
	return c, v.ConfigFileUsed(), nil
}

// Marshal encodes c as YAML.
func Marshal[T any](c *T) ([]byte, error) {
	return yaml.Marshal(c)
}

// WriteConfigFile writes c to the user (or system) config path and returns
// the path written.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := Marshal(c)
	if err != nil {
		return "", err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", err
	}
	return path, nil
}
