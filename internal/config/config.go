// Package config provides configuration utilities for the application.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/mjelks/bloomdex/internal/common"
)

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}

// DatasetPath returns the configured dataset path. It follows this precedence:
// 1. Viper configuration (config file or BLOOMDEX_ env vars)
// 2. The BLOOM_DATASET environment variable
func DatasetPath() (string, error) {
	if v := viper.GetString("dataset.path"); v != "" {
		return ExpandPath(v), nil
	}
	if v := os.Getenv("BLOOM_DATASET"); v != "" {
		return ExpandPath(v), nil
	}
	return "", common.ErrDatasetMissing
}

// DatabasePath returns the snapshot database path, defaulting to a file next
// to the user config directory.
func DatabasePath() string {
	if v := viper.GetString("database.path"); v != "" {
		return ExpandPath(v)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "bloomdex.db"
	}
	return filepath.Join(home, ".local", "share", "bloomdex", "bloomdex.db")
}
