package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/dmitrijs2005/wastetrack/internal/flagx"
)

// fileConfig is a DTO used exclusively for decoding config files.
type fileConfig struct {
	DatabasePath string `json:"database_path" toml:"database_path"`
	ExportDir    string `json:"export_dir" toml:"export_dir"`
	HotelName    string `json:"hotel_name" toml:"hotel_name"`
	LogLevel     string `json:"log_level" toml:"log_level"`
	LogFormat    string `json:"log_format" toml:"log_format"`
}

// parseFile overlays cfg with the file named by -c/-config, if any.
func parseFile(cfg *Config) error {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return nil
	}
	return loadFile(cfg, path)
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.Decode(string(data), &fc); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	} else if err := json.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	overlay(&cfg.DatabasePath, fc.DatabasePath)
	overlay(&cfg.ExportDir, fc.ExportDir)
	overlay(&cfg.HotelName, fc.HotelName)
	overlay(&cfg.LogLevel, fc.LogLevel)
	overlay(&cfg.LogFormat, fc.LogFormat)
	return nil
}

func overlay(dst *string, v string) {
	if strings.TrimSpace(v) != "" {
		*dst = v
	}
}
