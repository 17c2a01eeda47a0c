// Package config loads runtime configuration for the wastetrack CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected via -c or -config. Files ending in
//     ".toml" are read as TOML, anything else as JSON.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   path of the SQLite database file
//	-o string   directory report exports are written to
//	-n string   hotel name printed in reports
//	-l string   log level: debug, info, warn, error
//
// # File schema
//
//	{
//	  "database_path": "wastetrack.db",
//	  "export_dir": "reports",
//	  "hotel_name": "Secrets Playa Blanca Costa Mujeres",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
//
// The TOML form uses the same keys. Keys that are absent or empty keep the
// value from the previous stage.
//
// Note: This package does not read environment variables directly; use the
// config file or flags to configure values.
package config
