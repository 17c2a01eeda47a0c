package config

import "os"

// Config holds runtime settings for the wastetrack CLI.
//
// Fields:
//   - DatabasePath: SQLite file holding the key/value store. ":memory:"
//     keeps everything in memory for the lifetime of the process.
//   - ExportDir: directory report files are written to (created on demand).
//   - HotelName: name printed in exported reports.
//   - LogLevel, LogFormat: structured log settings (logs go to stderr).
type Config struct {
	DatabasePath string
	ExportDir    string
	HotelName    string
	LogLevel     string
	LogFormat    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "wastetrack.db"
	c.ExportDir = "reports"
	c.HotelName = "Secrets Playa Blanca Costa Mujeres"
	c.LogLevel = "warn"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the config file (if given) and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseFile(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, os.Args[1:]); err != nil {
		return nil, err
	}
	return cfg, nil
}
