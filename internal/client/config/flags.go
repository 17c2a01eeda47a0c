package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/wastetrack/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   database file (default from Config)
//	-o string   export directory (default from Config)
//	-n string   hotel name (default from Config)
//	-l string   log level (default from Config)
//
// Note: args are filtered with flagx.FilterArgs first, so flags owned by
// other components (-c/-config) do not cause parse errors.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-d", "-o", "-n", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "database file")
	fs.StringVar(&cfg.ExportDir, "o", cfg.ExportDir, "report export directory")
	fs.StringVar(&cfg.HotelName, "n", cfg.HotelName, "hotel name printed in reports")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	return fs.Parse(args)
}
