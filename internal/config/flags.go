package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/eduplatform/internal/flagx"
)

// parseFlags overlays Config fields from command-line flags.
//
// Supported flags:
//
//	-b string   storage backend: sqlite or postgres
//	-d string   database DSN (file path or connection string)
//	-m string   media directory
//	-demo       seed demo users and lessons on startup
//
// os.Args is filtered to just these flags first so the config-file
// flags handled elsewhere do not trip the parser.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-d", "-m", "-demo"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StorageDriver, "b", cfg.StorageDriver, "storage backend (sqlite or postgres)")
	fs.StringVar(&cfg.StorageDSN, "d", cfg.StorageDSN, "database DSN")
	fs.StringVar(&cfg.MediaDir, "m", cfg.MediaDir, "media directory")
	fs.BoolVar(&cfg.SeedDemo, "demo", cfg.SeedDemo, "seed demo data on startup")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
