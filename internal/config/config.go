// Package config holds runtime settings for the application binary.
// Values are layered: defaults, then an optional JSON file, then
// command-line flags, with later sources taking precedence.
package config

import "github.com/dmitrijs2005/eduplatform/internal/store"

// Config holds runtime settings.
//
// Fields:
//   - StorageDriver: "sqlite" (default) or "postgres".
//   - StorageDSN: database file path for sqlite, connection string
//     for postgres.
//   - MediaDir: base directory lesson media is copied into.
//   - SeedDemo: create demo accounts and lessons on startup.
type Config struct {
	StorageDriver string
	StorageDSN    string
	MediaDir      string
	SeedDemo      bool
}

// LoadDefaults populates c with the single-user desktop defaults.
func (c *Config) LoadDefaults() {
	c.StorageDriver = store.DriverSQLite
	c.StorageDSN = "edu_platform.db"
	c.MediaDir = "media"
	c.SeedDemo = false
}

// LoadConfig constructs a Config from defaults, JSON overlay and
// flags, in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
