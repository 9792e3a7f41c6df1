package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/eduplatform/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling; parsed
// values are copied into the runtime Config.
type JsonConfig struct {
	StorageDriver string `json:"storage_driver"`
	StorageDSN    string `json:"storage_dsn"`
	MediaDir      string `json:"media_dir"`
}

// parseJson overlays Config with values from the JSON file named by
// the -c/-config flag. When no file is given the Config is left
// untouched. Read and unmarshal errors panic; the binary cannot run
// off a half-read config.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.StorageDriver != "" {
		cfg.StorageDriver = jc.StorageDriver
	}
	if jc.StorageDSN != "" {
		cfg.StorageDSN = jc.StorageDSN
	}
	if jc.MediaDir != "" {
		cfg.MediaDir = jc.MediaDir
	}
}
