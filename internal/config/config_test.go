package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	old := os.Args
	t.Cleanup(func() { os.Args = old })
	os.Args = append([]string{"eduplatform"}, args...)
}

func TestLoadConfig_Defaults(t *testing.T) {
	withArgs(t)

	cfg := LoadConfig()

	assert.Equal(t, "sqlite", cfg.StorageDriver)
	assert.Equal(t, "edu_platform.db", cfg.StorageDSN)
	assert.Equal(t, "media", cfg.MediaDir)
	assert.False(t, cfg.SeedDemo)
}

func TestLoadConfig_Flags(t *testing.T) {
	withArgs(t, "-b", "postgres", "-d", "postgres://localhost/edu", "-m", "/tmp/media", "-demo")

	cfg := LoadConfig()

	assert.Equal(t, "postgres", cfg.StorageDriver)
	assert.Equal(t, "postgres://localhost/edu", cfg.StorageDSN)
	assert.Equal(t, "/tmp/media", cfg.MediaDir)
	assert.True(t, cfg.SeedDemo)
}

func TestLoadConfig_JsonOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"storage_dsn": "from_json.db", "media_dir": "json_media"}`), 0o660))

	withArgs(t, "-c", path)

	cfg := LoadConfig()

	assert.Equal(t, "from_json.db", cfg.StorageDSN)
	assert.Equal(t, "json_media", cfg.MediaDir)
	// fields absent from the JSON keep their defaults
	assert.Equal(t, "sqlite", cfg.StorageDriver)
}

func TestLoadConfig_FlagsBeatJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"storage_dsn": "from_json.db"}`), 0o660))

	withArgs(t, "-c", path, "-d", "from_flag.db")

	cfg := LoadConfig()

	assert.Equal(t, "from_flag.db", cfg.StorageDSN)
}
