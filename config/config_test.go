package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "showroom.db", cfg.Storage.Path)
	assert.Equal(t, "admin@elitemotors.com.br", cfg.Admin.Email)
	assert.Equal(t, "admin123", cfg.Admin.Password)
	assert.Equal(t, 2*time.Second, cfg.UI.RedirectDelay)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "showroom.yaml")
	body := []byte("storage:\n  backend: redis\n  redis:\n    addr: 10.0.0.5:6379\nui:\n  redirect_delay_sec: 5\n")
	require.NoError(t, os.WriteFile(path, body, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "redis", cfg.Storage.Backend)
	assert.Equal(t, "10.0.0.5:6379", cfg.Storage.Redis.Addr)
	assert.Equal(t, 5*time.Second, cfg.UI.RedirectDelay)
	assert.Equal(t, "admin123", cfg.Admin.Password, "untouched keys keep defaults")
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "showroom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  backend: carrier-pigeon\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
