package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresModsFolder(t *testing.T) {
	viper.Reset()
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsMissingModsFolder(t *testing.T) {
	viper.Reset()
	viper.Set("mods-folder", filepath.Join(t.TempDir(), "nope"))
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadCreatesPackAndCacheFolders(t *testing.T) {
	viper.Reset()
	root := t.TempDir()
	viper.Set("mods-folder", root)
	viper.Set("packs-folder", filepath.Join(root, "packs"))
	viper.Set("cache-folder", filepath.Join(root, "cache"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, root, cfg.ModsFolder)
	assert.True(t, cfg.AutoDownload, "auto-download defaults to on")

	for _, dir := range []string{cfg.PacksFolder, cfg.CacheFolder} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}
