package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application. Values are loaded by
// viper from a settings file and/or command line flags bound by cmd.
type Config struct {
	ModsFolder   string `mapstructure:"mods-folder"`
	PacksFolder  string `mapstructure:"packs-folder"`
	CacheFolder  string `mapstructure:"cache-folder"`
	AutoDownload bool   `mapstructure:"auto-download"`
}

const appDirName = "isaac-mod-manager"

// Load reads configuration from the settings file and any values already
// bound into viper. The mods folder is required and must exist; the packs
// and cache folders default to the per-user config directory and are created
// on demand.
func Load() (Config, error) {
	viper.SetConfigName("settings")
	viper.SetConfigType("toml")
	viper.AddConfigPath(".")
	if dir, err := os.UserConfigDir(); err == nil {
		viper.AddConfigPath(filepath.Join(dir, appDirName))
	}

	viper.SetDefault("auto-download", true)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("reading settings file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode settings: %w", err)
	}

	if cfg.ModsFolder == "" {
		return Config{}, fmt.Errorf("mods folder is not set; pass --mods-folder or set mods-folder in settings.toml")
	}
	if info, err := os.Stat(cfg.ModsFolder); err != nil || !info.IsDir() {
		return Config{}, fmt.Errorf("mods folder %s is not a directory", cfg.ModsFolder)
	}

	if cfg.PacksFolder == "" {
		cfg.PacksFolder = defaultAppPath("packs")
	}
	if cfg.CacheFolder == "" {
		cfg.CacheFolder = defaultAppPath("cache")
	}
	for _, dir := range []string{cfg.PacksFolder, cfg.CacheFolder} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return Config{}, fmt.Errorf("creating %s: %w", dir, err)
		}
	}

	return cfg, nil
}

func defaultAppPath(sub string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return sub
	}
	return filepath.Join(dir, appDirName, sub)
}
