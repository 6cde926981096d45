// Package where resolves the directories vidstrip reads from and writes to.
package where

import (
	"os"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vidstrip/vidstrip/constant"
	"github.com/vidstrip/vidstrip/filesystem"
	"github.com/vidstrip/vidstrip/key"
)

// EnvConfigPath overrides the configuration directory.
const EnvConfigPath = "VIDSTRIP_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config is the directory holding vidstrip.toml.
// It follows os.UserConfigDir unless VIDSTRIP_CONFIG_PATH is set.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Vidstrip))
}

// Cache is the directory for the version check cache.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Vidstrip))
}

// Logs is the directory for dated log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Previews is the directory holding timeline preview frames.
// The previews.dir key takes precedence over the default next to the config.
func Previews() string {
	if dir := viper.GetString(key.PreviewsDir); dir != "" {
		return dir
	}
	return ensureDir(filepath.Join(Config(), "previews"))
}

// History is the file holding resume positions.
func History() string {
	return filepath.Join(Config(), "history.json")
}

// Temp is a scratch directory for IPC sockets.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Vidstrip))
}
