// Package config registers vidstrip settings and loads them through viper.
package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
	"github.com/vidstrip/vidstrip/constant"
	"github.com/vidstrip/vidstrip/filesystem"
	"github.com/vidstrip/vidstrip/where"
)

// EnvKeyReplacer maps config keys to environment variable suffixes.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup loads vidstrip.toml from where.Config on top of the registered defaults.
// A missing file is not an error. VIDSTRIP_* variables override both.
func Setup() error {
	viper.SetFs(filesystem.API())
	viper.SetConfigName(constant.Vidstrip)
	viper.SetConfigType("toml")
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Vidstrip)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, k := range EnvExposed {
		viper.MustBindEnv(k)
	}

	viper.SetTypeByDefaultValue(true)
	for k, field := range Default {
		viper.SetDefault(k, field.Value)
	}

	err := viper.ReadInConfig()
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return nil
	}
	return err
}
