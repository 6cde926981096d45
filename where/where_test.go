package where

import (
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vidstrip/vidstrip/filesystem"
	"github.com/vidstrip/vidstrip/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		for name, fn := range map[string]func() string{
			"Config": Config,
			"Cache":  Cache,
			"Logs":   Logs,
			"Temp":   Temp,
		} {
			Convey(name+"() should create its directory", func() {
				path := fn()
				So(path, ShouldNotBeEmpty)
				So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
			})
		}

		Convey("Config() should honor the override variable", func() {
			t.Setenv(EnvConfigPath, "/custom/vidstrip")
			So(Config(), ShouldEqual, "/custom/vidstrip")
			So(Logs(), ShouldEqual, filepath.Join("/custom/vidstrip", "logs"))
		})

		Convey("Previews()", func() {
			Convey("Should default to a directory next to the config", func() {
				viper.Set(key.PreviewsDir, "")
				So(Previews(), ShouldEqual, filepath.Join(Config(), "previews"))
			})

			Convey("Should prefer the configured directory", func() {
				viper.Set(key.PreviewsDir, "/srv/frames")
				defer viper.Set(key.PreviewsDir, "")
				So(Previews(), ShouldEqual, "/srv/frames")
			})
		})
	})
}
