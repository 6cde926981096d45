package log

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/vidstrip/vidstrip/filesystem"
	"github.com/vidstrip/vidstrip/key"
	"github.com/vidstrip/vidstrip/where"
)

func TestSetup(t *testing.T) {
	Convey("Given an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()

		Convey("When logging is disabled", func() {
			viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)

			Convey("Nothing should be enabled and writers should discard", func() {
				So(Enabled(), ShouldBeFalse)
				w := Writer("mpv")
				n, err := w.Write([]byte("hello\n"))
				So(err, ShouldBeNil)
				So(n, ShouldEqual, 6)
				So(w.Close(), ShouldBeNil)
			})
		})

		Convey("When logging is enabled", func() {
			viper.Set(key.LogsWrite, true)
			viper.Set(key.LogsLevel, "debug")
			defer viper.Set(key.LogsWrite, false)
			So(Setup(), ShouldBeNil)

			Convey("A dated log file should be created", func() {
				So(Enabled(), ShouldBeTrue)
				entries, err := filesystem.API().ReadDir(where.Logs())
				So(err, ShouldBeNil)
				So(entries, ShouldHaveLength, 1)
			})
		})
	})
}
