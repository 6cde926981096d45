package util

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/vidstrip/vidstrip/filesystem"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("theater mode"), ShouldEqual, "Theater mode")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestDelete(t *testing.T) {
	Convey("Given a directory tree in memory", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()
		So(fs.MkdirAll("/tmp/vidstrip/sock", 0o755), ShouldBeNil)
		So(afero.WriteFile(fs, "/tmp/vidstrip/sock/mpv-1.sock", []byte{}, 0o644), ShouldBeNil)
		So(afero.WriteFile(fs, "/tmp/vidstrip/notes", []byte("x"), 0o644), ShouldBeNil)

		Convey("Deleting a file leaves its siblings", func() {
			So(Delete("/tmp/vidstrip/notes"), ShouldBeNil)
			So(filesystem.IsFile("/tmp/vidstrip/notes"), ShouldBeFalse)
			So(filesystem.IsFile("/tmp/vidstrip/sock/mpv-1.sock"), ShouldBeTrue)
		})

		Convey("Deleting a directory removes its contents", func() {
			So(Delete("/tmp/vidstrip"), ShouldBeNil)
			exists, err := afero.Exists(fs, "/tmp/vidstrip")
			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)
		})

		Convey("Deleting a missing path fails", func() {
			So(Delete("/tmp/missing"), ShouldNotBeNil)
		})
	})
}

func TestStack(t *testing.T) {
	Convey("Stack", t, func() {
		var s Stack[string]
		s.Push("loading")
		s.Push("playing")
		So(s.Len(), ShouldEqual, 2)
		So(s.Peek(), ShouldEqual, "playing")
		So(s.Pop(), ShouldEqual, "playing")
		So(s.Pop(), ShouldEqual, "loading")
		So(s.Pop(), ShouldEqual, "")

		s.Push("jump")
		s.Clear()
		So(s.Len(), ShouldEqual, 0)
	})
}
