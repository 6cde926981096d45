package history

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidstrip/vidstrip/filesystem"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestNormalize(t *testing.T) {
	Convey("URLs should be kept and paths made absolute", t, func() {
		So(Normalize("https://example.com/a.mp4"), ShouldEqual, "https://example.com/a.mp4")
		So(Normalize("/videos/../videos/a.mp4"), ShouldEqual, "/videos/a.mp4")
	})
}

func TestResumable(t *testing.T) {
	Convey("Only positions away from both ends should be resumable", t, func() {
		So((&Position{Time: 60, Duration: 120}).Resumable(), ShouldBeTrue)
		So((&Position{Time: 2, Duration: 120}).Resumable(), ShouldBeFalse)
		So((&Position{Time: 117, Duration: 120}).Resumable(), ShouldBeFalse)
		So((&Position{Time: 60, Duration: 0}).Resumable(), ShouldBeFalse)
	})
}

func TestHistory(t *testing.T) {
	Convey("Given a video stopped in the middle", t, func() {
		const source = "/videos/talk.mp4"
		So(Save(source, 42, 120), ShouldBeNil)

		Convey("It should be found again", func() {
			p, ok, err := Lookup(source)
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
			So(p.Time, ShouldEqual, 42)
			So(p.Duration, ShouldEqual, 120)
		})

		Convey("Saving it near the end should forget it", func() {
			So(Save(source, 119, 120), ShouldBeNil)

			_, ok, err := Lookup(source)
			So(err, ShouldBeNil)
			So(ok, ShouldBeFalse)
		})

		Convey("Removing it should forget it", func() {
			So(Remove(source), ShouldBeNil)

			saved, err := Get()
			So(err, ShouldBeNil)
			So(saved, ShouldNotContainKey, source)
		})
	})

	Convey("An unknown source should not be resumable", t, func() {
		_, ok, err := Lookup("/videos/never-played.mp4")
		So(err, ShouldBeNil)
		So(ok, ShouldBeFalse)
	})
}
