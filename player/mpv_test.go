package player

import (
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBuildArgs(t *testing.T) {
	Convey("Given launch options", t, func() {
		opts := LaunchOptions{Source: "/videos/talk.mp4"}

		Convey("The source should come last after a flag terminator", func() {
			args, err := buildArgs(opts)
			So(err, ShouldBeNil)
			So(args[len(args)-2:], ShouldResemble, []string{"--", "/videos/talk.mp4"})
		})

		Convey("Playback should start paused with captions hidden", func() {
			args := lo.Must(buildArgs(opts))
			So(args, ShouldContain, "--pause")
			So(args, ShouldContain, "--sub-visibility=no")
		})

		Convey("The title should default to the file name", func() {
			args := lo.Must(buildArgs(opts))
			So(args, ShouldContain, "--force-media-title=talk.mp4")
		})

		Convey("A captions file should be loaded", func() {
			opts.CaptionsFile = "/videos/talk.en.vtt"
			args := lo.Must(buildArgs(opts))
			So(args, ShouldContain, "--sub-file=/videos/talk.en.vtt")
		})

		Convey("Extra arguments must be long flags", func() {
			opts.ExtraArgs = []string{"--hwdec=auto"}
			So(lo.Must(buildArgs(opts)), ShouldContain, "--hwdec=auto")

			opts.ExtraArgs = []string{"/etc/passwd"}
			_, err := buildArgs(opts)
			So(err, ShouldNotBeNil)
		})

		Convey("An empty source should be rejected", func() {
			_, err := buildArgs(LaunchOptions{})
			So(err, ShouldNotBeNil)
		})
	})
}

func TestSanitizeMediaTarget(t *testing.T) {
	Convey("sanitizeMediaTarget", t, func() {
		Convey("Should accept http, https and file URLs", func() {
			for _, u := range []string{"http://example.com/a.mp4", "https://example.com/a.webm", "file:///tmp/a.mkv"} {
				got, err := sanitizeMediaTarget(u)
				So(err, ShouldBeNil)
				So(got, ShouldEqual, u)
			}
		})

		Convey("Should clean local paths", func() {
			So(lo.Must(sanitizeMediaTarget(" ./videos/../videos/a.mp4 ")), ShouldEqual, "videos/a.mp4")
		})

		Convey("Should reject flags, control characters and unknown schemes", func() {
			for _, u := range []string{"--script=evil.lua", "a.mp4\nquit", "ftp://example.com/a.mp4"} {
				_, err := sanitizeMediaTarget(u)
				So(err, ShouldNotBeNil)
			}
		})
	})
}

func TestSanitizeTitle(t *testing.T) {
	Convey("sanitizeTitle should flatten whitespace and drop NUL", t, func() {
		So(sanitizeTitle("  Big\tBuck\nBunny\x00 "), ShouldEqual, "Big Buck Bunny")
	})
}
