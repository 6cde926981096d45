package player

import (
	"errors"
	"math"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidstrip/vidstrip/playback"
)

type fakeTransport struct {
	commands [][]any
	fail     error
}

func (f *fakeTransport) Command(args ...any) (any, error) {
	f.commands = append(f.commands, args)
	return nil, f.fail
}

func (f *fakeTransport) last() []any {
	if len(f.commands) == 0 {
		return nil
	}
	return f.commands[len(f.commands)-1]
}

func TestElementWrites(t *testing.T) {
	Convey("Given an element over a fake transport", t, func() {
		tr := &fakeTransport{}
		e := NewElement(tr)

		Convey("Initial state should be paused with unknown duration", func() {
			So(e.Paused(), ShouldBeTrue)
			So(math.IsNaN(e.Duration()), ShouldBeTrue)
			So(e.Volume(), ShouldEqual, 1)
			So(e.PlaybackRate(), ShouldEqual, 1)
		})

		Convey("Volume should be scaled to mpv's percent range and clamped", func() {
			e.SetVolume(0.42)
			So(tr.last(), ShouldResemble, []any{"set_property", "volume", 42.0})
			So(e.Volume(), ShouldEqual, 0.42)

			e.SetVolume(3)
			So(tr.last(), ShouldResemble, []any{"set_property", "volume", 100.0})
			So(e.Volume(), ShouldEqual, 1)
		})

		Convey("Seeks should be clamped to the known duration", func() {
			e.HandleEvent("duration", 120.0)
			e.SetCurrentTime(500)
			So(tr.last(), ShouldResemble, []any{"seek", 120.0, "absolute+exact"})
			So(e.CurrentTime(), ShouldEqual, 120)

			e.SetCurrentTime(-4)
			So(tr.last(), ShouldResemble, []any{"seek", 0.0, "absolute+exact"})
		})

		Convey("Play and pause should write the pause property", func() {
			e.Play()
			So(tr.last(), ShouldResemble, []any{"set_property", "pause", false})
			So(e.Paused(), ShouldBeFalse)
			e.Pause()
			So(tr.last(), ShouldResemble, []any{"set_property", "pause", true})
		})

		Convey("Non-positive rates should be ignored", func() {
			e.SetPlaybackRate(0)
			So(tr.commands, ShouldBeEmpty)
			e.SetPlaybackRate(1.5)
			So(tr.last(), ShouldResemble, []any{"set_property", "speed", 1.5})
		})

		Convey("The mini-player should shrink and pin the window", func() {
			e = NewElement(tr, WithMiniScale(30))
			So(e.RequestPictureInPicture(), ShouldBeNil)
			So(tr.commands, ShouldResemble, [][]any{
				{"set_property", "window-scale", 0.3},
				{"set_property", "ontop", true},
			})
		})

		Convey("Fullscreen should leave an active mini-player first", func() {
			e.HandleEvent("ontop", true)
			So(e.RequestFullscreen(), ShouldBeNil)
			So(tr.commands, ShouldResemble, [][]any{
				{"set_property", "ontop", false},
				{"set_property", "window-scale", 1.0},
				{"set_property", "fullscreen", true},
			})
		})

		Convey("Host requests should surface transport errors", func() {
			tr.fail = errors.New("socket closed")
			So(e.RequestFullscreen(), ShouldNotBeNil)
			So(e.RequestPictureInPicture(), ShouldNotBeNil)
		})

		Convey("Disabled picture-in-picture should be reported", func() {
			So(NewElement(tr, WithPictureInPicture(false)).PictureInPictureEnabled(), ShouldBeFalse)
		})
	})
}

func TestElementEvents(t *testing.T) {
	Convey("Given an element with recording listeners", t, func() {
		e := NewElement(&fakeTransport{})
		var media []playback.MediaEvent
		var host []playback.HostEvent
		for _, ev := range []playback.MediaEvent{
			playback.EventLoadedData, playback.EventTimeUpdate, playback.EventPlay, playback.EventPause,
			playback.EventEnterPictureInPicture, playback.EventLeavePictureInPicture,
			playback.EventVolumeChange, playback.EventRateChange, playback.EventEnded,
		} {
			e.Listen(ev, func() { media = append(media, ev) })
		}
		e.Host().Listen(playback.EventFullscreenChange, func() { host = append(host, playback.EventFullscreenChange) })

		Convey("Property changes should map to media events", func() {
			e.HandleEvent("duration", 90.0)
			e.HandleEvent("time-pos", 10.0)
			e.HandleEvent("pause", false)
			e.HandleEvent("pause", true)
			e.HandleEvent("volume", 35.0)
			e.HandleEvent("mute", true)
			e.HandleEvent("speed", 2.0)
			e.HandleEvent("ontop", true)
			e.HandleEvent("ontop", false)
			e.HandleEvent("eof-reached", true)

			So(media, ShouldResemble, []playback.MediaEvent{
				playback.EventLoadedData, playback.EventTimeUpdate, playback.EventPlay, playback.EventPause,
				playback.EventVolumeChange, playback.EventVolumeChange, playback.EventRateChange,
				playback.EventEnterPictureInPicture, playback.EventLeavePictureInPicture, playback.EventEnded,
			})
			So(e.Duration(), ShouldEqual, 90)
			So(e.CurrentTime(), ShouldEqual, 10)
			So(e.Volume(), ShouldEqual, 0.35)
			So(e.Muted(), ShouldBeTrue)
			So(e.PlaybackRate(), ShouldEqual, 2)
		})

		Convey("Unavailable values should be ignored", func() {
			e.HandleEvent("time-pos", nil)
			e.HandleEvent("duration", nil)
			e.HandleEvent("eof-reached", false)
			So(media, ShouldBeEmpty)
		})

		Convey("Fullscreen changes should reach host listeners", func() {
			e.HandleEvent("fullscreen", true)
			So(host, ShouldHaveLength, 1)
			So(e.FullscreenActive(), ShouldBeTrue)
			So(e.Host().FullscreenActive(), ShouldBeTrue)
		})

		Convey("The text track should follow the selected subtitle", func() {
			_, ok := e.TextTrack()
			So(ok, ShouldBeFalse)

			e.HandleEvent("sid", 1.0)
			track, ok := e.TextTrack()
			So(ok, ShouldBeTrue)
			So(track.Mode(), ShouldEqual, playback.TrackHidden)

			track.SetMode(playback.TrackShowing)
			So(track.Mode(), ShouldEqual, playback.TrackShowing)

			e.HandleEvent("sub-visibility", false)
			So(track.Mode(), ShouldEqual, playback.TrackHidden)

			e.HandleEvent("sid", false)
			_, ok = e.TextTrack()
			So(ok, ShouldBeFalse)
		})

		Convey("A dispatcher should receive every emission", func() {
			var queued []func()
			e = NewElement(&fakeTransport{}, WithDispatcher(func(fn func()) { queued = append(queued, fn) }))
			fired := 0
			e.Listen(playback.EventTimeUpdate, func() { fired++ })

			e.HandleEvent("time-pos", 1.0)
			So(fired, ShouldEqual, 0)
			So(queued, ShouldHaveLength, 1)

			queued[0]()
			So(fired, ShouldEqual, 1)
		})
	})
}

func TestElementDrivesController(t *testing.T) {
	Convey("Given a controller mounted on an element", t, func() {
		tr := &fakeTransport{}
		e := NewElement(tr)
		c := playback.New(playback.Options{Features: playback.AllFeatures()})
		c.Mount(e, e.Host())
		e.HandleEvent("duration", 60.0)

		Convey("mpv confirming play should update the store", func() {
			c.Execute(playback.CmdTogglePlay)
			So(tr.last(), ShouldResemble, []any{"set_property", "pause", false})
			e.HandleEvent("pause", false)
			So(c.Store().Playback().Paused, ShouldBeFalse)
		})

		Convey("Time updates should move the progress indicator", func() {
			e.HandleEvent("time-pos", 15.0)
			So(c.Store().Timeline().ProgressFraction, ShouldEqual, 0.25)
			So(c.Store().Playback().TotalTime, ShouldEqual, 60)
		})

		Convey("Fullscreen from the mpv window should reach the store", func() {
			e.HandleEvent("fullscreen", true)
			So(c.Store().UI().Mode, ShouldEqual, playback.ModeFullScreen)
		})
	})
}
