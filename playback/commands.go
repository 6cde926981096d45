package playback

import (
	"github.com/vidstrip/vidstrip/log"
)

// Command is a single user intent.
type Command uint8

const (
	CmdNone Command = iota
	CmdTogglePlay
	CmdToggleMute
	CmdToggleCaptions
	CmdCyclePlaybackRate
	CmdToggleTheater
	CmdToggleFullScreen
	CmdToggleMiniPlayer
	CmdSkipBackward
	CmdSkipForward
)

// Execute runs the handler behind cmd.
func (c *Controller) Execute(cmd Command) {
	switch cmd {
	case CmdTogglePlay:
		c.TogglePlay()
	case CmdToggleMute:
		c.ToggleMute()
	case CmdToggleCaptions:
		c.ToggleCaptions()
	case CmdCyclePlaybackRate:
		c.CyclePlaybackRate()
	case CmdToggleTheater:
		c.ToggleTheater()
	case CmdToggleFullScreen:
		c.ToggleFullScreen()
	case CmdToggleMiniPlayer:
		c.ToggleMiniPlayer()
	case CmdSkipBackward:
		c.Skip(-c.opts.SkipSeconds)
	case CmdSkipForward:
		c.Skip(c.opts.SkipSeconds)
	}
}

// TogglePlay plays a paused element and pauses a playing one. The store
// follows through the play and pause events.
func (c *Controller) TogglePlay() {
	if c.media == nil {
		return
	}

	if c.media.Paused() {
		c.media.Play()
	} else {
		c.media.Pause()
	}
}

// ToggleMute flips the element's mute state.
func (c *Controller) ToggleMute() {
	if c.media == nil {
		return
	}

	muted := !c.media.Muted()
	c.media.SetMuted(muted)
	c.store.update(func(s *Snapshot) {
		s.Playback.Muted = muted
	})
}

// SetVolume applies a slider value. Zero mutes without touching the
// remembered volume; any other value unmutes and becomes the volume.
func (c *Controller) SetVolume(v float64) {
	if c.media == nil {
		return
	}

	v = clamp01(v)
	if v == 0 {
		c.media.SetMuted(true)
		c.store.update(func(s *Snapshot) {
			s.Playback.Muted = true
		})
		return
	}

	if c.media.Muted() {
		c.media.SetMuted(false)
	}
	c.media.SetVolume(v)
	c.store.update(func(s *Snapshot) {
		s.Playback.Muted = false
		s.Playback.Volume = v
	})
}

// ToggleCaptions switches the first text track between hidden and showing.
func (c *Controller) ToggleCaptions() {
	if !c.opts.Features.Captions || c.media == nil {
		return
	}

	track, ok := c.media.TextTrack()
	if !ok {
		return
	}

	hidden := track.Mode() == TrackHidden
	if hidden {
		track.SetMode(TrackShowing)
	} else {
		track.SetMode(TrackHidden)
	}

	c.store.update(func(s *Snapshot) {
		s.Playback.CaptionsOn = hidden
	})
}

// NextPlaybackRate steps rate by a quarter and wraps to 0.25 once the rate
// has gone past 2x.
func NextPlaybackRate(rate float64) float64 {
	if rate > 2 {
		return 0.25
	}
	return rate + 0.25
}

// CyclePlaybackRate advances the playback rate one step.
func (c *Controller) CyclePlaybackRate() {
	if !c.opts.Features.PlaybackSpeed || c.media == nil {
		return
	}

	rate := NextPlaybackRate(c.store.Playback().PlaybackRate)
	c.media.SetPlaybackRate(rate)
	c.store.update(func(s *Snapshot) {
		s.Playback.PlaybackRate = rate
	})
}

// ToggleTheater flips theater mode, leaving full-screen if it was active.
func (c *Controller) ToggleTheater() {
	if !c.opts.Features.Theater {
		return
	}

	c.store.update(func(s *Snapshot) {
		if s.UI.Mode == ModeTheater {
			s.UI.Mode = ModeNormal
		} else {
			s.UI.Mode = ModeTheater
		}
	})
}

// ToggleFullScreen asks the host to enter or leave fullscreen. The store only
// changes when the host reports the change.
func (c *Controller) ToggleFullScreen() {
	if !c.opts.Features.FullScreen || c.host == nil {
		return
	}

	var err error
	if c.host.FullscreenActive() {
		err = c.host.ExitFullscreen()
	} else {
		err = c.host.RequestFullscreen()
	}

	if err != nil {
		log.Debugf("fullscreen request ignored: %v", err)
	}
}

// ToggleMiniPlayer asks the host to enter or leave picture-in-picture.
func (c *Controller) ToggleMiniPlayer() {
	if !c.MiniPlayerAvailable() {
		return
	}

	var err error
	if c.host.PictureInPictureActive() {
		err = c.host.ExitPictureInPicture()
	} else {
		err = c.host.RequestPictureInPicture()
	}

	if err != nil {
		log.Debugf("picture-in-picture request ignored: %v", err)
	}
}

// Skip moves the playhead by delta seconds. The element clamps the result.
func (c *Controller) Skip(delta float64) {
	if c.media == nil {
		return
	}
	c.media.SetCurrentTime(c.media.CurrentTime() + delta)
}

// SeekTo moves the playhead to an absolute position.
func (c *Controller) SeekTo(seconds float64) {
	if c.media == nil {
		return
	}
	c.media.SetCurrentTime(seconds)
}
