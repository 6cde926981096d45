package playback

import (
	"strings"
)

// Focus is the kind of element holding keyboard focus in the host UI.
type Focus uint8

const (
	FocusNone Focus = iota
	FocusButton
	FocusTextInput
)

// KeyEvent is a key press as delivered by the host UI.
type KeyEvent struct {
	// Key uses DOM key names: " ", "k", "ArrowLeft", ...
	Key   string
	Focus Focus
}

var keyCommands = map[string]Command{
	" ":          CmdTogglePlay,
	"k":          CmdTogglePlay,
	"c":          CmdToggleCaptions,
	"f":          CmdToggleFullScreen,
	"t":          CmdToggleTheater,
	"i":          CmdToggleMiniPlayer,
	"m":          CmdToggleMute,
	"j":          CmdSkipBackward,
	"arrowleft":  CmdSkipBackward,
	"l":          CmdSkipForward,
	"arrowright": CmdSkipForward,
}

// CommandForKey maps a key name to its command, case-insensitively.
func CommandForKey(key string) (Command, bool) {
	cmd, ok := keyCommands[strings.ToLower(key)]
	return cmd, ok
}

// Bridge is the controller's input adapter. It owns every listener it
// registers on the media and host and removes exactly those on Unbind.
type Bridge struct {
	c        *Controller
	bound    bool
	unlisten []func()
}

func (b *Bridge) Bound() bool {
	return b.bound
}

// Bind subscribes to the attached media and host. Repeated calls are no-ops.
func (b *Bridge) Bind() {
	if b.bound {
		return
	}
	b.bound = true

	if m := b.c.media; m != nil {
		for event, fn := range map[MediaEvent]func(){
			EventLoadedData:            b.c.onLoadedData,
			EventTimeUpdate:            b.c.onTimeUpdate,
			EventPlay:                  b.c.onPlay,
			EventPause:                 b.c.onPause,
			EventEnded:                 b.c.onPause,
			EventEnterPictureInPicture: b.c.onEnterPictureInPicture,
			EventLeavePictureInPicture: b.c.onLeavePictureInPicture,
			EventVolumeChange:          b.c.onVolumeChange,
			EventRateChange:            b.c.onRateChange,
		} {
			b.unlisten = append(b.unlisten, m.Listen(event, fn))
		}
	}

	if h := b.c.host; h != nil {
		b.unlisten = append(b.unlisten, h.Listen(EventFullscreenChange, b.c.onFullscreenChange))
	}
}

// Unbind removes every registration made by Bind.
func (b *Bridge) Unbind() {
	if !b.bound {
		return
	}

	for _, unlisten := range b.unlisten {
		unlisten()
	}
	b.unlisten = nil
	b.bound = false
}

// HandleKey routes a key press to its command. It reports whether the key
// was consumed.
func (b *Bridge) HandleKey(ev KeyEvent) bool {
	if !b.bound || ev.Focus == FocusTextInput {
		return false
	}

	if ev.Key == " " && ev.Focus == FocusButton {
		return false
	}

	cmd, ok := CommandForKey(ev.Key)
	if !ok {
		return false
	}

	b.c.Execute(cmd)
	return true
}

// HandleSurfaceClick toggles playback, like a click on the video itself.
func (b *Bridge) HandleSurfaceClick() {
	if !b.bound {
		return
	}
	b.c.TogglePlay()
}

func (b *Bridge) HandlePointerDown(ev PointerEvent) bool {
	if !b.bound {
		return false
	}
	return b.c.scrubber.PointerDown(ev)
}

func (b *Bridge) HandlePointerMove(ev PointerEvent) {
	if !b.bound {
		return
	}
	b.c.scrubber.PointerMove(ev)
}

func (b *Bridge) HandlePointerUp(ev PointerEvent) {
	if !b.bound {
		return
	}
	b.c.scrubber.PointerUp(ev)
}

func (b *Bridge) HandlePointerLeave() {
	if !b.bound {
		return
	}
	b.c.scrubber.PointerLeave()
}

func (c *Controller) onLoadedData() {
	if c.media == nil {
		return
	}

	total := knownDuration(c.media.Duration())
	c.store.update(func(s *Snapshot) {
		s.Playback.TotalTime = total
	})
}

func (c *Controller) onTimeUpdate() {
	if c.media == nil {
		return
	}

	current := c.media.CurrentTime()
	progress := fractionOf(current, c.media.Duration())
	c.store.update(func(s *Snapshot) {
		s.Playback.CurrentTime = current
		// The pointer owns the indicator while scrubbing.
		if !s.Scrub.Active {
			s.Timeline.ProgressFraction = progress
		}
	})
}

func (c *Controller) onPlay() {
	c.store.update(func(s *Snapshot) {
		s.Playback.Paused = false
	})
}

func (c *Controller) onPause() {
	c.store.update(func(s *Snapshot) {
		s.Playback.Paused = true
	})
}

func (c *Controller) onEnterPictureInPicture() {
	c.store.update(func(s *Snapshot) {
		s.UI.MiniPlayer = true
	})
}

func (c *Controller) onLeavePictureInPicture() {
	c.store.update(func(s *Snapshot) {
		s.UI.MiniPlayer = false
	})
}

// onVolumeChange reconciles volume changes made outside the controller.
func (c *Controller) onVolumeChange() {
	if c.media == nil {
		return
	}

	muted, volume := c.media.Muted(), c.media.Volume()
	c.store.update(func(s *Snapshot) {
		s.Playback.Muted = muted
		s.Playback.Volume = volume
	})
}

func (c *Controller) onRateChange() {
	if c.media == nil {
		return
	}

	rate := c.media.PlaybackRate()
	c.store.update(func(s *Snapshot) {
		s.Playback.PlaybackRate = rate
	})
}

// onFullscreenChange trusts the host, whoever triggered the change.
// Fullscreen wins over theater and the mini-player.
func (c *Controller) onFullscreenChange() {
	if c.host == nil {
		return
	}

	active := c.host.FullscreenActive()
	c.store.update(func(s *Snapshot) {
		s.UI.MiniPlayer = false
		if active {
			s.UI.Mode = ModeFullScreen
		} else {
			s.UI.Mode = ModeNormal
		}
	})
}
