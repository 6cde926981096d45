package playback

import (
	"math"

	"github.com/vidstrip/vidstrip/log"
)

// DefaultSkipSeconds is the step used by the skip key bindings.
const DefaultSkipSeconds = 5

// Options configures a Controller. They are fixed for its lifetime.
type Options struct {
	Features Features
	// Source is the media locator shown by renderers.
	Source string
	// Preview maps a timeline position to a preview asset key.
	// Defaults to BucketPreview(DefaultBucketSeconds).
	Preview PreviewFunc
	// SkipSeconds defaults to DefaultSkipSeconds.
	SkipSeconds float64
}

// Controller binds user intent, the media capability and the host modal
// state together. It owns its store, bridge and scrubber exclusively.
type Controller struct {
	opts Options

	store    *Store
	bridge   *Bridge
	scrubber *Scrubber

	media Media
	host  Host
}

// New creates a controller with nothing attached. Every command is a no-op
// until Mount supplies a media capability.
func New(opts Options) *Controller {
	if opts.Preview == nil {
		opts.Preview = BucketPreview(DefaultBucketSeconds)
	}
	if opts.SkipSeconds <= 0 {
		opts.SkipSeconds = DefaultSkipSeconds
	}

	c := &Controller{
		opts:  opts,
		store: NewStore(),
	}
	c.bridge = &Bridge{c: c}
	c.scrubber = &Scrubber{c: c}
	return c
}

func (c *Controller) Store() *Store        { return c.store }
func (c *Controller) Bridge() *Bridge      { return c.bridge }
func (c *Controller) Scrubber() *Scrubber  { return c.scrubber }
func (c *Controller) Features() Features   { return c.opts.Features }
func (c *Controller) Source() string       { return c.opts.Source }
func (c *Controller) SkipSeconds() float64 { return c.opts.SkipSeconds }

// PreviewKey returns the preview asset key for a timeline position.
func (c *Controller) PreviewKey(seconds float64) string {
	return c.opts.Preview(seconds)
}

// Mount attaches the media capability and host, binds the event bridge and
// seeds the store from the element. Calling Mount while mounted or without
// an element does nothing.
func (c *Controller) Mount(media Media, host Host) {
	if c.bridge.Bound() || media == nil {
		return
	}

	c.media = media
	c.host = host
	c.bridge.Bind()

	if track, ok := media.TextTrack(); ok {
		track.SetMode(TrackHidden)
	}

	fullscreen := host != nil && host.FullscreenActive()
	c.store.update(func(s *Snapshot) {
		s.Playback.Paused = media.Paused()
		s.Playback.Muted = media.Muted()
		s.Playback.Volume = media.Volume()
		s.Playback.PlaybackRate = media.PlaybackRate()
		s.Playback.CaptionsOn = false
		s.Playback.TotalTime = knownDuration(media.Duration())
		s.Playback.CurrentTime = media.CurrentTime()
		s.Timeline.ProgressFraction = fractionOf(media.CurrentTime(), media.Duration())
		if fullscreen {
			s.UI.Mode = ModeFullScreen
		}
	})

	log.Debugf("playback controller mounted for %q", c.opts.Source)
}

// Unmount removes every listener Mount registered and detaches the element.
func (c *Controller) Unmount() {
	if !c.bridge.Bound() {
		return
	}

	c.bridge.Unbind()
	c.media = nil
	c.host = nil
	c.store.update(func(s *Snapshot) {
		s.Scrub = ScrubState{}
		s.Timeline.Hovering = false
		s.Timeline.ThumbnailKey = ""
	})

	log.Debugf("playback controller unmounted for %q", c.opts.Source)
}

// MiniPlayerAvailable reports whether the mini-player control should be shown.
func (c *Controller) MiniPlayerAvailable() bool {
	return c.opts.Features.MiniPlayer && c.host != nil && c.host.PictureInPictureEnabled()
}

func (c *Controller) duration() float64 {
	if c.media == nil {
		return 0
	}
	return knownDuration(c.media.Duration())
}

// knownDuration maps NaN, infinite and negative durations to 0 (unknown).
func knownDuration(d float64) float64 {
	if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
		return 0
	}
	return d
}

// fractionOf returns t/d clamped to [0,1], or 0 when d is unknown.
func fractionOf(t, d float64) float64 {
	d = knownDuration(d)
	if d == 0 {
		return 0
	}
	return clamp01(t / d)
}
