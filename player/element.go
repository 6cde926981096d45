package player

import (
	"math"
	"sync"

	"github.com/samber/lo"
	"github.com/vidstrip/vidstrip/log"
	"github.com/vidstrip/vidstrip/playback"
)

// Transport carries commands to a running player.
type Transport interface {
	Command(args ...any) (any, error)
}

// Option configures an Element.
type Option func(*Element)

// WithDispatcher routes every emitted event through dispatch.
// The TUI passes a function that hands the event to its own update loop.
func WithDispatcher(dispatch func(func())) Option {
	return func(e *Element) {
		e.dispatch = dispatch
	}
}

// WithMiniScale sets the window scale of the mini-player in percent.
func WithMiniScale(percent int) Option {
	return func(e *Element) {
		e.miniScale = float64(lo.Clamp(percent, 10, 100)) / 100
	}
}

// WithPictureInPicture enables or disables the mini-player window.
func WithPictureInPicture(enabled bool) Option {
	return func(e *Element) {
		e.pipEnabled = enabled
	}
}

// Element mirrors mpv properties into a local cache and exposes them as
// playback.Media and playback.Host. Writes are sent to mpv and applied to the
// cache at once. Events fire when mpv confirms a change.
type Element struct {
	transport Transport
	dispatch  func(func())

	mu         sync.RWMutex
	timePos    float64
	duration   float64
	paused     bool
	volume     float64
	muted      bool
	speed      float64
	fullscreen bool
	ontop      bool
	hasSubs    bool
	trackMode  playback.TrackMode

	miniScale  float64
	pipEnabled bool

	media playback.Emitter[playback.MediaEvent]
	host  playback.Emitter[playback.HostEvent]
}

var (
	_ playback.Media = (*Element)(nil)
	_ playback.Host  = hostView{}
)

// NewElement wraps t. Duration stays NaN until mpv reports it.
func NewElement(t Transport, options ...Option) *Element {
	e := &Element{
		transport:  t,
		dispatch:   func(fn func()) { fn() },
		duration:   math.NaN(),
		paused:     true,
		volume:     1,
		speed:      1,
		trackMode:  playback.TrackHidden,
		miniScale:  0.4,
		pipEnabled: true,
	}

	for _, option := range options {
		option(e)
	}

	return e
}

func (e *Element) set(property string, value any) {
	if _, err := e.transport.Command("set_property", property, value); err != nil {
		log.Warnf("set %s=%v: %v", property, value, err)
	}
}

func (e *Element) setErr(property string, value any) error {
	_, err := e.transport.Command("set_property", property, value)
	return err
}

func (e *Element) emitMedia(event playback.MediaEvent) {
	e.dispatch(func() { e.media.Emit(event) })
}

func (e *Element) emitHost(event playback.HostEvent) {
	e.dispatch(func() { e.host.Emit(event) })
}

func (e *Element) CurrentTime() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.timePos
}

// SetCurrentTime seeks to an absolute position clamped to the known duration.
func (e *Element) SetCurrentTime(seconds float64) {
	if math.IsNaN(seconds) {
		return
	}

	e.mu.Lock()
	seconds = math.Max(0, seconds)
	if d := e.duration; !math.IsNaN(d) && !math.IsInf(d, 0) && d > 0 {
		seconds = math.Min(seconds, d)
	}
	e.timePos = seconds
	e.mu.Unlock()

	if _, err := e.transport.Command("seek", seconds, "absolute+exact"); err != nil {
		log.Warnf("seek to %.2f: %v", seconds, err)
	}
}

func (e *Element) Duration() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.duration
}

// Volume is mpv's volume mapped from 0..100 to 0..1.
func (e *Element) Volume() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.volume
}

func (e *Element) SetVolume(v float64) {
	if math.IsNaN(v) {
		return
	}
	v = lo.Clamp(v, 0, 1)

	e.mu.Lock()
	e.volume = v
	e.mu.Unlock()

	e.set("volume", math.Round(v*100))
}

func (e *Element) Muted() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.muted
}

func (e *Element) SetMuted(muted bool) {
	e.mu.Lock()
	e.muted = muted
	e.mu.Unlock()

	e.set("mute", muted)
}

func (e *Element) PlaybackRate() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.speed
}

func (e *Element) SetPlaybackRate(rate float64) {
	if math.IsNaN(rate) || rate <= 0 {
		return
	}

	e.mu.Lock()
	e.speed = rate
	e.mu.Unlock()

	e.set("speed", rate)
}

func (e *Element) Paused() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.paused
}

func (e *Element) Play() {
	e.setPaused(false)
}

func (e *Element) Pause() {
	e.setPaused(true)
}

func (e *Element) setPaused(paused bool) {
	e.mu.Lock()
	e.paused = paused
	e.mu.Unlock()

	e.set("pause", paused)
}

// TextTrack returns the selected subtitle track. mpv exposes at most one at a time.
func (e *Element) TextTrack() (playback.TextTrack, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if !e.hasSubs {
		return nil, false
	}
	return subtitleTrack{e}, true
}

func (e *Element) Listen(event playback.MediaEvent, fn func()) func() {
	return e.media.Listen(event, fn)
}

type subtitleTrack struct {
	e *Element
}

func (t subtitleTrack) Mode() playback.TrackMode {
	t.e.mu.RLock()
	defer t.e.mu.RUnlock()
	return t.e.trackMode
}

func (t subtitleTrack) SetMode(mode playback.TrackMode) {
	t.e.mu.Lock()
	t.e.trackMode = mode
	t.e.mu.Unlock()

	t.e.set("sub-visibility", mode == playback.TrackShowing)
}

// Host returns the element as a playback.Host. Element's own Listen takes
// media events, so host listeners go through this view.
func (e *Element) Host() playback.Host {
	return hostView{e}
}

type hostView struct {
	*Element
}

func (h hostView) Listen(event playback.HostEvent, fn func()) func() {
	return h.Element.host.Listen(event, fn)
}

func (e *Element) FullscreenActive() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.fullscreen
}

// RequestFullscreen leaves the mini-player first, the way a browser does.
func (e *Element) RequestFullscreen() error {
	if e.PictureInPictureActive() {
		if err := e.ExitPictureInPicture(); err != nil {
			return err
		}
	}
	return e.setErr("fullscreen", true)
}

func (e *Element) ExitFullscreen() error {
	return e.setErr("fullscreen", false)
}

func (e *Element) PictureInPictureEnabled() bool {
	return e.pipEnabled
}

// PictureInPictureActive reports whether the window is pinned on top.
func (e *Element) PictureInPictureActive() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.ontop
}

// RequestPictureInPicture shrinks the window and pins it above others.
func (e *Element) RequestPictureInPicture() error {
	if e.FullscreenActive() {
		if err := e.ExitFullscreen(); err != nil {
			return err
		}
	}
	if err := e.setErr("window-scale", e.miniScale); err != nil {
		return err
	}
	return e.setErr("ontop", true)
}

func (e *Element) ExitPictureInPicture() error {
	if err := e.setErr("ontop", false); err != nil {
		return err
	}
	return e.setErr("window-scale", 1.0)
}

// HandleEvent applies an observed property change or mpv event to the cache
// and emits the matching playback event. It is the EventListener callback.
func (e *Element) HandleEvent(name string, data any) {
	switch name {
	case "time-pos":
		if v, ok := data.(float64); ok {
			e.mu.Lock()
			e.timePos = v
			e.mu.Unlock()
			e.emitMedia(playback.EventTimeUpdate)
		}
	case "duration":
		if v, ok := data.(float64); ok && v > 0 {
			e.mu.Lock()
			e.duration = v
			e.mu.Unlock()
			e.emitMedia(playback.EventLoadedData)
		}
	case "file-loaded":
		e.emitMedia(playback.EventLoadedData)
	case "pause":
		if v, ok := data.(bool); ok {
			e.mu.Lock()
			e.paused = v
			e.mu.Unlock()
			e.emitMedia(lo.Ternary(v, playback.EventPause, playback.EventPlay))
		}
	case "volume":
		if v, ok := data.(float64); ok {
			e.mu.Lock()
			e.volume = lo.Clamp(v/100, 0, 1)
			e.mu.Unlock()
			e.emitMedia(playback.EventVolumeChange)
		}
	case "mute":
		if v, ok := data.(bool); ok {
			e.mu.Lock()
			e.muted = v
			e.mu.Unlock()
			e.emitMedia(playback.EventVolumeChange)
		}
	case "speed":
		if v, ok := data.(float64); ok && v > 0 {
			e.mu.Lock()
			e.speed = v
			e.mu.Unlock()
			e.emitMedia(playback.EventRateChange)
		}
	case "fullscreen":
		if v, ok := data.(bool); ok {
			e.mu.Lock()
			e.fullscreen = v
			e.mu.Unlock()
			e.emitHost(playback.EventFullscreenChange)
		}
	case "ontop":
		if v, ok := data.(bool); ok {
			e.mu.Lock()
			e.ontop = v
			e.mu.Unlock()
			e.emitMedia(lo.Ternary(v, playback.EventEnterPictureInPicture, playback.EventLeavePictureInPicture))
		}
	case "sub-visibility":
		if v, ok := data.(bool); ok {
			e.mu.Lock()
			if v {
				e.trackMode = playback.TrackShowing
			} else if e.trackMode == playback.TrackShowing {
				e.trackMode = playback.TrackHidden
			}
			e.mu.Unlock()
		}
	case "sid":
		// a track id while a subtitle is selected, false otherwise
		_, selected := data.(float64)
		e.mu.Lock()
		e.hasSubs = selected
		e.mu.Unlock()
	case "eof-reached":
		if v, ok := data.(bool); ok && v {
			e.emitMedia(playback.EventEnded)
		}
	}
}
