// Package playback implements the playback-state synchronization core: a state
// store, command handlers, an event bridge and a scrub/seek engine that drive an
// external media capability.
package playback

// MediaEvent names a lifecycle event emitted by a Media capability.
type MediaEvent string

const (
	EventLoadedData            MediaEvent = "loadeddata"
	EventTimeUpdate            MediaEvent = "timeupdate"
	EventPlay                  MediaEvent = "play"
	EventPause                 MediaEvent = "pause"
	EventEnterPictureInPicture MediaEvent = "enterpictureinpicture"
	EventLeavePictureInPicture MediaEvent = "leavepictureinpicture"
	EventVolumeChange          MediaEvent = "volumechange"
	EventRateChange            MediaEvent = "ratechange"
	EventEnded                 MediaEvent = "ended"
)

// HostEvent names an event emitted by the host environment.
type HostEvent string

const (
	EventFullscreenChange HostEvent = "fullscreenchange"
)

// TrackMode is the visibility of a text track.
type TrackMode string

const (
	TrackDisabled TrackMode = "disabled"
	TrackHidden   TrackMode = "hidden"
	TrackShowing  TrackMode = "showing"
)

// TextTrack is a captions track whose visibility can be switched.
type TextTrack interface {
	Mode() TrackMode
	SetMode(TrackMode)
}

// Media is the playback capability the controller drives but does not own.
// Reads are synchronous and reflect the element's live properties.
// Setters are expected to clamp out-of-range input themselves.
type Media interface {
	CurrentTime() float64
	SetCurrentTime(seconds float64)
	Duration() float64
	Volume() float64
	SetVolume(v float64)
	Muted() bool
	SetMuted(muted bool)
	PlaybackRate() float64
	SetPlaybackRate(rate float64)
	Paused() bool
	Play()
	Pause()

	// TextTrack returns the first text track, if any.
	TextTrack() (TextTrack, bool)

	// Listen registers fn for event and returns the function that removes
	// exactly that registration.
	Listen(event MediaEvent, fn func()) (unlisten func())
}

// Host is the environment that owns fullscreen and picture-in-picture.
// Requests are fire-and-forget: their effect is only observed through
// EventFullscreenChange and the picture-in-picture media events.
type Host interface {
	FullscreenActive() bool
	RequestFullscreen() error
	ExitFullscreen() error

	PictureInPictureEnabled() bool
	PictureInPictureActive() bool
	RequestPictureInPicture() error
	ExitPictureInPicture() error

	Listen(event HostEvent, fn func()) (unlisten func())
}
