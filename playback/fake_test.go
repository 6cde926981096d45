package playback

import "math"

type fakeTrack struct {
	mode    TrackMode
	changes int
}

func (t *fakeTrack) Mode() TrackMode { return t.mode }
func (t *fakeTrack) SetMode(m TrackMode) {
	t.mode = m
	t.changes++
}

// fakeMedia behaves like an HTML media element: seeks clamp to
// [0,duration] and play/pause fire their events synchronously.
type fakeMedia struct {
	Emitter[MediaEvent]

	current, duration, volume, rate float64
	muted, paused                   bool
	track                           *fakeTrack

	seeks []float64
}

func newFakeMedia(duration float64) *fakeMedia {
	return &fakeMedia{
		duration: duration,
		volume:   1,
		rate:     1,
		paused:   true,
	}
}

func (m *fakeMedia) CurrentTime() float64 { return m.current }
func (m *fakeMedia) SetCurrentTime(t float64) {
	if t < 0 || math.IsNaN(t) {
		t = 0
	}
	if !math.IsNaN(m.duration) && t > m.duration {
		t = m.duration
	}
	m.current = t
	m.seeks = append(m.seeks, t)
	m.Emit(EventTimeUpdate)
}
func (m *fakeMedia) Duration() float64 { return m.duration }
func (m *fakeMedia) Volume() float64   { return m.volume }
func (m *fakeMedia) SetVolume(v float64) {
	m.volume = v
	m.Emit(EventVolumeChange)
}
func (m *fakeMedia) Muted() bool { return m.muted }
func (m *fakeMedia) SetMuted(muted bool) {
	m.muted = muted
	m.Emit(EventVolumeChange)
}
func (m *fakeMedia) PlaybackRate() float64 { return m.rate }
func (m *fakeMedia) SetPlaybackRate(r float64) {
	m.rate = r
	m.Emit(EventRateChange)
}
func (m *fakeMedia) Paused() bool { return m.paused }
func (m *fakeMedia) Play() {
	m.paused = false
	m.Emit(EventPlay)
}
func (m *fakeMedia) Pause() {
	m.paused = true
	m.Emit(EventPause)
}
func (m *fakeMedia) TextTrack() (TextTrack, bool) {
	if m.track == nil {
		return nil, false
	}
	return m.track, true
}

// fakeHost grants or denies requests and fires change events synchronously.
type fakeHost struct {
	Emitter[HostEvent]
	media *fakeMedia

	fullscreen, pip bool
	pipEnabled      bool
	deny            error
}

func (h *fakeHost) FullscreenActive() bool { return h.fullscreen }
func (h *fakeHost) RequestFullscreen() error {
	if h.deny != nil {
		return h.deny
	}
	if h.pip {
		h.pip = false
		h.media.Emit(EventLeavePictureInPicture)
	}
	h.fullscreen = true
	h.Emit(EventFullscreenChange)
	return nil
}
func (h *fakeHost) ExitFullscreen() error {
	if h.deny != nil {
		return h.deny
	}
	h.fullscreen = false
	h.Emit(EventFullscreenChange)
	return nil
}
func (h *fakeHost) PictureInPictureEnabled() bool { return h.pipEnabled }
func (h *fakeHost) PictureInPictureActive() bool  { return h.pip }
func (h *fakeHost) RequestPictureInPicture() error {
	if h.deny != nil {
		return h.deny
	}
	h.pip = true
	h.media.Emit(EventEnterPictureInPicture)
	return nil
}
func (h *fakeHost) ExitPictureInPicture() error {
	if h.deny != nil {
		return h.deny
	}
	h.pip = false
	h.media.Emit(EventLeavePictureInPicture)
	return nil
}

func mounted(features Features, duration float64) (*Controller, *fakeMedia, *fakeHost) {
	media := newFakeMedia(duration)
	media.track = &fakeTrack{mode: TrackDisabled}
	host := &fakeHost{media: media, pipEnabled: true}

	c := New(Options{Features: features, Source: "video.mp4"})
	c.Mount(media, host)
	media.Emit(EventLoadedData)
	return c, media, host
}
