package playback

// Buttons is the bit set of pressed pointer buttons.
type Buttons uint8

const PrimaryButton Buttons = 1

// PointerEvent is a pointer position in the renderer's coordinate space.
type PointerEvent struct {
	X, Y    float64
	Buttons Buttons
}

// Rect is the timeline track's on-screen geometry.
type Rect struct {
	Left, Top, Width, Height float64
}

// Contains reports whether (x, y) lies within the rect, edges included on the
// leading side only.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left && x < r.Left+r.Width && y >= r.Top && y < r.Top+r.Height
}

// Scrubber converts pointer positions over the timeline track into seeks and
// preview selections. It is Idle until the primary button goes down over the
// track and Scrubbing until it is released.
type Scrubber struct {
	c     *Controller
	track Rect
}

// SetTrack updates the track geometry after a layout change.
func (s *Scrubber) SetTrack(r Rect) {
	s.track = r
}

func (s *Scrubber) Track() Rect {
	return s.track
}

// Fraction maps a pointer x coordinate onto the track, clamped to [0,1].
// It is 0 when the track has no width or the duration is unknown.
func (s *Scrubber) Fraction(x float64) float64 {
	if s.track.Width <= 0 || s.c.duration() == 0 {
		return 0
	}

	offset := x - s.track.Left
	switch {
	case offset < 0:
		offset = 0
	case offset > s.track.Width:
		offset = s.track.Width
	}
	return clamp01(offset / s.track.Width)
}

// PointerDown starts scrubbing when the primary button is pressed over the
// track: playback is paused and the element seeks to the pointer position.
func (s *Scrubber) PointerDown(ev PointerEvent) bool {
	media := s.c.media
	if media == nil || ev.Buttons&PrimaryButton == 0 || !s.track.Contains(ev.X, ev.Y) {
		return false
	}

	// a press during an active scrub keeps the state captured at its start
	scrub := s.c.store.Scrub()
	wasPaused := scrub.WasPausedBeforeScrub
	if !scrub.Active {
		wasPaused = media.Paused()
	}
	media.Pause()

	fraction := s.Fraction(ev.X)
	target := fraction * s.c.duration()
	media.SetCurrentTime(target)

	key := s.c.PreviewKey(target)
	s.c.store.update(func(snap *Snapshot) {
		snap.Scrub = ScrubState{
			Active:               true,
			WasPausedBeforeScrub: wasPaused,
			PreviewFraction:      fraction,
		}
		snap.Timeline.Hovering = true
		snap.Timeline.PreviewFraction = fraction
		snap.Timeline.PreviewKey = key
		snap.Timeline.ThumbnailKey = key
		snap.Timeline.ProgressFraction = fraction
	})
	return true
}

// PointerMove updates the preview. While scrubbing it also moves the progress
// indicator; hovering never does and never seeks.
func (s *Scrubber) PointerMove(ev PointerEvent) {
	if s.c.store.Scrub().Active {
		fraction := s.Fraction(ev.X)
		key := s.c.PreviewKey(fraction * s.c.duration())
		s.c.store.update(func(snap *Snapshot) {
			snap.Scrub.PreviewFraction = fraction
			snap.Timeline.Hovering = true
			snap.Timeline.PreviewFraction = fraction
			snap.Timeline.PreviewKey = key
			snap.Timeline.ThumbnailKey = key
			snap.Timeline.ProgressFraction = fraction
		})
		return
	}

	if !s.track.Contains(ev.X, ev.Y) {
		s.PointerLeave()
		return
	}

	fraction := s.Fraction(ev.X)
	key := s.c.PreviewKey(fraction * s.c.duration())
	s.c.store.update(func(snap *Snapshot) {
		snap.Timeline.Hovering = true
		snap.Timeline.PreviewFraction = fraction
		snap.Timeline.PreviewKey = key
	})
}

// PointerUp commits the seek and resumes playback unless it was paused
// before scrubbing began.
func (s *Scrubber) PointerUp(ev PointerEvent) {
	scrub := s.c.store.Scrub()
	if !scrub.Active {
		return
	}

	fraction := s.Fraction(ev.X)
	target := fraction * s.c.duration()
	if media := s.c.media; media != nil {
		media.SetCurrentTime(target)
		if !scrub.WasPausedBeforeScrub {
			media.Play()
		}
	}

	hovering := s.track.Contains(ev.X, ev.Y)
	key := s.c.PreviewKey(target)
	s.c.store.update(func(snap *Snapshot) {
		snap.Scrub = ScrubState{}
		snap.Timeline.Hovering = hovering
		snap.Timeline.PreviewFraction = fraction
		snap.Timeline.PreviewKey = key
		snap.Timeline.ThumbnailKey = ""
		snap.Timeline.ProgressFraction = fraction
	})
}

// PointerLeave hides the hover preview. It has no effect while scrubbing.
func (s *Scrubber) PointerLeave() {
	timeline := s.c.store.Timeline()
	if !timeline.Hovering || s.c.store.Scrub().Active {
		return
	}

	s.c.store.update(func(snap *Snapshot) {
		snap.Timeline.Hovering = false
	})
}
