package playback

import (
	"math"
	"sync"
)

// VolumeTier is the coarse bucket derived from volume and mute state.
type VolumeTier string

const (
	VolumeLow   VolumeTier = "low"
	VolumeHigh  VolumeTier = "high"
	VolumeMuted VolumeTier = "muted"
)

// TierOf derives the volume tier. It is the only place a tier is computed.
func TierOf(volume float64, muted bool) VolumeTier {
	switch {
	case muted || volume == 0:
		return VolumeMuted
	case volume >= 0.5:
		return VolumeHigh
	default:
		return VolumeLow
	}
}

// DisplayMode is the exclusive window presentation of the player.
type DisplayMode uint8

const (
	ModeNormal DisplayMode = iota
	ModeTheater
	ModeFullScreen
)

func (m DisplayMode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeTheater:
		return "theater"
	case ModeFullScreen:
		return "full-screen"
	default:
		return "unknown"
	}
}

// PlaybackState mirrors the live properties of the media capability.
type PlaybackState struct {
	Paused       bool
	Muted        bool
	Volume       float64
	PlaybackRate float64
	CaptionsOn   bool
	CurrentTime  float64
	TotalTime    float64
}

// VolumeTier derives the tier from Volume and Muted.
func (p PlaybackState) VolumeTier() VolumeTier {
	return TierOf(p.Volume, p.Muted)
}

// UIModeState is the display mode plus the host-level mini-player flag.
type UIModeState struct {
	Mode       DisplayMode
	MiniPlayer bool
}

func (u UIModeState) Theater() bool    { return u.Mode == ModeTheater }
func (u UIModeState) FullScreen() bool { return u.Mode == ModeFullScreen }

// ScrubState exists while the primary pointer button is held over the timeline.
type ScrubState struct {
	Active               bool
	WasPausedBeforeScrub bool
	PreviewFraction      float64
}

// TimelineState carries the values a renderer projects onto the timeline.
type TimelineState struct {
	// ProgressFraction drives the filled portion of the timeline.
	ProgressFraction float64
	// PreviewFraction is the hover indicator position.
	PreviewFraction float64
	Hovering        bool
	PreviewKey      string
	// ThumbnailKey is the full-size still shown while scrubbing.
	ThumbnailKey string
}

// Snapshot is a consistent view of the whole store.
type Snapshot struct {
	Playback PlaybackState
	UI       UIModeState
	Scrub    ScrubState
	Timeline TimelineState
}

// Store holds the reactive state of one controller. Reads are synchronous
// and always reflect the latest committed mutation; every mutation is applied
// under a single lock so paired fields are never observed half-updated.
type Store struct {
	mu   sync.RWMutex
	snap Snapshot

	subs Emitter[struct{}]
}

// NewStore returns a store with element defaults: paused, full volume, 1x.
func NewStore() *Store {
	return &Store{
		snap: Snapshot{
			Playback: PlaybackState{
				Paused:       true,
				Volume:       1,
				PlaybackRate: 1,
			},
		},
	}
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

func (s *Store) Playback() PlaybackState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Playback
}

func (s *Store) UI() UIModeState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.UI
}

func (s *Store) Scrub() ScrubState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Scrub
}

func (s *Store) Timeline() TimelineState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap.Timeline
}

// Subscribe registers fn to be called after every committed mutation.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	return s.subs.Listen(struct{}{}, fn)
}

// update applies fn atomically, re-establishes invariants and notifies
// subscribers once the lock is released.
func (s *Store) update(fn func(*Snapshot)) {
	s.mu.Lock()
	fn(&s.snap)
	normalize(&s.snap)
	s.mu.Unlock()

	s.subs.Emit(struct{}{})
}

func normalize(snap *Snapshot) {
	p := &snap.Playback
	p.Volume = clamp01(p.Volume)
	p.TotalTime = finiteNonNegative(p.TotalTime)
	p.CurrentTime = finiteNonNegative(p.CurrentTime)
	if p.TotalTime > 0 && p.CurrentTime > p.TotalTime {
		p.CurrentTime = p.TotalTime
	}
	if p.PlaybackRate <= 0 || math.IsNaN(p.PlaybackRate) {
		p.PlaybackRate = 1
	}

	snap.Scrub.PreviewFraction = clamp01(snap.Scrub.PreviewFraction)
	snap.Timeline.ProgressFraction = clamp01(snap.Timeline.ProgressFraction)
	snap.Timeline.PreviewFraction = clamp01(snap.Timeline.PreviewFraction)

	if snap.UI.Mode == ModeFullScreen {
		snap.UI.MiniPlayer = false
	}
}

func clamp01(f float64) float64 {
	switch {
	case math.IsNaN(f), f < 0:
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}

func finiteNonNegative(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0
	}
	return f
}
