package playback

// Features selects the optional controls. A disabled feature hides its
// control and turns its key binding into a no-op.
type Features struct {
	Captions      bool
	PlaybackSpeed bool
	MiniPlayer    bool
	Theater       bool
	FullScreen    bool
}

// AllFeatures enables every optional control.
func AllFeatures() Features {
	return Features{
		Captions:      true,
		PlaybackSpeed: true,
		MiniPlayer:    true,
		Theater:       true,
		FullScreen:    true,
	}
}
