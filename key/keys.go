// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Feature Toggles - these keys select the optional controls of the control strip.
// A disabled feature hides its control and silences its key binding.
const (
	FeaturesCaptions      = "features.captions"
	FeaturesPlaybackSpeed = "features.playback_speed"
	FeaturesMiniPlayer    = "features.mini_player"
	FeaturesTheater       = "features.theater"
	FeaturesFullScreen    = "features.full_screen"
)

// Media Playback - these keys configure the external mpv process.
const (
	PlayerCaptionsFile = "player.captions_file"
	PlayerMiniScale    = "player.mini_scale"
	PlayerSkipSeconds  = "player.skip_seconds"
	PlayerExtraArgs    = "player.extra_args"
)

// Timeline Previews - these keys locate the preview frames shown while hovering the timeline.
const (
	PreviewsDir           = "previews.dir"
	PreviewsBucketSeconds = "previews.bucket_seconds"
)

// History - these keys control resume positions.
const (
	HistoryResume = "history.resume"
)

// Terminal User Interface (TUI) - these keys tune the control strip layout.
const (
	TUIVolumeWidth   = "tui.volume_width"
	TUISurfaceHeight = "tui.surface_height"
	TUIShowHelp      = "tui.show_help"
)

// Iconography - these keys manage the visual rendering of control glyphs.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
