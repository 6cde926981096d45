// Package constant holds application identifiers and build metadata.
package constant

const (
	// Vidstrip names the binary, the config file and the env prefix.
	Vidstrip = "vidstrip"

	// Version is the current application semantic version string.
	Version = "0.1.0"
)

// Build metadata, overridden at link time via -ldflags "-X".
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)

// Player process identifiers.
const (
	MPV = "mpv"
)

// Platform identifiers for runtime.GOOS comparisons.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
)
