package icon

// Icon identifies a glyph in the registry.
type Icon int

const (
	Play Icon = iota + 1
	Pause
	VolumeHigh
	VolumeLow
	VolumeMuted
	Captions
	MiniPlayer
	Theater
	FullScreen
	Fail
	Success
	Progress
)

// All lists every registered icon.
func All() []Icon {
	return []Icon{Play, Pause, VolumeHigh, VolumeLow, VolumeMuted, Captions, MiniPlayer, Theater, FullScreen, Fail, Success, Progress}
}

var icons = map[Icon]*iconDef{
	Play: {
		emoji:   "▶️",
		nerd:    "",
		plain:   ">",
		squares: "▶",
	},
	Pause: {
		emoji:   "⏸️",
		nerd:    "",
		plain:   "||",
		squares: "⏸",
	},
	VolumeHigh: {
		emoji:   "🔊",
		nerd:    "",
		plain:   "vol",
		squares: "◼◼◼",
	},
	VolumeLow: {
		emoji:   "🔉",
		nerd:    "",
		plain:   "vo-",
		squares: "◼◼◻",
	},
	VolumeMuted: {
		emoji:   "🔇",
		nerd:    "",
		plain:   "mut",
		squares: "◻◻◻",
	},
	Captions: {
		emoji:   "💬",
		nerd:    "\U000f016e",
		plain:   "CC",
		squares: "▤",
	},
	MiniPlayer: {
		emoji:   "🪟",
		nerd:    "",
		plain:   "mini",
		squares: "▣",
	},
	Theater: {
		emoji:   "🎭",
		nerd:    "",
		plain:   "wide",
		squares: "▭",
	},
	FullScreen: {
		emoji:   "⛶",
		nerd:    "",
		plain:   "full",
		squares: "■",
	},
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "X",
		squares: "▣",
	},
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "Success",
		squares: "▣",
	},
	Progress: {
		emoji:   "👾",
		nerd:    "",
		plain:   "...",
		squares: "▣",
	},
}
