package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vidstrip/vidstrip/icon"
	"github.com/vidstrip/vidstrip/key"
	"github.com/vidstrip/vidstrip/playback"
)

type controlID int

const (
	ctrlPlay controlID = iota
	ctrlMute
	ctrlVolume
	ctrlTime
	ctrlCaptions
	ctrlSpeed
	ctrlMiniPlayer
	ctrlTheater
	ctrlFullScreen
)

const controlGap = 2

type control struct {
	id    controlID
	label string
	rect  playback.Rect
}

// interactive controls can be clicked and focused.
func (c control) interactive() bool {
	return c.id != ctrlTime
}

// layout is the screen geometry of the strip in terminal cells.
// View and hit-testing both read it, so they always agree.
type layout struct {
	title    int
	surface  playback.Rect
	preview  int
	timeline playback.Rect
	controls []control
}

func (l layout) controlAt(x, y float64) (control, bool) {
	return lo.Find(l.controls, func(c control) bool {
		return c.interactive() && c.rect.Contains(x, y)
	})
}

func (l layout) control(id controlID) (control, bool) {
	return lo.Find(l.controls, func(c control) bool {
		return c.id == id
	})
}

func (l layout) focusable() []controlID {
	return lo.FilterMap(l.controls, func(c control, _ int) (controlID, bool) {
		return c.id, c.interactive()
	})
}

func (b *statefulBubble) contentWidth() int {
	x, _ := paddingStyle.GetFrameSize()
	return max(b.width-x, 20)
}

func (b *statefulBubble) surfaceHeight(mode playback.DisplayMode) int {
	base := viper.GetInt(key.TUISurfaceHeight)
	if base < 3 {
		base = 8
	}

	switch mode {
	case playback.ModeTheater:
		return base + base/2
	case playback.ModeFullScreen:
		// title, blank, preview, timeline, controls, blank
		const fixedRows = 6
		_, y := paddingStyle.GetFrameSize()
		return max(3, b.height-y-fixedRows-b.helpHeight())
	default:
		return base
	}
}

func (b *statefulBubble) layout() layout {
	snap := b.controller.Store().Snapshot()
	top := paddingStyle.GetPaddingTop()
	left := paddingStyle.GetPaddingLeft()
	width := b.contentWidth()

	l := layout{title: top}

	l.surface = playback.Rect{
		Left:   float64(left),
		Top:    float64(top + 2),
		Width:  float64(width),
		Height: float64(b.surfaceHeight(snap.UI.Mode)),
	}

	l.preview = int(l.surface.Top + l.surface.Height)
	l.timeline = playback.Rect{
		Left:   float64(left),
		Top:    float64(l.preview + 1),
		Width:  float64(width),
		Height: 1,
	}

	row := float64(l.preview + 2)
	x := left
	for _, c := range b.controls(snap) {
		w := lipgloss.Width(c.label)
		c.rect = playback.Rect{Left: float64(x), Top: row, Width: float64(w), Height: 1}
		l.controls = append(l.controls, c)
		x += w + controlGap
	}

	return l
}

// controls lists the visible controls with their current labels.
func (b *statefulBubble) controls(snap playback.Snapshot) []control {
	p := snap.Playback
	f := b.controller.Features()

	controls := []control{
		{id: ctrlPlay, label: glyph(lo.Ternary(p.Paused, icon.Play, icon.Pause), lo.Ternary(p.Paused, "play", "pause"))},
		{id: ctrlMute, label: glyph(volumeIcon(p.VolumeTier()), "vol")},
		{id: ctrlVolume, label: volumeSlider(p, volumeWidth())},
		{id: ctrlTime, label: playback.FormatDuration(p.CurrentTime) + " / " + playback.FormatDuration(p.TotalTime)},
	}

	if f.Captions {
		controls = append(controls, control{id: ctrlCaptions, label: glyph(icon.Captions, "CC")})
	}
	if f.PlaybackSpeed {
		controls = append(controls, control{id: ctrlSpeed, label: strconv.FormatFloat(p.PlaybackRate, 'g', -1, 64) + "x"})
	}
	if f.MiniPlayer && b.controller.MiniPlayerAvailable() {
		controls = append(controls, control{id: ctrlMiniPlayer, label: glyph(icon.MiniPlayer, "mini")})
	}
	if f.Theater {
		controls = append(controls, control{id: ctrlTheater, label: glyph(icon.Theater, "wide")})
	}
	if f.FullScreen {
		controls = append(controls, control{id: ctrlFullScreen, label: glyph(icon.FullScreen, "full")})
	}

	return controls
}

func glyph(i icon.Icon, fallback string) string {
	if s := icon.Get(i); s != "" {
		return s
	}
	return fallback
}

func volumeIcon(tier playback.VolumeTier) icon.Icon {
	switch tier {
	case playback.VolumeMuted:
		return icon.VolumeMuted
	case playback.VolumeLow:
		return icon.VolumeLow
	default:
		return icon.VolumeHigh
	}
}

func volumeWidth() int {
	if w := viper.GetInt(key.TUIVolumeWidth); w >= 2 {
		return w
	}
	return 10
}

// volumeSlider draws the level as filled cells. A muted player shows an empty slider.
func volumeSlider(p playback.PlaybackState, width int) string {
	level := lo.Ternary(p.Muted, 0.0, p.Volume)
	filled := lo.Clamp(int(level*float64(width)+0.5), 0, width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// sliderValue maps a pointer position on the slider to a volume. The first cell is 0, the last is 1.
func sliderValue(r playback.Rect, x float64) float64 {
	if r.Width <= 1 {
		return 1
	}
	return lo.Clamp((x-0.5-r.Left)/(r.Width-1), 0, 1)
}
