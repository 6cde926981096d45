package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wrap"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/vidstrip/vidstrip/color"
	"github.com/vidstrip/vidstrip/filesystem"
	"github.com/vidstrip/vidstrip/icon"
	"github.com/vidstrip/vidstrip/key"
	"github.com/vidstrip/vidstrip/playback"
	"github.com/vidstrip/vidstrip/style"
	"github.com/vidstrip/vidstrip/where"
)

var (
	paddingStyle = lipgloss.NewStyle().Padding(1, 2)
	surfaceStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(style.BorderColor).
			Align(lipgloss.Center).
			AlignVertical(lipgloss.Center)
	focusStyle = lipgloss.NewStyle().Reverse(true)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case loadingState:
		output = b.viewLoading()
	case playingState, jumpState:
		output = b.viewPlaying()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewLoading() string {
	return b.renderLines([]string{
		style.Title(b.options.Title),
		"",
		b.spinnerC.View() + " Starting mpv...",
	})
}

func (b *statefulBubble) viewError() string {
	errorBody := style.New().Foreground(style.ErrorColor).Bold(true).Render(b.lastError.Error())
	return b.renderLines([]string{
		style.ErrorTitle("Error"),
		"",
		icon.Get(icon.Fail) + " Playback failed:",
		"",
		wrap.String(errorBody, b.contentWidth()),
	})
}

func (b *statefulBubble) viewPlaying() string {
	snap := b.controller.Store().Snapshot()
	l := b.layout()
	width := b.contentWidth()

	lines := []string{
		style.Title(truncate.StringWithTail(b.options.Title, uint(max(width-2, 1)), "…")),
		"",
		b.viewSurface(snap, l),
		b.viewPreviewLine(snap, width),
		b.viewTimeline(snap, width),
		b.viewControls(snap, l),
		"",
	}

	if b.state == jumpState {
		lines[len(lines)-1] = b.jumpC.View()
	}

	return b.renderLines(lines)
}

func (b *statefulBubble) viewSurface(snap playback.Snapshot, l layout) string {
	var content []string

	if snap.Timeline.ThumbnailKey != "" {
		content = append(content, style.Fg(style.AccentColor)(previewLabel(snap.Timeline.ThumbnailKey)))
	} else if snap.Playback.Paused {
		content = append(content, glyph(icon.Play, "paused"))
	} else {
		content = append(content, style.Fg(color.Green)("● playing"))
	}

	var status []string
	if snap.Playback.CaptionsOn {
		status = append(status, "CC")
	}
	if snap.UI.MiniPlayer {
		status = append(status, "mini player")
	}
	if snap.UI.Mode != playback.ModeNormal {
		status = append(status, snap.UI.Mode.String())
	}
	if len(status) > 0 {
		content = append(content, style.Faint(strings.Join(status, " · ")))
	}

	borderW, borderH := surfaceStyle.GetFrameSize()
	return surfaceStyle.
		Width(int(l.surface.Width) - borderW).
		Height(int(l.surface.Height) - borderH).
		Render(strings.Join(content, "\n"))
}

// previewLabel names a preview frame and flags it when the file is missing.
func previewLabel(name string) string {
	if filesystem.IsFile(filepath.Join(where.Previews(), name)) {
		return "▣ " + name
	}
	return "▢ " + name + " (no frame)"
}

func (b *statefulBubble) viewPreviewLine(snap playback.Snapshot, width int) string {
	t := snap.Timeline
	if !t.Hovering || t.PreviewKey == "" {
		return ""
	}

	label := fmt.Sprintf("%s %s", playback.FormatDuration(t.PreviewFraction*snap.Playback.TotalTime), previewLabel(t.PreviewKey))
	label = truncate.String(label, uint(width))

	center := int(t.PreviewFraction * float64(width))
	offset := lo.Clamp(center-lipgloss.Width(label)/2, 0, max(width-lipgloss.Width(label), 0))
	return strings.Repeat(" ", offset) + style.Fg(style.SecondaryColor)(label)
}

func (b *statefulBubble) viewTimeline(snap playback.Snapshot, width int) string {
	t := snap.Timeline
	knob := lo.Clamp(int(t.ProgressFraction*float64(width)), 0, width-1)
	marker := -1
	if t.Hovering && !snap.Scrub.Active {
		marker = lo.Clamp(int(t.PreviewFraction*float64(width)), 0, width-1)
	}

	var sb strings.Builder
	for i := 0; i < width; i++ {
		switch {
		case i == knob:
			sb.WriteString(style.Fg(style.AccentColor)("●"))
		case i == marker:
			sb.WriteString(style.Fg(style.SecondaryColor)("┃"))
		case i < knob:
			sb.WriteString(style.Fg(style.AccentColor)("━"))
		default:
			sb.WriteString(style.Fg(style.FaintColor)("─"))
		}
	}
	return sb.String()
}

func (b *statefulBubble) viewControls(snap playback.Snapshot, l layout) string {
	focused, hasFocus := b.focus.Get()
	gap := strings.Repeat(" ", controlGap)

	return strings.Join(lo.Map(l.controls, func(c control, _ int) string {
		label := c.label
		switch {
		case c.id == ctrlCaptions && !snap.Playback.CaptionsOn,
			c.id == ctrlTime:
			label = style.Faint(label)
		case c.id == ctrlTheater && snap.UI.Theater(),
			c.id == ctrlFullScreen && snap.UI.FullScreen(),
			c.id == ctrlMiniPlayer && snap.UI.MiniPlayer:
			label = style.Fg(style.AccentColor)(label)
		}

		if hasFocus && c.id == focused {
			label = focusStyle.Render(label)
		}
		return label
	}), gap)
}

func (b *statefulBubble) renderLines(lines []string) string {
	if h := b.helpView(); h != "" {
		lines = append(lines, h)
	}
	return paddingStyle.Render(strings.Join(lines, "\n"))
}

func (b *statefulBubble) helpView() string {
	if !viper.GetBool(key.TUIShowHelp) {
		return ""
	}
	return b.helpC.View(b.keymap)
}

// helpHeight is the number of rows the footer takes.
func (b *statefulBubble) helpHeight() int {
	h := b.helpView()
	if h == "" {
		return 0
	}
	return lipgloss.Height(h)
}
