package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/vidstrip/vidstrip/internal/ui"
	"github.com/vidstrip/vidstrip/playback"
	"github.com/vidstrip/vidstrip/util"
)

// domKey names a key press the way the controller's key map expects.
func domKey(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeySpace:
		return " "
	case tea.KeyLeft:
		return "ArrowLeft"
	case tea.KeyRight:
		return "ArrowRight"
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && !msg.Alt {
			return string(msg.Runes)
		}
	}
	return ""
}

// pointerEvent puts the pointer in the middle of the reported cell.
func pointerEvent(msg tea.MouseMsg) playback.PointerEvent {
	ev := playback.PointerEvent{
		X: float64(msg.X) + 0.5,
		Y: float64(msg.Y) + 0.5,
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			ev.Buttons = playback.PrimaryButton
		}
	case tea.MouseActionMotion:
		if msg.Button == tea.MouseButtonLeft {
			ev.Buttons = playback.PrimaryButton
		}
	}

	return ev
}

func (b *statefulBubble) focusKind() playback.Focus {
	if b.focus.IsPresent() {
		return playback.FocusButton
	}
	return playback.FocusNone
}

func (b *statefulBubble) handlePlayingKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, b.keymap.quit):
		return tea.Quit
	case key.Matches(msg, b.keymap.showHelp):
		b.helpC.ShowAll = !b.helpC.ShowAll
		b.syncTrack()
		return nil
	case key.Matches(msg, b.keymap.jump):
		b.jumpC.Reset()
		b.newState(jumpState)
		return b.jumpC.Focus()
	case key.Matches(msg, b.keymap.nextControl):
		b.moveFocus(1)
		return nil
	case key.Matches(msg, b.keymap.prevControl):
		b.moveFocus(-1)
		return nil
	case key.Matches(msg, b.keymap.back):
		b.focus = mo.None[controlID]()
		return nil
	case key.Matches(msg, b.keymap.confirm):
		if id, ok := b.focus.Get(); ok {
			b.activateFocused(id)
		}
		return nil
	}

	k := domKey(msg)
	if k == "" {
		return nil
	}

	if consumed := b.controller.Bridge().HandleKey(playback.KeyEvent{Key: k, Focus: b.focusKind()}); consumed {
		return nil
	}

	// space on a focused control presses it
	if id, ok := b.focus.Get(); ok && k == " " {
		b.activateFocused(id)
	}
	return nil
}

// handleJumpKey feeds the prompt. Keys typed here never reach the controller.
func (b *statefulBubble) handleJumpKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, b.keymap.back):
		b.jumpC.Blur()
		b.previousState()
		return nil
	case key.Matches(msg, b.keymap.confirm):
		b.jumpC.Blur()
		b.previousState()

		seconds, err := playback.ParseTimestamp(b.jumpC.Value())
		if err != nil {
			return ui.Notify(err.Error())
		}
		b.controller.SeekTo(seconds)
		return nil
	}

	var cmd tea.Cmd
	b.jumpC, cmd = b.jumpC.Update(msg)
	return cmd
}

func (b *statefulBubble) moveFocus(step int) {
	ids := b.layout().focusable()
	if len(ids) == 0 {
		return
	}

	next := 0
	if id, ok := b.focus.Get(); ok {
		next = (lo.IndexOf(ids, id) + step + len(ids)) % len(ids)
	} else if step < 0 {
		next = len(ids) - 1
	}

	b.focus = mo.Some(ids[next])
}

func (b *statefulBubble) activateFocused(id controlID) {
	switch id {
	case ctrlVolume:
		// keyboard on the slider steps like a native range input
		p := b.controller.Store().Playback()
		b.controller.SetVolume(lo.Ternary(p.Volume >= 1, 0.0, p.Volume+0.1))
	default:
		b.activate(id)
	}
}

// activate presses a control button.
func (b *statefulBubble) activate(id controlID) {
	c := b.controller
	switch id {
	case ctrlPlay:
		c.TogglePlay()
	case ctrlMute:
		c.ToggleMute()
	case ctrlCaptions:
		c.ToggleCaptions()
	case ctrlSpeed:
		c.CyclePlaybackRate()
	case ctrlMiniPlayer:
		c.ToggleMiniPlayer()
	case ctrlTheater:
		c.ToggleTheater()
	case ctrlFullScreen:
		c.ToggleFullScreen()
	}
}

func (b *statefulBubble) handleMouse(msg tea.MouseMsg) {
	bridge := b.controller.Bridge()
	ev := pointerEvent(msg)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}

		l := b.layout()
		switch {
		case bridge.HandlePointerDown(ev):
		case l.surface.Contains(ev.X, ev.Y):
			bridge.HandleSurfaceClick()
		default:
			c, ok := l.controlAt(ev.X, ev.Y)
			if !ok {
				return
			}
			b.focus = mo.None[controlID]()
			if c.id == ctrlVolume {
				b.controller.SetVolume(sliderValue(c.rect, ev.X))
			} else {
				b.activate(c.id)
			}
		}
	case tea.MouseActionMotion:
		bridge.HandlePointerMove(ev)
	case tea.MouseActionRelease:
		bridge.HandlePointerUp(ev)
	}
}

// notice describes the most relevant user-visible change between two snapshots.
func notice(before, after playback.Snapshot) string {
	bp, ap := before.Playback, after.Playback
	bu, au := before.UI, after.UI

	switch {
	case au.Mode != bu.Mode:
		return util.Capitalize(au.Mode.String()) + " mode"
	case au.MiniPlayer != bu.MiniPlayer:
		return "Mini player " + onOff(au.MiniPlayer)
	case ap.CaptionsOn != bp.CaptionsOn:
		return "Captions " + onOff(ap.CaptionsOn)
	case ap.PlaybackRate != bp.PlaybackRate:
		return "Speed " + strconv.FormatFloat(ap.PlaybackRate, 'g', -1, 64) + "x"
	case ap.Muted != bp.Muted:
		return lo.Ternary(ap.Muted, "Muted", "Unmuted")
	case ap.Volume != bp.Volume && !ap.Muted:
		return fmt.Sprintf("Volume %d%%", int(ap.Volume*100+0.5))
	}
	return ""
}

func onOff(on bool) string {
	return lo.Ternary(on, "on", "off")
}
