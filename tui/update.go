package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vidstrip/vidstrip/internal/ui"
	"github.com/vidstrip/vidstrip/log"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := b.controller.Store().Snapshot()
	cmd := b.update(msg)

	after := b.controller.Store().Snapshot()
	if after.UI.Mode != before.UI.Mode {
		b.syncTrack()
	}

	if text := notice(before, after); text != "" {
		cmd = tea.Batch(cmd, ui.Notify(text))
	}

	if resumed := b.resume(); resumed != nil {
		cmd = tea.Batch(cmd, resumed)
	}

	return b, cmd
}

func (b *statefulBubble) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
		return nil
	case dispatchMsg:
		msg()
		return nil
	case sessionStartedMsg:
		b.attach(msg.element, msg.closer)
		b.setState(playingState)
		return waitForExit(msg.done)
	case playerExitedMsg:
		log.Info("mpv exited, closing the control strip")
		return tea.Quit
	case error:
		b.raiseError(msg)
		return nil
	case ui.NotificationMsg, ui.ClearNotificationMsg:
		return b.notifier.Update(msg)
	case spinner.TickMsg:
		if b.state != loadingState {
			return nil
		}
		var cmd tea.Cmd
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		return cmd
	case tea.MouseMsg:
		switch {
		case b.state == playingState:
			b.handleMouse(msg)
		case msg.Action == tea.MouseActionRelease:
			// a scrub started before the prompt opened still ends on release
			b.controller.Bridge().HandlePointerUp(pointerEvent(msg))
		}
		return nil
	case tea.KeyMsg:
		if key.Matches(msg, b.keymap.forceQuit) {
			return tea.Quit
		}
		switch b.state {
		case loadingState:
			return nil
		case errorState:
			if key.Matches(msg, b.keymap.quit, b.keymap.back) {
				return tea.Quit
			}
			return nil
		case jumpState:
			return b.handleJumpKey(msg)
		default:
			return b.handlePlayingKey(msg)
		}
	}

	return nil
}
