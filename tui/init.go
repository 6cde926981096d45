package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"
	"github.com/vidstrip/vidstrip/key"
	"github.com/vidstrip/vidstrip/player"
	"github.com/vidstrip/vidstrip/playback"
)

// element is what the bubble needs from a player session.
type element interface {
	playback.Media
	Host() playback.Host
}

type sessionStartedMsg struct {
	element element
	closer  io.Closer
	done    <-chan struct{}
}

type playerExitedMsg struct{}

// dispatchMsg runs a player event inside the update loop.
type dispatchMsg func()

func (b *statefulBubble) Init() tea.Cmd {
	return tea.Batch(b.spinnerC.Tick, b.startPlayer())
}

func (b *statefulBubble) startPlayer() tea.Cmd {
	launch := player.LaunchOptions{
		Source:       b.options.Source,
		Title:        b.options.Title,
		CaptionsFile: b.options.CaptionsFile,
		ExtraArgs:    viper.GetStringSlice(key.PlayerExtraArgs),
	}

	return func() tea.Msg {
		session, err := player.Start(
			launch,
			player.WithDispatcher(b.dispatch),
			player.WithMiniScale(viper.GetInt(key.PlayerMiniScale)),
			player.WithPictureInPicture(b.options.Features.MiniPlayer),
		)
		if err != nil {
			return err
		}

		return sessionStartedMsg{element: session, closer: session, done: session.Done()}
	}
}

// dispatch hands fn to the update loop so the controller only ever runs there.
func (b *statefulBubble) dispatch(fn func()) {
	if b.send == nil {
		fn()
		return
	}
	b.send(dispatchMsg(fn))
}

func waitForExit(done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-done
		return playerExitedMsg{}
	}
}
