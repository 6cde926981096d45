package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/vidstrip/vidstrip/color"
	"github.com/vidstrip/vidstrip/playback"
	"github.com/vidstrip/vidstrip/style"
)

// statefulKeymap lists the bindings shown in the help footer for each state.
// Playback keys themselves are routed through the controller's bridge.
type statefulKeymap struct {
	state state

	quit, forceQuit,
	playPause, skip, mute,
	captions, theater, fullScreen, miniPlayer,
	jump, confirm, back,
	nextControl, prevControl,
	showHelp key.Binding
}

func (k *statefulKeymap) setState(newState state) {
	k.state = newState
}

// setFeatures hides the bindings of disabled controls.
func (k *statefulKeymap) setFeatures(f playback.Features, miniAvailable bool) {
	k.captions.SetEnabled(f.Captions)
	k.theater.SetEnabled(f.Theater)
	k.fullScreen.SetEnabled(f.FullScreen)
	k.miniPlayer.SetEnabled(f.MiniPlayer && miniAvailable)
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		playPause: key.NewBinding(
			key.WithKeys(" ", "k"),
			key.WithHelp(style.Fg(color.Orange)("space"), style.Fg(color.Orange)("play/pause")),
		),
		skip: key.NewBinding(
			key.WithKeys("j", "l", "left", "right"),
			key.WithHelp("j/l", "skip"),
		),
		mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		captions: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "captions"),
		),
		theater: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theater"),
		),
		fullScreen: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "full screen"),
		),
		miniPlayer: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "mini player"),
		),
		jump: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "jump to"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		nextControl: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "focus next"),
		),
		prevControl: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "focus previous"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	to2 := func(a []key.Binding) ([]key.Binding, []key.Binding) {
		return a, a
	}

	switch k.state {
	case loadingState:
		return to2(h(k.forceQuit))
	case playingState:
		return h(k.playPause, k.skip, k.mute, k.captions, k.theater, k.fullScreen, k.showHelp, k.quit),
			h(k.playPause, k.skip, k.mute, k.captions, k.theater, k.fullScreen, k.miniPlayer, k.jump, k.nextControl, k.prevControl, k.back, k.showHelp, k.quit)
	case jumpState:
		return to2(h(k.confirm, k.back))
	case errorState:
		return to2(h(k.quit))
	default:
		return to2(h())
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}
