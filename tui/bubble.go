package tui

import (
	"io"
	"path/filepath"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/samber/mo"
	"github.com/vidstrip/vidstrip/config"
	"github.com/vidstrip/vidstrip/history"
	"github.com/vidstrip/vidstrip/internal/ui"
	"github.com/vidstrip/vidstrip/log"
	"github.com/vidstrip/vidstrip/playback"
	"github.com/vidstrip/vidstrip/style"
	"github.com/vidstrip/vidstrip/util"
)

type statefulBubble struct {
	state         state
	statesHistory util.Stack[state]

	keymap *statefulKeymap

	// components
	spinnerC spinner.Model
	jumpC    textinput.Model
	helpC    help.Model

	controller *playback.Controller
	closer     io.Closer

	// focus is the control reached with tab, if any
	focus mo.Option[controlID]

	// resumeAt is applied once the duration is known
	resumeAt mo.Option[float64]

	width, height int
	lastError     error
	notifier      *ui.Model

	options *Options
	send    func(tea.Msg)
}

func (b *statefulBubble) raiseError(err error) {
	b.lastError = err
	b.newState(errorState)
}

func (b *statefulBubble) setState(s state) {
	b.state = s
	b.keymap.setState(s)
}

func (b *statefulBubble) newState(s state) {
	if b.state == s {
		return
	}

	if b.state != loadingState {
		b.statesHistory.Push(b.state)
	}

	b.setState(s)
}

func (b *statefulBubble) previousState() {
	if b.statesHistory.Len() > 0 {
		b.setState(b.statesHistory.Pop())
	}
}

func (b *statefulBubble) resize(width, height int) {
	b.width = width
	b.height = height

	x, _ := paddingStyle.GetFrameSize()
	b.helpC.Width = width - x
	b.jumpC.Width = width - x - lipgloss.Width(b.jumpC.Prompt) - 1

	b.syncTrack()
}

// syncTrack hands the timeline row to the scrubber. It moves whenever the
// window or the display mode changes the layout.
func (b *statefulBubble) syncTrack() {
	b.controller.Scrubber().SetTrack(b.layout().timeline)
}

// attach mounts the controller on a started player.
func (b *statefulBubble) attach(e element, closer io.Closer) {
	b.closer = closer
	b.controller.Mount(e, e.Host())
	b.keymap.setFeatures(b.controller.Features(), b.controller.MiniPlayerAvailable())
	b.syncTrack()
}

// resume seeks to the saved position as soon as the media reports a duration.
func (b *statefulBubble) resume() tea.Cmd {
	at, ok := b.resumeAt.Get()
	if !ok || b.closer == nil {
		return nil
	}

	total := b.controller.Store().Playback().TotalTime
	if total <= 0 {
		return nil
	}

	b.resumeAt = mo.None[float64]()
	if at >= total {
		return nil
	}

	b.controller.SeekTo(at)
	return ui.Notify("Resumed at " + playback.FormatDuration(at))
}

func (b *statefulBubble) savePosition() {
	if !b.options.Resume {
		return
	}

	p := b.controller.Store().Playback()
	if p.TotalTime <= 0 {
		return
	}

	if err := history.Save(b.options.Source, p.CurrentTime, p.TotalTime); err != nil {
		log.Warnf("save position: %s", err)
	}
}

// detach unmounts the controller and shuts the player down.
func (b *statefulBubble) detach() error {
	if b.closer == nil {
		b.controller.Unmount()
		return nil
	}

	b.savePosition()
	b.controller.Unmount()

	closer := b.closer
	b.closer = nil
	return closer.Close()
}

func newBubble(options *Options) *statefulBubble {
	bubble := statefulBubble{
		statesHistory: util.Stack[state]{},
		keymap:        newStatefulKeymap(),
		notifier:      &ui.Model{},
		options:       options,
	}

	bubble.controller = playback.New(playback.Options{
		Features:    options.Features,
		Source:      options.Source,
		Preview:     playback.BucketPreview(config.BucketSeconds()),
		SkipSeconds: config.SkipSeconds(),
	})
	bubble.keymap.setFeatures(options.Features, false)

	bubble.helpC = help.New()

	bubble.spinnerC = spinner.New()
	bubble.spinnerC.Spinner = spinner.Dot
	bubble.spinnerC.Style = lipgloss.NewStyle().Foreground(style.AccentColor)

	bubble.jumpC = textinput.New()
	bubble.jumpC.Placeholder = "1:23"
	bubble.jumpC.CharLimit = 12
	bubble.jumpC.Prompt = "Jump to: "

	if options.Resume {
		if p, ok, err := history.Lookup(options.Source); err != nil {
			log.Warnf("load position: %s", err)
		} else if ok {
			bubble.resumeAt = mo.Some(p.Time)
		}
	}

	if options.Title == "" {
		options.Title = filepath.Base(options.Source)
	}

	if w, h, err := util.TerminalSize(); err == nil {
		bubble.resize(w, h)
	} else {
		bubble.resize(80, 24)
	}

	return &bubble
}
