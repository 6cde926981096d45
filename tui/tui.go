// Package tui draws the control strip and feeds terminal input to the playback controller.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vidstrip/vidstrip/playback"
)

// Options configures one playback session.
type Options struct {
	Source       string
	Title        string
	CaptionsFile string
	Features     playback.Features
	// Resume seeks to the saved position and saves a new one on exit.
	Resume bool
}

// Run starts mpv and runs the control strip until the user quits or mpv exits.
func Run(options *Options) error {
	bubble := newBubble(options)

	program := tea.NewProgram(bubble, tea.WithAltScreen(), tea.WithMouseAllMotion())
	bubble.send = program.Send

	_, err := program.Run()
	if closeErr := bubble.detach(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = bubble.lastError
	}
	return err
}
