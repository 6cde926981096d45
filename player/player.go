// Package player drives an mpv process over its JSON-IPC socket and exposes it
// as the media element and host environment of a playback controller.
package player

import (
	"fmt"

	"github.com/vidstrip/vidstrip/log"
)

// Session is a launched mpv process with its event listener attached to an Element.
type Session struct {
	*Element

	mpv    *MPV
	events *EventListener
}

// Start launches mpv and mirrors its properties into a new Element.
func Start(launch LaunchOptions, options ...Option) (*Session, error) {
	mpv, err := Launch(launch)
	if err != nil {
		return nil, err
	}

	element := NewElement(mpv, options...)
	events := NewEventListener(mpv.Socket(), element.HandleEvent)
	if err := events.Start(); err != nil {
		_ = mpv.Close()
		return nil, fmt.Errorf("listen to mpv events: %w", err)
	}

	return &Session{Element: element, mpv: mpv, events: events}, nil
}

// Done is closed when mpv exits, e.g. after the user closes its window.
func (s *Session) Done() <-chan struct{} {
	return s.mpv.Wait()
}

// Close stops listening and shuts mpv down.
func (s *Session) Close() error {
	s.events.Stop()
	if err := s.mpv.Close(); err != nil {
		log.Warnf("close mpv: %v", err)
		return err
	}
	return nil
}
