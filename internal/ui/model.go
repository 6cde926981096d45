// Package ui holds small bubbletea components shared by the terminal views.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vidstrip/vidstrip/style"
)

// NotificationLifetime is how long a notification stays on screen.
const NotificationLifetime = 2 * time.Second

// Model shows one short-lived notification after the last line of a view.
type Model struct {
	notification string
	seq          int
}

// NotificationMsg replaces the current notification.
type NotificationMsg string

// ClearNotificationMsg clears the notification it was scheduled for.
type ClearNotificationMsg struct {
	seq int
}

// Notify returns a command that shows text.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return NotificationMsg(text)
	}
}

func clearNotification(seq int) tea.Cmd {
	return tea.Tick(NotificationLifetime, func(time.Time) tea.Msg {
		return ClearNotificationMsg{seq: seq}
	})
}

// Notification returns the text on screen, if any.
func (m *Model) Notification() string {
	return m.notification
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case NotificationMsg:
		m.seq++
		m.notification = string(msg)
		return clearNotification(m.seq)
	case ClearNotificationMsg:
		// a newer notification owns the screen
		if msg.seq == m.seq {
			m.notification = ""
		}
	}
	return nil
}

// View appends the notification to the last line of content.
func (m *Model) View(content string) string {
	if m.notification == "" {
		return content
	}

	lines := strings.Split(content, "\n")
	lines[len(lines)-1] += "  " + style.Faint(m.notification)
	return strings.Join(lines, "\n")
}
