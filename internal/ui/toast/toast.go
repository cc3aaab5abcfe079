// Package toast shows short-lived notifications over the dashboard.
package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultDuration is how long a toast stays up.
const DefaultDuration = 5 * time.Second

// Kind selects the styling of a toast.
type Kind int

const (
	Success Kind = iota
	Error
)

func (k Kind) String() string {
	if k == Error {
		return "error"
	}
	return "success"
}

// Toast is one notification.
type Toast struct {
	ID      uint64
	Kind    Kind
	Title   string
	Message string
}

// DismissMsg removes the toast with ID when its time is up.
type DismissMsg struct {
	ID uint64
}

// Sink holds the visible toasts, newest last.
type Sink struct {
	duration time.Duration
	next     uint64
	toasts   []Toast
}

// NewSink creates a sink whose toasts last d.
func NewSink(d time.Duration) *Sink {
	if d <= 0 {
		d = DefaultDuration
	}
	return &Sink{duration: d}
}

// Notify shows a toast and returns the command that dismisses it.
func (s *Sink) Notify(kind Kind, title, message string) tea.Cmd {
	s.next++
	id := s.next
	s.toasts = append(s.toasts, Toast{ID: id, Kind: kind, Title: title, Message: message})
	return tea.Tick(s.duration, func(time.Time) tea.Msg {
		return DismissMsg{ID: id}
	})
}

// Dismiss removes a toast. Unknown IDs are ignored.
func (s *Sink) Dismiss(id uint64) {
	for i, t := range s.toasts {
		if t.ID == id {
			s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
			return
		}
	}
}

// Toasts returns the visible toasts.
func (s *Sink) Toasts() []Toast { return s.toasts }

var (
	base = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(40)

	successStyle = base.BorderForeground(lipgloss.Color("42"))
	errorStyle   = base.BorderForeground(lipgloss.Color("196"))
	titleStyle   = lipgloss.NewStyle().Bold(true)
)

// View renders the visible toasts stacked vertically, or "" when none.
func (s *Sink) View() string {
	if len(s.toasts) == 0 {
		return ""
	}
	boxes := make([]string, len(s.toasts))
	for i, t := range s.toasts {
		style := successStyle
		if t.Kind == Error {
			style = errorStyle
		}
		body := titleStyle.Render(t.Title)
		if t.Message != "" {
			body += "\n" + t.Message
		}
		boxes[i] = style.Render(body)
	}
	return lipgloss.JoinVertical(lipgloss.Right, boxes...)
}
