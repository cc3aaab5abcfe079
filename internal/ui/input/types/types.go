package types

import (
	tea "github.com/charmbracelet/bubbletea"

	"weighbridge/internal/domain"
)

// Mode represents an input mode
type Mode int

const (
	ModeSlots Mode = iota
	ModeRecent
	ModeHelp
)

func (m Mode) String() string {
	switch m {
	case ModeRecent:
		return "RECENT"
	case ModeHelp:
		return "HELP"
	default:
		return "FORM"
	}
}

// Action is a request from a mode or a combobox that the root model carries out
type Action interface {
	Type() string
}

// Context is the read-only view of the dashboard that modes decide on
type Context interface {
	FocusedSlot() domain.Slot
	ActiveSlot() domain.Slot
	OpenSlot() domain.Slot
	RecentCount() int
	RecentCursor() int
}

// ModeHandler owns the keys of one input mode
type ModeHandler interface {
	// HandleKey returns the actions for msg and whether the mode consumed it
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)
	Enter(ctx Context) []Action
	Exit(ctx Context) []Action
	// Name is shown in the title bar
	Name() string
}
