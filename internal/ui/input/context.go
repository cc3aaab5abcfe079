package input

import (
	"weighbridge/internal/domain"
	"weighbridge/internal/ui/services/navigation"
	"weighbridge/internal/ui/services/selection"
	"weighbridge/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State      *state.AppState
	Navigation *navigation.Service
	Selection  *selection.Service
}

// FocusedSlot returns the slot whose input has focus
func (c *ModelContext) FocusedSlot() domain.Slot {
	return c.State.Focused
}

// ActiveSlot returns the highlighted slot
func (c *ModelContext) ActiveSlot() domain.Slot {
	return c.Navigation.Active()
}

// OpenSlot returns the slot with an open dropdown
func (c *ModelContext) OpenSlot() domain.Slot {
	return c.Selection.OpenSlot()
}

// RecentCount returns the number of recent transactions
func (c *ModelContext) RecentCount() int {
	return len(c.State.Recent)
}

// RecentCursor returns the highlighted recent transaction
func (c *ModelContext) RecentCursor() int {
	return c.State.RecentCursor
}
