package navigation

import "weighbridge/internal/domain"

// State holds all navigation-related state
type State struct {
	Active domain.Slot // highlighted slot, NoSlot before the first focus
}

// Direction represents movement directions
type Direction string

const (
	DirectionNext Direction = "next"
	DirectionPrev Direction = "prev"
)

// SlotActivatedEvent is published when the active slot changes
type SlotActivatedEvent struct {
	From domain.Slot
	To   domain.Slot
}
