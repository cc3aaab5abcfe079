package selection

import "weighbridge/internal/domain"

// State holds selection state
type State struct {
	Selected map[domain.Slot]string
	Open     domain.Slot // the only slot whose dropdown is open, NoSlot when none
}

// ValueChangedEvent is published after a slot's committed id changes.
// ID is "" when the slot was cleared.
type ValueChangedEvent struct {
	Slot     domain.Slot
	ID       string
	Previous string
}

// SlotOpenedEvent is published when a dropdown opens
type SlotOpenedEvent struct {
	Slot domain.Slot
}

// SlotClosedEvent is published when a dropdown closes
type SlotClosedEvent struct {
	Slot domain.Slot
}
