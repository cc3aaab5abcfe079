package selection

import (
	"weighbridge/internal/domain"
	"weighbridge/internal/ui/services/events"
)

// Service owns the committed slot values and the open dropdown. It is the
// only place the open slot is changed.
type Service struct {
	state *State
	bus   events.EventBus
}

// NewService creates a new selection service
func NewService(bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{
			Selected: make(map[domain.Slot]string),
			Open:     domain.NoSlot,
		},
		bus: bus,
	}
}

// Open opens slot's dropdown, closing any other one first. Opening the
// open slot does nothing.
func (s *Service) Open(slot domain.Slot) {
	if !slot.Valid() || s.state.Open == slot {
		return
	}
	s.CloseAll()
	s.state.Open = slot
	s.bus.Publish(SlotOpenedEvent{Slot: slot})
}

// Close closes slot's dropdown if it is the open one
func (s *Service) Close(slot domain.Slot) {
	if s.state.Open != slot || slot == domain.NoSlot {
		return
	}
	s.state.Open = domain.NoSlot
	s.bus.Publish(SlotClosedEvent{Slot: slot})
}

// CloseAll closes whichever dropdown is open
func (s *Service) CloseAll() {
	s.Close(s.state.Open)
}

// IsOpen reports whether slot's dropdown is open
func (s *Service) IsOpen(slot domain.Slot) bool {
	return slot != domain.NoSlot && s.state.Open == slot
}

// OpenSlot returns the open slot, NoSlot when all are closed
func (s *Service) OpenSlot() domain.Slot {
	return s.state.Open
}

// SetValue records id for slot, or clears it when id is "". Listeners are
// notified only when the value actually changes.
func (s *Service) SetValue(slot domain.Slot, id string) bool {
	if !slot.Valid() {
		return false
	}
	prev := s.state.Selected[slot]
	if prev == id {
		return false
	}
	if id == "" {
		delete(s.state.Selected, slot)
	} else {
		s.state.Selected[slot] = id
	}
	s.bus.Publish(ValueChangedEvent{Slot: slot, ID: id, Previous: prev})
	return true
}

// Value returns the committed id of slot
func (s *Service) Value(slot domain.Slot) string {
	return s.state.Selected[slot]
}

// Snapshot copies the committed values
func (s *Service) Snapshot() domain.Selection {
	out := make(domain.Selection, len(s.state.Selected))
	for k, v := range s.state.Selected {
		out[k] = v
	}
	return out
}

// Complete reports whether every slot has a value
func (s *Service) Complete() bool {
	for _, slot := range domain.Slots {
		if s.state.Selected[slot] == "" {
			return false
		}
	}
	return true
}
