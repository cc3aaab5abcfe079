package navigation

import (
	"weighbridge/internal/domain"
	"weighbridge/internal/ui/services/events"
)

// NextSlot returns the slot after current in direction, wrapping at both
// ends. An unknown slot maps to the first one.
func NextSlot(current domain.Slot, direction Direction) domain.Slot {
	pos := -1
	for i, s := range domain.Slots {
		if s == current {
			pos = i
			break
		}
	}
	if pos < 0 {
		return domain.Slots[0]
	}

	n := len(domain.Slots)
	switch direction {
	case DirectionPrev:
		return domain.Slots[(pos-1+n)%n]
	default:
		return domain.Slots[(pos+1)%n]
	}
}

// Service tracks the active slot
type Service struct {
	state *State
	bus   events.EventBus
}

// NewService creates a new navigation service
func NewService(bus events.EventBus) *Service {
	if bus == nil {
		bus = &events.NullBus{}
	}
	return &Service{
		state: &State{Active: domain.NoSlot},
		bus:   bus,
	}
}

// Active returns the highlighted slot
func (s *Service) Active() domain.Slot {
	return s.state.Active
}

// Activate marks slot active. Activating the active slot is a no-op.
func (s *Service) Activate(slot domain.Slot) {
	if !slot.Valid() || slot == s.state.Active {
		return
	}
	old := s.state.Active
	s.state.Active = slot
	s.bus.Publish(SlotActivatedEvent{From: old, To: slot})
}

// Navigate activates the neighbour of from and returns it
func (s *Service) Navigate(from domain.Slot, direction Direction) domain.Slot {
	target := NextSlot(from, direction)
	s.Activate(target)
	return target
}

// Reset clears the active slot
func (s *Service) Reset() {
	s.state.Active = domain.NoSlot
}
