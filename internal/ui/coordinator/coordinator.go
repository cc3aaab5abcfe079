package coordinator

import (
	"weighbridge/internal/domain"
	"weighbridge/internal/ui/combobox"
	"weighbridge/internal/ui/services/events"
	"weighbridge/internal/ui/services/navigation"
	"weighbridge/internal/ui/services/selection"
)

// Coordinator manages the UI services and the slot comboboxes
type Coordinator struct {
	// Services
	Navigation *navigation.Service
	Selection  *selection.Service

	// Dependencies
	bus   events.EventBus
	boxes map[domain.Slot]*combobox.Model
}

// NewCoordinator creates a new coordinator over one combobox per slot
func NewCoordinator(bus events.EventBus, boxes ...*combobox.Model) *Coordinator {
	c := &Coordinator{
		Navigation: navigation.NewService(bus),
		Selection:  selection.NewService(bus),
		bus:        bus,
		boxes:      make(map[domain.Slot]*combobox.Model, len(boxes)),
	}
	for _, b := range boxes {
		c.boxes[b.Slot()] = b
	}

	// Seed the selection with whatever the boxes already hold
	c.wireServices()

	// Subscribe to events
	c.subscribeToEvents()

	return c
}

// wireServices copies initial combobox values into the selection service
func (c *Coordinator) wireServices() {
	for _, slot := range domain.Slots {
		if b := c.boxes[slot]; b != nil && b.Value() != "" {
			c.Selection.SetValue(slot, b.Value())
		}
	}
}

// subscribeToEvents sets up event handlers
func (c *Coordinator) subscribeToEvents() {
	// The selection service owns the open slot; boxes only mirror it
	c.bus.Subscribe(events.TypeOf(selection.SlotOpenedEvent{}), func(e interface{}) {
		if b := c.boxes[e.(selection.SlotOpenedEvent).Slot]; b != nil {
			b.SetOpen(true)
		}
	})

	c.bus.Subscribe(events.TypeOf(selection.SlotClosedEvent{}), func(e interface{}) {
		if b := c.boxes[e.(selection.SlotClosedEvent).Slot]; b != nil {
			b.SetOpen(false)
		}
	})

	c.bus.Subscribe(events.TypeOf(selection.ValueChangedEvent{}), func(e interface{}) {
		ev := e.(selection.ValueChangedEvent)
		if b := c.boxes[ev.Slot]; b != nil && b.Value() != ev.ID {
			b.SetValue(ev.ID)
		}
	})
}

// Box returns the combobox of slot
func (c *Coordinator) Box(slot domain.Slot) *combobox.Model {
	return c.boxes[slot]
}

// Boxes returns the comboboxes in navigation order
func (c *Coordinator) Boxes() []*combobox.Model {
	out := make([]*combobox.Model, 0, len(c.boxes))
	for _, slot := range domain.Slots {
		if b := c.boxes[slot]; b != nil {
			out = append(out, b)
		}
	}
	return out
}

// SetValue writes a value from outside the form. The combobox may refuse
// it, in which case nothing changes.
func (c *Coordinator) SetValue(slot domain.Slot, id string) bool {
	b := c.boxes[slot]
	if b == nil || !b.SetValue(id) {
		return false
	}
	c.Selection.SetValue(slot, id)
	return true
}

// Close cancels the pending work of every combobox
func (c *Coordinator) Close() {
	for _, b := range c.boxes {
		b.Close()
	}
}
