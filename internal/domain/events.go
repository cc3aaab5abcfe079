package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventReadingUpdated   EventType = "ReadingUpdated"
	EventReadingTriggered EventType = "ReadingTriggered"
	EventTicketPrinted    EventType = "TicketPrinted"
	EventRecentChanged    EventType = "RecentChanged"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ReadingUpdatedEvent is emitted whenever the scale produces a sample
type ReadingUpdatedEvent struct {
	Reading Reading
}

func (e ReadingUpdatedEvent) Type() EventType { return EventReadingUpdated }

// ReadingTriggeredEvent is emitted when a new weighing starts
type ReadingTriggeredEvent struct{}

func (e ReadingTriggeredEvent) Type() EventType { return EventReadingTriggered }

// TicketPrintedEvent is emitted after a ticket has been written
type TicketPrintedEvent struct {
	TicketID string
	Path     string
	Net      int64
}

func (e TicketPrintedEvent) Type() EventType { return EventTicketPrinted }

// RecentChangedEvent is emitted when the recent activity list was saved or cleared
type RecentChangedEvent struct {
	Cleared bool
}

func (e RecentChangedEvent) Type() EventType { return EventRecentChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
