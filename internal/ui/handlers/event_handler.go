package handlers

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"weighbridge/internal/eventbus"
	"weighbridge/internal/ui/state"
	"weighbridge/internal/ui/toast"
)

// EventHandler handles domain events and updates state
type EventHandler struct {
	state  *state.AppState
	toasts *toast.Sink
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState, toasts *toast.Sink) *EventHandler {
	return &EventHandler{
		state:  appState,
		toasts: toasts,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.ReadingUpdatedEvent:
		h.state.Reading = e.Reading

	case eventbus.ReadingTriggeredEvent:
		h.state.StatusMessage = "Weighing..."

	case eventbus.TicketPrintedEvent:
		h.state.LastTicketPath = e.Path
		h.state.StatusMessage = fmt.Sprintf("Last ticket: %s", e.Path)

	case eventbus.ErrorEvent:
		msg := e.Message
		if e.Err != nil {
			log.Error("ui: error event", "message", e.Message, "err", e.Err)
			msg = fmt.Sprintf("%s: %v", e.Message, e.Err)
		}
		return h.toasts.Notify(toast.Error, "Error", msg)

	case eventbus.ConfigLoadedEvent:
		log.Debug("ui: config loaded", "path", e.Path)

	case eventbus.ConfigSavedEvent:
		h.state.StatusMessage = fmt.Sprintf("Config saved to %s", e.Path)
	}

	return nil
}
