package ui

import (
	"weighbridge/internal/eventbus"
)

// EventMsg delivers a domain event from the bus into Update
type EventMsg struct {
	Event eventbus.DomainEvent
}

// helpPagerMsg reports how the pager session ended
type helpPagerMsg struct {
	err error
}

// pauseRenderingMsg blanks the view while ov owns the terminal
type pauseRenderingMsg struct{}

// resumeRenderingMsg brings the dashboard back after paging
type resumeRenderingMsg struct{}
