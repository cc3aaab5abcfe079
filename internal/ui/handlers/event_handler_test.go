package handlers

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weighbridge/internal/domain"
	"weighbridge/internal/eventbus"
	"weighbridge/internal/ui/state"
	"weighbridge/internal/ui/toast"
)

func TestReadingUpdatedStoresReading(t *testing.T) {
	t.Parallel()
	s := state.NewAppState()
	h := NewEventHandler(s, toast.NewSink(time.Second))

	r := domain.Reading{Gross: 80000, Tare: 30000, Status: domain.ScaleReading}
	assert.Nil(t, h.HandleEvent(eventbus.ReadingUpdatedEvent{Reading: r}))
	assert.Equal(t, r, s.Reading)
}

func TestTicketPrintedRecordsPath(t *testing.T) {
	t.Parallel()
	s := state.NewAppState()
	h := NewEventHandler(s, toast.NewSink(time.Second))

	h.HandleEvent(eventbus.TicketPrintedEvent{TicketID: "abc", Path: "/tmp/t.txt", Net: 46000})
	assert.Equal(t, "/tmp/t.txt", s.LastTicketPath)
	assert.Contains(t, s.StatusMessage, "/tmp/t.txt")
}

func TestErrorEventRaisesToast(t *testing.T) {
	t.Parallel()
	sink := toast.NewSink(time.Second)
	h := NewEventHandler(state.NewAppState(), sink)

	cmd := h.HandleEvent(eventbus.ErrorEvent{Message: "Could not load recent activity", Err: errors.New("disk gone")})
	require.NotNil(t, cmd)
	require.Len(t, sink.Toasts(), 1)
	assert.Equal(t, toast.Error, sink.Toasts()[0].Kind)
	assert.Equal(t, "Could not load recent activity: disk gone", sink.Toasts()[0].Message)
}
