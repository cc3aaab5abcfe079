package state

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"weighbridge/internal/domain"
)

func TestDetailSequencing(t *testing.T) {
	t.Parallel()
	s := NewAppState()

	first := s.StartDetail(domain.SlotTruck, "TRK-1000")
	second := s.StartDetail(domain.SlotTruck, "TRK-1001")
	assert.Equal(t, DetailLoading, s.Detail(domain.SlotTruck).Status)

	assert.False(t, s.FinishDetail(domain.SlotTruck, first, domain.Record{"id": "TRK-1000"}, nil), "superseded fetch is ignored")
	assert.True(t, s.FinishDetail(domain.SlotTruck, second, domain.Record{"id": "TRK-1001"}, nil))

	d := s.Detail(domain.SlotTruck)
	assert.Equal(t, DetailReady, d.Status)
	assert.Equal(t, "TRK-1001", d.Record.Get("id"))
}

func TestDetailErrorAndClear(t *testing.T) {
	t.Parallel()
	s := NewAppState()

	seq := s.StartDetail(domain.SlotTruck, "TRK-9999")
	assert.True(t, s.FinishDetail(domain.SlotTruck, seq, nil, errors.New("not found")))
	assert.Equal(t, DetailError, s.Detail(domain.SlotTruck).Status)

	s.ClearDetail(domain.SlotTruck)
	assert.Equal(t, DetailNone, s.Detail(domain.SlotTruck).Status)
	assert.False(t, s.FinishDetail(domain.SlotTruck, seq, nil, nil), "cleared detail accepts no late result")
}

func TestRecentCursorClamps(t *testing.T) {
	t.Parallel()
	s := NewAppState()
	s.SetRecent(make([]domain.Transaction, 3))

	s.MoveRecentCursor(5)
	assert.Equal(t, 2, s.RecentCursor)
	s.MoveRecentCursor(-9)
	assert.Equal(t, 0, s.RecentCursor)

	s.RecentCursor = 2
	s.SetRecent(make([]domain.Transaction, 1))
	assert.Equal(t, 0, s.RecentCursor)

	_, ok := s.RecentAt(1)
	assert.False(t, ok)
}

func TestScrollHelp(t *testing.T) {
	t.Parallel()
	s := NewAppState()
	s.ScrollHelp(3, 2)
	assert.Equal(t, 2, s.HelpScrollOffset)
	s.ScrollHelp(-5, 2)
	assert.Equal(t, 0, s.HelpScrollOffset)
}
