package selection

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weighbridge/internal/domain"
	"weighbridge/internal/ui/services/events"
)

func openCount(s *Service) int {
	n := 0
	for _, slot := range domain.Slots {
		if s.IsOpen(slot) {
			n++
		}
	}
	return n
}

func TestOpenClosesOthersFirst(t *testing.T) {
	t.Parallel()
	bus := events.NewBus()
	var log []string
	bus.Subscribe(events.TypeOf(SlotOpenedEvent{}), func(e interface{}) {
		log = append(log, "open "+e.(SlotOpenedEvent).Slot.String())
	})
	bus.Subscribe(events.TypeOf(SlotClosedEvent{}), func(e interface{}) {
		log = append(log, "close "+e.(SlotClosedEvent).Slot.String())
	})

	svc := NewService(bus)
	svc.Open(domain.SlotTruck)
	svc.Open(domain.SlotOrder)
	svc.Open(domain.SlotOrder)

	assert.Equal(t, []string{"open TRUCK", "close TRUCK", "open ORDER"}, log)
	assert.Equal(t, domain.SlotOrder, svc.OpenSlot())
	assert.False(t, svc.IsOpen(domain.SlotTruck))
}

func TestCloseIgnoresOtherSlots(t *testing.T) {
	t.Parallel()
	svc := NewService(nil)
	svc.Open(domain.SlotCustomer)
	svc.Close(domain.SlotProduct)
	assert.True(t, svc.IsOpen(domain.SlotCustomer))

	svc.CloseAll()
	assert.Equal(t, domain.NoSlot, svc.OpenSlot())
	assert.False(t, svc.IsOpen(domain.NoSlot))
}

func TestAtMostOneOpen(t *testing.T) {
	t.Parallel()
	svc := NewService(nil)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		slot := domain.Slots[rng.Intn(len(domain.Slots))]
		switch rng.Intn(3) {
		case 0:
			svc.Open(slot)
		case 1:
			svc.Close(slot)
		default:
			svc.CloseAll()
		}
		require.LessOrEqual(t, openCount(svc), 1, "step %d", i)
	}
}

func TestSetValuePublishesChanges(t *testing.T) {
	t.Parallel()
	bus := events.NewBus()
	var got []ValueChangedEvent
	bus.Subscribe(events.TypeOf(ValueChangedEvent{}), func(e interface{}) {
		got = append(got, e.(ValueChangedEvent))
	})
	svc := NewService(bus)

	assert.True(t, svc.SetValue(domain.SlotTruck, "TRK-1058"))
	assert.False(t, svc.SetValue(domain.SlotTruck, "TRK-1058"), "same value is not a change")
	assert.True(t, svc.SetValue(domain.SlotTruck, ""))
	assert.False(t, svc.SetValue(domain.NoSlot, "x"))

	require.Len(t, got, 2)
	assert.Equal(t, ValueChangedEvent{Slot: domain.SlotTruck, ID: "TRK-1058"}, got[0])
	assert.Equal(t, ValueChangedEvent{Slot: domain.SlotTruck, ID: "", Previous: "TRK-1058"}, got[1])
	assert.Equal(t, "", svc.Value(domain.SlotTruck))
}

func TestSnapshotAndComplete(t *testing.T) {
	t.Parallel()
	svc := NewService(nil)
	svc.SetValue(domain.SlotTruck, "TRK-1000")
	svc.SetValue(domain.SlotCustomer, "Lake LLC")
	svc.SetValue(domain.SlotOrder, "ORD-10000")
	assert.False(t, svc.Complete())

	svc.SetValue(domain.SlotProduct, "Gravel #4")
	assert.True(t, svc.Complete())

	snap := svc.Snapshot()
	snap[domain.SlotTruck] = "changed"
	assert.Equal(t, "TRK-1000", svc.Value(domain.SlotTruck), "snapshot must be a copy")
}
