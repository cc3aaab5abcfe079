package eventbus

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weighbridge/internal/domain"
)

func TestPublishDeliversInOrder(t *testing.T) {
	t.Parallel()
	b := New()
	defer b.Close()

	var mu sync.Mutex
	var got []int64
	b.Subscribe(EventReadingUpdated, func(e DomainEvent) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, e.(ReadingUpdatedEvent).Reading.Gross)
	})

	for i := int64(1); i <= 5; i++ {
		b.Publish(ReadingUpdatedEvent{Reading: domain.Reading{Gross: i}})
	}

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 5
	}, time.Second, 5*time.Millisecond, "all readings should be delivered")
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, got)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	t.Parallel()
	b := New()
	defer b.Close()

	var mu sync.Mutex
	first, second := 0, 0
	unsub := b.Subscribe(EventError, func(DomainEvent) {
		mu.Lock()
		first++
		mu.Unlock()
	})
	b.Subscribe(EventError, func(DomainEvent) {
		mu.Lock()
		second++
		mu.Unlock()
	})

	unsub()
	b.Publish(ErrorEvent{Message: "boom"})

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return second == 1
	}, time.Second, 5*time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Zero(t, first, "unsubscribed handler must not run")
}

func TestHandlerPanicIsRecovered(t *testing.T) {
	t.Parallel()
	b := New()
	defer b.Close()

	done := make(chan struct{})
	b.Subscribe(EventTicketPrinted, func(DomainEvent) { panic("bad handler") })
	b.Subscribe(EventTicketPrinted, func(DomainEvent) { close(done) })

	b.Publish(TicketPrintedEvent{TicketID: "t1"})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler after a panicking handler was not called")
	}
}

func TestPublishAfterCloseIsDropped(t *testing.T) {
	t.Parallel()
	b := New()
	called := false
	b.Subscribe(EventRecentChanged, func(DomainEvent) { called = true })
	b.Close()

	assert.NotPanics(t, func() { b.Publish(RecentChangedEvent{}) })
	assert.False(t, called)
}
