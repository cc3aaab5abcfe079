package debounce

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// deliver runs each command and feeds the resulting messages back through
// Resolve, returning the values that were accepted.
func deliver(d *Debouncer[string], cmds ...tea.Cmd) []string {
	var got []string
	for _, cmd := range cmds {
		msg, ok := cmd().(FiredMsg[string])
		if !ok {
			continue
		}
		if v, ok := d.Resolve(msg); ok {
			got = append(got, v)
		}
	}
	return got
}

func TestOnlyLastValueIsDelivered(t *testing.T) {
	t.Parallel()
	d := New[string]("truck", 5*time.Millisecond)

	a := d.Push("a")
	b := d.Push("b")
	c := d.Push("c")

	assert.Equal(t, []string{"c"}, deliver(d, a, b, c))
	assert.False(t, d.Pending())
}

func TestDeliveryOrderDoesNotMatter(t *testing.T) {
	t.Parallel()
	d := New[string]("truck", time.Millisecond)

	a := d.Push("a")
	c := d.Push("c")

	assert.Equal(t, []string{"c"}, deliver(d, c, a))
}

func TestValueIsDeliveredOnlyOnce(t *testing.T) {
	t.Parallel()
	d := New[string]("truck", time.Millisecond)

	cmd := d.Push("a")
	msg := cmd().(FiredMsg[string])

	_, ok := d.Resolve(msg)
	require.True(t, ok)
	_, ok = d.Resolve(msg)
	assert.False(t, ok, "a delivered value must not fire twice")
}

func TestBlankValueIsImmediate(t *testing.T) {
	t.Parallel()
	d := New[string]("truck", time.Hour, WithImmediate(Blank))

	cmd := d.Push("  ")
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		v, ok := d.Resolve(msg.(FiredMsg[string]))
		require.True(t, ok)
		assert.Equal(t, "  ", v)
	case <-time.After(time.Second):
		t.Fatal("blank value should be delivered without waiting for the delay")
	}
}

func TestNonBlankValueWaitsForDelay(t *testing.T) {
	t.Parallel()
	delay := 30 * time.Millisecond
	d := New[string]("truck", delay, WithImmediate(Blank))

	start := time.Now()
	got := deliver(d, d.Push("TRK"))

	assert.Equal(t, []string{"TRK"}, got)
	assert.GreaterOrEqual(t, time.Since(start), delay)
}

func TestCancelDropsPendingValue(t *testing.T) {
	t.Parallel()
	d := New[string]("truck", time.Millisecond)

	cmd := d.Push("a")
	d.Cancel()

	assert.Empty(t, deliver(d, cmd))
	assert.False(t, d.Pending())
}

func TestForeignOwnerIsRejected(t *testing.T) {
	t.Parallel()
	truck := New[string]("truck", time.Millisecond)
	customer := New[string]("customer", time.Millisecond)

	msg := truck.Push("a")().(FiredMsg[string])
	customer.Push("b")

	_, ok := customer.Resolve(msg)
	assert.False(t, ok)
}
