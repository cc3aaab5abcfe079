// Package debounce coalesces rapid value changes into a single trailing
// delivery on the Bubble Tea event loop.
package debounce

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDelay is the quiet period used by the search path.
const DefaultDelay = 150 * time.Millisecond

// FiredMsg is delivered when a pushed value has been stable for the delay.
type FiredMsg[T any] struct {
	Owner string
	Seq   uint64
	Value T
}

// Option configures a Debouncer.
type Option[T any] func(*Debouncer[T])

// WithImmediate delivers values matching pred without waiting.
func WithImmediate[T any](pred func(T) bool) Option[T] {
	return func(d *Debouncer[T]) {
		d.immediate = pred
	}
}

// Blank reports whether s is empty or whitespace only.
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Debouncer produces trailing values. Each Push supersedes every earlier
// one; only the newest delivery is accepted by Resolve.
type Debouncer[T any] struct {
	owner     string
	delay     time.Duration
	immediate func(T) bool
	seq       uint64
	pending   bool
}

// New creates a debouncer. owner distinguishes the messages of several
// debouncers running in the same program.
func New[T any](owner string, delay time.Duration, opts ...Option[T]) *Debouncer[T] {
	d := &Debouncer[T]{owner: owner, delay: delay}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Delay returns the configured quiet period.
func (d *Debouncer[T]) Delay() time.Duration { return d.delay }

// Push schedules v for delivery and returns the command that delivers it.
func (d *Debouncer[T]) Push(v T) tea.Cmd {
	d.seq++
	d.pending = true
	msg := FiredMsg[T]{Owner: d.owner, Seq: d.seq, Value: v}

	if d.delay <= 0 || (d.immediate != nil && d.immediate(v)) {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(d.delay, func(time.Time) tea.Msg { return msg })
}

// Resolve reports whether msg is the latest delivery of this debouncer and
// returns its value. Superseded and foreign messages are rejected.
func (d *Debouncer[T]) Resolve(msg FiredMsg[T]) (T, bool) {
	if msg.Owner != d.owner || msg.Seq != d.seq || !d.pending {
		var zero T
		return zero, false
	}
	d.pending = false
	return msg.Value, true
}

// Cancel drops the pending delivery, if any.
func (d *Debouncer[T]) Cancel() {
	d.seq++
	d.pending = false
}

// Pending reports whether a pushed value has not been delivered yet.
func (d *Debouncer[T]) Pending() bool { return d.pending }
