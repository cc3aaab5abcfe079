// Package scale simulates the truck scale that feeds live weights to the
// dashboard.
package scale

import (
	"context"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"weighbridge/internal/domain"
	"weighbridge/internal/eventbus"
)

// Options tune the simulated scale.
type Options struct {
	PollMin       time.Duration // shortest interval between spontaneous readings
	PollMax       time.Duration
	ReadingChance float64 // probability that a poll starts a reading
	StabilizeMin  time.Duration
	StabilizeMax  time.Duration
	InitialGross  int64
	InitialTare   int64
	MinGross      int64
	MinTare       int64
}

// DefaultOptions mirrors the behaviour of the yard scale.
func DefaultOptions() Options {
	return Options{
		PollMin:       3 * time.Second,
		PollMax:       5 * time.Second,
		ReadingChance: 0.2,
		StabilizeMin:  2 * time.Second,
		StabilizeMax:  3 * time.Second,
		InitialGross:  78000,
		InitialTare:   32000,
		MinGross:      50000,
		MinTare:       25000,
	}
}

// Feed produces readings and publishes every change on the event bus.
type Feed struct {
	mu        sync.Mutex
	opts      Options
	bus       eventbus.EventBus
	current   domain.Reading
	reading   bool
	truckTare int64
	settle    *time.Timer
	random    func() float64
	now       func() time.Time
}

// NewFeed creates a stable feed at the initial weights.
func NewFeed(bus eventbus.EventBus, opts Options) *Feed {
	f := &Feed{
		opts:   opts,
		bus:    bus,
		random: rand.Float64,
		now:    time.Now,
	}
	f.current = domain.Reading{
		Gross:  opts.InitialGross,
		Tare:   opts.InitialTare,
		Status: domain.ScaleStable,
		At:     f.now(),
	}
	return f
}

// Snapshot returns the latest reading.
func (f *Feed) Snapshot() domain.Reading {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

// SetTruckTare uses the tare of the selected truck as the base of future
// readings. Zero or negative values clear it.
func (f *Feed) SetTruckTare(lbs int64) {
	f.mu.Lock()
	if lbs <= 0 {
		f.truckTare = 0
		f.mu.Unlock()
		return
	}
	f.truckTare = lbs
	f.current.Tare = lbs
	f.current.At = f.now()
	r := f.current
	f.mu.Unlock()

	f.publish(r)
}

// TriggerReading starts a new weighing. It reports false when a reading is
// already in progress.
func (f *Feed) TriggerReading() bool {
	f.mu.Lock()
	if f.reading {
		f.mu.Unlock()
		return false
	}
	f.reading = true

	grossVariation := (f.random() - 0.5) * 200
	f.current.Gross = max(f.opts.MinGross, f.current.Gross+int64(math.Round(grossVariation)))

	base := f.current.Tare
	if f.truckTare > 0 {
		base = f.truckTare
	}
	tareVariation := (f.random() - 0.5) * 40
	f.current.Tare = max(f.opts.MinTare, base+int64(math.Round(tareVariation)))
	f.current.Status = domain.ScaleReading
	f.current.At = f.now()
	r := f.current

	if f.settle != nil {
		f.settle.Stop()
	}
	f.settle = time.AfterFunc(f.draw(f.opts.StabilizeMin, f.opts.StabilizeMax), f.stabilize)
	f.mu.Unlock()

	log.Info("scale: reading started", "gross", r.Gross, "tare", r.Tare)
	if f.bus != nil {
		f.bus.Publish(eventbus.ReadingTriggeredEvent{})
	}
	f.publish(r)
	return true
}

// Reading reports whether the scale is still settling.
func (f *Feed) Reading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reading
}

// Run polls until ctx is done, occasionally starting a reading on its own.
func (f *Feed) Run(ctx context.Context) error {
	f.publish(f.Snapshot())

	for {
		t := time.NewTimer(f.draw(f.opts.PollMin, f.opts.PollMax))
		select {
		case <-ctx.Done():
			t.Stop()
			f.stop()
			return nil
		case <-t.C:
			if f.random() < f.opts.ReadingChance && !f.Reading() {
				f.TriggerReading()
			}
		}
	}
}

func (f *Feed) stabilize() {
	f.mu.Lock()
	f.reading = false
	f.settle = nil
	f.current.Status = domain.ScaleStable
	f.current.At = f.now()
	r := f.current
	f.mu.Unlock()

	log.Info("scale: stable", "gross", r.Gross, "tare", r.Tare, "net", r.Net())
	f.publish(r)
}

func (f *Feed) stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.settle != nil {
		f.settle.Stop()
		f.settle = nil
	}
}

func (f *Feed) draw(lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(f.random()*float64(hi-lo))
}

func (f *Feed) publish(r domain.Reading) {
	if f.bus != nil {
		f.bus.Publish(eventbus.ReadingUpdatedEvent{Reading: r})
	}
}
