// Package adapters connects storage to the UI.
package adapters

import (
	"errors"

	"github.com/charmbracelet/log"

	"weighbridge/internal/domain"
	"weighbridge/internal/eventbus"
	"weighbridge/internal/recent"
)

// RecentStore is the persistence behind the recent activity panel
type RecentStore interface {
	Load() ([]domain.Transaction, error)
	Save(truckID, customerID string, netWeight int64) (domain.Transaction, error)
	Clear() error
}

// RecentAdapter adapts a RecentStore to the UI. Failures never reach the
// caller as errors: a failed load reads as an empty list and a failed save
// is dropped.
type RecentAdapter struct {
	store RecentStore
	bus   eventbus.EventBus
}

// NewRecentAdapter creates a new adapter. A nil store behaves as an empty
// one that saves nothing.
func NewRecentAdapter(store RecentStore, bus eventbus.EventBus) *RecentAdapter {
	return &RecentAdapter{store: store, bus: bus}
}

// Load returns the recent transactions, newest first
func (a *RecentAdapter) Load() []domain.Transaction {
	if a.store == nil {
		return nil
	}
	list, err := a.store.Load()
	if err != nil {
		log.Error("recent: load failed", "err", err)
		a.publish(domain.ErrorEvent{Message: "Could not load recent activity", Err: err})
		return nil
	}
	return list
}

// Save records a transaction. It reports whether anything was stored.
func (a *RecentAdapter) Save(truckID, customerID string, netWeight int64) bool {
	if a.store == nil {
		return false
	}
	tx, err := a.store.Save(truckID, customerID, netWeight)
	switch {
	case errors.Is(err, recent.ErrSkipped):
		log.Debug("recent: transaction skipped", "truck", truckID, "customer", customerID, "net", netWeight)
		return false
	case err != nil:
		log.Error("recent: save failed", "err", err)
		return false
	}
	log.Info("recent: transaction saved", "id", tx.ID, "truck", tx.TruckID, "net", tx.NetWeight)
	a.publish(domain.RecentChangedEvent{})
	return true
}

// Clear removes every stored transaction
func (a *RecentAdapter) Clear() error {
	if a.store == nil {
		return nil
	}
	if err := a.store.Clear(); err != nil {
		log.Error("recent: clear failed", "err", err)
		return err
	}
	a.publish(domain.RecentChangedEvent{Cleared: true})
	return nil
}

func (a *RecentAdapter) publish(e domain.DomainEvent) {
	if a.bus != nil {
		a.bus.Publish(e)
	}
}
