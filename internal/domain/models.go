package domain

import (
	"strings"
	"time"
)

// Slot is one of the four fixed entity roles in a transaction
type Slot int

const (
	NoSlot Slot = iota - 1
	SlotTruck
	SlotCustomer
	SlotOrder
	SlotProduct
)

// Slots lists the entity slots in their cyclic navigation order
var Slots = []Slot{SlotTruck, SlotCustomer, SlotOrder, SlotProduct}

// Valid reports whether s names one of the four slots
func (s Slot) Valid() bool {
	return s >= SlotTruck && s <= SlotProduct
}

func (s Slot) String() string {
	switch s {
	case SlotTruck:
		return "TRUCK"
	case SlotCustomer:
		return "CUSTOMER"
	case SlotOrder:
		return "ORDER"
	case SlotProduct:
		return "PRODUCT"
	default:
		return "NONE"
	}
}

// Title returns the slot name as shown in the form
func (s Slot) Title() string {
	name := s.String()
	if !s.Valid() {
		return ""
	}
	return name[:1] + strings.ToLower(name[1:])
}

// ParseSlot converts a slot name back into a Slot
func ParseSlot(name string) (Slot, bool) {
	for _, s := range Slots {
		if strings.EqualFold(s.String(), name) {
			return s, true
		}
	}
	return NoSlot, false
}

// Record is one selectable item of an entity kind, as field name -> value
type Record map[string]string

// Get returns the field value or "" when absent
func (r Record) Get(field string) string {
	if r == nil {
		return ""
	}
	return r[field]
}

// Clone returns a shallow copy so callers can extend a record safely
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Column is one rendered field of a dropdown row or detail panel
type Column struct {
	Label    string
	Field    string
	MinWidth int
}

// EntityConfig is the static per-kind configuration of a slot
type EntityConfig struct {
	Slot             Slot
	ValueField       string   // unique identifier returned as the selection
	DisplayField     string   // shown in the input once committed
	SearchableFields []string // scanned by the fuzzy matcher, in order
	Columns          []Column // dropdown row layout
	DetailColumns    []Column // detail panel layout
	Placeholder      string
	EmptyMessage     string
}

// ValueOf returns the identifier of a record for this kind
func (c EntityConfig) ValueOf(r Record) string {
	return r.Get(c.ValueField)
}

// DisplayOf returns the display text of a record for this kind
func (c EntityConfig) DisplayOf(r Record) string {
	return r.Get(c.DisplayField)
}

// ScaleStatus reports whether the scale has settled
type ScaleStatus string

const (
	ScaleStable  ScaleStatus = "STABLE"
	ScaleReading ScaleStatus = "READING"
)

// Reading is a single weight sample from the scale, in pounds
type Reading struct {
	Gross  int64
	Tare   int64
	Status ScaleStatus
	At     time.Time
}

// Net returns gross minus tare, floored at zero
func (r Reading) Net() int64 {
	if n := r.Gross - r.Tare; n > 0 {
		return n
	}
	return 0
}

// Transaction is a printed weighing recorded in recent activity
type Transaction struct {
	ID         string
	TruckID    string
	CustomerID string
	NetWeight  int64
	Timestamp  time.Time
}

// Selection is a snapshot of the four committed slot values
type Selection map[Slot]string

// Get returns the committed id for a slot, "" when unselected
func (s Selection) Get(slot Slot) string {
	if s == nil {
		return ""
	}
	return s[slot]
}
