package state

import (
	"weighbridge/internal/domain"
)

// DetailStatus is the fetch state of a slot's detail panel
type DetailStatus int

const (
	DetailNone DetailStatus = iota
	DetailLoading
	DetailReady
	DetailError
)

// Detail is the record shown in a slot's detail panel
type Detail struct {
	Status DetailStatus
	ID     string
	Record domain.Record
	Seq    uint64 // request that will fill this detail
}

// AppState contains all the application state not owned by a service
type AppState struct {
	// Form state
	Focused domain.Slot // slot whose input has focus
	Details map[domain.Slot]*Detail

	// Scale
	Reading domain.Reading

	// Recent activity
	Recent       []domain.Transaction
	RecentCursor int

	// UI state
	Width            int
	Height           int
	ShowHelp         bool
	HelpScrollOffset int
	StatusMessage    string
	LastTicketPath   string
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	s := &AppState{
		Focused: domain.NoSlot,
		Details: make(map[domain.Slot]*Detail),
	}
	for _, slot := range domain.Slots {
		s.Details[slot] = &Detail{}
	}
	return s
}

// Detail returns the detail entry of slot
func (s *AppState) Detail(slot domain.Slot) *Detail {
	d, ok := s.Details[slot]
	if !ok {
		d = &Detail{}
		s.Details[slot] = d
	}
	return d
}

// ClearDetail empties a slot's detail panel
func (s *AppState) ClearDetail(slot domain.Slot) {
	d := s.Detail(slot)
	*d = Detail{Seq: d.Seq}
}

// StartDetail marks slot as loading id and returns the request sequence
func (s *AppState) StartDetail(slot domain.Slot, id string) uint64 {
	d := s.Detail(slot)
	d.Seq++
	d.Status = DetailLoading
	d.ID = id
	d.Record = nil
	return d.Seq
}

// FinishDetail applies a fetch result. Results of superseded requests are
// ignored and reported as false.
func (s *AppState) FinishDetail(slot domain.Slot, seq uint64, r domain.Record, err error) bool {
	d := s.Detail(slot)
	if d.Seq != seq || d.Status != DetailLoading {
		return false
	}
	if err != nil {
		d.Status = DetailError
		d.Record = nil
		return true
	}
	d.Status = DetailReady
	d.Record = r
	return true
}

// SetDetail fills slot's detail panel directly
func (s *AppState) SetDetail(slot domain.Slot, id string, r domain.Record) {
	d := s.Detail(slot)
	d.Seq++
	d.Status = DetailReady
	d.ID = id
	d.Record = r
}

// SetRecent replaces the recent activity list, keeping the cursor in range
func (s *AppState) SetRecent(list []domain.Transaction) {
	s.Recent = list
	s.MoveRecentCursor(0)
}

// MoveRecentCursor moves the recent cursor by delta, clamped to the list
func (s *AppState) MoveRecentCursor(delta int) {
	c := s.RecentCursor + delta
	if c >= len(s.Recent) {
		c = len(s.Recent) - 1
	}
	if c < 0 {
		c = 0
	}
	s.RecentCursor = c
}

// RecentAt returns the transaction at index i
func (s *AppState) RecentAt(i int) (domain.Transaction, bool) {
	if i < 0 || i >= len(s.Recent) {
		return domain.Transaction{}, false
	}
	return s.Recent[i], true
}

// ScrollHelp moves the help overlay by delta lines
func (s *AppState) ScrollHelp(delta, maxOffset int) {
	s.HelpScrollOffset += delta
	if s.HelpScrollOffset > maxOffset {
		s.HelpScrollOffset = maxOffset
	}
	if s.HelpScrollOffset < 0 {
		s.HelpScrollOffset = 0
	}
}
