// Package combobox implements the searchable entity picker used by every
// slot of the form.
package combobox

// State is the divergence state of a combobox
type State int

const (
	// Committed shows the selected value and no query
	Committed State = iota
	// DivergedEmpty has the display cleared and nothing typed yet
	DivergedEmpty
	// DivergedTyping shows the live query. The query may have been typed
	// and then cleared again.
	DivergedTyping
	// Selecting is the moment between a pick and its commit
	Selecting
)

func (s State) String() string {
	switch s {
	case DivergedEmpty:
		return "diverged-empty"
	case DivergedTyping:
		return "diverged-typing"
	case Selecting:
		return "selecting"
	default:
		return "committed"
	}
}

// Session tracks the committed value of a combobox against what the user
// is typing. It holds no UI.
type Session struct {
	state    State
	value    string
	query    string
	hasTyped bool
}

// NewSession starts committed on value
func NewSession(value string) Session {
	return Session{value: value}
}

func (s *Session) State() State   { return s.state }
func (s *Session) Value() string  { return s.value }
func (s *Session) Query() string  { return s.query }
func (s *Session) HasTyped() bool { return s.hasTyped }

// Diverged reports whether the display no longer reflects the value
func (s *Session) Diverged() bool {
	return s.state == DivergedEmpty || s.state == DivergedTyping
}

// Focus clears the display of a committed value
func (s *Session) Focus() {
	if s.state == Committed && s.value != "" {
		s.state = DivergedEmpty
		s.query = ""
		s.hasTyped = false
	}
}

// Type records the live query text
func (s *Session) Type(text string) {
	s.state = DivergedTyping
	s.query = text
	s.hasTyped = true
}

// Pick commits id and clears the query. It reports whether the value
// changed.
func (s *Session) Pick(id string) bool {
	s.state = Selecting
	changed := s.value != id
	s.value = id
	s.query = ""
	s.hasTyped = false
	s.state = Committed
	return changed
}

// Restore abandons the divergence and goes back to the committed value
func (s *Session) Restore() {
	s.state = Committed
	s.query = ""
	s.hasTyped = false
}

// Restorable reports whether closing the dropdown may drop the query
func (s *Session) Restorable() bool {
	return !s.hasTyped || s.query == ""
}

// SetValue replaces the value from outside the component. Clearing is
// refused while the user is typing.
func (s *Session) SetValue(id string) bool {
	if id == "" && s.state == DivergedTyping {
		return false
	}
	s.value = id
	return true
}
