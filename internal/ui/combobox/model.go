package combobox

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"weighbridge/internal/debounce"
	"weighbridge/internal/domain"
	"weighbridge/internal/search"
	"weighbridge/internal/ui/input/types"
)

const (
	defaultRows  = 8
	defaultWidth = 28
)

// ResultsMsg carries the answer to one search. Seq identifies the request
// so superseded answers can be dropped.
type ResultsMsg struct {
	Slot    domain.Slot
	Seq     uint64
	Query   string
	Records []domain.Record
	Err     error
}

// Option configures a Model
type Option func(*Model)

// WithDebounce sets the search debounce delay
func WithDebounce(d time.Duration) Option {
	return func(m *Model) { m.delay = d }
}

// WithRows sets the maximum number of visible dropdown rows
func WithRows(n int) Option {
	return func(m *Model) {
		if n > 0 {
			m.rows = n
		}
	}
}

// Model is one slot's combobox. The dropdown is open only when the
// selection service says so through SetOpen.
type Model struct {
	slot     domain.Slot
	cfg      domain.EntityConfig
	provider search.Provider

	session   Session
	input     textinput.Model
	table     table.Model
	spinner   spinner.Model
	debouncer *debounce.Debouncer[string]

	delay   time.Duration
	rows    int
	focused bool
	open    bool
	loading bool
	results []domain.Record
	seq     uint64
	lastErr error

	ctx    context.Context
	cancel context.CancelFunc
	closed bool
}

// New creates the combobox for provider's slot
func New(provider search.Provider, opts ...Option) *Model {
	cfg := provider.Config()
	m := &Model{
		slot:     cfg.Slot,
		cfg:      cfg,
		provider: provider,
		delay:    debounce.DefaultDelay,
		rows:     defaultRows,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.ctx, m.cancel = context.WithCancel(context.Background())
	m.debouncer = debounce.New[string](cfg.Slot.String(), m.delay, debounce.WithImmediate(debounce.Blank))

	m.input = textinput.New()
	m.input.Prompt = ""
	m.input.Placeholder = cfg.Placeholder
	m.input.CharLimit = 64
	m.input.Width = defaultWidth
	m.input.Cursor.SetMode(cursor.CursorStatic)

	m.table = table.New(
		table.WithColumns(tableColumns(cfg.Columns)),
		table.WithFocused(true),
		table.WithHeight(1),
	)
	m.table.SetStyles(tableStyles())

	m.spinner = spinner.New(spinner.WithSpinner(spinner.Dot))
	return m
}

func (m *Model) Slot() domain.Slot           { return m.slot }
func (m *Model) Config() domain.EntityConfig { return m.cfg }
func (m *Model) State() State                { return m.session.State() }
func (m *Model) Value() string               { return m.session.Value() }
func (m *Model) Query() string               { return m.session.Query() }
func (m *Model) Focused() bool               { return m.focused }
func (m *Model) IsOpen() bool                { return m.open }
func (m *Model) Loading() bool               { return m.loading }
func (m *Model) Results() []domain.Record    { return m.results }

// InputValue returns the text currently in the input line
func (m *Model) InputValue() string { return m.input.Value() }

// Display returns the display text of the committed value
func (m *Model) Display() string {
	return m.displayOf(m.session.Value())
}

func (m *Model) displayOf(id string) string {
	if id == "" {
		return ""
	}
	if r, ok := m.provider.Lookup(id); ok {
		if d := m.cfg.DisplayOf(r); d != "" {
			return d
		}
	}
	return id
}

// Highlighted returns the dropdown row under the cursor
func (m *Model) Highlighted() (domain.Record, bool) {
	i := m.table.Cursor()
	if !m.open || m.loading || i < 0 || i >= len(m.results) {
		return nil, false
	}
	return m.results[i], true
}

// Focus gives the input focus. A committed value is cleared from the
// display so the user can search right away.
func (m *Model) Focus() []types.Action {
	if m.closed {
		return nil
	}
	m.focused = true
	m.input.Focus()
	m.session.Focus()
	if m.session.Diverged() {
		m.input.SetValue("")
		m.input.Placeholder = m.Display()
	}
	return []types.Action{types.OpenSlotAction{Slot: m.slot}}
}

// Blur drops focus and abandons any divergence without committing
func (m *Model) Blur() []types.Action {
	if !m.focused {
		return nil
	}
	m.focused = false
	m.input.Blur()
	m.restore()
	return []types.Action{types.CloseSlotAction{Slot: m.slot}}
}

// SetOpen is called by the selection service when this slot's dropdown
// opens or closes.
func (m *Model) SetOpen(open bool) {
	if m.open == open {
		return
	}
	m.open = open
	if open {
		if m.session.Query() == "" {
			m.invalidate()
			m.setResults(m.provider.All())
		}
		return
	}
	m.invalidate()
	if m.session.Restorable() {
		m.restore()
	}
}

// SetValue replaces the committed value from outside. It returns false
// when the component refuses the change.
func (m *Model) SetValue(id string) bool {
	if !m.session.SetValue(id) {
		return false
	}
	if m.session.State() == Committed {
		m.input.SetValue(m.Display())
		m.input.CursorEnd()
	} else {
		m.input.Placeholder = m.Display()
	}
	return true
}

// Close cancels pending and in-flight work. Later results are ignored.
func (m *Model) Close() {
	m.closed = true
	m.invalidate()
	m.cancel()
}

// HandleKey processes a key while focused. It returns the actions for the
// root model, a command, and whether the key was consumed.
func (m *Model) HandleKey(msg tea.KeyMsg) ([]types.Action, tea.Cmd, bool) {
	if !m.focused || m.closed {
		return nil, nil, false
	}

	switch msg.Type {
	case tea.KeyEsc:
		if !m.session.Diverged() && !m.open {
			return nil, nil, false
		}
		m.focused = false
		m.input.Blur()
		m.restore()
		return []types.Action{
			types.CloseSlotAction{Slot: m.slot},
			types.ReleaseFocusAction{Slot: m.slot},
		}, nil, true

	case tea.KeyTab, tea.KeyShiftTab:
		dir := "next"
		if msg.Type == tea.KeyShiftTab {
			dir = "prev"
		}
		m.restore()
		return []types.Action{
			types.CloseSlotAction{Slot: m.slot},
			types.TabNavigateAction{From: m.slot, Direction: dir},
		}, nil, true

	case tea.KeyEnter:
		if msg.Alt {
			return nil, nil, false
		}
		if !m.open {
			return []types.Action{types.OpenSlotAction{Slot: m.slot}}, nil, true
		}
		if r, ok := m.Highlighted(); ok {
			return m.pick(m.cfg.ValueOf(r)), nil, true
		}
		return nil, nil, true

	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
		if !m.open {
			return []types.Action{types.OpenSlotAction{Slot: m.slot}}, nil, true
		}
		m.moveCursor(msg.Type)
		return nil, nil, true

	case tea.KeyDelete:
		if m.open && m.input.Value() == "" {
			return m.pick(""), nil, true
		}
	}

	// The committed display counts as selected text: the first edit
	// replaces it instead of appending to it.
	replace := m.session.State() == Committed && m.session.Value() != "" && isEdit(msg)

	before := m.input.Value()
	var cmd tea.Cmd
	if replace {
		m.input.SetValue("")
		m.input.Placeholder = m.Display()
	}
	if !replace || msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		m.input, cmd = m.input.Update(msg)
	}
	after := m.input.Value()
	if !replace && after == before {
		return nil, cmd, true
	}

	m.session.Type(after)
	var actions []types.Action
	if !m.open {
		actions = append(actions, types.OpenSlotAction{Slot: m.slot})
	}
	return actions, tea.Batch(cmd, m.debouncer.Push(after)), true
}

// Update handles the combobox's own messages. Messages of other slots are
// ignored.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.closed {
		return nil
	}
	switch msg := msg.(type) {
	case debounce.FiredMsg[string]:
		q, ok := m.debouncer.Resolve(msg)
		if !ok {
			return nil
		}
		return m.search(q)

	case ResultsMsg:
		if msg.Slot != m.slot || msg.Seq != m.seq {
			return nil
		}
		m.loading = false
		m.lastErr = msg.Err
		if msg.Err != nil {
			log.Warn("combobox: search failed", "slot", m.slot, "query", msg.Query, "err", msg.Err)
			m.setResults(nil)
			return nil
		}
		m.setResults(msg.Records)
		return nil

	case spinner.TickMsg:
		if !m.loading {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd
	}
	return nil
}

// search runs q now for synchronous providers and blank queries, and as a
// command otherwise.
func (m *Model) search(q string) tea.Cmd {
	m.seq++
	seq := m.seq

	if !m.provider.Async() || debounce.Blank(q) {
		records, err := m.provider.Search(m.ctx, q)
		if err != nil {
			log.Warn("combobox: search failed", "slot", m.slot, "query", q, "err", err)
			records = nil
		}
		m.loading = false
		m.lastErr = err
		m.setResults(records)
		return nil
	}

	m.loading = true
	ctx, p, slot := m.ctx, m.provider, m.slot
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		records, err := p.Search(ctx, q)
		return ResultsMsg{Slot: slot, Seq: seq, Query: q, Records: records, Err: err}
	})
}

func isEdit(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace, tea.KeyBackspace, tea.KeyDelete:
		return !msg.Alt
	}
	return false
}

// pick commits id, then asks for the dropdown to close and announces the
// change, in that order.
func (m *Model) pick(id string) []types.Action {
	m.invalidate()
	m.session.Pick(id)
	m.input.SetValue(m.displayOf(id))
	m.input.CursorEnd()
	m.input.Placeholder = m.cfg.Placeholder
	return []types.Action{
		types.CloseSlotAction{Slot: m.slot},
		types.ValueChangeAction{Slot: m.slot, ID: id},
	}
}

func (m *Model) restore() {
	m.invalidate()
	m.session.Restore()
	m.input.SetValue(m.Display())
	m.input.CursorEnd()
	m.input.Placeholder = m.cfg.Placeholder
}

// invalidate cancels the pending debounce and orphans in-flight searches
func (m *Model) invalidate() {
	m.debouncer.Cancel()
	m.seq++
	m.loading = false
}

func (m *Model) setResults(records []domain.Record) {
	m.results = records
	rows := make([]table.Row, len(records))
	for i, r := range records {
		row := make(table.Row, len(m.cfg.Columns))
		for j, c := range m.cfg.Columns {
			row[j] = r.Get(c.Field)
		}
		rows[i] = row
	}
	m.table.SetRows(rows)
	m.table.SetHeight(min(max(len(rows), 1), m.rows) + 1)
	m.table.SetCursor(0)
}

func (m *Model) moveCursor(k tea.KeyType) {
	switch k {
	case tea.KeyUp:
		m.table.MoveUp(1)
	case tea.KeyDown:
		m.table.MoveDown(1)
	case tea.KeyPgUp:
		m.table.MoveUp(m.rows)
	case tea.KeyPgDown:
		m.table.MoveDown(m.rows)
	}
}

// Err returns the error of the latest search, if it failed
func (m *Model) Err() error { return m.lastErr }
