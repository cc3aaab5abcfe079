package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"weighbridge/internal/catalog"
	"weighbridge/internal/config"
	"weighbridge/internal/domain"
	"weighbridge/internal/eventbus"
	"weighbridge/internal/search"
	"weighbridge/internal/ticket"
	"weighbridge/internal/ui/adapters"
	"weighbridge/internal/ui/combobox"
	"weighbridge/internal/ui/commands"
	"weighbridge/internal/ui/coordinator"
	"weighbridge/internal/ui/handlers"
	"weighbridge/internal/ui/input"
	"weighbridge/internal/ui/input/keys"
	inputtypes "weighbridge/internal/ui/input/types"
	"weighbridge/internal/ui/services/events"
	"weighbridge/internal/ui/services/navigation"
	"weighbridge/internal/ui/services/selection"
	"weighbridge/internal/ui/state"
	"weighbridge/internal/ui/toast"
	"weighbridge/internal/ui/viewmodels"
	"weighbridge/internal/ui/views"
	"weighbridge/internal/weight"
)

// Deps are the collaborators of the dashboard
type Deps struct {
	Config    *config.Config
	Bus       eventbus.EventBus
	Providers []search.Provider
	Recent    adapters.RecentStore
	Printer   commands.Printer
	Scale     commands.Scale
}

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	state  *state.AppState // centralized state

	ctx    context.Context
	cancel context.CancelFunc

	help        help.Model
	inPagerMode bool // tracks if we're currently in pager mode

	// Handlers
	coord        *coordinator.Coordinator
	providers    map[domain.Slot]search.Provider
	scale        commands.Scale
	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	viewModel    *viewmodels.ViewModel
	cmdExecutor  *commands.Executor
	inputHandler *input.Handler
	toasts       *toast.Sink
	helpOps      *HelpOps

	// commands produced by synchronous UI bus handlers during one Update
	pending []tea.Cmd

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(d Deps) *Model {
	cfg := d.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	appState := state.NewAppState()
	km := keys.NewKeyMap(cfg.Keys)

	m := &Model{
		bus:          d.Bus,
		config:       cfg,
		state:        appState,
		help:         help.New(),
		providers:    make(map[domain.Slot]search.Provider, len(d.Providers)),
		scale:        d.Scale,
		renderer:     views.NewRenderer(km),
		inputHandler: input.New(km),
		toasts:       toast.NewSink(cfg.ToastDuration()),
		helpOps:      NewHelpOps(nil),
	}
	m.ctx, m.cancel = context.WithCancel(context.Background())

	boxes := make([]*combobox.Model, 0, len(d.Providers))
	for _, p := range d.Providers {
		m.providers[p.Slot()] = p
		boxes = append(boxes, combobox.New(p, combobox.WithDebounce(cfg.Debounce())))
	}

	uiBus := events.NewBus()
	m.coord = coordinator.NewCoordinator(uiBus, boxes...)
	uiBus.Subscribe(events.TypeOf(selection.ValueChangedEvent{}), func(e interface{}) {
		m.onValueChanged(e.(selection.ValueChangedEvent))
	})

	m.eventHandler = handlers.NewEventHandler(appState, m.toasts)
	m.viewModel = viewmodels.NewViewModel(appState, m.coord, m.toasts)
	m.viewModel.SetHelp(m.help)
	m.cmdExecutor = commands.NewExecutor(m.ctx, &commands.CommandContext{
		State:   appState,
		Bus:     d.Bus,
		Recent:  adapters.NewRecentAdapter(d.Recent, d.Bus),
		Printer: d.Printer,
		Scale:   d.Scale,
	})

	if d.Scale != nil {
		appState.Reading = d.Scale.Snapshot()
	}
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps.SetProgram(p)
}

// Close cancels in-flight searches and detail fetches
func (m *Model) Close() {
	m.cancel()
	m.coord.Close()
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return m.cmdExecutor.ExecuteLoadRecent()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.help.Width = msg.Width
		m.viewModel.SetHelp(m.help)

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	default:
		cmd = m.handleNonKeyboardMsg(msg)
	}
	return m, m.flush(cmd)
}

// handleKey routes a key: the mode handler first, then the focused
// combobox, then the keys nobody else wanted
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	ctx := m.inputContext()

	if actions, ok := m.inputHandler.HandleKey(msg, ctx); ok {
		return m.processActions(actions)
	}
	if m.inputHandler.CurrentMode() != inputtypes.ModeSlots {
		return nil
	}

	if box := m.coord.Box(m.state.Focused); box != nil {
		if actions, cmd, ok := box.HandleKey(msg); ok {
			return tea.Batch(cmd, m.processActions(actions))
		}
	}
	return m.processActions(m.inputHandler.Unhandled(msg, ctx))
}

func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{
		State:      m.state,
		Navigation: m.coord.Navigation,
		Selection:  m.coord.Selection,
	}
}

// processActions runs actions in order and keeps the help overlay in step
// with the input mode
func (m *Model) processActions(actions []inputtypes.Action) tea.Cmd {
	var cmds []tea.Cmd
	for _, action := range actions {
		if cmd := m.processAction(action); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	showHelp := m.inputHandler.CurrentMode() == inputtypes.ModeHelp
	if showHelp && !m.state.ShowHelp {
		m.state.HelpScrollOffset = 0
	}
	m.state.ShowHelp = showHelp
	return tea.Batch(cmds...)
}

// processAction processes an action from the input handler or a combobox
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	log.Debug("ui: action", "type", action.Type())

	switch a := action.(type) {
	case inputtypes.OpenSlotAction:
		m.coord.Selection.Open(a.Slot)

	case inputtypes.CloseSlotAction:
		m.coord.Selection.Close(a.Slot)

	case inputtypes.ValueChangeAction:
		m.coord.Selection.SetValue(a.Slot, a.ID)

	case inputtypes.ReleaseFocusAction:
		if m.state.Focused == a.Slot {
			m.state.Focused = domain.NoSlot
		}

	case inputtypes.TabNavigateAction:
		target := m.coord.Navigation.Navigate(a.From, navigation.Direction(a.Direction))
		return m.jumpTo(target)

	case inputtypes.JumpToSlotAction:
		return m.jumpTo(a.Slot)

	case inputtypes.CloseAllAction:
		m.coord.Selection.CloseAll()

	case inputtypes.PrintAction:
		return m.print()

	case inputtypes.FocusRecentAction:
		m.releaseFocus()
		m.coord.Selection.CloseAll()
		m.state.MoveRecentCursor(0)

	case inputtypes.RecentMoveAction:
		m.state.MoveRecentCursor(a.Delta)

	case inputtypes.RestoreRecentAction:
		return m.restoreRecent(a.Index)

	case inputtypes.ClearRecentAction:
		return m.cmdExecutor.ExecuteClearRecent()

	case inputtypes.ScrollHelpAction:
		m.state.ScrollHelp(a.Delta, m.renderer.Help().MaxScroll(m.state.Height))

	case inputtypes.OpenHelpPagerAction:
		return m.fetchHelpPager(m.renderer.Help().Content())

	case inputtypes.QuitAction:
		m.Close()
		return tea.Quit
	}
	return nil
}

// jumpTo marks slot active, opens it and focuses its input. Jumping to the
// slot that already has focus keeps typed text.
func (m *Model) jumpTo(slot domain.Slot) tea.Cmd {
	box := m.coord.Box(slot)
	if box == nil {
		return nil
	}
	m.coord.Navigation.Activate(slot)
	m.coord.Selection.Open(slot)

	if m.state.Focused == slot && box.Focused() {
		// a pick leaves the box focused on its committed value; jumping
		// back clears the display for a new search
		if box.State() == combobox.Committed && box.Value() != "" {
			return m.processActions(box.Focus())
		}
		return nil
	}
	var cmds []tea.Cmd
	if m.state.Focused != slot {
		cmds = append(cmds, m.releaseFocus())
	}
	m.state.Focused = slot
	cmds = append(cmds, m.processActions(box.Focus()))
	return tea.Batch(cmds...)
}

// releaseFocus blurs the focused combobox, abandoning any typed text
func (m *Model) releaseFocus() tea.Cmd {
	box := m.coord.Box(m.state.Focused)
	m.state.Focused = domain.NoSlot
	if box == nil {
		return nil
	}
	return m.processActions(box.Blur())
}

// onValueChanged is the fan-out of a committed value: detail panel, truck
// tare and, through the product detail, the price
func (m *Model) onValueChanged(ev selection.ValueChangedEvent) {
	log.Info("ui: value changed", "slot", ev.Slot, "id", ev.ID, "previous", ev.Previous)

	if ev.ID == "" {
		m.state.ClearDetail(ev.Slot)
		if ev.Slot == domain.SlotTruck && m.scale != nil {
			m.scale.SetTruckTare(0)
		}
		return
	}

	p := m.providers[ev.Slot]
	if p == nil {
		return
	}
	if p.Async() {
		seq := m.state.StartDetail(ev.Slot, ev.ID)
		m.pending = append(m.pending, m.cmdExecutor.ExecuteFetchDetail(p, ev.ID, seq))
		return
	}
	if r, ok := p.Lookup(ev.ID); ok {
		m.state.SetDetail(ev.Slot, ev.ID, r)
		return
	}
	seq := m.state.StartDetail(ev.Slot, ev.ID)
	m.state.FinishDetail(ev.Slot, seq, nil, search.ErrNotFound)
}

// print validates the form and starts printing. A failed check is shown
// right away and nothing is written.
func (m *Model) print() tea.Cmd {
	draft := ticket.Draft{
		Reading:   m.state.Reading,
		Selection: m.coord.Selection.Snapshot(),
	}
	if err := ticket.Validate(draft); err != nil {
		log.Info("ui: print refused", "reason", err)
		return m.toasts.Notify(toast.Error, "Cannot print ticket", err.Error())
	}
	return m.cmdExecutor.ExecutePrint(draft, m.viewModel.PriceLabel())
}

// restoreRecent writes the truck and customer of a recent transaction back
// into the form
func (m *Model) restoreRecent(index int) tea.Cmd {
	tx, ok := m.state.RecentAt(index)
	if !ok {
		return nil
	}
	m.coord.SetValue(domain.SlotTruck, tx.TruckID)
	m.coord.SetValue(domain.SlotCustomer, tx.CustomerID)
	return m.toasts.Notify(toast.Success, "Restored", fmt.Sprintf("%s · %s", tx.TruckID, tx.CustomerID))
}

// flush batches cmd with the commands queued by bus handlers
func (m *Model) flush(cmd tea.Cmd) tea.Cmd {
	if len(m.pending) == 0 {
		return cmd
	}
	cmds := append([]tea.Cmd{cmd}, m.pending...)
	m.pending = nil
	return tea.Batch(cmds...)
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	if m.program == nil {
		return nil
	}
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case EventMsg:
		return m.eventHandler.HandleEvent(msg.Event)

	case toast.DismissMsg:
		m.toasts.Dismiss(msg.ID)

	case commands.DetailMsg:
		if !m.state.FinishDetail(msg.Slot, msg.Seq, msg.Record, msg.Err) {
			return nil
		}
		if msg.Slot == domain.SlotTruck && msg.Err == nil && m.scale != nil {
			m.scale.SetTruckTare(weight.ParseTare(msg.Record.Get(catalog.FieldTare)))
		}

	case commands.PrintedMsg:
		if msg.Err != nil {
			return m.toasts.Notify(toast.Error, "Print failed", msg.Err.Error())
		}
		m.state.LastTicketPath = msg.Path
		s := msg.Ticket.Summary
		return tea.Batch(
			m.toasts.Notify(toast.Success, "Ticket printed",
				fmt.Sprintf("Net %s · %s", weight.FormatPounds(s.NetLbs), weight.FormatMoney(s.Total))),
			m.cmdExecutor.ExecuteLoadRecent(),
		)

	case commands.RecentLoadedMsg:
		m.state.SetRecent(msg.Transactions)

	case commands.RecentClearedMsg:
		if msg.Err != nil {
			return m.toasts.Notify(toast.Error, "Could not clear recent activity", msg.Err.Error())
		}
		m.state.SetRecent(nil)
		return m.toasts.Notify(toast.Success, "Recent activity cleared", "")

	case helpPagerMsg:
		if msg.err != nil {
			log.Error("ui: help pager failed", "err", msg.err)
		}

	case pauseRenderingMsg:
		m.inPagerMode = true

	case resumeRenderingMsg:
		m.inPagerMode = false

	default:
		// Debounce timers, search results and spinner ticks belong to the
		// comboboxes
		var cmds []tea.Cmd
		for _, b := range m.coord.Boxes() {
			if cmd := b.Update(msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return tea.Batch(cmds...)
	}
	return nil
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.state.Width == 0 {
		return "Loading..."
	}

	m.viewModel.SetDimensions(m.state.Width, m.state.Height)
	m.viewModel.SetInputMode(m.inputHandler.ModeName(), m.inputHandler.CurrentMode() == inputtypes.ModeRecent)
	return m.renderer.Render(m.viewModel.BuildViewState())
}

// Accessors

// Focused returns the slot whose input has focus
func (m *Model) Focused() domain.Slot { return m.state.Focused }

// Coordinator returns the slot services and comboboxes
func (m *Model) Coordinator() *coordinator.Coordinator { return m.coord }

// State returns the application state
func (m *Model) State() *state.AppState { return m.state }

// Mode returns the current input mode
func (m *Model) Mode() inputtypes.Mode { return m.inputHandler.CurrentMode() }

// Toasts returns the visible toasts
func (m *Model) Toasts() []toast.Toast { return m.toasts.Toasts() }

// Summary returns the weight panel figures
func (m *Model) Summary() weight.Summary { return m.viewModel.Summary() }

// SetClock replaces the clock used for relative times in the recent panel
func (m *Model) SetClock(now func() time.Time) { m.viewModel.SetClock(now) }
