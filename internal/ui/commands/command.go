package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"weighbridge/internal/domain"
	"weighbridge/internal/eventbus"
	"weighbridge/internal/search"
	"weighbridge/internal/ticket"
	"weighbridge/internal/ui/adapters"
	"weighbridge/internal/ui/state"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// Printer writes tickets
type Printer interface {
	Print(d ticket.Draft, priceLabel string) (ticket.Ticket, string, error)
}

// Scale is the part of the scale feed commands drive
type Scale interface {
	Snapshot() domain.Reading
	TriggerReading() bool
	SetTruckTare(lbs int64)
}

// CommandContext provides context for command execution
type CommandContext struct {
	State   *state.AppState
	Bus     eventbus.EventBus
	Recent  *adapters.RecentAdapter
	Printer Printer
	Scale   Scale
}

// DetailMsg carries the result of a detail fetch
type DetailMsg struct {
	Slot   domain.Slot
	Seq    uint64
	ID     string
	Record domain.Record
	Err    error
}

// PrintedMsg carries the result of printing a ticket
type PrintedMsg struct {
	Ticket ticket.Ticket
	Path   string
	Saved  bool
	Err    error
}

// RecentLoadedMsg carries the recent activity list
type RecentLoadedMsg struct {
	Transactions []domain.Transaction
}

// RecentClearedMsg reports the end of a clear
type RecentClearedMsg struct {
	Err error
}

// FetchDetailCommand loads the detail record of a selected id
type FetchDetailCommand struct {
	ctx      context.Context
	provider search.Provider
	slot     domain.Slot
	id       string
	seq      uint64
}

// NewFetchDetailCommand creates a new detail fetch. seq is the request
// number handed out by AppState.StartDetail.
func NewFetchDetailCommand(ctx context.Context, provider search.Provider, id string, seq uint64) *FetchDetailCommand {
	return &FetchDetailCommand{
		ctx:      ctx,
		provider: provider,
		slot:     provider.Slot(),
		id:       id,
		seq:      seq,
	}
}

// Execute performs the fetch off the update loop
func (c *FetchDetailCommand) Execute() tea.Cmd {
	return func() tea.Msg {
		r, err := c.provider.Detail(c.ctx, c.id)
		if err != nil {
			log.Warn("detail fetch failed", "slot", c.slot, "id", c.id, "err", err)
		}
		return DetailMsg{Slot: c.slot, Seq: c.seq, ID: c.id, Record: r, Err: err}
	}
}

// PrintCommand prints a ticket, records it in recent activity and starts
// the next weighing
type PrintCommand struct {
	ctx        *CommandContext
	draft      ticket.Draft
	priceLabel string
}

// NewPrintCommand creates a new print command
func NewPrintCommand(ctx *CommandContext, draft ticket.Draft, priceLabel string) *PrintCommand {
	return &PrintCommand{
		ctx:        ctx,
		draft:      draft,
		priceLabel: priceLabel,
	}
}

// Execute performs the print
func (c *PrintCommand) Execute() tea.Cmd {
	return func() tea.Msg {
		t, path, err := c.ctx.Printer.Print(c.draft, c.priceLabel)
		if err != nil {
			log.Warn("print failed", "err", err)
			return PrintedMsg{Err: err}
		}
		log.Info("ticket printed", "id", t.ID, "path", path, "net", t.Summary.NetLbs)

		saved := c.ctx.Recent.Save(
			c.draft.Selection.Get(domain.SlotTruck),
			c.draft.Selection.Get(domain.SlotCustomer),
			t.Summary.NetLbs,
		)
		if c.ctx.Scale != nil {
			c.ctx.Scale.TriggerReading()
		}
		if c.ctx.Bus != nil {
			c.ctx.Bus.Publish(eventbus.TicketPrintedEvent{TicketID: t.ID, Path: path, Net: t.Summary.NetLbs})
		}
		return PrintedMsg{Ticket: t, Path: path, Saved: saved}
	}
}

// LoadRecentCommand reads the recent activity list
type LoadRecentCommand struct {
	ctx *CommandContext
}

// NewLoadRecentCommand creates a new load command
func NewLoadRecentCommand(ctx *CommandContext) *LoadRecentCommand {
	return &LoadRecentCommand{ctx: ctx}
}

// Execute performs the load
func (c *LoadRecentCommand) Execute() tea.Cmd {
	return func() tea.Msg {
		return RecentLoadedMsg{Transactions: c.ctx.Recent.Load()}
	}
}

// ClearRecentCommand empties the recent activity store
type ClearRecentCommand struct {
	ctx *CommandContext
}

// NewClearRecentCommand creates a new clear command
func NewClearRecentCommand(ctx *CommandContext) *ClearRecentCommand {
	return &ClearRecentCommand{ctx: ctx}
}

// Execute performs the clear
func (c *ClearRecentCommand) Execute() tea.Cmd {
	return func() tea.Msg {
		return RecentClearedMsg{Err: c.ctx.Recent.Clear()}
	}
}
