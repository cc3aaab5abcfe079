package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"weighbridge/internal/search"
	"weighbridge/internal/ticket"
)

// Executor handles command execution
type Executor struct {
	ctx  *CommandContext
	base context.Context
}

// NewExecutor creates a new command executor. base bounds every detail
// fetch it starts.
func NewExecutor(base context.Context, cmdCtx *CommandContext) *Executor {
	if base == nil {
		base = context.Background()
	}
	return &Executor{ctx: cmdCtx, base: base}
}

// ExecuteFetchDetail creates and executes a detail fetch command
func (e *Executor) ExecuteFetchDetail(p search.Provider, id string, seq uint64) tea.Cmd {
	cmd := NewFetchDetailCommand(e.base, p, id, seq)
	return cmd.Execute()
}

// ExecutePrint creates and executes a print command
func (e *Executor) ExecutePrint(draft ticket.Draft, priceLabel string) tea.Cmd {
	cmd := NewPrintCommand(e.ctx, draft, priceLabel)
	return cmd.Execute()
}

// ExecuteLoadRecent creates and executes a load recent command
func (e *Executor) ExecuteLoadRecent() tea.Cmd {
	cmd := NewLoadRecentCommand(e.ctx)
	return cmd.Execute()
}

// ExecuteClearRecent creates and executes a clear recent command
func (e *Executor) ExecuteClearRecent() tea.Cmd {
	cmd := NewClearRecentCommand(e.ctx)
	return cmd.Execute()
}
