package views

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"weighbridge/internal/domain"
	"weighbridge/internal/ui/combobox"
	"weighbridge/internal/ui/input/keys"
	"weighbridge/internal/weight"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width            int
	Height           int
	Now              time.Time
	Boxes            []*combobox.Model
	ActiveSlot       domain.Slot
	Details          []DetailView
	Summary          weight.Summary
	Recent           []domain.Transaction
	RecentCursor     int
	RecentFocused    bool
	Toasts           string
	StatusMessage    string
	Mode             string
	ShowHelp         bool
	HelpScrollOffset int
	HelpModel        help.Model
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	keys        keys.KeyMap
	panelRender *PanelRenderer
	popupRender *PopupRenderer
	helpRender  *HelpRenderer
}

// NewRenderer creates a new renderer
func NewRenderer(km keys.KeyMap) *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		keys:        km,
		panelRender: NewPanelRenderer(styles),
		popupRender: NewPopupRenderer(styles),
		helpRender:  NewHelpRenderer(km),
	}
}

// Help returns the help renderer
func (r *Renderer) Help() *HelpRenderer {
	return r.helpRender
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	width := state.Width
	if width <= 0 {
		width = 120
	}
	height := state.Height
	if height <= 0 {
		height = 40
	}

	// Title line with mode on the right
	logo := r.styles.Title.Render("WEIGHBRIDGE")
	mode := r.styles.Dim.Render("[" + state.Mode + "]")
	gap := width - lipgloss.Width(logo) - lipgloss.Width(mode) - 2
	if gap < 1 {
		gap = 1
	}
	titleLine := logo + strings.Repeat(" ", gap) + mode

	rightWidth := width / 2
	if rightWidth > 56 {
		rightWidth = 56
	}
	leftWidth := width - rightWidth - 4

	form := r.renderForm(state, leftWidth)
	side := lipgloss.JoinVertical(lipgloss.Left,
		r.panelRender.RenderSummary(state.Summary, rightWidth),
		r.panelRender.RenderDetails(state.Details, rightWidth),
		r.panelRender.RenderRecent(state.Recent, state.RecentCursor, state.RecentFocused, state.Now, rightWidth),
	)
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(leftWidth).Render(form),
		"  ",
		side,
	)

	var footer strings.Builder
	if state.StatusMessage != "" {
		footer.WriteString(r.styles.Status.Render(state.StatusMessage))
		footer.WriteString("\n")
	}
	footer.WriteString(state.HelpModel.ShortHelpView(r.keys.ShortHelp()))

	parts := []string{titleLine}
	if state.Toasts != "" {
		parts = append(parts, lipgloss.PlaceHorizontal(width-2, lipgloss.Right, state.Toasts))
	}
	parts = append(parts, body, footer.String())
	mainContent := r.styles.Main.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))

	if state.ShowHelp {
		helpContent := r.helpRender.Render(height, state.HelpScrollOffset)
		return r.popupRender.RenderPopupOverlay(mainContent, helpContent, height, width, r.styles.Popup)
	}
	return mainContent
}

// renderForm renders the four slots; the open dropdown sits under its slot
func (r *Renderer) renderForm(state ViewState, width int) string {
	var rows []string
	for _, b := range state.Boxes {
		rows = append(rows, b.View(b.Slot() == state.ActiveSlot))
		if dd := b.DropdownView(); dd != "" {
			rows = append(rows, lipgloss.NewStyle().MaxWidth(width).Render(dd))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
