package combobox

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"weighbridge/internal/domain"
)

var (
	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Width(10).
			Foreground(lipgloss.Color("245"))

	activeLabelStyle = labelStyle.
				Foreground(lipgloss.Color("214"))

	fieldStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	focusedFieldStyle = fieldStyle.
				BorderForeground(lipgloss.Color("214"))

	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))

	placeholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	dropdownStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("214"))

	messageStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true).
			Padding(0, 1)

	errorStyle = messageStyle.Foreground(lipgloss.Color("196"))
)

func tableColumns(cols []domain.Column) []table.Column {
	out := make([]table.Column, len(cols))
	for i, c := range cols {
		w := c.MinWidth
		if l := len(c.Label); l > w {
			w = l
		}
		out[i] = table.Column{Title: c.Label, Width: w}
	}
	return out
}

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("214")).
		Bold(false)
	return s
}

// View renders the label and input line. active marks the navigator's
// highlighted slot.
func (m *Model) View(active bool) string {
	label := labelStyle
	if active {
		label = activeLabelStyle
	}

	field := fieldStyle
	var body string
	switch {
	case m.focused:
		field = focusedFieldStyle
		body = m.input.View()
	case m.Display() != "":
		body = valueStyle.Render(m.Display())
	default:
		body = placeholderStyle.Render(m.cfg.Placeholder)
	}
	body = lipgloss.NewStyle().Width(defaultWidth).Render(body)

	return lipgloss.JoinHorizontal(lipgloss.Center,
		label.Render(m.slot.Title()),
		field.Render(body),
	)
}

// DropdownView renders the open dropdown, or "" when closed
func (m *Model) DropdownView() string {
	if !m.open {
		return ""
	}

	var body string
	switch {
	case m.loading:
		body = messageStyle.Render(m.spinner.View() + " Loading...")
	case m.lastErr != nil && len(m.results) == 0:
		body = errorStyle.Render(m.cfg.EmptyMessage)
	case len(m.results) == 0:
		body = messageStyle.Render(m.cfg.EmptyMessage)
	default:
		body = m.table.View()
	}

	header := messageStyle.Render(m.slot.String() + " · " + countLabel(len(m.results), m.loading))
	return dropdownStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

func countLabel(n int, loading bool) string {
	switch {
	case loading:
		return "searching"
	case n == 1:
		return "1 match"
	default:
		return fmt.Sprintf("%d matches", n)
	}
}
