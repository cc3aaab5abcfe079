package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"weighbridge/internal/ui/input/keys"
)

// HelpRenderer renders the shortcut list from the key table
type HelpRenderer struct {
	keys keys.KeyMap
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer(km keys.KeyMap) *HelpRenderer {
	return &HelpRenderer{keys: km}
}

var helpSections = []string{"Fields", "Dropdown", "Ticket & Other"}

// Content renders the full help text
func (r *HelpRenderer) Content() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220")).
		Width(16)

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	var help strings.Builder
	help.WriteString(titleStyle.Render("Weighbridge Help"))
	help.WriteString("\n")

	for i, group := range r.keys.FullHelp() {
		if i < len(helpSections) {
			help.WriteString(sectionStyle.Render(helpSections[i]))
			help.WriteString("\n")
		}
		for _, b := range group {
			if !b.Enabled() {
				continue
			}
			help.WriteString(fmt.Sprintf("  %s %s\n", keyStyle.Render(b.Help().Key), descStyle.Render(b.Help().Desc)))
		}
		help.WriteString("\n")
	}
	help.WriteString(lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")).
		Render("  Press p to open this list in the pager"))
	return help.String()
}

// Lines returns the number of lines of the help text
func (r *HelpRenderer) Lines() int {
	return len(strings.Split(r.Content(), "\n"))
}

// Render returns the part of the help text visible at scrollOffset
func (r *HelpRenderer) Render(height int, scrollOffset int) string {
	content := r.Content()
	lines := strings.Split(content, "\n")
	totalLines := len(lines)

	// Account for popup border and padding
	visibleHeight := height - 6
	if visibleHeight < 5 {
		visibleHeight = 5
	}
	if totalLines <= visibleHeight {
		return content
	}

	maxOffset := totalLines - visibleHeight
	if scrollOffset > maxOffset {
		scrollOffset = maxOffset
	}
	if scrollOffset < 0 {
		scrollOffset = 0
	}

	endLine := scrollOffset + visibleHeight
	visibleLines := append([]string(nil), lines[scrollOffset:endLine]...)

	more := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if scrollOffset > 0 {
		visibleLines[0] = more.Render("↑ (more above)")
	}
	if endLine < totalLines {
		visibleLines[len(visibleLines)-1] = more.Render("↓ (more below)")
	}
	return strings.Join(visibleLines, "\n")
}

// MaxScroll returns the largest useful scroll offset for height
func (r *HelpRenderer) MaxScroll(height int) int {
	visibleHeight := height - 6
	if visibleHeight < 5 {
		visibleHeight = 5
	}
	if n := r.Lines() - visibleHeight; n > 0 {
		return n
	}
	return 0
}

// Bindings returns every binding listed in the help, in order
func (r *HelpRenderer) Bindings() []key.Binding {
	var out []key.Binding
	for _, g := range r.keys.FullHelp() {
		out = append(out, g...)
	}
	return out
}
