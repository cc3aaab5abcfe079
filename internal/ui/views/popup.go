package views

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay centres popup over main content. Rows covered by the
// popup are replaced; the rest of the screen is greyed out.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	base := strings.Split(desaturateANSI(mainContent), "\n")
	for len(base) < height {
		base = append(base, "")
	}

	popupLines := strings.Split(styledPopup, "\n")
	top := (height - len(popupLines)) / 2
	if top < 0 {
		top = 0
	}
	for i, line := range popupLines {
		row := top + i
		if row >= len(base) {
			base = append(base, "")
		}
		base[row] = lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
	}
	return strings.Join(base, "\n")
}

// ANSI escape sequence regex to strip styles/colors
var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// desaturateANSI strips ANSI color/style codes and recolors text dim gray
func desaturateANSI(s string) string {
	lines := strings.Split(ansiRE.ReplaceAllString(s, ""), "\n")
	grey := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	for i, l := range lines {
		lines[i] = grey.Render(l)
	}
	return strings.Join(lines, "\n")
}

// stripANSI returns s without styling
func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}
