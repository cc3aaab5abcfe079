package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"weighbridge/internal/domain"
	"weighbridge/internal/ui/state"
	"weighbridge/internal/weight"
)

const (
	loadingText = "Loading..."
	errorText   = "Error loading data"
	emptyText   = "-"
)

// DetailView is what the detail panel needs to know about one slot
type DetailView struct {
	Config domain.EntityConfig
	Detail state.Detail
}

// PanelRenderer renders the side panels of the dashboard
type PanelRenderer struct {
	styles *Styles
}

// NewPanelRenderer creates a new panel renderer
func NewPanelRenderer(styles *Styles) *PanelRenderer {
	return &PanelRenderer{styles: styles}
}

// DetailValue returns the text shown for field of a detail
func DetailValue(d state.Detail, field string) string {
	switch d.Status {
	case state.DetailLoading:
		return loadingText
	case state.DetailError:
		return errorText
	case state.DetailReady:
		if v := d.Record.Get(field); v != "" {
			return v
		}
	}
	return emptyText
}

// RenderDetails renders the records of every selected slot
func (pr *PanelRenderer) RenderDetails(details []DetailView, width int) string {
	var b strings.Builder
	b.WriteString(pr.styles.PanelTitle.Render("DETAILS"))

	shown := 0
	for _, dv := range details {
		if dv.Detail.Status == state.DetailNone {
			continue
		}
		shown++
		b.WriteString("\n")
		b.WriteString(pr.styles.Highlight.Render(dv.Config.Slot.Title()))
		for _, c := range dv.Config.DetailColumns {
			value := DetailValue(dv.Detail, c.Field)
			style := pr.styles.Value
			switch dv.Detail.Status {
			case state.DetailLoading:
				style = pr.styles.StatusLoading
			case state.DetailError:
				style = pr.styles.StatusError
			}
			fmt.Fprintf(&b, "\n  %s%s", pr.styles.Label.Render(c.Label), style.Render(value))
		}
	}
	if shown == 0 {
		b.WriteString("\n")
		b.WriteString(pr.styles.Dim.Render("Nothing selected"))
	}
	return pr.styles.Panel.Width(width).Render(b.String())
}

// RenderSummary renders the weight and price panel
func (pr *PanelRenderer) RenderSummary(s weight.Summary, width int) string {
	badge := pr.styles.BadgeStable.Render(string(domain.ScaleStable))
	if s.Status != domain.ScaleStable {
		badge = pr.styles.BadgeReading.Render(string(domain.ScaleReading))
	}

	row := func(label string, lbs int64, tons string) string {
		return fmt.Sprintf("%s%14s  %10s",
			pr.styles.Label.Render(label),
			weight.FormatPounds(lbs),
			tons)
	}

	lines := []string{
		lipgloss.JoinHorizontal(lipgloss.Center, pr.styles.PanelTitle.Render("SCALE "), badge),
		row("Gross", s.GrossLbs, weight.FormatTons(s.GrossTons)),
		row("Tare", s.TareLbs, weight.FormatTons(s.TareTons)),
		pr.styles.Highlight.Render(row("Net", s.NetLbs, weight.FormatTons(s.NetTons))),
		"",
		pr.styles.Label.Render("Price") + pr.styles.Value.Render(weight.FormatMoney(s.PricePerTon)+"/T"),
		pr.styles.Label.Render("Total") + pr.styles.Highlight.Render(weight.FormatMoney(s.Total)),
	}
	return pr.styles.Panel.Width(width).Render(strings.Join(lines, "\n"))
}

// TruncateName shortens names longer than limit to their first limit-3
// characters plus "..."
func TruncateName(name string, limit int) string {
	r := []rune(name)
	if len(r) <= limit {
		return name
	}
	return string(r[:limit-3]) + "..."
}

// RenderRecent renders the recent activity list. focused highlights the
// cursor row.
func (pr *PanelRenderer) RenderRecent(list []domain.Transaction, cursor int, focused bool, now time.Time, width int) string {
	var b strings.Builder
	b.WriteString(pr.styles.PanelTitle.Render("RECENT ACTIVITY"))

	if len(list) == 0 {
		b.WriteString("\n")
		b.WriteString(pr.styles.Dim.Render("No transactions yet"))
	}
	for i, tx := range list {
		line := fmt.Sprintf("%-9s %-10s %7s  %s",
			tx.TruckID,
			TruncateName(tx.CustomerID, 10),
			weight.FormatNet(tx.NetWeight),
			humanize.RelTime(tx.Timestamp, now, "ago", "from now"))
		if focused && i == cursor {
			line = pr.styles.HighlightBg.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString("\n")
		b.WriteString(line)
	}

	style := pr.styles.Panel
	if focused {
		style = pr.styles.FocusPanel
	}
	return style.Width(width).Render(b.String())
}
