package ticket

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"weighbridge/internal/domain"
	"weighbridge/internal/weight"
)

// Ticket is a printed weighing.
type Ticket struct {
	ID       string
	Printed  time.Time
	Summary  weight.Summary
	Selected domain.Selection
}

// Printer writes tickets as text files into a directory.
type Printer struct {
	dir string
	now func() time.Time
}

// NewPrinter creates a printer writing into dir.
func NewPrinter(dir string) *Printer {
	return &Printer{dir: dir, now: time.Now}
}

// Print validates the draft and writes the ticket. The returned path is the
// written file.
func (p *Printer) Print(d Draft, priceLabel string) (Ticket, string, error) {
	if err := Validate(d); err != nil {
		return Ticket{}, "", err
	}

	t := Ticket{
		ID:       uuid.NewString(),
		Printed:  p.now(),
		Summary:  weight.Summarize(d.Reading, priceLabel),
		Selected: d.Selection,
	}

	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return Ticket{}, "", fmt.Errorf("create ticket dir: %w", err)
	}
	name := fmt.Sprintf("ticket-%s-%s.txt", t.Printed.Format("20060102-150405"), t.ID[:8])
	path := filepath.Join(p.dir, name)
	if err := os.WriteFile(path, []byte(Render(t)), 0o644); err != nil {
		return Ticket{}, "", fmt.Errorf("write ticket: %w", err)
	}
	return t, path, nil
}

// Render formats a ticket as plain text.
func Render(t Ticket) string {
	var b strings.Builder
	line := strings.Repeat("-", 40)

	fmt.Fprintf(&b, "WEIGHBRIDGE TICKET\n%s\n", line)
	fmt.Fprintf(&b, "%-12s %s\n", "Ticket", t.ID)
	fmt.Fprintf(&b, "%-12s %s\n", "Printed", t.Printed.Format("2006-01-02 15:04:05"))
	b.WriteString(line + "\n")

	for _, slot := range domain.Slots {
		fmt.Fprintf(&b, "%-12s %s\n", slot.Title(), valueOr(t.Selected.Get(slot), "-"))
	}
	b.WriteString(line + "\n")

	s := t.Summary
	fmt.Fprintf(&b, "%-12s %14s %10s\n", "Gross", weight.FormatPounds(s.GrossLbs), weight.FormatTons(s.GrossTons))
	fmt.Fprintf(&b, "%-12s %14s %10s\n", "Tare", weight.FormatPounds(s.TareLbs), weight.FormatTons(s.TareTons))
	fmt.Fprintf(&b, "%-12s %14s %10s\n", "Net", weight.FormatPounds(s.NetLbs), weight.FormatTons(s.NetTons))
	b.WriteString(line + "\n")
	fmt.Fprintf(&b, "%-12s %s/T\n", "Price", weight.FormatMoney(s.PricePerTon))
	fmt.Fprintf(&b, "%-12s %s\n", "Total", weight.FormatMoney(s.Total))
	return b.String()
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
