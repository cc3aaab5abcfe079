package ticket

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weighbridge/internal/domain"
)

func complete() Draft {
	return Draft{
		Reading: domain.Reading{Gross: 78000, Tare: 29320, Status: domain.ScaleStable},
		Selection: domain.Selection{
			domain.SlotTruck:    "TRK-1058",
			domain.SlotCustomer: "Rock Trucking",
			domain.SlotOrder:    "ORD-10005",
			domain.SlotProduct:  "Limestone #57",
		},
	}
}

func checkOf(t *testing.T, err error) Check {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected a ValidationError, got %v", err)
	return verr.Check
}

func TestCompleteDraftIsValid(t *testing.T) {
	t.Parallel()
	assert.NoError(t, Validate(complete()))
}

func TestUnstableScaleIsReportedFirst(t *testing.T) {
	t.Parallel()
	d := complete()
	d.Reading.Status = domain.ScaleReading

	err := Validate(d)
	require.Error(t, err)
	assert.Equal(t, CheckScaleStable, checkOf(t, err))
	assert.ErrorIs(t, err, ErrNotStable)
	assert.Equal(t, ErrNotStable.Error(), err.Error())
}

func TestChecksRunInOrder(t *testing.T) {
	t.Parallel()
	d := Draft{Reading: domain.Reading{Gross: 10, Tare: 20, Status: domain.ScaleReading}}

	steps := []struct {
		want Check
		fix  func(*Draft)
	}{
		{CheckScaleStable, func(d *Draft) { d.Reading.Status = domain.ScaleStable }},
		{CheckNetPositive, func(d *Draft) { d.Reading.Gross = 78000 }},
		{CheckTruck, func(d *Draft) { d.Selection = domain.Selection{domain.SlotTruck: "TRK-1000"} }},
		{CheckCustomer, func(d *Draft) { d.Selection[domain.SlotCustomer] = "Lake LLC" }},
		{CheckOrder, func(d *Draft) { d.Selection[domain.SlotOrder] = "ORD-10000" }},
		{CheckProduct, func(d *Draft) { d.Selection[domain.SlotProduct] = "Gravel #4" }},
	}
	for _, step := range steps {
		err := Validate(d)
		require.Error(t, err, "expected %s to fail", step.want)
		assert.Equal(t, step.want, checkOf(t, err))
		step.fix(&d)
	}
	assert.NoError(t, Validate(d))
}

func TestPrintWritesTicket(t *testing.T) {
	t.Parallel()
	p := NewPrinter(t.TempDir())
	p.now = func() time.Time { return time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC) }

	tk, path, err := p.Print(complete(), "$22.50/T")
	require.NoError(t, err)
	assert.Equal(t, "547.65", tk.Summary.Total.StringFixed(2))

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(body)
	assert.Contains(t, text, "TRK-1058")
	assert.Contains(t, text, "48,680 lbs")
	assert.Contains(t, text, "24.34 T")
	assert.Contains(t, text, "$547.65")
	assert.Contains(t, text, "2026-03-04 05:06:07")
}

func TestPrintRefusesInvalidDraft(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	d := complete()
	delete(d.Selection, domain.SlotOrder)

	_, _, err := NewPrinter(dir).Print(d, "$22.50/T")
	assert.ErrorIs(t, err, ErrNoOrder)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
