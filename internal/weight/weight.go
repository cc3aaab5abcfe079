// Package weight converts scale readings into tonnage and price.
package weight

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"weighbridge/internal/domain"
)

// PoundsPerTon is the short-ton conversion factor.
const PoundsPerTon = 2000

var (
	poundsPerTon = decimal.NewFromInt(PoundsPerTon)
	priceRe      = regexp.MustCompile(`[-+]?\d*\.?\d+`)
)

// Net returns gross minus tare, floored at zero.
func Net(gross, tare int64) int64 {
	if n := gross - tare; n > 0 {
		return n
	}
	return 0
}

// Tons converts pounds to tons rounded to two decimals.
func Tons(lbs int64) decimal.Decimal {
	return decimal.NewFromInt(lbs).Div(poundsPerTon).Round(2)
}

// ParsePricePerTon extracts the numeric price from a label such as
// "$22.50/T". Unparsable labels yield zero.
func ParsePricePerTon(label string) decimal.Decimal {
	m := priceRe.FindString(strings.ReplaceAll(label, ",", ""))
	if m == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(m)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Total multiplies already rounded net tons by the price and rounds to cents.
func Total(netTons, pricePerTon decimal.Decimal) decimal.Decimal {
	return netTons.Round(2).Mul(pricePerTon).Round(2)
}

// ParseTare reads a truck tare label such as "29.3k" or "29300" as pounds.
// Unparsable labels yield zero.
func ParseTare(label string) int64 {
	s := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(label, ",", "")))
	mult := decimal.NewFromInt(1)
	if strings.HasSuffix(s, "k") {
		mult = decimal.NewFromInt(1000)
		s = strings.TrimSuffix(s, "k")
	}
	s = strings.TrimSpace(strings.TrimSuffix(s, "lbs"))
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0
	}
	return d.Mul(mult).Round(0).IntPart()
}

// FormatNet renders pounds compactly: values of 1000 and above in
// thousands with one decimal.
func FormatNet(lbs int64) string {
	if lbs >= 1000 {
		return decimal.NewFromInt(lbs).Div(decimal.NewFromInt(1000)).StringFixed(1) + "k"
	}
	return fmt.Sprintf("%d", lbs)
}

// FormatPounds renders pounds with thousands separators.
func FormatPounds(lbs int64) string {
	return humanize.Comma(lbs) + " lbs"
}

// FormatTons renders tons with two decimals.
func FormatTons(t decimal.Decimal) string {
	return t.StringFixed(2) + " T"
}

// FormatMoney renders an amount as dollars and cents.
func FormatMoney(d decimal.Decimal) string {
	whole := d.Truncate(0).IntPart()
	cents := d.Sub(decimal.NewFromInt(whole)).Abs().Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	sign := ""
	if d.IsNegative() {
		sign = "-"
		if whole < 0 {
			whole = -whole
		}
	}
	return fmt.Sprintf("%s$%s.%02d", sign, humanize.Comma(whole), cents)
}

// Summary is the weight panel of the dashboard.
type Summary struct {
	Status      domain.ScaleStatus
	GrossLbs    int64
	TareLbs     int64
	NetLbs      int64
	GrossTons   decimal.Decimal
	TareTons    decimal.Decimal
	NetTons     decimal.Decimal
	PricePerTon decimal.Decimal
	Total       decimal.Decimal
}

// Summarize computes every derived figure of a reading for a product price
// label.
func Summarize(r domain.Reading, priceLabel string) Summary {
	net := Net(r.Gross, r.Tare)
	s := Summary{
		Status:      r.Status,
		GrossLbs:    r.Gross,
		TareLbs:     r.Tare,
		NetLbs:      net,
		GrossTons:   Tons(r.Gross),
		TareTons:    Tons(r.Tare),
		NetTons:     Tons(net),
		PricePerTon: ParsePricePerTon(priceLabel),
	}
	s.Total = Total(s.NetTons, s.PricePerTon)
	return s
}
