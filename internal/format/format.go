// Package format renders raw dashboard numerics for display. It is the only
// place that knows about currency symbols, digit grouping and percentages;
// everything upstream works on plain integers and ratios.
package format

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"sales-dashboard/internal/models"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Currency renders whole currency units as US dollars with digit grouping
// and no fraction digits, e.g. 1234 -> "$1,234".
func Currency(n int64) string {
	// The magnitude goes through uint64 so math.MinInt64 has no sign flip.
	u := uint64(n)
	if n < 0 {
		return "-$" + printer.Sprintf("%d", -u)
	}
	return "$" + printer.Sprintf("%d", u)
}

// CurrencyFloat rounds half away from zero before rendering with Currency.
// Values beyond the int64 range clamp to its ends.
func CurrencyFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Currency(0)
	}

	const limit = float64(1 << 63)
	r := math.Round(f)
	switch {
	case r >= limit:
		return Currency(math.MaxInt64)
	case r <= -limit:
		return Currency(math.MinInt64)
	}
	return Currency(int64(r))
}

// Percent renders a ratio with one decimal place, e.g. 0.2333 -> "23.3%".
func Percent(ratio float64) string {
	if math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		ratio = 0
	}
	return strconv.FormatFloat(ratio*100, 'f', 1, 64) + "%"
}

// Count renders an integer with digit grouping.
func Count(n int) string {
	return printer.Sprintf("%d", n)
}

type KPICardsView struct {
	TotalSales    string `json:"total_sales"`
	TotalProfit   string `json:"total_profit"`
	AvgOrderValue string `json:"avg_order_value"`
	OrderCount    string `json:"order_count"`
	ProfitMargin  string `json:"profit_margin"`
}

func KPICards(k models.KPISummary) KPICardsView {
	return KPICardsView{
		TotalSales:    Currency(k.TotalSales),
		TotalProfit:   Currency(k.TotalProfit),
		AvgOrderValue: CurrencyFloat(k.AvgOrderValue),
		OrderCount:    Count(k.OrderCount),
		ProfitMargin:  Percent(k.ProfitMargin),
	}
}
