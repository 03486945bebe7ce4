package services

import (
	"slices"
	"strings"

	"sales-dashboard/internal/format"
	"sales-dashboard/internal/models"
)

const (
	RecentOrdersLimit = 8
	emptySeriesLabel  = "N/A"
	fallbackMixColor  = "#94a3b8"
)

var categoryColors = map[models.Category]string{
	models.CategoryTechnology: "#22c55e",
	models.CategoryFurniture:  "#eab308",
	models.CategoryOffice:     "#6366f1",
}

// Summarize computes the KPI cards. Both ratios floor their denominator at
// one so an empty subset yields zeros rather than NaN.
func Summarize(records []models.Record) models.KPISummary {
	var sales, profit int64
	for _, r := range records {
		sales += r.Sales
		profit += r.Profit
	}

	return models.KPISummary{
		TotalSales:    sales,
		TotalProfit:   profit,
		AvgOrderValue: float64(sales) / float64(max(len(records), 1)),
		OrderCount:    len(records),
		ProfitMargin:  float64(profit) / float64(max(sales, 1)),
	}
}

// MonthKey returns the YYYY-MM bucket of an ISO date.
func MonthKey(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}

// SalesOverTime sums sales per calendar month in ascending month order. An
// empty subset yields a single N/A point so charts always have data.
func SalesOverTime(records []models.Record) []models.ChartPoint {
	monthly := make(map[string]int64)
	for _, r := range records {
		monthly[MonthKey(r.Date)] += r.Sales
	}

	if len(monthly) == 0 {
		return []models.ChartPoint{{Label: emptySeriesLabel, Value: 0}}
	}

	result := make([]models.ChartPoint, 0, len(monthly))
	for month, sales := range monthly {
		result = append(result, models.ChartPoint{Label: month, Value: sales})
	}
	slices.SortFunc(result, func(a, b models.ChartPoint) int {
		return strings.Compare(a.Label, b.Label)
	})
	return result
}

// SalesByRegion has one point per region in canonical order, zero-padded.
func SalesByRegion(records []models.Record) []models.ChartPoint {
	byRegion := make(map[models.Region]int64, len(models.Regions))
	for _, r := range records {
		byRegion[r.Region] += r.Sales
	}

	result := make([]models.ChartPoint, 0, len(models.Regions))
	for _, region := range models.Regions {
		result = append(result, models.ChartPoint{Label: string(region), Value: byRegion[region]})
	}
	return result
}

// ProfitByCategory has one point per category in canonical order, zero-padded.
func ProfitByCategory(records []models.Record) []models.ChartPoint {
	byCategory := make(map[models.Category]int64, len(models.Categories))
	for _, r := range records {
		byCategory[r.Category] += r.Profit
	}

	result := make([]models.ChartPoint, 0, len(models.Categories))
	for _, category := range models.Categories {
		result = append(result, models.ChartPoint{Label: string(category), Value: byCategory[category]})
	}
	return result
}

// SalesMix sums sales for the categories present in the subset, in order of
// first appearance. Absent categories are omitted rather than zero-padded.
func SalesMix(records []models.Record) []models.MixSlice {
	index := make(map[models.Category]int)
	result := make([]models.MixSlice, 0, len(models.Categories))

	for _, r := range records {
		i, ok := index[r.Category]
		if !ok {
			i = len(result)
			index[r.Category] = i
			result = append(result, models.MixSlice{
				Label: string(r.Category),
				Color: CategoryColor(r.Category),
			})
		}
		result[i].Value += r.Sales
	}
	return result
}

func CategoryColor(c models.Category) string {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return fallbackMixColor
}

// RecentOrders returns up to limit records, newest first. Records sharing a
// date keep their input order.
func RecentOrders(records []models.Record, limit int) []models.OrderRow {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b models.Record) int {
		return strings.Compare(b.Date, a.Date)
	})

	if limit >= 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	rows := make([]models.OrderRow, 0, len(sorted))
	for _, r := range sorted {
		rows = append(rows, models.OrderRow{
			ID:              r.ID,
			Name:            r.Name,
			Region:          r.Region,
			Category:        r.Category,
			Date:            r.Date,
			Sales:           r.Sales,
			Profit:          r.Profit,
			SalesFormatted:  format.Currency(r.Sales),
			ProfitFormatted: format.Currency(r.Profit),
		})
	}
	return rows
}

// CategorySummary has one row per category in canonical order with both
// measures summed.
func CategorySummary(records []models.Record) []models.CategoryRow {
	type totals struct{ sales, profit int64 }
	byCategory := make(map[models.Category]*totals, len(models.Categories))
	for _, c := range models.Categories {
		byCategory[c] = &totals{}
	}
	for _, r := range records {
		if t, ok := byCategory[r.Category]; ok {
			t.sales += r.Sales
			t.profit += r.Profit
		}
	}

	rows := make([]models.CategoryRow, 0, len(models.Categories))
	for _, c := range models.Categories {
		t := byCategory[c]
		rows = append(rows, models.CategoryRow{
			Category:        c,
			Sales:           t.sales,
			Profit:          t.profit,
			SalesFormatted:  format.Currency(t.sales),
			ProfitFormatted: format.Currency(t.profit),
		})
	}
	return rows
}
