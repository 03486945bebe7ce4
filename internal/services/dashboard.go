package services

import "sales-dashboard/internal/models"

// Compute filters records by spec and derives every dashboard view from the
// subset. The result shares no state with previous results.
func Compute(records []models.Record, spec models.FilterSpec) models.Dashboard {
	filtered := Filter(records, spec)

	return models.Dashboard{
		Filters:          spec,
		KPIs:             Summarize(filtered),
		SalesOverTime:    SalesOverTime(filtered),
		SalesByRegion:    SalesByRegion(filtered),
		ProfitByCategory: ProfitByCategory(filtered),
		SalesMix:         SalesMix(filtered),
		RecentOrders:     RecentOrders(filtered, RecentOrdersLimit),
		CategorySummary:  CategorySummary(filtered),
		RecordCount:      len(records),
		FilteredCount:    len(filtered),
	}
}
