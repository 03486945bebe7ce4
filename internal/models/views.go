package models

type KPISummary struct {
	TotalSales    int64   `json:"total_sales"`
	TotalProfit   int64   `json:"total_profit"`
	AvgOrderValue float64 `json:"avg_order_value"`
	OrderCount    int     `json:"order_count"`
	ProfitMargin  float64 `json:"profit_margin"`
}

type ChartPoint struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
}

type MixSlice struct {
	Label string `json:"label"`
	Value int64  `json:"value"`
	Color string `json:"color"`
}

type OrderRow struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Region          Region   `json:"region"`
	Category        Category `json:"category"`
	Date            string   `json:"date"`
	Sales           int64    `json:"sales"`
	Profit          int64    `json:"profit"`
	SalesFormatted  string   `json:"sales_formatted"`
	ProfitFormatted string   `json:"profit_formatted"`
}

type CategoryRow struct {
	Category        Category `json:"category"`
	Sales           int64    `json:"sales"`
	Profit          int64    `json:"profit"`
	SalesFormatted  string   `json:"sales_formatted"`
	ProfitFormatted string   `json:"profit_formatted"`
}

// Dashboard is every derived view for one applied FilterSpec.
type Dashboard struct {
	Filters          FilterSpec    `json:"filters"`
	KPIs             KPISummary    `json:"kpis"`
	SalesOverTime    []ChartPoint  `json:"sales_over_time"`
	SalesByRegion    []ChartPoint  `json:"sales_by_region"`
	ProfitByCategory []ChartPoint  `json:"profit_by_category"`
	SalesMix         []MixSlice    `json:"sales_mix"`
	RecentOrders     []OrderRow    `json:"recent_orders"`
	CategorySummary  []CategoryRow `json:"category_summary"`
	RecordCount      int           `json:"record_count"`
	FilteredCount    int           `json:"filtered_count"`
}
