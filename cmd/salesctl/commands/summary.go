package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"sales-dashboard/cmd/salesctl/output"
	"sales-dashboard/internal/format"
	"sales-dashboard/internal/models"
	"sales-dashboard/internal/services"
)

// summaryFlags maps each filter flag to the pending field it edits.
var summaryFlags = []struct {
	flag  string
	field models.FilterField
}{
	{"region", models.FieldRegion},
	{"category", models.FieldCategory},
	{"from", models.FieldStartDate},
	{"to", models.FieldEndDate},
}

func newSummaryCmd(opts *globalOptions) *cobra.Command {
	values := make(map[string]*string, len(summaryFlags))

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the dashboard for a filter",
		Long: `Print KPIs, chart series and tables for the records matching a filter.

Examples:
  salesctl summary                                  # Whole record set
  salesctl summary --region North --category Office
  salesctl summary --from 2024-01-01 --to 2024-03-31 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := opts.records(cmd.Context())
			if err != nil {
				return err
			}

			session := services.NewSession(records, opts.logger, opts.metrics)
			for _, f := range summaryFlags {
				if !cmd.Flags().Changed(f.flag) {
					continue
				}
				value := *values[f.flag]
				if err := services.ValidateField(f.field, value); err != nil {
					return err
				}
				if err := session.EditPending(f.field, value); err != nil {
					return err
				}
			}

			d, err := session.ApplyValidated(cmd.Context(), services.ValidateFilter)
			if err != nil {
				return err
			}
			if opts.jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(d)
			}

			printDashboard(cmd, d)
			return nil
		},
	}

	for _, f := range summaryFlags {
		values[f.flag] = new(string)
	}
	cmd.Flags().StringVar(values["region"], "region", models.All, "Region filter (All, North, South, East, West)")
	cmd.Flags().StringVar(values["category"], "category", models.All, "Category filter (All, Technology, Furniture, Office)")
	cmd.Flags().StringVar(values["from"], "from", "", "Inclusive start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(values["to"], "to", "", "Inclusive end date (YYYY-MM-DD)")

	return cmd
}

func printDashboard(cmd *cobra.Command, d models.Dashboard) {
	w := cmd.OutOrStdout()
	kpis := format.KPICards(d.KPIs)

	output.Section(w, "Key Metrics")
	output.KeyValues(w, [][2]string{
		{"Total Sales", kpis.TotalSales},
		{"Total Profit", kpis.TotalProfit},
		{"Avg Order Value", kpis.AvgOrderValue},
		{"Orders", kpis.OrderCount},
		{"Profit Margin", kpis.ProfitMargin},
	})
	output.Muted(w, "%d of %d records match", d.FilteredCount, d.RecordCount)

	if d.FilteredCount == 0 {
		fmt.Fprintln(w)
		output.Warning(w, "No records match the filter")
	}

	output.Section(w, "Sales Over Time")
	output.Table(w, []string{"Month", "Sales"}, pointRows(d.SalesOverTime))

	output.Section(w, "Sales by Region")
	output.Table(w, []string{"Region", "Sales"}, pointRows(d.SalesByRegion))

	output.Section(w, "Profit by Category")
	output.Table(w, []string{"Category", "Profit"}, pointRows(d.ProfitByCategory))

	output.Section(w, "Sales Mix")
	mix := make([][]string, 0, len(d.SalesMix))
	for _, s := range d.SalesMix {
		mix = append(mix, []string{s.Label, format.Currency(s.Value)})
	}
	output.Table(w, []string{"Category", "Sales"}, mix)

	output.Section(w, "Recent Orders")
	orders := make([][]string, 0, len(d.RecentOrders))
	for _, o := range d.RecentOrders {
		orders = append(orders, []string{
			strconv.Itoa(o.ID), o.Name, string(o.Region), string(o.Category), o.Date, o.SalesFormatted, o.ProfitFormatted,
		})
	}
	output.Table(w, []string{"ID", "Product", "Region", "Category", "Date", "Sales", "Profit"}, orders)

	output.Section(w, "Category Summary")
	summary := make([][]string, 0, len(d.CategorySummary))
	for _, c := range d.CategorySummary {
		summary = append(summary, []string{string(c.Category), c.SalesFormatted, c.ProfitFormatted})
	}
	output.Table(w, []string{"Category", "Sales", "Profit"}, summary)
}

func pointRows(points []models.ChartPoint) [][]string {
	rows := make([][]string, 0, len(points))
	for _, p := range points {
		rows = append(rows, []string{p.Label, format.Currency(p.Value)})
	}
	return rows
}
