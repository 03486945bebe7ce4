// Package templates renders the dashboard page and the fragments that the
// SSE handlers patch into it.
package templates

import (
	"context"
	"encoding/json"
	"html/template"
	"io"
	"strings"

	"github.com/a-h/templ"

	"sales-dashboard/internal/format"
	"sales-dashboard/internal/models"
	"sales-dashboard/internal/services"
)

// Element IDs targeted by SSE element patches.
const (
	PanelsID      = "dashboard-panels"
	FilterFormID  = "filter-form"
	FilterErrorID = "filter-error"
)

type bar struct {
	Label string
	Value string
	Width float64
	Color string
}

type pageData struct {
	Dashboard  models.Dashboard
	Pending    models.FilterSpec
	KPIs       format.KPICardsView
	Regions    []models.Region
	Categories []models.Category
	Months     []bar
	RegionBars []bar
	Profit     []bar
	Mix        []bar
	Message    string
}

var views = template.Must(template.New("views").Funcs(template.FuncMap{
	"signals": signalsJSON,
	"str":     toString,
	"dict":    dict,
}).Parse(viewsHTML))

// Dashboard renders the full page for the applied dashboard and the pending
// filter shown in the form.
func Dashboard(d models.Dashboard, pending models.FilterSpec) templ.Component {
	return component("page", newPageData(d, pending))
}

// Panels renders the KPI cards, charts and tables as one patchable element.
func Panels(d models.Dashboard) templ.Component {
	return component("panels", newPageData(d, d.Filters))
}

// FilterForm renders the filter controls populated with pending.
func FilterForm(pending models.FilterSpec) templ.Component {
	return component("filters", pageData{
		Pending:    pending,
		Regions:    models.Regions,
		Categories: models.Categories,
	})
}

// FilterError renders the validation message slot. An empty message clears it.
func FilterError(message string) templ.Component {
	return component("error", pageData{Message: message})
}

// RenderString renders c into a string.
func RenderString(ctx context.Context, c templ.Component) (string, error) {
	var sb strings.Builder
	if err := c.Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func component(name string, data pageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		return views.ExecuteTemplate(w, name, data)
	})
}

func newPageData(d models.Dashboard, pending models.FilterSpec) pageData {
	return pageData{
		Dashboard:  d,
		Pending:    pending,
		KPIs:       format.KPICards(d.KPIs),
		Regions:    models.Regions,
		Categories: models.Categories,
		Months:     bars(d.SalesOverTime, nil),
		RegionBars: bars(d.SalesByRegion, nil),
		Profit:     bars(d.ProfitByCategory, categoryColor),
		Mix:        mixBars(d.SalesMix),
	}
}

func categoryColor(label string) string {
	return services.CategoryColor(models.Category(label))
}

func bars(points []models.ChartPoint, colorOf func(string) string) []bar {
	var peak int64 = 1
	for _, p := range points {
		peak = max(peak, p.Value)
	}

	out := make([]bar, 0, len(points))
	for _, p := range points {
		b := bar{
			Label: p.Label,
			Value: format.Currency(p.Value),
			Width: float64(max(p.Value, 0)) * 100 / float64(peak),
		}
		if colorOf != nil {
			b.Color = colorOf(p.Label)
		}
		out = append(out, b)
	}
	return out
}

func mixBars(mix []models.MixSlice) []bar {
	var total int64
	for _, s := range mix {
		total += s.Value
	}
	total = max(total, 1)

	out := make([]bar, 0, len(mix))
	for _, s := range mix {
		share := float64(s.Value) / float64(total)
		out = append(out, bar{
			Label: s.Label,
			Value: format.Currency(s.Value) + " (" + format.Percent(share) + ")",
			Width: share * 100,
			Color: s.Color,
		})
	}
	return out
}

func signalsJSON(f models.FilterSpec) string {
	b, err := json.Marshal(f)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func dict(kv ...any) map[string]any {
	m := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		if k, ok := kv[i].(string); ok {
			m[k] = kv[i+1]
		}
	}
	return m
}

func toString(v any) string {
	switch t := v.(type) {
	case models.Region:
		return string(t)
	case models.Category:
		return string(t)
	case string:
		return t
	default:
		return ""
	}
}

const viewsHTML = `
{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Sales Dashboard</title>
<script type="module" src="https://cdn.jsdelivr.net/gh/starfederation/datastar@1.0.0/bundles/datastar.js"></script>
<style>
body{font-family:system-ui,sans-serif;margin:0;background:#0f172a;color:#e2e8f0}
main{max-width:1200px;margin:0 auto;padding:24px}
.filters,.cards,.charts{display:grid;gap:12px}
.filters{grid-template-columns:repeat(6,auto);align-items:end}
.cards{grid-template-columns:repeat(5,1fr);margin:16px 0}
.charts{grid-template-columns:repeat(2,1fr)}
.card,.chart{background:#1e293b;border-radius:8px;padding:12px}
.card .value{font-size:1.4em;font-weight:600}
.bar{height:10px;border-radius:4px;background:#38bdf8}
.error{color:#f87171;min-height:1.2em}
table{width:100%;border-collapse:collapse}
td,th{padding:6px;border-bottom:1px solid #334155;text-align:left}
</style>
</head>
<body>
<main data-signals="{{signals .Pending}}">
<h1>Sales Dashboard</h1>
{{template "filters" .}}
{{template "error" .}}
{{template "panels" .}}
</main>
</body>
</html>
{{end}}

{{define "filters"}}<form id="filter-form" class="filters" onsubmit="return false">
<label>Region
<select name="region" data-bind:region>
<option value="All"{{if eq (str .Pending.Region) "All"}} selected{{end}}>All</option>
{{range .Regions}}<option value="{{.}}"{{if eq (str $.Pending.Region) (str .)}} selected{{end}}>{{.}}</option>
{{end}}</select>
</label>
<label>Category
<select name="category" data-bind:category>
<option value="All"{{if eq (str .Pending.Category) "All"}} selected{{end}}>All</option>
{{range .Categories}}<option value="{{.}}"{{if eq (str $.Pending.Category) (str .)}} selected{{end}}>{{.}}</option>
{{end}}</select>
</label>
<label>From <input type="date" name="startDate" value="{{.Pending.StartDate}}" data-bind:start-date></label>
<label>To <input type="date" name="endDate" value="{{.Pending.EndDate}}" data-bind:end-date></label>
<button type="button" data-on:click="@post('/sse/filters/apply')">Apply</button>
<button type="button" data-on:click="@post('/sse/filters/reset')">Reset</button>
</form>
{{end}}

{{define "error"}}<div id="filter-error" class="error">{{.Message}}</div>{{end}}

{{define "panels"}}<section id="dashboard-panels">
<p class="meta">{{.Dashboard.FilteredCount}} of {{.Dashboard.RecordCount}} records</p>
<div class="cards">
<div class="card"><div>Total Sales</div><div class="value">{{.KPIs.TotalSales}}</div></div>
<div class="card"><div>Total Profit</div><div class="value">{{.KPIs.TotalProfit}}</div></div>
<div class="card"><div>Avg Order Value</div><div class="value">{{.KPIs.AvgOrderValue}}</div></div>
<div class="card"><div>Orders</div><div class="value">{{.KPIs.OrderCount}}</div></div>
<div class="card"><div>Profit Margin</div><div class="value">{{.KPIs.ProfitMargin}}</div></div>
</div>
<div class="charts">
{{template "chart" dict "Title" "Sales Over Time" "Bars" .Months}}
{{template "chart" dict "Title" "Sales by Region" "Bars" .RegionBars}}
{{template "chart" dict "Title" "Profit by Category" "Bars" .Profit}}
{{template "chart" dict "Title" "Sales Mix" "Bars" .Mix}}
</div>
<div class="chart">
<h3>Recent Orders</h3>
<table>
<thead><tr><th>ID</th><th>Product</th><th>Region</th><th>Category</th><th>Date</th><th>Sales</th><th>Profit</th></tr></thead>
<tbody>
{{range .Dashboard.RecentOrders}}<tr><td>{{.ID}}</td><td>{{.Name}}</td><td>{{.Region}}</td><td>{{.Category}}</td><td>{{.Date}}</td><td>{{.SalesFormatted}}</td><td>{{.ProfitFormatted}}</td></tr>
{{else}}<tr><td colspan="7">No orders match the current filters</td></tr>
{{end}}</tbody>
</table>
</div>
<div class="chart">
<h3>Category Summary</h3>
<table>
<thead><tr><th>Category</th><th>Sales</th><th>Profit</th></tr></thead>
<tbody>
{{range .Dashboard.CategorySummary}}<tr><td>{{.Category}}</td><td>{{.SalesFormatted}}</td><td>{{.ProfitFormatted}}</td></tr>
{{end}}</tbody>
</table>
</div>
</section>
{{end}}

{{define "chart"}}<div class="chart">
<h3>{{.Title}}</h3>
<table>
{{range .Bars}}<tr><td>{{.Label}}</td><td><div class="bar" style="width: {{printf "%.1f" .Width}}%{{if .Color}}; background: {{.Color}}{{end}}"></div></td><td>{{.Value}}</td></tr>
{{else}}<tr><td>No data</td></tr>
{{end}}</table>
</div>
{{end}}
`
