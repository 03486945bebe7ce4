package templates

import (
	"context"
	"strings"
	"testing"

	"sales-dashboard/internal/models"
	"sales-dashboard/internal/services"
)

func testRecords() []models.Record {
	return []models.Record{
		{ID: 1, Name: "Apex Monitor", Sales: 100, Profit: 20, Region: models.RegionNorth, Category: models.CategoryTechnology, Date: "2024-01-05"},
		{ID: 2, Name: "Nimbus Chair", Sales: 200, Profit: 50, Region: models.RegionSouth, Category: models.CategoryFurniture, Date: "2024-02-10"},
	}
}

func TestDashboard_RendersPage(t *testing.T) {
	d := services.Compute(testRecords(), models.DefaultFilterSpec())
	pending := models.DefaultFilterSpec()
	pending.Region = models.RegionSouth

	html, err := RenderString(context.Background(), Dashboard(d, pending))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	expected := []string{
		"<!DOCTYPE html>",
		`id="filter-form"`,
		`id="filter-error"`,
		`id="dashboard-panels"`,
		"$300",
		"$70",
		"$150",
		"23.3%",
		"Apex Monitor",
		"Nimbus Chair",
		`<option value="South" selected>`,
		"@post('/sse/filters/apply')",
		"2 of 2 records",
	}
	for _, want := range expected {
		if !strings.Contains(html, want) {
			t.Errorf("page should contain %q", want)
		}
	}
}

func TestPanels_EmptyDashboard(t *testing.T) {
	spec := models.DefaultFilterSpec()
	spec.Region = models.RegionWest
	d := services.Compute(testRecords(), spec)

	html, err := RenderString(context.Background(), Panels(d))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !strings.HasPrefix(html, `<section id="dashboard-panels">`) {
		t.Errorf("panels should start with the patch target, got %.60q", html)
	}
	if !strings.Contains(html, "No orders match the current filters") {
		t.Error("empty recent orders should render a placeholder row")
	}
	if !strings.Contains(html, "N/A") {
		t.Error("empty sales over time should render the placeholder point")
	}
	if strings.Contains(html, "<!DOCTYPE html>") {
		t.Error("panels should not render the page shell")
	}
}

func TestFilterForm_SelectsPending(t *testing.T) {
	pending := models.FilterSpec{
		Region:    models.Region(models.All),
		Category:  models.CategoryOffice,
		StartDate: "2024-01-01",
	}

	html, err := RenderString(context.Background(), FilterForm(pending))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	for _, want := range []string{
		`<option value="All" selected>`,
		`<option value="Office" selected>`,
		`value="2024-01-01"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("form should contain %q", want)
		}
	}
	if strings.Contains(html, `<option value="North" selected>`) {
		t.Error("North should not be selected")
	}
}

func TestFilterError(t *testing.T) {
	html, err := RenderString(context.Background(), FilterError("startDate: must be <YYYY-MM-DD>"))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(html, "&lt;YYYY-MM-DD&gt;") {
		t.Errorf("message should be escaped, got %q", html)
	}
}

func TestRender_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := services.Compute(testRecords(), models.DefaultFilterSpec())
	if _, err := RenderString(ctx, Dashboard(d, models.DefaultFilterSpec())); err == nil {
		t.Error("Render() should fail on a cancelled context")
	}
}

func TestMixBars_Shares(t *testing.T) {
	got := mixBars([]models.MixSlice{
		{Label: "Technology", Value: 100, Color: "#22c55e"},
		{Label: "Furniture", Value: 300, Color: "#eab308"},
	})

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Width != 25 || got[1].Width != 75 {
		t.Errorf("widths = %v, %v, want 25, 75", got[0].Width, got[1].Width)
	}
	if got[1].Value != "$300 (75.0%)" {
		t.Errorf("Value = %q", got[1].Value)
	}
}

func BenchmarkDashboard(b *testing.B) {
	d := services.Compute(testRecords(), models.DefaultFilterSpec())
	c := Dashboard(d, models.DefaultFilterSpec())

	for b.Loop() {
		if _, err := RenderString(context.Background(), c); err != nil {
			b.Fatal(err)
		}
	}
}
