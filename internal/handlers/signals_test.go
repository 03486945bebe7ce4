package handlers

import (
	"testing"

	"sales-dashboard/internal/models"
)

func TestNormalizeFilter(t *testing.T) {
	got := normalizeFilter(models.FilterSpec{StartDate: "2024-01-01"})
	want := models.FilterSpec{Region: "All", Category: "All", StartDate: "2024-01-01"}
	if got != want {
		t.Errorf("normalizeFilter() = %+v, want %+v", got, want)
	}
}
