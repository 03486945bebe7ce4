package handlers

import "sales-dashboard/internal/models"

// normalizeFilter treats an absent region or category as All.
func normalizeFilter(f models.FilterSpec) models.FilterSpec {
	if f.Region == "" {
		f.Region = models.Region(models.All)
	}
	if f.Category == "" {
		f.Category = models.Category(models.All)
	}
	return f
}
