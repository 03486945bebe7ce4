package services

import "sales-dashboard/internal/models"

// Filter returns the records matching every constraint in spec, in input
// order. Date bounds compare the ISO strings lexicographically; the filter is
// not validated here.
func Filter(records []models.Record, spec models.FilterSpec) []models.Record {
	result := make([]models.Record, 0, len(records))
	for _, r := range records {
		if Matches(r, spec) {
			result = append(result, r)
		}
	}
	return result
}

// Matches reports whether a single record satisfies spec.
func Matches(r models.Record, spec models.FilterSpec) bool {
	if spec.Region != models.All && r.Region != spec.Region {
		return false
	}
	if spec.Category != models.All && r.Category != spec.Category {
		return false
	}
	if spec.StartDate != "" && r.Date < spec.StartDate {
		return false
	}
	if spec.EndDate != "" && r.Date > spec.EndDate {
		return false
	}
	return true
}
