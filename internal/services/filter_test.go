package services

import (
	"slices"
	"testing"

	"sales-dashboard/internal/models"
)

func TestFilter_DefaultIsIdentity(t *testing.T) {
	records := mixedRecords()
	got := Filter(records, models.DefaultFilterSpec())

	if !slices.Equal(got, records) {
		t.Errorf("Filter(records, default) changed the records: got %d, want %d", len(got), len(records))
	}
}

func TestFilter_Empty(t *testing.T) {
	got := Filter(nil, models.FilterSpec{Region: models.RegionNorth, StartDate: "2024-01-01"})
	if got == nil || len(got) != 0 {
		t.Errorf("Filter(nil) = %v, want empty non-nil slice", got)
	}
}

func TestFilter_Predicates(t *testing.T) {
	records := mixedRecords()

	tests := []struct {
		name string
		spec models.FilterSpec
	}{
		{"region", models.FilterSpec{Region: models.RegionEast, Category: models.All}},
		{"category", models.FilterSpec{Region: models.All, Category: models.CategoryOffice}},
		{"start date", models.FilterSpec{Region: models.All, Category: models.All, StartDate: "2024-02-07"}},
		{"end date", models.FilterSpec{Region: models.All, Category: models.All, EndDate: "2024-02-07"}},
		{"date range", models.FilterSpec{Region: models.All, Category: models.All, StartDate: "2024-01-15", EndDate: "2024-02-20"}},
		{"everything", models.FilterSpec{Region: models.RegionNorth, Category: models.CategoryTechnology, StartDate: "2024-01-01", EndDate: "2024-12-31"}},
		{"no match", models.FilterSpec{Region: models.RegionWest, Category: models.All, StartDate: "2030-01-01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(records, tt.spec)

			var want []models.Record
			for _, r := range records {
				if (tt.spec.Region == models.All || r.Region == tt.spec.Region) &&
					(tt.spec.Category == models.All || r.Category == tt.spec.Category) &&
					(tt.spec.StartDate == "" || r.Date >= tt.spec.StartDate) &&
					(tt.spec.EndDate == "" || r.Date <= tt.spec.EndDate) {
					want = append(want, r)
				}
			}

			if len(got) != len(want) {
				t.Fatalf("got %d records, want %d", len(got), len(want))
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("record %d = %+v, want %+v (order must be preserved)", i, got[i], want[i])
				}
			}
		})
	}
}

func TestFilter_Idempotent(t *testing.T) {
	records := mixedRecords()
	spec := models.FilterSpec{Region: models.RegionSouth, Category: models.All, StartDate: "2024-02-01"}

	once := Filter(records, spec)
	twice := Filter(once, spec)

	if !slices.Equal(once, twice) {
		t.Errorf("filter is not idempotent: %v vs %v", once, twice)
	}
}

func TestFilter_DateBoundsInclusive(t *testing.T) {
	records := scenarioRecords()
	spec := models.FilterSpec{Region: models.All, Category: models.All, StartDate: "2024-01-05", EndDate: "2024-01-05"}

	got := Filter(records, spec)
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("Filter() = %v, want only record 1", got)
	}
}

func TestFilter_MalformedBoundDoesNotPanic(t *testing.T) {
	spec := models.FilterSpec{Region: models.All, Category: models.All, StartDate: "not-a-date"}
	got := Filter(scenarioRecords(), spec)

	// "2024-..." sorts before "not-a-date", so nothing passes the lower bound.
	if len(got) != 0 {
		t.Errorf("Filter() = %v, want no records", got)
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	records := mixedRecords()
	before := slices.Clone(records)

	_ = Filter(records, models.FilterSpec{Region: models.RegionNorth, Category: models.All})

	if !slices.Equal(records, before) {
		t.Error("Filter mutated its input")
	}
}

func BenchmarkFilter(b *testing.B) {
	records := make([]models.Record, 0, 6000)
	for i := 0; i < 500; i++ {
		records = append(records, mixedRecords()...)
	}
	spec := models.FilterSpec{Region: models.RegionEast, Category: models.CategoryOffice, StartDate: "2024-02-01"}

	b.ResetTimer()
	for b.Loop() {
		_ = Filter(records, spec)
	}
}
