package dataset

import (
	"slices"
	"strings"
	"testing"
	"time"

	"sales-dashboard/internal/models"
)

var anchor = time.Date(2024, time.June, 30, 12, 0, 0, 0, time.UTC)

func TestGenerate_Shape(t *testing.T) {
	records := Generate(GenerateOptions{Count: DefaultCount, Seed: 7, Now: anchor})

	if len(records) != DefaultCount {
		t.Fatalf("len = %d, want %d", len(records), DefaultCount)
	}

	if !slices.IsSortedFunc(records, func(a, b models.Record) int {
		return strings.Compare(a.Date, b.Date)
	}) {
		t.Error("records should be sorted oldest first")
	}

	newest := records[len(records)-1]
	if newest.ID != 1 || newest.Date != "2024-06-30" {
		t.Errorf("newest record = %+v, want id 1 dated 2024-06-30", newest)
	}
	if newest.Region != models.RegionNorth || newest.Category != models.CategoryTechnology || newest.Name != "Apex Monitor" {
		t.Errorf("newest record attributes = %+v", newest)
	}

	oldest := records[0]
	if oldest.ID != DefaultCount || oldest.Date != "2024-03-04" {
		t.Errorf("oldest record = %+v, want id %d dated 2024-03-04", oldest, DefaultCount)
	}

	for _, r := range records {
		if r.Sales < minSales || r.Sales > minSales+salesSpread {
			t.Errorf("record %d sales %d out of range", r.ID, r.Sales)
		}
		if r.Profit < 0 || r.Profit > r.Sales {
			t.Errorf("record %d profit %d out of range for sales %d", r.ID, r.Profit, r.Sales)
		}
		if !r.Region.Valid() || !r.Category.Valid() {
			t.Errorf("record %d has invalid attributes", r.ID)
		}
	}
}

func TestGenerate_Cycles(t *testing.T) {
	records := Generate(GenerateOptions{Count: 12, Seed: 1, Now: anchor})

	byID := make(map[int]models.Record, len(records))
	for _, r := range records {
		byID[r.ID] = r
	}

	for id := 1; id <= 12; id++ {
		i := id - 1
		r := byID[id]
		if r.Region != models.Regions[i%4] {
			t.Errorf("id %d region = %s, want %s", id, r.Region, models.Regions[i%4])
		}
		if r.Category != models.Categories[i%3] {
			t.Errorf("id %d category = %s, want %s", id, r.Category, models.Categories[i%3])
		}
		if r.Name != productNames[i] {
			t.Errorf("id %d name = %q, want %q", id, r.Name, productNames[i])
		}
	}
}

func TestGenerate_SeedIsReproducible(t *testing.T) {
	a := Generate(GenerateOptions{Count: 30, Seed: 42, Now: anchor})
	b := Generate(GenerateOptions{Count: 30, Seed: 42, Now: anchor})
	c := Generate(GenerateOptions{Count: 30, Seed: 43, Now: anchor})

	if !slices.Equal(a, b) {
		t.Error("same seed should produce identical records")
	}
	if slices.Equal(a, c) {
		t.Error("different seeds should produce different records")
	}
}

func TestGenerate_ZeroCount(t *testing.T) {
	records := Generate(GenerateOptions{Count: 0})
	if records == nil || len(records) != 0 {
		t.Errorf("Generate(0) = %v, want empty non-nil slice", records)
	}
}

func BenchmarkGenerate(b *testing.B) {
	for b.Loop() {
		Generate(GenerateOptions{Count: 10_000, Seed: 1, Now: anchor})
	}
}
